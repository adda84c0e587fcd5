package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/prizevault/chain/x/epochvault/fixedpoint"
	"github.com/prizevault/chain/x/epochvault/pda"
	"github.com/prizevault/chain/x/epochvault/types"
)

// WithdrawVault lets the admin pull funds out of Treasury or Insurance.
// Principal vaults and prize vaults are never directly withdrawable;
// their balances only flow through the documented state transitions
// (spec §4.8).
func (k Keeper) WithdrawVault(ctx context.Context, to sdk.AccAddress, vault types.VaultRole, amount fixedpoint.FPUSDC) error {
	var role pda.Role
	switch vault {
	case types.WithdrawableVaultTreasury:
		role = pda.RoleTreasury
	case types.WithdrawableVaultInsurance:
		role = pda.RoleInsurance
	default:
		return sdkerrors.Wrap(types.ErrInvalidArgument, "unknown withdrawable vault")
	}
	if err := k.vaultToUser(ctx, role, to, amount, "admin vault withdraw"); err != nil {
		return err
	}
	k.SubLogger(types.SubSystemAdmin).Info("vault withdrawn", "to", to.String(), "vault", vault, "amount", amount.String())
	return nil
}

// RotateKey atomically replaces one of LatestEpoch's three rotatable keys
// (spec §4.8). Required signer: SuperAdmin — enforced by the message
// handler, which rejects before this ever runs.
func (k Keeper) RotateKey(ctx context.Context, target types.Role, newKey sdk.AccAddress) error {
	latest := k.GetLatestEpoch(ctx)
	switch target {
	case types.RoleSuperAdmin:
		latest.Keys.SuperAdmin = newKey
	case types.RoleAdmin:
		latest.Keys.Admin = newKey
	case types.RoleInvestor:
		latest.Keys.Investor = newKey
	default:
		return sdkerrors.Wrap(types.ErrInvalidArgument, "unknown rotatable key target")
	}
	k.setLatestEpoch(ctx, latest)
	k.SubLogger(types.SubSystemAdmin).Info("authority key rotated", "target", target, "new_key", newKey.String())
	return nil
}

// FundJackpot transfers an epoch's tier-1 total_prize into the tier-1
// vault and sets jackpot_claimable. A second call for the same epoch
// fails with ErrJackpotAlreadyClaimable once that flag is set, guarding
// against double funding (spec §4.8).
func (k Keeper) FundJackpot(ctx context.Context, funder sdk.AccAddress, epochIndex uint64) error {
	epoch, ok := k.GetEpoch(ctx, epochIndex)
	if !ok {
		return sdkerrors.Wrap(types.ErrInvalidArgument, "unknown epoch")
	}
	meta, ok := k.getWinnersMeta(ctx, epochIndex)
	if !ok {
		return sdkerrors.Wrap(types.ErrInvalidPrizeClaim, "no winners meta for this epoch")
	}
	if meta.JackpotClaimable {
		return sdkerrors.Wrap(types.ErrJackpotAlreadyClaimable, "jackpot already funded for this epoch")
	}
	if err := k.userToVault(ctx, funder, pda.RolePrizeTier1, epoch.YieldSplitCfg.Jackpot, "fund jackpot"); err != nil {
		return err
	}
	meta.JackpotClaimable = true
	k.setWinnersMeta(ctx, meta)
	k.SubLogger(types.SubSystemAdmin).Info("jackpot funded", "epoch", epochIndex, "amount", epoch.YieldSplitCfg.Jackpot.String())
	return nil
}
