package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/prizevault/chain/x/epochvault/types"
)

// Init provisions the module's authority keys. Required signer: the
// address the caller names as the incoming super admin, trusting that
// whoever can get this message included is the one standing up the
// module (spec §4.3 `Init` has no prior SuperAdmin to check against).
func (k msgServer) Init(ctx context.Context, msg *types.MsgInit) error {
	return k.Keeper.Init(ctx, msg.SuperAdmin, msg.Admin, msg.Investor, msg.VrfProgram)
}

// CreateEpoch opens a new epoch. Required signer: Admin.
func (k msgServer) CreateEpoch(ctx context.Context, msg *types.MsgCreateEpoch) (types.Epoch, error) {
	latest := k.Keeper.GetLatestEpoch(ctx)
	if err := requireSigner(msg.Admin, latest.Keys.Admin); err != nil {
		return types.Epoch{}, err
	}
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return k.Keeper.CreateEpoch(ctx, msg.YieldSplitCfg, sdkCtx.BlockTime().Unix(), msg.ExpectedEndAt)
}

// WithdrawVault lets the admin pull funds out of Treasury or Insurance,
// to the admin's own address. Required signer: Admin.
func (k msgServer) WithdrawVault(ctx context.Context, msg *types.MsgWithdrawVault) error {
	latest := k.Keeper.GetLatestEpoch(ctx)
	if err := requireSigner(msg.Admin, latest.Keys.Admin); err != nil {
		return err
	}
	return k.Keeper.WithdrawVault(ctx, msg.Admin, msg.Vault, msg.Amount)
}

// RotateKey replaces one of LatestEpoch's three rotatable keys. Required
// signer: SuperAdmin.
func (k msgServer) RotateKey(ctx context.Context, msg *types.MsgRotateKey) error {
	latest := k.Keeper.GetLatestEpoch(ctx)
	if err := requireSigner(msg.SuperAdmin, latest.Keys.SuperAdmin); err != nil {
		return err
	}
	return k.Keeper.RotateKey(ctx, msg.Target, msg.NewKey)
}

// FundJackpot transfers an epoch's tier-1 prize into the tier-1 vault.
// Any funder may call it (spec §4.8 — no signer restriction beyond
// having the funds).
func (k msgServer) FundJackpot(ctx context.Context, msg *types.MsgFundJackpot) error {
	return k.Keeper.FundJackpot(ctx, msg.Funder, msg.EpochIndex)
}
