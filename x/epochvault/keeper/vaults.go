package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/prizevault/chain/x/epochvault/fixedpoint"
	"github.com/prizevault/chain/x/epochvault/pda"
)

// Denom is the pool's quote token, fixed at scale 6 (spec §3.1).
const Denom = "uusdc"

func coinOf(amount fixedpoint.FPUSDC) sdk.Coin {
	return sdk.NewCoin(Denom, math.NewIntFromUint64(amount.ToUSDC()))
}

// moveBetweenVaults moves amount between two of the module's own vault
// sub-accounts. Each role has its own derived address (pda.VaultAddress),
// so this is a real bank transfer; the extra sub-account log entry
// records it under the role names, distinguishing "treasury got funded"
// from "tier2 got funded" without decoding addresses.
func (k Keeper) moveBetweenVaults(ctx context.Context, from, to pda.Role, amount fixedpoint.FPUSDC, memo string) error {
	if amount.IsZero() {
		return nil
	}
	fromAddr := k.VaultAddress(from)
	toAddr := k.VaultAddress(to)
	coin := sdk.NewCoins(coinOf(amount))
	if err := k.bankKeeper.SendCoins(ctx, fromAddr, toAddr, coin, memo); err != nil {
		return fmt.Errorf("moving %s from %s to %s: %w", amount, from, to, err)
	}
	k.bankKeeper.LogSubAccountTransaction(ctx, string(to), string(from), "vault", coinOf(amount), memo)
	return nil
}

// vaultToUser pays amount out of one of the module's vaults to a user's
// own address, e.g. a stake-withdraw payout or a prize claim.
func (k Keeper) vaultToUser(ctx context.Context, from pda.Role, to sdk.AccAddress, amount fixedpoint.FPUSDC, memo string) error {
	if amount.IsZero() {
		return nil
	}
	fromAddr := k.VaultAddress(from)
	coin := sdk.NewCoins(coinOf(amount))
	return k.bankKeeper.SendCoins(ctx, fromAddr, to, coin, memo)
}

// userToVault moves amount from a user's own address into one of the
// module's vaults, e.g. a stake-deposit request or funding the jackpot.
func (k Keeper) userToVault(ctx context.Context, from sdk.AccAddress, to pda.Role, amount fixedpoint.FPUSDC, memo string) error {
	if amount.IsZero() {
		return nil
	}
	toAddr := k.VaultAddress(to)
	coin := sdk.NewCoins(coinOf(amount))
	return k.bankKeeper.SendCoins(ctx, from, toAddr, coin, memo)
}

// VaultBalance returns the USDC balance currently held at a vault role's
// derived address.
func (k Keeper) VaultBalance(ctx context.Context, role pda.Role) fixedpoint.FPUSDC {
	coin := k.bankKeeper.GetBalance(ctx, k.VaultAddress(role), Denom)
	return fixedpoint.FromUSDC(coin.Amount.Uint64())
}
