package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// VaultBalance returns the on-chain coin balance held at a vault's
// derived address. x/epochvault uses this to reconcile the sum of
// every stake's floating balance plus the pending tier prizes against
// what the deposit, insurance and prize vaults actually hold.
func (k Keeper) VaultBalance(ctx context.Context, vaultAddr sdk.AccAddress, denom string) sdk.Coin {
	return k.bankKeeper.GetBalance(ctx, vaultAddr, denom)
}

// CheckInvariant reports whether the coins actually held at vaultAddr
// match the expected amount a caller has derived from stake and pending
// prize accounting. A mismatch means either a missed bank transfer or
// an accounting bug in the floating-balance rescale.
func (k Keeper) CheckInvariant(ctx context.Context, vaultAddr sdk.AccAddress, denom string, expected sdk.Coin) bool {
	actual := k.VaultBalance(ctx, vaultAddr, denom)
	return actual.Equal(expected)
}
