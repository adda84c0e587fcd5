package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/prizevault/chain/testutil/keeper"
)

func TestSendCoinsMovesBalance(t *testing.T) {
	k, ctx, bank := keepertest.BookkeeperKeeperWithBank(t)

	alice := sdk.AccAddress("alice_______________")
	bob := sdk.AccAddress("bob_________________")
	bank.FundAccount(alice.String(), sdk.NewCoins(sdk.NewInt64Coin("uusdc", 1000)))

	err := k.SendCoins(ctx, alice, bob, sdk.NewCoins(sdk.NewInt64Coin("uusdc", 400)), "test transfer")
	require.NoError(t, err)

	require.Equal(t, int64(600), k.GetBalance(ctx, alice, "uusdc").Amount.Int64())
	require.Equal(t, int64(400), k.GetBalance(ctx, bob, "uusdc").Amount.Int64())
}

func TestSendCoinsInsufficientBalance(t *testing.T) {
	k, ctx := keepertest.BookkeeperKeeper(t)

	alice := sdk.AccAddress("alice_______________")
	bob := sdk.AccAddress("bob_________________")

	err := k.SendCoins(ctx, alice, bob, sdk.NewCoins(sdk.NewInt64Coin("uusdc", 1)), "test transfer")
	require.Error(t, err)
}

func TestMintAndBurnCoins(t *testing.T) {
	k, ctx, bank := keepertest.BookkeeperKeeperWithBank(t)

	require.NoError(t, k.MintCoins(ctx, "epochvault", sdk.NewCoins(sdk.NewInt64Coin("uusdc", 500)), "fund vault"))
	require.NoError(t, k.BurnCoins(ctx, "epochvault", sdk.NewCoins(sdk.NewInt64Coin("uusdc", 200)), "burn excess"))
	require.Equal(t, int64(300), bank.RawBalance("epochvault", "uusdc"))
}

func TestCheckInvariant(t *testing.T) {
	k, ctx, bank := keepertest.BookkeeperKeeperWithBank(t)

	treasury := sdk.AccAddress("treasury____________")
	bank.FundAccount(treasury.String(), sdk.NewCoins(sdk.NewInt64Coin("uusdc", 42)))

	require.True(t, k.CheckInvariant(ctx, treasury, "uusdc", sdk.NewInt64Coin("uusdc", 42)))
	require.False(t, k.CheckInvariant(ctx, treasury, "uusdc", sdk.NewInt64Coin("uusdc", 43)))
}
