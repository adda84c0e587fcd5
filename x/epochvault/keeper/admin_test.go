package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/prizevault/chain/testutil/keeper"
	"github.com/prizevault/chain/testutil/sample"
	"github.com/prizevault/chain/x/epochvault/fixedpoint"
	"github.com/prizevault/chain/x/epochvault/pda"
	"github.com/prizevault/chain/x/epochvault/types"
)

func TestWithdrawVaultMovesFundsOutOfTreasuryOrInsurance(t *testing.T) {
	f := keepertest.EpochVaultKeeper(t)
	f.Bank.FundAccount(f.Keeper.VaultAddress(pda.RoleTreasury).String(), sdk.NewCoins(sdk.NewInt64Coin("uusdc", 500_000000)))

	to := sample.AccAddress()
	amount, err := fixedpoint.ParseUSDC("500")
	require.NoError(t, err)

	require.NoError(t, f.Keeper.WithdrawVault(f.Ctx, to, types.WithdrawableVaultTreasury, amount))
	require.Equal(t, int64(500_000000), f.Bank.RawBalance(to.String(), "uusdc"))
	require.Equal(t, int64(0), f.Bank.RawBalance(f.Keeper.VaultAddress(pda.RoleTreasury).String(), "uusdc"))
}

func TestWithdrawVaultRejectsUnknownRole(t *testing.T) {
	f := keepertest.EpochVaultKeeper(t)
	to := sample.AccAddress()
	amount, err := fixedpoint.ParseUSDC("1")
	require.NoError(t, err)

	err = f.Keeper.WithdrawVault(f.Ctx, to, types.VaultRole(99), amount)
	require.ErrorIs(t, err, types.ErrInvalidArgument)
}

func TestRotateKeyReplacesEachTarget(t *testing.T) {
	f := keepertest.EpochVaultKeeper(t)
	mustInit(t, f)

	newAdmin := sample.AccAddress()
	require.NoError(t, f.Keeper.RotateKey(f.Ctx, types.RoleAdmin, newAdmin))
	require.Equal(t, newAdmin, f.Keeper.GetLatestEpoch(f.Ctx).Keys.Admin)

	newSuperAdmin := sample.AccAddress()
	require.NoError(t, f.Keeper.RotateKey(f.Ctx, types.RoleSuperAdmin, newSuperAdmin))
	require.Equal(t, newSuperAdmin, f.Keeper.GetLatestEpoch(f.Ctx).Keys.SuperAdmin)

	newInvestor := sample.AccAddress()
	require.NoError(t, f.Keeper.RotateKey(f.Ctx, types.RoleInvestor, newInvestor))
	require.Equal(t, newInvestor, f.Keeper.GetLatestEpoch(f.Ctx).Keys.Investor)
}

func TestRotateKeyRejectsUnknownTarget(t *testing.T) {
	f := keepertest.EpochVaultKeeper(t)
	mustInit(t, f)

	err := f.Keeper.RotateKey(f.Ctx, types.Role(99), sample.AccAddress())
	require.ErrorIs(t, err, types.ErrInvalidArgument)
}
