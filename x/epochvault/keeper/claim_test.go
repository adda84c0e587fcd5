package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/prizevault/chain/testutil/keeper"
	"github.com/prizevault/chain/testutil/sample"
	"github.com/prizevault/chain/x/epochvault/pda"
	"github.com/prizevault/chain/x/epochvault/types"
	"github.com/prizevault/chain/x/epochvault/vrf"
)

func TestClaimWinningRequiresJackpotFundedFirst(t *testing.T) {
	f := keeper.EpochVaultKeeper(t)
	epochIndex := runToFinalising(t, f)

	f.VRF.Set(vrf.Request{
		EpochIndex:  epochIndex,
		Status:      vrf.StatusSuccess,
		Combination: &vrf.WinningCombination{1, 2, 3, 4, 5, 6},
	})
	_, err := f.Keeper.CreateEpochWinnersMeta(f.Ctx, epochIndex, 1, 0, 0, 1, 0, 0)
	require.NoError(t, err)

	winner := sample.AccAddress()
	_, err = f.Keeper.PublishWinners(f.Ctx, epochIndex, 0, []types.Winner{
		{Index: 0, Address: winner, Tier: types.TierOne, NumWinningTickets: 1},
	})
	require.NoError(t, err)

	err = f.Keeper.ClaimWinning(f.Ctx, winner, epochIndex, 0, 0, types.TierOne)
	require.ErrorIs(t, err, types.ErrJackpotNotClaimableYet)

	funder := sample.AccAddress()
	f.Bank.FundAccount(funder.String(), sdk.NewCoins(sdk.NewInt64Coin("uusdc", 100_000_000000)))
	require.NoError(t, f.Keeper.FundJackpot(f.Ctx, funder, epochIndex))

	require.NoError(t, f.Keeper.ClaimWinning(f.Ctx, winner, epochIndex, 0, 0, types.TierOne))

	stake := f.Keeper.GetStake(f.Ctx, winner)
	got, err := stake.Balance.GetAmount(f.Keeper.GetLatestEpoch(f.Ctx).CumulativeReturnRate)
	require.NoError(t, err)
	want := mustUSDC(t, "100000").ChangePrecision()
	require.True(t, got.Equal(want))

	require.Equal(t, int64(0), f.Bank.RawBalance(f.Keeper.VaultAddress(pda.RolePrizeTier1).String(), "uusdc"))

	err = f.Keeper.ClaimWinning(f.Ctx, winner, epochIndex, 0, 0, types.TierOne)
	require.ErrorIs(t, err, types.ErrPrizeAlreadyClaimed)
}

func TestFundJackpotIsNotIdempotent(t *testing.T) {
	f := keeper.EpochVaultKeeper(t)
	epochIndex := runToFinalising(t, f)

	f.VRF.Set(vrf.Request{
		EpochIndex:  epochIndex,
		Status:      vrf.StatusSuccess,
		Combination: &vrf.WinningCombination{1, 2, 3, 4, 5, 6},
	})
	_, err := f.Keeper.CreateEpochWinnersMeta(f.Ctx, epochIndex, 1, 0, 0, 1, 0, 0)
	require.NoError(t, err)

	funder := sample.AccAddress()
	f.Bank.FundAccount(funder.String(), sdk.NewCoins(sdk.NewInt64Coin("uusdc", 200_000_000000)))
	require.NoError(t, f.Keeper.FundJackpot(f.Ctx, funder, epochIndex))

	err = f.Keeper.FundJackpot(f.Ctx, funder, epochIndex)
	require.ErrorIs(t, err, types.ErrJackpotAlreadyClaimable)
}
