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
	"github.com/prizevault/chain/x/epochvault/vrf"
)

// runToFinalising drives a fresh epoch from Running through a profitable
// yield split, landing it in Finalising with draw_enabled=true.
func runToFinalising(t *testing.T, f keepertest.EpochVaultFixture) uint64 {
	t.Helper()
	epoch := setupRunningEpochWithDeposit(t, f, 1_000_000000)
	_, err := f.Keeper.DrainToInvestor(f.Ctx, types.TicketsInfo{NumTickets: 1})
	require.NoError(t, err)

	investorAuthority := pda.InvestorAuthority(types.ModuleName)
	f.Bank.FundAccount(investorAuthority.String(), sdk.NewCoins(sdk.NewInt64Coin("uusdc", 1_100_000000)))
	result, err := f.Keeper.YieldDepositByInvestor(f.Ctx, mustUSDC(t, "1100"))
	require.NoError(t, err)
	require.Equal(t, types.EpochStatusFinalising, result.Status)
	return epoch.Index
}

func TestWinnersPipelineSinglePageHappyPath(t *testing.T) {
	f := keepertest.EpochVaultKeeper(t)
	epochIndex := runToFinalising(t, f)

	f.VRF.Set(vrf.Request{
		EpochIndex:  epochIndex,
		Status:      vrf.StatusSuccess,
		Combination: &vrf.WinningCombination{1, 2, 3, 4, 5, 6},
	})

	meta, err := f.Keeper.CreateEpochWinnersMeta(f.Ctx, epochIndex, 1, 2, 1, 1, 5, 2)
	require.NoError(t, err)
	require.Equal(t, uint32(1), meta.TotalNumPages)
	require.False(t, meta.JackpotClaimable)

	winnerA, winnerB := sample.AccAddress(), sample.AccAddress()
	entries := []types.Winner{
		{Index: 0, Address: winnerA, Tier: types.TierOne, NumWinningTickets: 1},
		{Index: 1, Address: winnerA, Tier: types.TierTwo, NumWinningTickets: 3},
		{Index: 2, Address: winnerB, Tier: types.TierTwo, NumWinningTickets: 2},
		{Index: 3, Address: winnerB, Tier: types.TierThree, NumWinningTickets: 2},
	}
	meta, err = f.Keeper.PublishWinners(f.Ctx, epochIndex, 0, entries)
	require.NoError(t, err)
	require.Equal(t, types.WinnersMetaStatusCompleted, meta.Status)
	require.False(t, meta.JackpotClaimable)

	latest := f.Keeper.GetLatestEpoch(f.Ctx)
	require.Equal(t, types.EpochStatusEnded, latest.Status)
}

func TestPublishWinnersRejectsOutOfSequencePage(t *testing.T) {
	f := keepertest.EpochVaultKeeper(t)
	epochIndex := runToFinalising(t, f)

	f.VRF.Set(vrf.Request{
		EpochIndex:  epochIndex,
		Status:      vrf.StatusSuccess,
		Combination: &vrf.WinningCombination{1, 2, 3, 4, 5, 6},
	})
	_, err := f.Keeper.CreateEpochWinnersMeta(f.Ctx, epochIndex, 0, 1, 0, 0, 4, 0)
	require.NoError(t, err)

	owner := sample.AccAddress()
	_, pubErr := f.Keeper.PublishWinners(f.Ctx, epochIndex, 1, []types.Winner{
		{Index: 0, Address: owner, Tier: types.TierTwo, NumWinningTickets: 4},
	})
	require.ErrorIs(t, pubErr, types.ErrPageIndexNotInSequence)
}

func TestCreateEpochWinnersMetaWithZeroWinnersEndsEpoch(t *testing.T) {
	f := keepertest.EpochVaultKeeper(t)
	epochIndex := runToFinalising(t, f)

	f.VRF.Set(vrf.Request{
		EpochIndex:  epochIndex,
		Status:      vrf.StatusSuccess,
		Combination: &vrf.WinningCombination{1, 2, 3, 4, 5, 6},
	})
	meta, err := f.Keeper.CreateEpochWinnersMeta(f.Ctx, epochIndex, 0, 0, 0, 0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, types.WinnersMetaStatusCompleted, meta.Status)

	latest := f.Keeper.GetLatestEpoch(f.Ctx)
	require.Equal(t, types.EpochStatusEnded, latest.Status)
	require.Equal(t, "30", latest.PendingFunds.Tier2Prize.String())
	require.Equal(t, "10", latest.PendingFunds.Tier3Prize.String())
}

// TestZeroWinnersCarriesPrizesAcrossEpochs covers spec scenario 5: a draw
// happens but produces no winners in any tier. The tier2/tier3 split must
// carry forward into the next epoch rather than vanish, and a second
// zero-winner epoch accumulates on top of the first (spec §3.3, §4.5 step
// 5).
func TestZeroWinnersCarriesPrizesAcrossEpochs(t *testing.T) {
	f := keepertest.EpochVaultKeeper(t)
	mustInit(t, f)

	cfg := scenario1Config(t)
	noTreasury, err := fixedpoint.ParseInternal("0")
	require.NoError(t, err)
	cfg.TreasuryRatio = noTreasury

	returnAmount := mustUSDC(t, "1120")
	runZeroWinnerEpoch := func() {
		epoch, err := f.Keeper.CreateEpoch(f.Ctx, cfg, 100, 200)
		require.NoError(t, err)

		owner := sample.AccAddress()
		f.Bank.FundAccount(owner.String(), sdk.NewCoins(sdk.NewInt64Coin("uusdc", 1_000_000000)))
		amount, err := fixedpoint.ParseSigned("1000")
		require.NoError(t, err)
		require.NoError(t, f.Keeper.RequestStakeUpdate(f.Ctx, owner, amount))
		require.NoError(t, f.Keeper.ApproveStakeUpdate(f.Ctx, owner))
		require.NoError(t, f.Keeper.CompleteStakeUpdate(f.Ctx, owner))

		_, err = f.Keeper.DrainToInvestor(f.Ctx, types.TicketsInfo{NumTickets: 1})
		require.NoError(t, err)

		investorAuthority := pda.InvestorAuthority(types.ModuleName)
		f.Bank.FundAccount(investorAuthority.String(), sdk.NewCoins(sdk.NewInt64Coin("uusdc", int64(returnAmount.ToUSDC()))))
		result, err := f.Keeper.YieldDepositByInvestor(f.Ctx, returnAmount)
		require.NoError(t, err)
		require.Equal(t, types.EpochStatusFinalising, result.Status)

		f.VRF.Set(vrf.Request{
			EpochIndex:  epoch.Index,
			Status:      vrf.StatusSuccess,
			Combination: &vrf.WinningCombination{1, 2, 3, 4, 5, 6},
		})
		meta, err := f.Keeper.CreateEpochWinnersMeta(f.Ctx, epoch.Index, 0, 0, 0, 0, 0, 0)
		require.NoError(t, err)
		require.Equal(t, types.WinnersMetaStatusCompleted, meta.Status)
	}

	runZeroWinnerEpoch()
	latest := f.Keeper.GetLatestEpoch(f.Ctx)
	require.Equal(t, "75", latest.PendingFunds.Tier2Prize.String())
	require.Equal(t, "25", latest.PendingFunds.Tier3Prize.String())

	runZeroWinnerEpoch()
	latest = f.Keeper.GetLatestEpoch(f.Ctx)
	require.Equal(t, "150", latest.PendingFunds.Tier2Prize.String())
	require.Equal(t, "50", latest.PendingFunds.Tier3Prize.String())
	require.Equal(t, "150", f.Keeper.VaultBalance(f.Ctx, pda.RolePrizeTier2).String())
	require.Equal(t, "50", f.Keeper.VaultBalance(f.Ctx, pda.RolePrizeTier3).String())
}
