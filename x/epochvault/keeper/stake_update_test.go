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

func fundOwner(t *testing.T, f keepertest.EpochVaultFixture, owner sdk.AccAddress, usdc int64) {
	t.Helper()
	f.Bank.FundAccount(owner.String(), sdk.NewCoins(sdk.NewInt64Coin("uusdc", usdc)))
}

func TestRequestDepositEscrowsIntoPendingVault(t *testing.T) {
	f := keepertest.EpochVaultKeeper(t)
	mustInit(t, f)
	_, err := f.Keeper.CreateEpoch(f.Ctx, scenario1Config(t), 100, 200)
	require.NoError(t, err)

	owner := sample.AccAddress()
	fundOwner(t, f, owner, 500_000000)

	amount, err := fixedpoint.ParseSigned("500")
	require.NoError(t, err)
	require.NoError(t, f.Keeper.RequestStakeUpdate(f.Ctx, owner, amount))

	require.Equal(t, int64(500_000000), f.Bank.RawBalance(f.Keeper.VaultAddress(pda.RolePendingDeposit).String(), "uusdc"))
}

func TestRequestStakeUpdateRejectsSecondOutstandingRequest(t *testing.T) {
	f := keepertest.EpochVaultKeeper(t)
	mustInit(t, f)
	_, err := f.Keeper.CreateEpoch(f.Ctx, scenario1Config(t), 100, 200)
	require.NoError(t, err)

	owner := sample.AccAddress()
	fundOwner(t, f, owner, 1_000_000000)
	amount, err := fixedpoint.ParseSigned("100")
	require.NoError(t, err)
	require.NoError(t, f.Keeper.RequestStakeUpdate(f.Ctx, owner, amount))

	err = f.Keeper.RequestStakeUpdate(f.Ctx, owner, amount)
	require.ErrorIs(t, err, types.ErrStakeUpdateRequestExists)
}

func TestDepositRequiresApprovalBeforeCompletion(t *testing.T) {
	f := keepertest.EpochVaultKeeper(t)
	mustInit(t, f)
	_, err := f.Keeper.CreateEpoch(f.Ctx, scenario1Config(t), 100, 200)
	require.NoError(t, err)

	owner := sample.AccAddress()
	fundOwner(t, f, owner, 100_000000)
	amount, err := fixedpoint.ParseSigned("100")
	require.NoError(t, err)
	require.NoError(t, f.Keeper.RequestStakeUpdate(f.Ctx, owner, amount))

	err = f.Keeper.CompleteStakeUpdate(f.Ctx, owner)
	require.ErrorIs(t, err, types.ErrInvalidStakeUpdateState)

	require.NoError(t, f.Keeper.ApproveStakeUpdate(f.Ctx, owner))
	require.NoError(t, f.Keeper.CompleteStakeUpdate(f.Ctx, owner))

	stake := f.Keeper.GetStake(f.Ctx, owner)
	got, err := stake.Balance.GetAmount(f.Keeper.GetLatestEpoch(f.Ctx).CumulativeReturnRate)
	require.NoError(t, err)
	want, err := fixedpoint.ParseInternal("100")
	require.NoError(t, err)
	require.True(t, got.Equal(want))
}

func TestWithdrawSkipsApprovalAndGatesOnRunningEpoch(t *testing.T) {
	f := keepertest.EpochVaultKeeper(t)
	mustInit(t, f)
	_, err := f.Keeper.CreateEpoch(f.Ctx, scenario1Config(t), 100, 200)
	require.NoError(t, err)

	owner := sample.AccAddress()
	fundOwner(t, f, owner, 200_000000)
	deposit, err := fixedpoint.ParseSigned("200")
	require.NoError(t, err)
	require.NoError(t, f.Keeper.RequestStakeUpdate(f.Ctx, owner, deposit))
	require.NoError(t, f.Keeper.ApproveStakeUpdate(f.Ctx, owner))
	require.NoError(t, f.Keeper.CompleteStakeUpdate(f.Ctx, owner))

	withdraw, err := fixedpoint.ParseSigned("-50")
	require.NoError(t, err)
	require.NoError(t, f.Keeper.RequestStakeUpdate(f.Ctx, owner, withdraw))
	require.NoError(t, f.Keeper.CompleteStakeUpdate(f.Ctx, owner))

	require.Equal(t, int64(50_000000), f.Bank.RawBalance(owner.String(), "uusdc"))
}

func TestCancelStakeUpdateRefundsPendingDeposit(t *testing.T) {
	f := keepertest.EpochVaultKeeper(t)
	mustInit(t, f)
	_, err := f.Keeper.CreateEpoch(f.Ctx, scenario1Config(t), 100, 200)
	require.NoError(t, err)

	owner := sample.AccAddress()
	fundOwner(t, f, owner, 300_000000)
	amount, err := fixedpoint.ParseSigned("300")
	require.NoError(t, err)
	require.NoError(t, f.Keeper.RequestStakeUpdate(f.Ctx, owner, amount))

	wrongAmount, err := fixedpoint.ParseSigned("299")
	require.NoError(t, err)
	err = f.Keeper.CancelStakeUpdate(f.Ctx, owner, wrongAmount)
	require.ErrorIs(t, err, types.ErrStakeUpdateAmountMismatch)

	require.NoError(t, f.Keeper.CancelStakeUpdate(f.Ctx, owner, amount))
	require.Equal(t, int64(300_000000), f.Bank.RawBalance(owner.String(), "uusdc"))
}

func TestRequestWithdrawRejectsInsufficientBalance(t *testing.T) {
	f := keepertest.EpochVaultKeeper(t)
	mustInit(t, f)
	_, err := f.Keeper.CreateEpoch(f.Ctx, scenario1Config(t), 100, 200)
	require.NoError(t, err)

	owner := sample.AccAddress()
	withdraw, err := fixedpoint.ParseSigned("-10")
	require.NoError(t, err)

	err = f.Keeper.RequestStakeUpdate(f.Ctx, owner, withdraw)
	require.ErrorIs(t, err, types.ErrInsufficientBalance)
}

// TestWithdrawClampsToAvailableBalanceAfterALoss covers the case where a
// withdraw request was valid when filed but the epoch it completes in has
// since taken a loss, leaving less behind than was requested. Completion
// pays out min(request_amount, current_balance) rather than failing.
func TestWithdrawClampsToAvailableBalanceAfterALoss(t *testing.T) {
	f := keepertest.EpochVaultKeeper(t)
	mustInit(t, f)
	_, err := f.Keeper.CreateEpoch(f.Ctx, scenario1Config(t), 100, 200)
	require.NoError(t, err)

	owner := sample.AccAddress()
	fundOwner(t, f, owner, 1_000_000000)
	deposit, err := fixedpoint.ParseSigned("1000")
	require.NoError(t, err)
	require.NoError(t, f.Keeper.RequestStakeUpdate(f.Ctx, owner, deposit))
	require.NoError(t, f.Keeper.ApproveStakeUpdate(f.Ctx, owner))
	require.NoError(t, f.Keeper.CompleteStakeUpdate(f.Ctx, owner))

	withdraw, err := fixedpoint.ParseSigned("-1000")
	require.NoError(t, err)
	require.NoError(t, f.Keeper.RequestStakeUpdate(f.Ctx, owner, withdraw))

	_, err = f.Keeper.DrainToInvestor(f.Ctx, types.TicketsInfo{NumTickets: 1})
	require.NoError(t, err)

	investorAddr := pda.InvestorAuthority(types.ModuleName)
	returnAmount, err := fixedpoint.ParseUSDC("500")
	require.NoError(t, err)
	f.Bank.FundAccount(investorAddr.String(), sdk.NewCoins(sdk.NewInt64Coin("uusdc", int64(returnAmount.ToUSDC()))))

	endedEpoch, err := f.Keeper.YieldDepositByInvestor(f.Ctx, returnAmount)
	require.NoError(t, err)
	require.Equal(t, types.EpochStatusEnded, endedEpoch.Status)

	_, err = f.Keeper.CreateEpoch(f.Ctx, scenario1Config(t), 300, 400)
	require.NoError(t, err)

	require.NoError(t, f.Keeper.CompleteStakeUpdate(f.Ctx, owner))

	require.Equal(t, int64(500_000000), f.Bank.RawBalance(owner.String(), "uusdc"))

	stake := f.Keeper.GetStake(f.Ctx, owner)
	got, err := stake.Balance.GetAmount(f.Keeper.GetLatestEpoch(f.Ctx).CumulativeReturnRate)
	require.NoError(t, err)
	require.True(t, got.IsZero())
}
