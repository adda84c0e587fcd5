package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"

	"github.com/prizevault/chain/x/epochvault/fixedpoint"
	"github.com/prizevault/chain/x/epochvault/pda"
	"github.com/prizevault/chain/x/epochvault/types"
	"github.com/prizevault/chain/x/epochvault/yieldsplit"
)

// DrainToInvestor implements the Running -> Yielding half shared by both
// YieldWithdrawByInvestor (manual investor) and FranciumInvest (automated
// investor): the entire deposit vault balance moves to the investor
// authority and is handed to the gateway's Invest (spec §4.7).
func (k Keeper) DrainToInvestor(ctx context.Context, ticketsInfo types.TicketsInfo) (types.Epoch, error) {
	latest := k.GetLatestEpoch(ctx)
	epoch, ok := k.GetEpoch(ctx, latest.Index)
	if !ok {
		return types.Epoch{}, sdkerrors.Wrap(types.ErrInvalidEpochStatus, "no active epoch")
	}

	amount := k.VaultBalance(ctx, pda.RoleDeposit)
	investorAuthority := pda.InvestorAuthority(types.ModuleName)
	if err := k.vaultToUser(ctx, pda.RoleDeposit, investorAuthority, amount, "epoch yield withdraw"); err != nil {
		return types.Epoch{}, err
	}

	totalInvested, err := k.investor.Invest(ctx, epoch.Index, amount)
	if err != nil {
		return types.Epoch{}, wrapInvestorError(err)
	}

	epoch.TotalInvested = &totalInvested
	epoch.TicketsInfo = &ticketsInfo
	epoch, err = k.transitionEpoch(ctx, epoch, types.EpochStatusYielding)
	if err != nil {
		return types.Epoch{}, err
	}
	k.SubLogger(types.SubSystemInvestor).Info("drained deposit vault to investor",
		"epoch", epoch.Index, "total_invested", totalInvested.String())
	return epoch, nil
}

// YieldDepositByInvestor implements the manual-investor exit: the operator
// declares return_amount directly rather than it being recovered from a
// gateway query (spec §4.3, §4.7).
func (k Keeper) YieldDepositByInvestor(ctx context.Context, returnAmount fixedpoint.FPUSDC) (types.Epoch, error) {
	investorAuthority := pda.InvestorAuthority(types.ModuleName)
	if err := k.userToVault(ctx, investorAuthority, pda.RoleDeposit, returnAmount, "epoch yield deposit"); err != nil {
		return types.Epoch{}, err
	}
	return k.applyYieldSplit(ctx, returnAmount)
}

// FranciumWithdraw implements the automated-investor exit: the gateway
// itself reports the net USDC recovered from unstaking and withdrawing.
func (k Keeper) FranciumWithdraw(ctx context.Context) (types.Epoch, error) {
	latest := k.GetLatestEpoch(ctx)
	returnAmount, err := k.investor.Withdraw(ctx, latest.Index)
	if err != nil {
		return types.Epoch{}, wrapInvestorError(err)
	}
	investorAuthority := pda.InvestorAuthority(types.ModuleName)
	if err := k.userToVault(ctx, investorAuthority, pda.RoleDeposit, returnAmount, "epoch francium withdraw"); err != nil {
		return types.Epoch{}, err
	}
	return k.applyYieldSplit(ctx, returnAmount)
}

// liquidityWithdrawer is satisfied by AutomatedGateway for the deprecated
// WithdrawFromLendingPool2 path (spec §9). ManualGateway doesn't implement
// it; FranciumWithdrawLiquidity fails cleanly against that backend instead
// of needing a second Gateway method every implementation must carry.
type liquidityWithdrawer interface {
	WithdrawByLiquidity(ctx context.Context, epochIndex uint64, liquidity fixedpoint.FPUSDC) (fixedpoint.FPUSDC, error)
}

// FranciumWithdrawLiquidity is the deprecated WithdrawFromLendingPool2
// variant: the caller sizes the unwind in underlying liquidity rather than
// shares (spec §9).
//
// Deprecated: prefer FranciumWithdraw.
func (k Keeper) FranciumWithdrawLiquidity(ctx context.Context, liquidity fixedpoint.FPUSDC) (types.Epoch, error) {
	lw, ok := k.investor.(liquidityWithdrawer)
	if !ok {
		return types.Epoch{}, sdkerrors.Wrap(types.ErrInvalidArgument, "investor gateway does not support liquidity-sized withdrawal")
	}
	latest := k.GetLatestEpoch(ctx)
	returnAmount, err := lw.WithdrawByLiquidity(ctx, latest.Index, liquidity)
	if err != nil {
		return types.Epoch{}, wrapInvestorError(err)
	}
	investorAuthority := pda.InvestorAuthority(types.ModuleName)
	if err := k.userToVault(ctx, investorAuthority, pda.RoleDeposit, returnAmount, "epoch francium withdraw liquidity"); err != nil {
		return types.Epoch{}, err
	}
	return k.applyYieldSplit(ctx, returnAmount)
}

// applyYieldSplit runs yieldsplit.Split against the epoch's frozen config,
// moves the realized shares out of the deposit vault into insurance,
// treasury and the two prize vaults, rebases the cumulative return rate,
// and advances the epoch machine to Finalising (draw enabled) or straight
// to Ended (spec §4.5).
func (k Keeper) applyYieldSplit(ctx context.Context, returnAmount fixedpoint.FPUSDC) (types.Epoch, error) {
	latest := k.GetLatestEpoch(ctx)
	epoch, ok := k.GetEpoch(ctx, latest.Index)
	if !ok || epoch.TotalInvested == nil {
		return types.Epoch{}, sdkerrors.Wrap(types.ErrInvalidEpochStatus, "epoch has no recorded total_invested")
	}

	result, err := yieldsplit.Split(epoch.YieldSplitCfg, *epoch.TotalInvested, returnAmount,
		latest.CumulativeReturnRate, latest.PendingFunds.Tier2Prize, latest.PendingFunds.Tier3Prize)
	if err != nil {
		return types.Epoch{}, sdkerrors.Wrap(types.ErrNumericalOverflow, err.Error())
	}

	if err := k.moveBetweenVaults(ctx, pda.RoleDeposit, pda.RoleInsurance, result.Insurance, "yield split insurance"); err != nil {
		return types.Epoch{}, err
	}
	if err := k.moveBetweenVaults(ctx, pda.RoleDeposit, pda.RoleTreasury, result.Treasury, "yield split treasury"); err != nil {
		return types.Epoch{}, err
	}
	if err := k.moveBetweenVaults(ctx, pda.RoleDeposit, pda.RolePrizeTier2, result.Tier2, "yield split tier2"); err != nil {
		return types.Epoch{}, err
	}
	if err := k.moveBetweenVaults(ctx, pda.RoleDeposit, pda.RolePrizeTier3, result.Tier3, "yield split tier3"); err != nil {
		return types.Epoch{}, err
	}

	epochReturns := types.Returns{
		Total:       returnAmount,
		Insurance:   result.Insurance,
		Treasury:    result.Treasury,
		Tier2Prize:  result.Tier2,
		Tier3Prize:  result.Tier3,
		DepositBack: result.DepositBack,
	}
	epoch.EpochReturns = &epochReturns
	drawEnabled := result.DrawEnabled
	epoch.DrawEnabled = &drawEnabled

	latest.CumulativeReturnRate = result.NewCumulativeReturnRate
	latest.PendingFunds.Tier2Prize = fixedpoint.ZeroUSDC()
	latest.PendingFunds.Tier3Prize = fixedpoint.ZeroUSDC()
	k.setLatestEpoch(ctx, latest)

	next := types.EpochStatusFinalising
	if result.AdvanceToEnded || !result.DrawEnabled {
		next = types.EpochStatusEnded
	}
	epoch, err = k.transitionEpoch(ctx, epoch, next)
	if err != nil {
		return types.Epoch{}, err
	}

	k.SubLogger(types.SubSystemYieldSplit).Info("yield split applied",
		"epoch", epoch.Index, "return_amount", returnAmount.String(), "draw_enabled", result.DrawEnabled)
	return epoch, nil
}

func wrapInvestorError(err error) error {
	return sdkerrors.Wrap(types.ErrFranciumLendingProtocol, err.Error())
}
