package keeper

import (
	"context"

	"github.com/prizevault/chain/x/epochvault/types"
)

// YieldWithdrawByInvestor drains the deposit vault to the manual investor.
// Required signer: Investor.
func (k msgServer) YieldWithdrawByInvestor(ctx context.Context, msg *types.MsgYieldWithdrawByInvestor) (types.Epoch, error) {
	latest := k.Keeper.GetLatestEpoch(ctx)
	if err := requireSigner(msg.Investor, latest.Keys.Investor); err != nil {
		return types.Epoch{}, err
	}
	return k.Keeper.DrainToInvestor(ctx, msg.TicketsInfo)
}

// YieldDepositByInvestor reports the manual investor's return and runs
// the yield split. Required signer: Investor.
func (k msgServer) YieldDepositByInvestor(ctx context.Context, msg *types.MsgYieldDepositByInvestor) (types.Epoch, error) {
	latest := k.Keeper.GetLatestEpoch(ctx)
	if err := requireSigner(msg.Investor, latest.Keys.Investor); err != nil {
		return types.Epoch{}, err
	}
	return k.Keeper.YieldDepositByInvestor(ctx, msg.ReturnAmount)
}

// FranciumInvest drains the deposit vault into the automated investor's
// position. Required signer: Investor. Shares DrainToInvestor with the
// manual path (spec §4.7).
func (k msgServer) FranciumInvest(ctx context.Context, msg *types.MsgFranciumInvest) (types.Epoch, error) {
	latest := k.Keeper.GetLatestEpoch(ctx)
	if err := requireSigner(msg.Investor, latest.Keys.Investor); err != nil {
		return types.Epoch{}, err
	}
	return k.Keeper.DrainToInvestor(ctx, msg.TicketsInfo)
}

// FranciumWithdraw unstakes and withdraws the automated investor's
// position, sized in shares. Required signer: Investor.
func (k msgServer) FranciumWithdraw(ctx context.Context, msg *types.MsgFranciumWithdraw) (types.Epoch, error) {
	latest := k.Keeper.GetLatestEpoch(ctx)
	if err := requireSigner(msg.Investor, latest.Keys.Investor); err != nil {
		return types.Epoch{}, err
	}
	return k.Keeper.FranciumWithdraw(ctx)
}

// FranciumWithdrawLiquidity is the deprecated WithdrawFromLendingPool2
// variant, sized in underlying liquidity. Required signer: Investor.
//
// Deprecated: prefer FranciumWithdraw.
func (k msgServer) FranciumWithdrawLiquidity(ctx context.Context, msg *types.MsgFranciumWithdrawLiquidity) (types.Epoch, error) {
	latest := k.Keeper.GetLatestEpoch(ctx)
	if err := requireSigner(msg.Investor, latest.Keys.Investor); err != nil {
		return types.Epoch{}, err
	}
	return k.Keeper.FranciumWithdrawLiquidity(ctx, msg.Liquidity)
}
