package investor

import (
	"context"

	"cosmossdk.io/errors"

	"github.com/prizevault/chain/x/epochvault/fixedpoint"
)

var (
	ErrAlreadyInvested = errors.Register("investor", 2, "epoch already has an outstanding francium position")
	ErrNothingInvested = errors.Register("investor", 3, "no outstanding francium position for epoch")
	ErrLendingProtocol = errors.Register("investor", 4, "francium lending error")
	ErrFarmingProtocol = errors.Register("investor", 5, "francium farming error")
)

// LendingPool is the narrow slice of the external Francium lending/farming
// protocol the automated investor drives: deposit-and-stake liquidity,
// later unstake-and-withdraw it. The core treats its share/farm-reward
// token accounting as opaque, per spec §4.7.
type LendingPool interface {
	// DepositAndStake deposits amount of the underlying token and stakes the
	// resulting share tokens in the farming pool, returning the share
	// amount credited.
	DepositAndStake(ctx context.Context, amount fixedpoint.FPUSDC) (shares fixedpoint.FPUSDC, err error)
	// UnstakeAndWithdrawShares unwinds a farming position sized in shares
	// and returns the underlying token amount recovered.
	UnstakeAndWithdrawShares(ctx context.Context, shares fixedpoint.FPUSDC) (fixedpoint.FPUSDC, error)
	// UnstakeAndWithdrawLiquidity is the deprecated counterpart that sizes
	// the unwind in underlying-liquidity terms instead of shares (spec §9,
	// "WithdrawFromLendingPool2").
	UnstakeAndWithdrawLiquidity(ctx context.Context, liquidity fixedpoint.FPUSDC) (fixedpoint.FPUSDC, error)
}

type position struct {
	totalInvested fixedpoint.FPUSDC
	shares        fixedpoint.FPUSDC
}

// AutomatedGateway is the Francium-style automated investor: it invests
// through a LendingPool at the investor authority's ATA and reports back
// whatever the pool returns.
type AutomatedGateway struct {
	pool      LendingPool
	positions map[uint64]position
}

func NewAutomatedGateway(pool LendingPool) *AutomatedGateway {
	return &AutomatedGateway{pool: pool, positions: make(map[uint64]position)}
}

// Invest implements FranciumInvest: the deposit vault balance moves to the
// investor-owned ATA and is deposited-and-staked.
func (g *AutomatedGateway) Invest(ctx context.Context, epochIndex uint64, amount fixedpoint.FPUSDC) (fixedpoint.FPUSDC, error) {
	if _, exists := g.positions[epochIndex]; exists {
		return fixedpoint.FPUSDC{}, ErrAlreadyInvested
	}
	shares, err := g.pool.DepositAndStake(ctx, amount)
	if err != nil {
		return fixedpoint.FPUSDC{}, errors.Wrap(ErrLendingProtocol, err.Error())
	}
	g.positions[epochIndex] = position{totalInvested: amount, shares: shares}
	return amount, nil
}

// Withdraw implements FranciumWithdraw: unstake and withdraw the epoch's
// position, sized in shares (the non-deprecated path).
func (g *AutomatedGateway) Withdraw(ctx context.Context, epochIndex uint64) (fixedpoint.FPUSDC, error) {
	pos, ok := g.positions[epochIndex]
	if !ok {
		return fixedpoint.FPUSDC{}, ErrNothingInvested
	}
	returned, err := g.pool.UnstakeAndWithdrawShares(ctx, pos.shares)
	if err != nil {
		return fixedpoint.FPUSDC{}, errors.Wrap(ErrFarmingProtocol, err.Error())
	}
	delete(g.positions, epochIndex)
	return returned, nil
}

// WithdrawByLiquidity is the deprecated WithdrawFromLendingPool2 variant:
// it sizes the unwind in underlying-liquidity terms rather than shares.
// Kept for wire compatibility per spec §9; prefer Withdraw.
//
// Deprecated: use Withdraw. The liquidity-amount sizing predates the
// share-amount path and is retained only so existing callers keep working.
func (g *AutomatedGateway) WithdrawByLiquidity(ctx context.Context, epochIndex uint64, liquidity fixedpoint.FPUSDC) (fixedpoint.FPUSDC, error) {
	_, ok := g.positions[epochIndex]
	if !ok {
		return fixedpoint.FPUSDC{}, ErrNothingInvested
	}
	returned, err := g.pool.UnstakeAndWithdrawLiquidity(ctx, liquidity)
	if err != nil {
		return fixedpoint.FPUSDC{}, errors.Wrap(ErrFarmingProtocol, err.Error())
	}
	delete(g.positions, epochIndex)
	return returned, nil
}
