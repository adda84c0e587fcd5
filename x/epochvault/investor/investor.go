// Package investor implements the two InvestorGateway backends spec §4.7
// describes: a manual investor that simply records a declared return, and
// an automated, Francium-style investor that talks to an external lending
// protocol. Both sit behind the same Gateway interface so the keeper code
// that calls into them never branches on which one is configured.
package investor

import (
	"context"

	"cosmossdk.io/errors"

	"github.com/prizevault/chain/x/epochvault/fixedpoint"
)

var ErrReturnNotDeclared = errors.Register("investor", 1, "return amount not declared for epoch")

// Gateway is the epoch-entry / epoch-exit contract every investor
// implementation satisfies. "Entry" moves the deposit vault balance out to
// the investor; "exit" reports back what came in, to be handed to
// yieldsplit.Split. The core never inspects what the investor does in
// between — share tokens, farm rewards, and similar intermediaries stay
// opaque (spec §4.7).
type Gateway interface {
	// Invest moves amount out to the investor and returns the recorded
	// total_invested for this epoch.
	Invest(ctx context.Context, epochIndex uint64, amount fixedpoint.FPUSDC) (totalInvested fixedpoint.FPUSDC, err error)
	// Withdraw recovers funds from the investor and returns the net USDC
	// amount to be passed as return_amount to yieldsplit.Split.
	Withdraw(ctx context.Context, epochIndex uint64) (returnAmount fixedpoint.FPUSDC, err error)
}

// ManualGateway implements the "manual investor" path: a human operator
// moves funds off-chain and later declares what came back. The gateway's
// job is bookkeeping only — it never talks to a counterparty itself.
type ManualGateway struct {
	invested map[uint64]fixedpoint.FPUSDC
	returns  map[uint64]fixedpoint.FPUSDC
}

func NewManualGateway() *ManualGateway {
	return &ManualGateway{
		invested: make(map[uint64]fixedpoint.FPUSDC),
		returns:  make(map[uint64]fixedpoint.FPUSDC),
	}
}

// Invest records that amount left the deposit vault for epochIndex. The
// manual investor trusts the caller's amount outright; there is no
// external protocol to query.
func (g *ManualGateway) Invest(_ context.Context, epochIndex uint64, amount fixedpoint.FPUSDC) (fixedpoint.FPUSDC, error) {
	g.invested[epochIndex] = amount
	return amount, nil
}

// Withdraw, for the manual path, is driven entirely by the operator's
// declared return_amount (see DeclareReturn) rather than a live query.
func (g *ManualGateway) Withdraw(_ context.Context, epochIndex uint64) (fixedpoint.FPUSDC, error) {
	r, ok := g.returns[epochIndex]
	if !ok {
		return fixedpoint.ZeroUSDC(), ErrReturnNotDeclared
	}
	return r, nil
}

// DeclareReturn records the operator-reported return_amount ahead of
// Withdraw being called, matching YieldDepositByInvestor's manual-investor
// input (spec §4.7: "accepts a declared return_amount").
func (g *ManualGateway) DeclareReturn(epochIndex uint64, amount fixedpoint.FPUSDC) {
	if g.returns == nil {
		g.returns = make(map[uint64]fixedpoint.FPUSDC)
	}
	g.returns[epochIndex] = amount
}
