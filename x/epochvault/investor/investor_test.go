package investor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prizevault/chain/x/epochvault/fixedpoint"
)

func TestManualGatewayRoundTrip(t *testing.T) {
	g := NewManualGateway()
	ctx := context.Background()

	invested, err := g.Invest(ctx, 1, mustUSDC(t, "100"))
	require.NoError(t, err)
	require.Equal(t, "100", invested.String())

	_, err = g.Withdraw(ctx, 1)
	require.ErrorIs(t, err, ErrReturnNotDeclared)

	g.DeclareReturn(1, mustUSDC(t, "120"))
	returned, err := g.Withdraw(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "120", returned.String())
}

type fakeLendingPool struct {
	shares  fixedpoint.FPUSDC
	returns fixedpoint.FPUSDC
	failErr error
}

func (f *fakeLendingPool) DepositAndStake(context.Context, fixedpoint.FPUSDC) (fixedpoint.FPUSDC, error) {
	if f.failErr != nil {
		return fixedpoint.FPUSDC{}, f.failErr
	}
	return f.shares, nil
}

func (f *fakeLendingPool) UnstakeAndWithdrawShares(context.Context, fixedpoint.FPUSDC) (fixedpoint.FPUSDC, error) {
	if f.failErr != nil {
		return fixedpoint.FPUSDC{}, f.failErr
	}
	return f.returns, nil
}

func (f *fakeLendingPool) UnstakeAndWithdrawLiquidity(context.Context, fixedpoint.FPUSDC) (fixedpoint.FPUSDC, error) {
	if f.failErr != nil {
		return fixedpoint.FPUSDC{}, f.failErr
	}
	return f.returns, nil
}

func TestAutomatedGatewayInvestWithdraw(t *testing.T) {
	pool := &fakeLendingPool{shares: mustUSDC(t, "95"), returns: mustUSDC(t, "150")}
	g := NewAutomatedGateway(pool)
	ctx := context.Background()

	invested, err := g.Invest(ctx, 7, mustUSDC(t, "100"))
	require.NoError(t, err)
	require.Equal(t, "100", invested.String())

	_, err = g.Invest(ctx, 7, mustUSDC(t, "100"))
	require.ErrorIs(t, err, ErrAlreadyInvested)

	returned, err := g.Withdraw(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, "150", returned.String())

	_, err = g.Withdraw(ctx, 7)
	require.ErrorIs(t, err, ErrNothingInvested)
}

func TestAutomatedGatewayDeprecatedLiquidityWithdraw(t *testing.T) {
	pool := &fakeLendingPool{shares: mustUSDC(t, "95"), returns: mustUSDC(t, "150")}
	g := NewAutomatedGateway(pool)
	ctx := context.Background()

	_, err := g.Invest(ctx, 9, mustUSDC(t, "100"))
	require.NoError(t, err)

	returned, err := g.WithdrawByLiquidity(ctx, 9, mustUSDC(t, "150"))
	require.NoError(t, err)
	require.Equal(t, "150", returned.String())
}

func mustUSDC(t *testing.T, s string) fixedpoint.FPUSDC {
	t.Helper()
	v, err := fixedpoint.ParseUSDC(s)
	require.NoError(t, err)
	return v
}
