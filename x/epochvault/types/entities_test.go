package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prizevault/chain/x/epochvault/fixedpoint"
)

func mustInternal(t *testing.T, s string) fixedpoint.FPInternal {
	t.Helper()
	v, err := fixedpoint.ParseInternal(s)
	require.NoError(t, err)
	return v
}

func TestFloatingBalanceGetAmountAtSameRate(t *testing.T) {
	rate := fixedpoint.Unity()
	b := FloatingBalance{FixedAmount: mustInternal(t, "100"), AnchorRate: rate}
	amt, err := b.GetAmount(rate)
	require.NoError(t, err)
	require.True(t, amt.Equal(mustInternal(t, "100")))
}

func TestFloatingBalanceGetAmountAfterDeflation(t *testing.T) {
	b := FloatingBalance{FixedAmount: mustInternal(t, "100"), AnchorRate: fixedpoint.Unity()}
	newRate := mustInternal(t, "0.9")
	amt, err := b.GetAmount(newRate)
	require.NoError(t, err)
	require.True(t, amt.Equal(mustInternal(t, "90")))
}

func TestFloatingBalanceRebasePreservesDerivedAmount(t *testing.T) {
	b := FloatingBalance{FixedAmount: mustInternal(t, "100"), AnchorRate: fixedpoint.Unity()}
	newRate := mustInternal(t, "0.9")
	rebased, err := b.Rebase(newRate)
	require.NoError(t, err)
	require.True(t, rebased.AnchorRate.Equal(newRate))

	before, err := b.GetAmount(newRate)
	require.NoError(t, err)
	after, err := rebased.GetAmount(newRate)
	require.NoError(t, err)
	require.True(t, before.Equal(after))
}

func TestEpochStatusTransitions(t *testing.T) {
	require.True(t, EpochStatusRunning.CanTransitionTo(EpochStatusYielding))
	require.False(t, EpochStatusRunning.CanTransitionTo(EpochStatusFinalising))
	require.True(t, EpochStatusYielding.CanTransitionTo(EpochStatusFinalising))
	require.True(t, EpochStatusYielding.CanTransitionTo(EpochStatusEnded))
	require.True(t, EpochStatusFinalising.CanTransitionTo(EpochStatusEnded))
	require.True(t, EpochStatusEnded.CanTransitionTo(EpochStatusRunning))
	require.False(t, EpochStatusEnded.CanTransitionTo(EpochStatusFinalising))
}

func TestTierValid(t *testing.T) {
	require.True(t, TierOne.Valid())
	require.True(t, TierTwo.Valid())
	require.True(t, TierThree.Valid())
	require.False(t, Tier(0).Valid())
	require.False(t, Tier(4).Valid())
}
