package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prizevault/chain/x/epochvault/fixedpoint"
)

// mustUSDC parses a decimal USDC literal, failing the test on a bad
// literal rather than threading a parse error through every call site.
func mustUSDC(t *testing.T, s string) fixedpoint.FPUSDC {
	t.Helper()
	v, err := fixedpoint.ParseUSDC(s)
	require.NoError(t, err)
	return v
}
