package pda

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDerivationIsDeterministic(t *testing.T) {
	a := VaultAuthority("epochvault")
	b := VaultAuthority("epochvault")
	require.True(t, a.Equals(b))
}

func TestDifferentModulesDeriveDifferentAuthorities(t *testing.T) {
	a := VaultAuthority("epochvault")
	b := VaultAuthority("other")
	require.False(t, a.Equals(b))
}

func TestVaultAddressesAreDistinctPerRole(t *testing.T) {
	seen := make(map[string]Role)
	for _, r := range AllVaultRoles {
		addr := VaultAddress("epochvault", r)
		key := addr.String()
		if existing, ok := seen[key]; ok {
			t.Fatalf("role %s collided with %s", r, existing)
		}
		seen[key] = r
	}
}

func TestVerifyVaultAddress(t *testing.T) {
	addr := VaultAddress("epochvault", RoleTreasury)
	require.True(t, VerifyVaultAddress("epochvault", RoleTreasury, addr))
	require.False(t, VerifyVaultAddress("epochvault", RoleInsurance, addr))
}

func TestVaultAuthorityDiffersFromInvestorAuthority(t *testing.T) {
	require.False(t, VaultAuthority("epochvault").Equals(InvestorAuthority("epochvault")))
}
