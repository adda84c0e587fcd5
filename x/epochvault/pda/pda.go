// Package pda derives the deterministic, keyless addresses the vault
// engine uses in place of Solana program-derived addresses: the vault
// authority, the investor authority, and the per-role vault accounts
// themselves. Every derivation is a pure function of the module name and
// a role seed, so any caller can recompute and compare rather than trust
// a stored address.
package pda

import (
	"golang.org/x/crypto/blake2b"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Role identifies one of the seven vault sub-accounts (§3.2/§4.2).
type Role string

const (
	RoleDeposit        Role = "deposit"
	RolePendingDeposit Role = "pending_deposit"
	RoleTreasury       Role = "treasury"
	RoleInsurance      Role = "insurance"
	RolePrizeTier1     Role = "prize_tier_1"
	RolePrizeTier2     Role = "prize_tier_2"
	RolePrizeTier3     Role = "prize_tier_3"
)

// AllVaultRoles lists every vault sub-account in a fixed, stable order.
var AllVaultRoles = []Role{
	RoleDeposit,
	RolePendingDeposit,
	RoleTreasury,
	RoleInsurance,
	RolePrizeTier1,
	RolePrizeTier2,
	RolePrizeTier3,
}

const (
	seedVaultAuthority    = "vault_authority"
	seedInvestorAuthority = "investor_authority"
	seedVault             = "vault"
)

// addrLen matches the 20-byte length cosmos-sdk's own
// authtypes.NewModuleAddress derivation produces.
const addrLen = 20

func derive(moduleName string, parts ...string) sdk.AccAddress {
	h, err := blake2b.New(addrLen, nil)
	if err != nil {
		panic(err)
	}
	h.Write([]byte(moduleName))
	for _, p := range parts {
		h.Write([]byte{0})
		h.Write([]byte(p))
	}
	return sdk.AccAddress(h.Sum(nil))
}

// VaultAuthority is the address that owns every vault sub-account.
func VaultAuthority(moduleName string) sdk.AccAddress {
	return derive(moduleName, seedVaultAuthority)
}

// InvestorAuthority is the address that owns the investor gateway's
// side-accounts (one per auxiliary token the automated investor holds).
func InvestorAuthority(moduleName string) sdk.AccAddress {
	return derive(moduleName, seedInvestorAuthority)
}

// VaultAddress derives the address of a single vault sub-account. The
// same role always yields the same address for a given module name, so
// handlers verify an account by rederiving and comparing rather than
// trusting a caller-supplied address.
func VaultAddress(moduleName string, role Role) sdk.AccAddress {
	return derive(moduleName, seedVault, string(role))
}

// VerifyVaultAddress reports whether addr is the correct address for role.
func VerifyVaultAddress(moduleName string, role Role, addr sdk.AccAddress) bool {
	return VaultAddress(moduleName, role).Equals(addr)
}
