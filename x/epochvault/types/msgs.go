package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/prizevault/chain/x/epochvault/fixedpoint"
	"github.com/prizevault/chain/x/epochvault/yieldsplit"
)

// Discriminator is the single tag byte every instruction payload begins
// with on the wire (spec §6, §9 "tagged-union instruction encoding").
// The numbering follows the lending-pool side's hand-assigned scheme
// (0, 2-8, 10-18) rather than starting a fresh sequence, and the gaps at
// 1, 9, 19-21 are exactly the RemovedN slots spec §9 says must stay
// reserved so discriminator indices never shift.
type Discriminator byte

const (
	DiscInit                    Discriminator = 0
	DiscRemoved1                 Discriminator = 1
	DiscRequestStakeUpdate       Discriminator = 2
	DiscApproveStakeUpdate       Discriminator = 3
	DiscCancelStakeUpdate        Discriminator = 4
	DiscCompleteStakeUpdate      Discriminator = 5
	DiscCreateEpoch              Discriminator = 6
	DiscYieldWithdrawByInvestor  Discriminator = 7
	DiscYieldDepositByInvestor   Discriminator = 8
	DiscRemoved2                 Discriminator = 9
	DiscCreateEpochWinnersMeta   Discriminator = 10
	DiscPublishWinners           Discriminator = 11
	DiscClaimWinning             Discriminator = 12
	DiscFundJackpot              Discriminator = 13
	DiscWithdrawVault            Discriminator = 14
	DiscRotateKey                Discriminator = 15
	DiscFranciumInvest           Discriminator = 16
	DiscFranciumWithdraw         Discriminator = 17
	DiscFranciumWithdrawLiquidity Discriminator = 18 // deprecated WithdrawFromLendingPool2, spec §9
	DiscRemoved3                 Discriminator = 19
	DiscRemoved4                 Discriminator = 20
	DiscRemoved5                 Discriminator = 21
)

// removedDiscriminators unconditionally fail with ErrRemovedInstruction,
// preserving the original processor's reserved slots (spec §9).
var removedDiscriminators = map[Discriminator]bool{
	DiscRemoved1: true,
	DiscRemoved2: true,
	DiscRemoved3: true,
	DiscRemoved4: true,
	DiscRemoved5: true,
}

// IsRemoved reports whether d is a reserved, permanently-failing slot.
func IsRemoved(d Discriminator) bool { return removedDiscriminators[d] }

// Role identifies which of LatestEpoch's three rotatable keys a
// RotateKey instruction targets (spec §4.8).
type Role uint8

const (
	RoleSuperAdmin Role = iota
	RoleAdmin
	RoleInvestor
)

// MsgInit provisions the module's vaults and LatestEpoch singleton.
// Required signer: SuperAdmin.
type MsgInit struct {
	SuperAdmin sdk.AccAddress
	Admin      sdk.AccAddress
	Investor   sdk.AccAddress
	VrfProgram sdk.AccAddress
}

// MsgCreateEpoch opens a new epoch. Required signer: Admin.
type MsgCreateEpoch struct {
	Admin         sdk.AccAddress
	YieldSplitCfg yieldsplit.Config
	ExpectedEndAt int64
}

// MsgRequestStakeUpdate opens a StakeUpdateRequest. Required signer: Owner.
type MsgRequestStakeUpdate struct {
	Owner  sdk.AccAddress
	Amount fixedpoint.FPSigned
}

// MsgApproveStakeUpdate moves a deposit request PendingApproval -> Queued.
// Required signer: Admin.
type MsgApproveStakeUpdate struct {
	Admin sdk.AccAddress
	Owner sdk.AccAddress
}

// MsgCancelStakeUpdate deletes a pending request. Required signer: Owner
// or Admin. Amount must match exactly (spec §9 open question).
type MsgCancelStakeUpdate struct {
	Signer sdk.AccAddress
	Owner  sdk.AccAddress
	Amount fixedpoint.FPSigned
}

// MsgCompleteStakeUpdate realizes a Queued request. Required signer: Payer
// (anyone may relay a queued completion; spec §6 lists a bare "payer").
type MsgCompleteStakeUpdate struct {
	Payer sdk.AccAddress
	Owner sdk.AccAddress
}

// MsgYieldWithdrawByInvestor drains the deposit vault to the manual
// investor. Required signer: Investor.
type MsgYieldWithdrawByInvestor struct {
	Investor    sdk.AccAddress
	TicketsInfo TicketsInfo
}

// MsgYieldDepositByInvestor reports the manual investor's return and runs
// YieldSplit. Required signer: Investor.
type MsgYieldDepositByInvestor struct {
	Investor     sdk.AccAddress
	ReturnAmount fixedpoint.FPUSDC
}

// MsgFranciumInvest drains the deposit vault into the automated investor's
// ATA and deposits-and-stakes it. Required signer: Investor.
type MsgFranciumInvest struct {
	Investor    sdk.AccAddress
	TicketsInfo TicketsInfo
}

// MsgFranciumWithdraw unstakes and withdraws the automated investor's
// position, sized in shares. Required signer: Investor.
type MsgFranciumWithdraw struct {
	Investor sdk.AccAddress
}

// MsgFranciumWithdrawLiquidity is the deprecated WithdrawFromLendingPool2
// variant, sized in underlying liquidity rather than shares (spec §9).
//
// Deprecated: prefer MsgFranciumWithdraw.
type MsgFranciumWithdrawLiquidity struct {
	Investor  sdk.AccAddress
	Liquidity fixedpoint.FPUSDC
}

// MsgCreateEpochWinnersMeta allocates the winners-meta account for an
// epoch in Finalising. The VRF's winning combination is read from the
// oracle directly; the per-tier winner and winning-ticket counts are
// the off-chain indexer's tally of that combination against outstanding
// stakes and travel in the message (spec §4.6, §9).
type MsgCreateEpochWinnersMeta struct {
	Signer               sdk.AccAddress
	EpochIndex           uint64
	Tier1Winners         uint32
	Tier2Winners         uint32
	Tier3Winners         uint32
	Tier1WinningTickets  uint64
	Tier2WinningTickets  uint64
	Tier3WinningTickets  uint64
}

// MsgPublishWinners appends one page of winners.
type MsgPublishWinners struct {
	Signer     sdk.AccAddress
	EpochIndex uint64
	Page       uint32
	Winners    []Winner
}

// MsgClaimWinning claims one winner entry.
type MsgClaimWinning struct {
	Owner      sdk.AccAddress
	EpochIndex uint64
	Page       uint32
	WinnerIndex uint32
	Tier       Tier
}

// MsgFundJackpot transfers an epoch's tier-1 prize into the tier-1 vault.
// Any funder may call it.
type MsgFundJackpot struct {
	Funder     sdk.AccAddress
	EpochIndex uint64
}

// MsgWithdrawVault lets the admin pull funds out of Treasury or Insurance.
type MsgWithdrawVault struct {
	Admin  sdk.AccAddress
	Vault  VaultRole
	Amount fixedpoint.FPUSDC
}

// VaultRole restricts MsgWithdrawVault.Vault to the two withdrawable
// vaults. Named distinctly from Role (the key-rotation target) since the
// two enumerations are unrelated.
type VaultRole uint8

const (
	WithdrawableVaultTreasury VaultRole = iota
	WithdrawableVaultInsurance
)

// MsgRotateKey replaces one of LatestEpoch's three rotatable keys.
// Required signer: SuperAdmin.
type MsgRotateKey struct {
	SuperAdmin sdk.AccAddress
	Target     Role
	NewKey     sdk.AccAddress
}

// Response types carry no payload beyond the resulting epoch/meta/stake,
// which handlers return as their own concrete type (no protoc in this
// environment to generate a dedicated MsgXResponse per instruction); each
// handler method's second return value is the error Cosmos SDK's message
// router expects.
