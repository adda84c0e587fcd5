package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/prizevault/chain/x/epochvault/fixedpoint"
	"github.com/prizevault/chain/x/epochvault/yieldsplit"
)

// FloatingBalance implements the cumulative-rate trick (spec §3.2,
// §9 "floating balance vs per-user accrual"): FixedAmount is the user's
// balance as of AnchorRate; the current balance is always derived, never
// stored, via GetAmount.
type FloatingBalance struct {
	FixedAmount fixedpoint.FPInternal
	AnchorRate  fixedpoint.FPInternal
}

// ZeroFloatingBalance anchors a zero balance to the given rate.
func ZeroFloatingBalance(anchorRate fixedpoint.FPInternal) FloatingBalance {
	return FloatingBalance{FixedAmount: fixedpoint.ZeroInternal(), AnchorRate: anchorRate}
}

// GetAmount derives the balance at currentRate:
// fixed_amount * (current_rate / anchor_rate).
func (b FloatingBalance) GetAmount(currentRate fixedpoint.FPInternal) (fixedpoint.FPInternal, error) {
	if b.AnchorRate.IsZero() {
		return fixedpoint.ZeroInternal(), nil
	}
	ratio, err := currentRate.Div(b.AnchorRate)
	if err != nil {
		return fixedpoint.FPInternal{}, err
	}
	return b.FixedAmount.Mul(ratio)
}

// Rebase re-anchors the balance to newRate, preserving the derived amount
// at the moment of rebase. Used whenever principal is added or removed so
// the new fixed_amount reflects both the prior accrual and the delta.
func (b FloatingBalance) Rebase(newRate fixedpoint.FPInternal) (FloatingBalance, error) {
	amount, err := b.GetAmount(newRate)
	if err != nil {
		return FloatingBalance{}, err
	}
	return FloatingBalance{FixedAmount: amount, AnchorRate: newRate}, nil
}

// PendingFunds carries forward prize amounts from tiers that had zero
// winning tickets (spec §4.5 step 5).
type PendingFunds struct {
	Tier2Prize fixedpoint.FPUSDC
	Tier3Prize fixedpoint.FPUSDC
}

// AuthorityKeys holds the three role keys LatestEpoch tracks, plus the
// external VRF program address it trusts for winning combinations.
type AuthorityKeys struct {
	SuperAdmin sdk.AccAddress
	Admin      sdk.AccAddress
	Investor   sdk.AccAddress
	VrfProgram sdk.AccAddress
}

// LatestEpoch is the module's singleton registry (spec §3.3).
type LatestEpoch struct {
	Index                uint64
	Status               EpochStatus
	CumulativeReturnRate fixedpoint.FPInternal
	PendingFunds         PendingFunds
	Keys                 AuthorityKeys
}

// TicketsInfo is the investor's opaque snapshot of outstanding ticket
// accounting at the moment deposit-vault funds leave for yield (spec §4.3
// "records total_invested and tickets_info"). The core never interprets
// its contents; it exists so an off-chain indexer has a per-epoch record
// of scale at investment time.
type TicketsInfo struct {
	NumTickets uint64
	TicketUnit fixedpoint.FPUSDC
}

// Returns is the realized split of one epoch's yield (spec §4.5, §8
// invariant 2: Total == Insurance + Treasury + Tier2Prize + Tier3Prize +
// DepositBack exactly).
type Returns struct {
	Total       fixedpoint.FPUSDC
	Insurance   fixedpoint.FPUSDC
	Treasury    fixedpoint.FPUSDC
	Tier2Prize  fixedpoint.FPUSDC
	Tier3Prize  fixedpoint.FPUSDC
	DepositBack fixedpoint.FPUSDC
}

// Epoch is the per-index record (spec §3.3). TotalInvested, Returns,
// DrawEnabled and EndAt are populated as the epoch progresses past
// Running; TicketsInfo is populated at YieldWithdrawByInvestor time.
type Epoch struct {
	Index           uint64
	Status          EpochStatus
	YieldSplitCfg   yieldsplit.Config
	StartAt         int64
	ExpectedEndAt   int64
	TicketsInfo     *TicketsInfo
	TotalInvested   *fixedpoint.FPUSDC
	EpochReturns    *Returns
	DrawEnabled     *bool
	EndAt           *int64
}

// Stake is a single owner's floating balance record (spec §3.3).
type Stake struct {
	Owner             sdk.AccAddress
	Balance           FloatingBalance
	CreatedEpochIndex uint64
	UpdatedEpochIndex uint64
}

// StakeUpdateRequest is the single in-flight deposit/withdraw request an
// owner may have outstanding (spec §4.4). Amount's sign is the direction:
// positive deposit, negative withdraw, zero is rejected at creation.
//
// The source keys this by owner pubkey alone, so a second request cannot
// be created until the first completes or is cancelled; this offers no
// protection against a stale front-end resubmitting a cancel with a
// mismatched amount (spec §9 open question). Semantics preserved as-is.
type StakeUpdateRequest struct {
	Owner sdk.AccAddress
	Amount fixedpoint.FPSigned
	State StakeUpdateState
}

// TierMeta summarizes one prize tier's allocation for an epoch (spec §3.3).
type TierMeta struct {
	TotalNumWinners         uint32
	TotalNumWinningTickets  uint64
	TotalPrize              fixedpoint.FPUSDC
	RemainingWinners        uint32
	RemainingWinningTickets uint64
	RemainingPrize          fixedpoint.FPUSDC
}

// EpochWinnersMeta tracks winner-page upload progress for one epoch
// (spec §3.3, §4.6).
type EpochWinnersMeta struct {
	Index             uint64
	Tier1Meta         TierMeta
	Tier2Meta         TierMeta
	Tier3Meta         TierMeta
	TotalNumPages     uint32
	JackpotClaimable  bool
	Status            WinnersMetaStatus
	NextPageExpected  uint32
}

// Winner is a single prize entry within a page (spec §3.3). Submitters
// populate Index, Address, Tier and NumWinningTickets; Prize is derived
// on-chain from the tier's totals (spec §4.6, "per-winner prize on
// submission") and Claimed starts false regardless of what is submitted.
type Winner struct {
	Index             uint32
	Address           sdk.AccAddress
	Tier              Tier
	NumWinningTickets uint64
	Prize             fixedpoint.FPUSDC
	Claimed           bool
}

// EpochWinnersPage is one page of winners for an epoch (spec §3.3, §4.6).
// MaxWinnersPerPage bounds len(Winners) for every page but the last.
type EpochWinnersPage struct {
	EpochIndex uint64
	Page       uint32
	Winners    []Winner
}
