package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name.
	ModuleName = "epochvault"

	// StoreKey defines the primary module store key.
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key.
	MemStoreKey = "mem_epochvault"
)

// Vault sub-account names, one per role in spec §3.2/§4.2. These are the
// bookkeeper sub-account labels moved between by every vault transfer.
const (
	SubAccountDeposit        = "deposit"
	SubAccountPendingDeposit = "pending_deposit"
	SubAccountTreasury       = "treasury"
	SubAccountInsurance      = "insurance"
	SubAccountPrizeTier1     = "prize_tier_1"
	SubAccountPrizeTier2     = "prize_tier_2"
	SubAccountPrizeTier3     = "prize_tier_3"
)

var (
	ParamsKey = collections.NewPrefix(0)

	// LatestEpochKey stores the singleton LatestEpoch registry (spec §3.3).
	LatestEpochKey = collections.NewPrefix(1)

	// EpochsKeyPrefix stores Epoch records keyed by epoch index.
	EpochsKeyPrefix = collections.NewPrefix(2)

	// StakesKeyPrefix stores Stake records keyed by owner address.
	StakesKeyPrefix = collections.NewPrefix(3)

	// StakeUpdateRequestsKeyPrefix stores at most one StakeUpdateRequest per
	// owner address, matching the source's owner-keyed PDA seed (spec §9
	// open question: no protection against a stale front-end).
	StakeUpdateRequestsKeyPrefix = collections.NewPrefix(4)

	// EpochWinnersMetaKeyPrefix stores EpochWinnersMeta keyed by epoch index.
	EpochWinnersMetaKeyPrefix = collections.NewPrefix(5)

	// EpochWinnersPageKeyPrefix stores EpochWinnersPage keyed by
	// (epoch index, page index).
	EpochWinnersPageKeyPrefix = collections.NewPrefix(6)
)
