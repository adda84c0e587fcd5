package keeper

import (
	"context"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/prizevault/chain/x/epochvault/types"
)

// GetEpochWinnersMeta is the public read accessor behind GetEpoch/GetStake
// for the winners-meta account (spec §3.3), exposed for the off-chain
// indexer that watches RemainingWinners/RemainingPrize before building the
// next PublishWinners page.
func (k Keeper) GetEpochWinnersMeta(ctx context.Context, epochIndex uint64) (types.EpochWinnersMeta, bool) {
	return k.getWinnersMeta(ctx, epochIndex)
}

// GetEpochWinnersPage returns one previously published page of winners.
func (k Keeper) GetEpochWinnersPage(ctx context.Context, epochIndex uint64, page uint32) (types.EpochWinnersPage, bool) {
	v, err := k.EpochWinnersPages.Get(ctx, collections.Join(epochIndex, uint64(page)))
	return v, err == nil
}

// GetStakeUpdateRequest returns the pending stake-update request for an
// owner, if any (spec §4.3).
func (k Keeper) GetStakeUpdateRequest(ctx context.Context, owner sdk.AccAddress) (types.StakeUpdateRequest, bool) {
	v, err := k.StakeUpdateRequests.Get(ctx, owner)
	return v, err == nil
}
