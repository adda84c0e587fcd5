package keeper

import (
	"context"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/prizevault/chain/x/epochvault/types"
)

// InitGenesis loads a genesis state into the store. If genState.LatestEpoch
// is nil the module starts uninitialized, same as a fresh chain that
// hasn't processed an Init instruction yet.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) {
	if err := k.Params.Set(ctx, genState.Params); err != nil {
		panic(err)
	}
	if genState.LatestEpoch != nil {
		k.setLatestEpoch(ctx, *genState.LatestEpoch)
	}
	for _, epoch := range genState.Epochs {
		k.setEpoch(ctx, epoch)
	}
	for _, stake := range genState.Stakes {
		k.setStake(ctx, stake)
	}
	for _, req := range genState.StakeUpdateRequests {
		if err := k.StakeUpdateRequests.Set(ctx, req.Owner, req); err != nil {
			panic(err)
		}
	}
	for _, meta := range genState.EpochWinnersMeta {
		k.setWinnersMeta(ctx, meta)
	}
	for _, page := range genState.EpochWinnersPages {
		key := collections.Join(page.EpochIndex, uint64(page.Page))
		if err := k.EpochWinnersPages.Set(ctx, key, page); err != nil {
			panic(err)
		}
	}
}

// ExportGenesis dumps the entire store into a GenesisState.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	params, err := k.Params.Get(ctx)
	if err != nil {
		panic(err)
	}
	gs := &types.GenesisState{Params: params}

	if latest, err := k.LatestEpoch.Get(ctx); err == nil {
		gs.LatestEpoch = &latest
	}

	if err := k.Epochs.Walk(ctx, nil, func(_ uint64, epoch types.Epoch) (bool, error) {
		gs.Epochs = append(gs.Epochs, epoch)
		return false, nil
	}); err != nil {
		panic(err)
	}
	if err := k.Stakes.Walk(ctx, nil, func(_ sdk.AccAddress, stake types.Stake) (bool, error) {
		gs.Stakes = append(gs.Stakes, stake)
		return false, nil
	}); err != nil {
		panic(err)
	}
	if err := k.StakeUpdateRequests.Walk(ctx, nil, func(_ sdk.AccAddress, req types.StakeUpdateRequest) (bool, error) {
		gs.StakeUpdateRequests = append(gs.StakeUpdateRequests, req)
		return false, nil
	}); err != nil {
		panic(err)
	}
	if err := k.EpochWinnersMeta.Walk(ctx, nil, func(_ uint64, meta types.EpochWinnersMeta) (bool, error) {
		gs.EpochWinnersMeta = append(gs.EpochWinnersMeta, meta)
		return false, nil
	}); err != nil {
		panic(err)
	}
	if err := k.EpochWinnersPages.Walk(ctx, nil, func(_ collections.Pair[uint64, uint64], page types.EpochWinnersPage) (bool, error) {
		gs.EpochWinnersPages = append(gs.EpochWinnersPages, page)
		return false, nil
	}); err != nil {
		panic(err)
	}
	return gs
}
