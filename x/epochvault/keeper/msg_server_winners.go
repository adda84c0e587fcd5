package keeper

import (
	"context"

	"github.com/prizevault/chain/x/epochvault/types"
)

// CreateEpochWinnersMeta allocates the winners-meta account for an epoch
// in Finalising. Required signer: Admin.
func (k msgServer) CreateEpochWinnersMeta(ctx context.Context, msg *types.MsgCreateEpochWinnersMeta) (types.EpochWinnersMeta, error) {
	latest := k.Keeper.GetLatestEpoch(ctx)
	if err := requireSigner(msg.Signer, latest.Keys.Admin); err != nil {
		return types.EpochWinnersMeta{}, err
	}
	return k.Keeper.CreateEpochWinnersMeta(ctx, msg.EpochIndex,
		msg.Tier1Winners, msg.Tier2Winners, msg.Tier3Winners,
		msg.Tier1WinningTickets, msg.Tier2WinningTickets, msg.Tier3WinningTickets)
}

// PublishWinners appends one page of winners. Required signer: Admin.
func (k msgServer) PublishWinners(ctx context.Context, msg *types.MsgPublishWinners) (types.EpochWinnersMeta, error) {
	latest := k.Keeper.GetLatestEpoch(ctx)
	if err := requireSigner(msg.Signer, latest.Keys.Admin); err != nil {
		return types.EpochWinnersMeta{}, err
	}
	return k.Keeper.PublishWinners(ctx, msg.EpochIndex, msg.Page, msg.Winners)
}

// ClaimWinning claims one winner entry. Required signer: the winning
// owner named in the entry.
func (k msgServer) ClaimWinning(ctx context.Context, msg *types.MsgClaimWinning) error {
	return k.Keeper.ClaimWinning(ctx, msg.Owner, msg.EpochIndex, msg.Page, msg.WinnerIndex, msg.Tier)
}
