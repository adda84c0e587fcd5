package keeper

import (
	"context"

	"github.com/prizevault/chain/x/epochvault/types"
)

// RequestStakeUpdate opens a StakeUpdateRequest. Required signer: Owner.
func (k msgServer) RequestStakeUpdate(ctx context.Context, msg *types.MsgRequestStakeUpdate) error {
	return k.Keeper.RequestStakeUpdate(ctx, msg.Owner, msg.Amount)
}

// ApproveStakeUpdate moves a pending deposit request into Queued.
// Required signer: Admin.
func (k msgServer) ApproveStakeUpdate(ctx context.Context, msg *types.MsgApproveStakeUpdate) error {
	latest := k.Keeper.GetLatestEpoch(ctx)
	if err := requireSigner(msg.Admin, latest.Keys.Admin); err != nil {
		return err
	}
	return k.Keeper.ApproveStakeUpdate(ctx, msg.Owner)
}

// CancelStakeUpdate deletes a pending request. Required signer: the
// owner themselves, or Admin acting on their behalf (spec §9).
func (k msgServer) CancelStakeUpdate(ctx context.Context, msg *types.MsgCancelStakeUpdate) error {
	latest := k.Keeper.GetLatestEpoch(ctx)
	if !msg.Signer.Equals(msg.Owner) {
		if err := requireSigner(msg.Signer, latest.Keys.Admin); err != nil {
			return err
		}
	}
	return k.Keeper.CancelStakeUpdate(ctx, msg.Owner, msg.Amount)
}

// CompleteStakeUpdate realizes a Queued request. Any payer may relay it.
func (k msgServer) CompleteStakeUpdate(ctx context.Context, msg *types.MsgCompleteStakeUpdate) error {
	return k.Keeper.CompleteStakeUpdate(ctx, msg.Owner)
}
