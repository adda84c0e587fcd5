package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/prizevault/chain/x/epochvault/fixedpoint"
	"github.com/prizevault/chain/x/epochvault/pda"
	"github.com/prizevault/chain/x/epochvault/types"
)

// GetStake returns owner's stake record, or a zero balance anchored to
// the current cumulative return rate if owner has never staked.
func (k Keeper) GetStake(ctx context.Context, owner sdk.AccAddress) types.Stake {
	v, err := k.Stakes.Get(ctx, owner)
	if err == nil {
		return v
	}
	rate := k.GetLatestEpoch(ctx).CumulativeReturnRate
	return types.Stake{Owner: owner, Balance: types.ZeroFloatingBalance(rate)}
}

func (k Keeper) setStake(ctx context.Context, stake types.Stake) {
	if err := k.Stakes.Set(ctx, stake.Owner, stake); err != nil {
		panic(err)
	}
}

// RequestStakeUpdate opens owner's single in-flight deposit/withdraw
// request (spec §4.4). A deposit request immediately escrows its funds
// into the pending-deposit vault; a withdraw request escrows nothing
// until completion. Only one request may be outstanding per owner.
func (k Keeper) RequestStakeUpdate(ctx context.Context, owner sdk.AccAddress, amount fixedpoint.FPSigned) error {
	if amount.IsZero() {
		return sdkerrors.Wrap(types.ErrInvalidArgument, "stake update amount must be non-zero")
	}
	if _, err := k.StakeUpdateRequests.Get(ctx, owner); err == nil {
		return sdkerrors.Wrap(types.ErrStakeUpdateRequestExists, owner.String())
	}

	state := types.StakeUpdateStatePendingApproval
	if amount.IsNegative() {
		// Withdraws need no admin approval; they queue immediately once the
		// current balance covers the request, and wait only on the epoch
		// being Running at completion time.
		latest := k.GetLatestEpoch(ctx)
		rebased, err := k.GetStake(ctx, owner).Balance.Rebase(latest.CumulativeReturnRate)
		if err != nil {
			return sdkerrors.Wrap(types.ErrNumericalOverflow, err.Error())
		}
		if rebased.FixedAmount.LessThan(amount.Abs()) {
			return sdkerrors.Wrap(types.ErrInsufficientBalance, owner.String())
		}
		state = types.StakeUpdateStateQueued
	} else {
		usdc, err := amount.Abs().ChangePrecision()
		if err != nil {
			return sdkerrors.Wrap(types.ErrNumericalOverflow, err.Error())
		}
		if err := k.userToVault(ctx, owner, pda.RolePendingDeposit, usdc, "stake deposit request"); err != nil {
			return err
		}
	}

	req := types.StakeUpdateRequest{Owner: owner, Amount: amount, State: state}
	if err := k.StakeUpdateRequests.Set(ctx, owner, req); err != nil {
		return err
	}
	k.SubLogger(types.SubSystemStake).Info("stake update requested", "owner", owner.String(), "amount", amount.String())
	return nil
}

// ApproveStakeUpdate moves a deposit request from PendingApproval to
// Queued. Required signer: Admin. Withdraw requests are already Queued
// at creation and cannot be approved again.
func (k Keeper) ApproveStakeUpdate(ctx context.Context, owner sdk.AccAddress) error {
	req, err := k.StakeUpdateRequests.Get(ctx, owner)
	if err != nil {
		return sdkerrors.Wrap(types.ErrInvalidStakeUpdateState, "no pending stake update request for owner")
	}
	if req.State != types.StakeUpdateStatePendingApproval {
		return sdkerrors.Wrapf(types.ErrInvalidStakeUpdateState, "request is %s, not pending_approval", req.State)
	}
	req.State = types.StakeUpdateStateQueued
	if err := k.StakeUpdateRequests.Set(ctx, owner, req); err != nil {
		return err
	}
	k.SubLogger(types.SubSystemStake).Info("stake update approved", "owner", owner.String())
	return nil
}

// CancelStakeUpdate deletes owner's outstanding request, refunding any
// escrowed deposit. amount must match the stored request exactly — the
// source offers no stronger protection against a stale resubmission
// (spec §9 open question, preserved as-is).
func (k Keeper) CancelStakeUpdate(ctx context.Context, owner sdk.AccAddress, amount fixedpoint.FPSigned) error {
	req, err := k.StakeUpdateRequests.Get(ctx, owner)
	if err != nil {
		return sdkerrors.Wrap(types.ErrInvalidStakeUpdateState, "no pending stake update request for owner")
	}
	if !req.Amount.Equal(amount) {
		return sdkerrors.Wrap(types.ErrStakeUpdateAmountMismatch, owner.String())
	}

	if req.Amount.IsPositive() {
		usdc, err := req.Amount.Abs().ChangePrecision()
		if err != nil {
			return sdkerrors.Wrap(types.ErrNumericalOverflow, err.Error())
		}
		if err := k.vaultToUser(ctx, pda.RolePendingDeposit, owner, usdc, "stake deposit request cancelled"); err != nil {
			return err
		}
	}

	if err := k.StakeUpdateRequests.Remove(ctx, owner); err != nil {
		return err
	}
	k.SubLogger(types.SubSystemStake).Info("stake update cancelled", "owner", owner.String())
	return nil
}

// CompleteStakeUpdate realizes a Queued request against the current
// cumulative return rate, gated on the epoch machine being Running
// (spec §4.4). A deposit moves pending-deposit funds into the deposit
// vault; a withdraw pays the deposit vault out to owner.
func (k Keeper) CompleteStakeUpdate(ctx context.Context, owner sdk.AccAddress) error {
	latest := k.GetLatestEpoch(ctx)
	if latest.Status != types.EpochStatusRunning {
		return sdkerrors.Wrapf(types.ErrInvalidEpochStatus, "cannot complete stake update while epoch status is %s", latest.Status)
	}

	req, err := k.StakeUpdateRequests.Get(ctx, owner)
	if err != nil {
		return sdkerrors.Wrap(types.ErrInvalidStakeUpdateState, "no pending stake update request for owner")
	}
	if req.State != types.StakeUpdateStateQueued {
		return sdkerrors.Wrapf(types.ErrInvalidStakeUpdateState, "request is %s, not queued", req.State)
	}

	stake := k.GetStake(ctx, owner)
	rebased, err := stake.Balance.Rebase(latest.CumulativeReturnRate)
	if err != nil {
		return sdkerrors.Wrap(types.ErrNumericalOverflow, err.Error())
	}

	delta := req.Amount.Abs()

	var newAmount fixedpoint.FPInternal
	if req.Amount.IsPositive() {
		usdc, err := delta.ChangePrecision()
		if err != nil {
			return sdkerrors.Wrap(types.ErrNumericalOverflow, err.Error())
		}
		newAmount, err = rebased.FixedAmount.Add(delta)
		if err != nil {
			return sdkerrors.Wrap(types.ErrNumericalOverflow, err.Error())
		}
		if err := k.moveBetweenVaults(ctx, pda.RolePendingDeposit, pda.RoleDeposit, usdc, "stake deposit completed"); err != nil {
			return err
		}
	} else {
		// A withdraw request outlives the balance it was queued against
		// (a later epoch's losses, say), so it pays out only what is
		// actually there rather than erroring.
		actualWithdraw := delta
		if rebased.FixedAmount.LessThan(delta) {
			actualWithdraw = rebased.FixedAmount
		}
		usdc, err := actualWithdraw.ChangePrecision()
		if err != nil {
			return sdkerrors.Wrap(types.ErrNumericalOverflow, err.Error())
		}
		newAmount, err = rebased.FixedAmount.Sub(actualWithdraw)
		if err != nil {
			return sdkerrors.Wrap(types.ErrNumericalOverflow, err.Error())
		}
		if err := k.vaultToUser(ctx, pda.RoleDeposit, owner, usdc, "stake withdraw completed"); err != nil {
			return err
		}
	}

	stake.Balance = types.FloatingBalance{FixedAmount: newAmount, AnchorRate: latest.CumulativeReturnRate}
	stake.UpdatedEpochIndex = latest.Index
	if stake.CreatedEpochIndex == 0 {
		stake.CreatedEpochIndex = latest.Index
	}
	k.setStake(ctx, stake)

	if err := k.StakeUpdateRequests.Remove(ctx, owner); err != nil {
		return err
	}
	k.SubLogger(types.SubSystemStake).Info("stake update completed", "owner", owner.String(), "amount", req.Amount.String())
	return nil
}
