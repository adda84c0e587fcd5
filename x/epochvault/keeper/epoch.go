package keeper

import (
	"context"
	"strconv"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/prizevault/chain/x/epochvault/fixedpoint"
	"github.com/prizevault/chain/x/epochvault/types"
	"github.com/prizevault/chain/x/epochvault/yieldsplit"
)

// Init bootstraps the module's singleton registry (spec §4.3 `Init`).
// It may run exactly once; a second call fails with
// ErrProgramAlreadyInitialized.
func (k Keeper) Init(ctx context.Context, superAdmin, admin, investorAddr, vrfProgram sdk.AccAddress) error {
	if _, err := k.LatestEpoch.Get(ctx); err == nil {
		return sdkerrors.Wrap(types.ErrProgramAlreadyInitialized, "epochvault already initialized")
	}

	latest := types.LatestEpoch{
		Index:                0,
		Status:               types.EpochStatusEnded,
		CumulativeReturnRate: fixedpoint.Unity(),
		PendingFunds:         types.PendingFunds{Tier2Prize: fixedpoint.ZeroUSDC(), Tier3Prize: fixedpoint.ZeroUSDC()},
		Keys: types.AuthorityKeys{
			SuperAdmin: superAdmin,
			Admin:      admin,
			Investor:   investorAddr,
			VrfProgram: vrfProgram,
		},
	}
	if err := k.LatestEpoch.Set(ctx, latest); err != nil {
		return err
	}

	k.SubLogger(types.SubSystemGenesis).Info("epochvault initialized",
		"super_admin", superAdmin.String(), "admin", admin.String(), "investor", investorAddr.String())
	return nil
}

// GetLatestEpoch returns the singleton registry, panicking if it has not
// been initialized — every other keeper method assumes Init already ran.
func (k Keeper) GetLatestEpoch(ctx context.Context) types.LatestEpoch {
	v, err := k.LatestEpoch.Get(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

func (k Keeper) setLatestEpoch(ctx context.Context, latest types.LatestEpoch) {
	if err := k.LatestEpoch.Set(ctx, latest); err != nil {
		panic(err)
	}
}

// GetEpoch retrieves an epoch record by index.
func (k Keeper) GetEpoch(ctx context.Context, index uint64) (types.Epoch, bool) {
	v, err := k.Epochs.Get(ctx, index)
	return v, err == nil
}

func (k Keeper) setEpoch(ctx context.Context, epoch types.Epoch) {
	if err := k.Epochs.Set(ctx, epoch.Index, epoch); err != nil {
		panic(err)
	}
}

// CreateEpoch validates cfg, opens a new epoch and advances the registry
// from Ended to Running (spec §4.3, §4.5 cfg validation).
func (k Keeper) CreateEpoch(ctx context.Context, cfg yieldsplit.Config, startAt, expectedEndAt int64) (types.Epoch, error) {
	latest := k.GetLatestEpoch(ctx)
	if latest.Status != types.EpochStatusEnded {
		return types.Epoch{}, sdkerrors.Wrapf(types.ErrInvalidEpochStatus, "cannot create epoch while status is %s", latest.Status)
	}
	if expectedEndAt <= startAt {
		return types.Epoch{}, sdkerrors.Wrap(types.ErrEpochExpectedEndIsInPast, "expected_end_at must be after start_at")
	}
	if err := cfg.Validate(); err != nil {
		return types.Epoch{}, sdkerrors.Wrap(types.ErrInvalidArgument, err.Error())
	}

	nextIndex := latest.Index + 1
	epoch := types.Epoch{
		Index:         nextIndex,
		Status:        types.EpochStatusRunning,
		YieldSplitCfg: cfg,
		StartAt:       startAt,
		ExpectedEndAt: expectedEndAt,
	}
	k.setEpoch(ctx, epoch)

	latest.Index = nextIndex
	latest.Status = types.EpochStatusRunning
	k.setLatestEpoch(ctx, latest)

	k.emitEpochStatusEvent(ctx, nextIndex, types.EpochStatusRunning)
	k.SubLogger(types.SubSystemEpoch).Info("epoch created", "index", nextIndex, "start_at", startAt, "expected_end_at", expectedEndAt)
	return epoch, nil
}

// transitionEpoch moves both the per-epoch record and the registry to
// next, checking the legal-edge table (spec §4.3) first.
func (k Keeper) transitionEpoch(ctx context.Context, epoch types.Epoch, next types.EpochStatus) (types.Epoch, error) {
	if !epoch.Status.CanTransitionTo(next) {
		return types.Epoch{}, sdkerrors.Wrapf(types.ErrInvalidEpochStatus, "cannot move epoch %d from %s to %s", epoch.Index, epoch.Status, next)
	}
	epoch.Status = next
	if next == types.EpochStatusEnded {
		endAt := sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
		epoch.EndAt = &endAt
	}
	k.setEpoch(ctx, epoch)

	latest := k.GetLatestEpoch(ctx)
	if latest.Index == epoch.Index {
		latest.Status = next
		k.setLatestEpoch(ctx, latest)
	}
	k.emitEpochStatusEvent(ctx, epoch.Index, next)
	return epoch, nil
}

func (k Keeper) emitEpochStatusEvent(ctx context.Context, epochIndex uint64, status types.EpochStatus) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeEpochStatusChanged,
			sdk.NewAttribute(types.AttributeKeyEpochIndex, strconv.FormatUint(epochIndex, 10)),
			sdk.NewAttribute(types.AttributeKeyNewStatus, status.String()),
		),
	)
}
