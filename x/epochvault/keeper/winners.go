package keeper

import (
	"context"

	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"

	"github.com/prizevault/chain/x/epochvault/fixedpoint"
	"github.com/prizevault/chain/x/epochvault/pda"
	"github.com/prizevault/chain/x/epochvault/types"
	"github.com/prizevault/chain/x/epochvault/vrf"
	"github.com/prizevault/chain/x/epochvault/yieldsplit"
)

func (k Keeper) getWinnersMeta(ctx context.Context, epochIndex uint64) (types.EpochWinnersMeta, bool) {
	v, err := k.EpochWinnersMeta.Get(ctx, epochIndex)
	return v, err == nil
}

func (k Keeper) setWinnersMeta(ctx context.Context, meta types.EpochWinnersMeta) {
	if err := k.EpochWinnersMeta.Set(ctx, meta.Index, meta); err != nil {
		panic(err)
	}
}

func tierMetaFor(totalNumWinningTickets uint64, totalPrize fixedpoint.FPUSDC, totalNumWinners uint32) types.TierMeta {
	return types.TierMeta{
		TotalNumWinners:         totalNumWinners,
		TotalNumWinningTickets:  totalNumWinningTickets,
		TotalPrize:              totalPrize,
		RemainingWinners:        totalNumWinners,
		RemainingWinningTickets: totalNumWinningTickets,
		RemainingPrize:          totalPrize,
	}
}

// CreateEpochWinnersMeta allocates the winners-meta account for an epoch
// in Finalising (spec §4.6). It trusts the VRF oracle for whether the
// draw happened at all, but the per-tier winner/winning-ticket counts
// are supplied by the caller: matching the published winning_combination
// against every outstanding stake's tickets is an off-chain indexer
// computation the core never performs, the same way it never interprets
// an investor's internal share accounting. The jackpot tier's total_prize
// is the epoch's frozen jackpot config value; tier2/tier3 totals are read
// off the prize vault balances, which already include any amount carried
// forward from a zero-winner epoch.
func (k Keeper) CreateEpochWinnersMeta(
	ctx context.Context,
	epochIndex uint64,
	tier1Winners, tier2Winners, tier3Winners uint32,
	tier1WinningTickets, tier2WinningTickets, tier3WinningTickets uint64,
) (types.EpochWinnersMeta, error) {
	epoch, ok := k.GetEpoch(ctx, epochIndex)
	if !ok {
		return types.EpochWinnersMeta{}, sdkerrors.Wrap(types.ErrInvalidEpochStatus, "unknown epoch")
	}
	if epoch.Status != types.EpochStatusFinalising {
		return types.EpochWinnersMeta{}, sdkerrors.Wrapf(types.ErrInvalidEpochStatus, "cannot create winners meta while epoch status is %s", epoch.Status)
	}
	if _, exists := k.getWinnersMeta(ctx, epochIndex); exists {
		return types.EpochWinnersMeta{}, sdkerrors.Wrap(types.ErrWinningCombinationAlreadySet, "winners meta already created for this epoch")
	}
	if epoch.DrawEnabled == nil {
		return types.EpochWinnersMeta{}, sdkerrors.Wrap(types.ErrInvalidEpochStatus, "epoch has no recorded draw_enabled")
	}

	totalWinners := tier1Winners + tier2Winners + tier3Winners
	if !*epoch.DrawEnabled || totalWinners == 0 {
		meta := types.EpochWinnersMeta{
			Index:            epochIndex,
			TotalNumPages:    0,
			JackpotClaimable: false,
			Status:           types.WinnersMetaStatusCompleted,
		}
		k.setWinnersMeta(ctx, meta)

		// Zero winning tickets across every tier: the whole tier2/tier3
		// balance carries forward untouched into the next epoch, same as
		// PublishWinners' last-page reconciliation (spec §4.5 step 5). The
		// money never left the prize vaults, so the vault balance (not
		// just this epoch's own split) is what must be preserved.
		if epoch.EpochReturns != nil {
			tier2Prize := k.VaultBalance(ctx, pda.RolePrizeTier2)
			tier3Prize := k.VaultBalance(ctx, pda.RolePrizeTier3)
			latest := k.GetLatestEpoch(ctx)
			latest.PendingFunds.Tier2Prize, latest.PendingFunds.Tier3Prize = yieldsplit.ResolveCarryForward(
				tier2Prize, 0,
				tier3Prize, 0,
			)
			k.setLatestEpoch(ctx, latest)
		}

		if _, err := k.transitionEpoch(ctx, epoch, types.EpochStatusEnded); err != nil {
			return types.EpochWinnersMeta{}, err
		}
		k.SubLogger(types.SubSystemWinners).Info("no winners, epoch ended without a draw", "epoch", epochIndex)
		return meta, nil
	}

	req, found := k.vrfSource.RequestForEpoch(epochIndex)
	if !found || req.Status != vrf.StatusSuccess || req.Combination == nil {
		return types.EpochWinnersMeta{}, sdkerrors.Wrap(types.ErrWinningCombinationNotPublished, "vrf has not published a winning combination for this epoch")
	}
	if !req.Combination.Valid() {
		return types.EpochWinnersMeta{}, sdkerrors.Wrap(types.ErrInvalidArgument, "vrf winning combination failed structural validation")
	}

	tier1Prize := epoch.YieldSplitCfg.Jackpot
	tier2Prize := k.VaultBalance(ctx, pda.RolePrizeTier2)
	tier3Prize := k.VaultBalance(ctx, pda.RolePrizeTier3)

	totalPages := (totalWinners + types.MaxWinnersPerPage - 1) / types.MaxWinnersPerPage

	meta := types.EpochWinnersMeta{
		Index:            epochIndex,
		Tier1Meta:        tierMetaFor(tier1WinningTickets, tier1Prize, tier1Winners),
		Tier2Meta:        tierMetaFor(tier2WinningTickets, tier2Prize, tier2Winners),
		Tier3Meta:        tierMetaFor(tier3WinningTickets, tier3Prize, tier3Winners),
		TotalNumPages:    totalPages,
		JackpotClaimable: false,
		Status:           types.WinnersMetaStatusInProgress,
		NextPageExpected: 0,
	}
	k.setWinnersMeta(ctx, meta)
	k.SubLogger(types.SubSystemWinners).Info("winners meta created", "epoch", epochIndex, "total_pages", totalPages)
	return meta, nil
}

func tierMetaByTier(meta *types.EpochWinnersMeta, tier types.Tier) *types.TierMeta {
	switch tier {
	case types.TierOne:
		return &meta.Tier1Meta
	case types.TierTwo:
		return &meta.Tier2Meta
	case types.TierThree:
		return &meta.Tier3Meta
	default:
		return nil
	}
}

func tierVaultRole(tier types.Tier) pda.Role {
	switch tier {
	case types.TierOne:
		return pda.RolePrizeTier1
	case types.TierTwo:
		return pda.RolePrizeTier2
	default:
		return pda.RolePrizeTier3
	}
}

// PublishWinners appends one page of winners, computing each winner's
// prize from the tier's totals and reconciling the tier-status counters
// (spec §4.6). Pages must be submitted in strict sequence. On the final
// page, unassigned tier-2/tier-3 prize carries forward into next epoch's
// pending_funds, and the epoch advances to Ended.
func (k Keeper) PublishWinners(ctx context.Context, epochIndex uint64, page uint32, entries []types.Winner) (types.EpochWinnersMeta, error) {
	meta, ok := k.getWinnersMeta(ctx, epochIndex)
	if !ok {
		return types.EpochWinnersMeta{}, sdkerrors.Wrap(types.ErrWinningCombinationNotPublished, "no winners meta for this epoch")
	}
	if meta.Status == types.WinnersMetaStatusCompleted {
		return types.EpochWinnersMeta{}, sdkerrors.Wrap(types.ErrWinnersAlreadyPublished, "winners already published for this epoch")
	}
	if page != meta.NextPageExpected {
		return types.EpochWinnersMeta{}, sdkerrors.Wrapf(types.ErrPageIndexNotInSequence, "expected page %d, got %d", meta.NextPageExpected, page)
	}
	if page >= meta.TotalNumPages {
		return types.EpochWinnersMeta{}, sdkerrors.Wrap(types.ErrPageIndexOutOfBounds, "page index out of bounds")
	}

	isLastPage := page == meta.TotalNumPages-1
	expectedCount := int(types.MaxWinnersPerPage)
	if isLastPage {
		total := int(meta.Tier1Meta.TotalNumWinners + meta.Tier2Meta.TotalNumWinners + meta.Tier3Meta.TotalNumWinners)
		expectedCount = total - int(page)*int(types.MaxWinnersPerPage)
	}
	if len(entries) != expectedCount {
		return types.EpochWinnersMeta{}, sdkerrors.Wrapf(types.ErrWrongNumberOfWinnersInPage, "expected %d winners, got %d", expectedCount, len(entries))
	}

	for i := range entries {
		w := &entries[i]
		expectedIndex := page*types.MaxWinnersPerPage + uint32(i)
		if w.Index != expectedIndex {
			return types.EpochWinnersMeta{}, sdkerrors.Wrapf(types.ErrUnexpectedWinnerIndex, "expected winner index %d, got %d", expectedIndex, w.Index)
		}
		if !w.Tier.Valid() {
			return types.EpochWinnersMeta{}, sdkerrors.Wrap(types.ErrInvalidWinnerTier, w.Address.String())
		}
		tm := tierMetaByTier(&meta, w.Tier)
		if tm.RemainingWinningTickets < w.NumWinningTickets || tm.RemainingWinners == 0 {
			return types.EpochWinnersMeta{}, sdkerrors.Wrap(types.ErrProcessedWinnersMetaMismatch, "winner exceeds remaining tier allocation")
		}

		prizeInternal, err := tm.TotalPrize.ChangePrecision().Mul(fixedpoint.FromWholeNumber(w.NumWinningTickets))
		if err != nil {
			return types.EpochWinnersMeta{}, sdkerrors.Wrap(types.ErrNumericalOverflow, err.Error())
		}
		denomInternal := fixedpoint.FromWholeNumber(tm.TotalNumWinningTickets)
		prizeInternal, err = prizeInternal.Div(denomInternal)
		if err != nil {
			return types.EpochWinnersMeta{}, sdkerrors.Wrap(types.ErrNumericalOverflow, err.Error())
		}
		prize, err := prizeInternal.ChangePrecision()
		if err != nil {
			return types.EpochWinnersMeta{}, sdkerrors.Wrap(types.ErrNumericalOverflow, err.Error())
		}
		w.Prize = prize
		w.Claimed = false

		tm.RemainingWinners--
		tm.RemainingWinningTickets -= w.NumWinningTickets
		tm.RemainingPrize, err = tm.RemainingPrize.Sub(prize)
		if err != nil {
			// Rounding dust can leave RemainingPrize unable to absorb the
			// last winner's prize; clamp to zero rather than fail the page.
			tm.RemainingPrize = fixedpoint.ZeroUSDC()
		}
	}

	if err := k.EpochWinnersPages.Set(ctx, collections.Join(epochIndex, uint64(page)), types.EpochWinnersPage{
		EpochIndex: epochIndex,
		Page:       page,
		Winners:    entries,
	}); err != nil {
		return types.EpochWinnersMeta{}, err
	}

	meta.NextPageExpected = page + 1
	if isLastPage {
		if meta.Tier1Meta.RemainingWinners != 0 || meta.Tier2Meta.RemainingWinners != 0 || meta.Tier3Meta.RemainingWinners != 0 {
			return types.EpochWinnersMeta{}, sdkerrors.Wrap(types.ErrProcessedWinnersMetaMismatch, "remaining winners not fully accounted for")
		}
		if meta.Tier1Meta.RemainingWinningTickets != 0 || meta.Tier2Meta.RemainingWinningTickets != 0 || meta.Tier3Meta.RemainingWinningTickets != 0 {
			return types.EpochWinnersMeta{}, sdkerrors.Wrap(types.ErrProcessedWinnersMetaMismatch, "remaining winning tickets not fully accounted for")
		}
		meta.Status = types.WinnersMetaStatusCompleted

		nextTier2, nextTier3 := yieldsplit.ResolveCarryForward(
			meta.Tier2Meta.TotalPrize, meta.Tier2Meta.TotalNumWinningTickets,
			meta.Tier3Meta.TotalPrize, meta.Tier3Meta.TotalNumWinningTickets,
		)
		latest := k.GetLatestEpoch(ctx)
		latest.PendingFunds.Tier2Prize = nextTier2
		latest.PendingFunds.Tier3Prize = nextTier3
		k.setLatestEpoch(ctx, latest)

		epoch, ok := k.GetEpoch(ctx, epochIndex)
		if !ok {
			return types.EpochWinnersMeta{}, sdkerrors.Wrap(types.ErrInvalidEpochStatus, "unknown epoch")
		}
		if _, err := k.transitionEpoch(ctx, epoch, types.EpochStatusEnded); err != nil {
			return types.EpochWinnersMeta{}, err
		}
	}
	k.setWinnersMeta(ctx, meta)
	k.SubLogger(types.SubSystemWinners).Info("winners page published", "epoch", epochIndex, "page", page)
	return meta, nil
}
