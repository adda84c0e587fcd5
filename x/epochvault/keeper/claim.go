package keeper

import (
	"context"

	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/prizevault/chain/x/epochvault/pda"
	"github.com/prizevault/chain/x/epochvault/types"
)

// ClaimWinning pays a single winner entry's prize, crediting the owner's
// stake balance at the current cumulative rate and marking the entry
// claimed (spec §4.6). Tier 1 entries are only claimable once the
// winners meta's jackpot_claimable flag has been set by FundJackpot.
func (k Keeper) ClaimWinning(ctx context.Context, owner sdk.AccAddress, epochIndex uint64, page uint32, winnerIndex uint32, tier types.Tier) error {
	meta, ok := k.getWinnersMeta(ctx, epochIndex)
	if !ok {
		return sdkerrors.Wrap(types.ErrInvalidPrizeClaim, "no winners meta for this epoch")
	}
	if tier == types.TierOne && !meta.JackpotClaimable {
		return sdkerrors.Wrap(types.ErrJackpotNotClaimableYet, "jackpot is not yet claimable for this epoch")
	}

	key := collections.Join(epochIndex, uint64(page))
	winnersPage, err := k.EpochWinnersPages.Get(ctx, key)
	if err != nil {
		return sdkerrors.Wrap(types.ErrInvalidPrizeClaim, "no such winners page")
	}

	idx := int(winnerIndex) - int(page)*int(types.MaxWinnersPerPage)
	if idx < 0 || idx >= len(winnersPage.Winners) {
		return sdkerrors.Wrap(types.ErrWinnerIndexOutOfBounds, "winner index out of bounds")
	}
	winner := winnersPage.Winners[idx]
	if winner.Index != winnerIndex {
		return sdkerrors.Wrap(types.ErrUnexpectedWinnerIndex, "stored winner index mismatch")
	}
	if winner.Tier != tier {
		return sdkerrors.Wrap(types.ErrInvalidWinnerTier, "tier does not match the on-disk entry")
	}
	if !winner.Address.Equals(owner) {
		return sdkerrors.Wrap(types.ErrInvalidAccountOwner, owner.String())
	}
	if winner.Claimed {
		return sdkerrors.Wrap(types.ErrPrizeAlreadyClaimed, owner.String())
	}

	if err := k.moveBetweenVaults(ctx, tierVaultRole(tier), pda.RoleDeposit, winner.Prize, "claim winning"); err != nil {
		return err
	}

	latest := k.GetLatestEpoch(ctx)
	stake := k.GetStake(ctx, owner)
	rebased, err := stake.Balance.Rebase(latest.CumulativeReturnRate)
	if err != nil {
		return sdkerrors.Wrap(types.ErrNumericalOverflow, err.Error())
	}
	newAmount, err := rebased.FixedAmount.Add(winner.Prize.ChangePrecision())
	if err != nil {
		return sdkerrors.Wrap(types.ErrNumericalOverflow, err.Error())
	}
	stake.Balance = types.FloatingBalance{FixedAmount: newAmount, AnchorRate: latest.CumulativeReturnRate}
	stake.UpdatedEpochIndex = latest.Index
	k.setStake(ctx, stake)

	winner.Claimed = true
	winnersPage.Winners[idx] = winner
	if err := k.EpochWinnersPages.Set(ctx, key, winnersPage); err != nil {
		return err
	}

	k.SubLogger(types.SubSystemWinners).Info("winning claimed", "owner", owner.String(), "epoch", epochIndex, "tier", tier, "prize", winner.Prize.String())
	return nil
}
