// Package yieldsplit implements the pure function at the heart of the
// epoch vault: given what was invested and what came back, it decides how
// much goes to insurance, treasury, the two prize tiers, and back to
// depositors, and what the new cumulative return rate is. It never
// touches storage; the keeper calls it once per YieldDepositByInvestor and
// applies the result.
package yieldsplit

import (
	"cosmossdk.io/errors"

	"github.com/prizevault/chain/x/epochvault/fixedpoint"
)

var ErrInvalidConfig = errors.Register("yieldsplit", 1, "invalid yield split config")

// Config is the frozen-per-epoch split configuration (spec §4.5). Premium,
// Probability and TreasuryRatio are already in internal scale by the time
// they reach here: human-facing strings are parsed with
// fixedpoint.ParseUSDC/ParseInternal, and bounds are checked once, at
// CreateEpoch, by Validate.
type Config struct {
	Jackpot       fixedpoint.FPUSDC
	Premium       fixedpoint.FPInternal
	Probability   fixedpoint.FPInternal
	TreasuryRatio fixedpoint.FPInternal
	Tier2Share    uint32
	Tier3Share    uint32
}

// Validate enforces the bounds spec §4.5 requires at CreateEpoch.
func (c Config) Validate() error {
	tenToNine, _ := fixedpoint.FromWholeUSDC(1_000_000_000)
	if c.Jackpot.IsZero() || c.Jackpot.GreaterThan(tenToNine) {
		return errors.Wrap(ErrInvalidConfig, "jackpot must be in (0, 1e9] USDC")
	}
	minPremium := fixedpoint.FromFixedPointU64(11, 1)  // 1.1
	maxPremium := fixedpoint.FromFixedPointU64(50, 1)  // 5.0
	if c.Premium.LessThan(minPremium) || maxPremium.LessThan(c.Premium) {
		return errors.Wrap(ErrInvalidConfig, "premium must be in [1.1, 5.0]")
	}
	maxProbability := fixedpoint.FromFixedPointU64(1, 3) // 0.001
	if c.Probability.IsZero() || !c.Probability.LessThan(maxProbability) {
		return errors.Wrap(ErrInvalidConfig, "probability must be in (0, 0.001)")
	}
	if c.TreasuryRatio.GreaterThan(fixedpoint.Unity()) {
		return errors.Wrap(ErrInvalidConfig, "treasury_ratio must be in [0, 1]")
	}
	if c.Tier2Share == 0 || c.Tier3Share == 0 {
		return errors.Wrap(ErrInvalidConfig, "tier shares must be positive")
	}
	if c.Tier2Share+c.Tier3Share > 255 {
		return errors.Wrap(ErrInvalidConfig, "tier shares must sum to at most 255")
	}
	return nil
}

// Result is everything the keeper needs to apply one YieldSplit.
type Result struct {
	// Insurance, Treasury, Tier2, Tier3, DepositBack sum exactly to
	// ReturnAmount (spec §8 invariant 2).
	Insurance   fixedpoint.FPUSDC
	Treasury    fixedpoint.FPUSDC
	Tier2       fixedpoint.FPUSDC
	Tier3       fixedpoint.FPUSDC
	DepositBack fixedpoint.FPUSDC

	// Tier2Disbursed and Tier3Disbursed are this epoch's Tier2/Tier3 plus
	// the carried-forward pending amounts; zero unless DrawEnabled. Only
	// Tier2/Tier3 move into the prize vaults, since carried-forward
	// amounts already sit there.
	Tier2Disbursed fixedpoint.FPUSDC
	Tier3Disbursed fixedpoint.FPUSDC

	NewCumulativeReturnRate fixedpoint.FPInternal
	DrawEnabled             bool
	AdvanceToEnded          bool
}

// Split computes one epoch's yield distribution.
//
// totalInvested and returnAmount are the amounts handed to and received
// back from the investor gateway. currentRate is the cumulative return
// rate in effect before this split. pendingTier2/pendingTier3 are prize
// amounts carried forward from an epoch with zero winning tickets in that
// tier (spec §4.5 step 5).
func Split(cfg Config, totalInvested, returnAmount fixedpoint.FPUSDC, currentRate fixedpoint.FPInternal, pendingTier2, pendingTier3 fixedpoint.FPUSDC) (Result, error) {
	if totalInvested.IsZero() {
		return Result{}, errors.Wrap(ErrInvalidConfig, "total_invested must be nonzero")
	}

	invested := totalInvested.ChangePrecision()
	returned := returnAmount.ChangePrecision()

	if returned.LessThan(invested) {
		// Loss absorption: the whole return goes back to depositors at a
		// deflated rate; every other vault gets nothing this epoch.
		newRate, err := rescaleRate(currentRate, returnAmount, totalInvested)
		if err != nil {
			return Result{}, err
		}
		return Result{
			DepositBack:             returnAmount,
			NewCumulativeReturnRate: newRate,
			DrawEnabled:             false,
			AdvanceToEnded:          true,
		}, nil
	}

	grossYield, err := returnAmount.Sub(totalInvested)
	if err != nil {
		return Result{}, err
	}

	insuranceCost, err := insuranceCost(cfg)
	if err != nil {
		return Result{}, err
	}

	if grossYield.LessThan(insuranceCost) {
		depositBack, err := returnAmount.Sub(grossYield)
		if err != nil {
			return Result{}, err
		}
		newRate, err := rescaleRate(currentRate, depositBack, totalInvested)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Insurance:               grossYield,
			DepositBack:             depositBack,
			NewCumulativeReturnRate: newRate,
			DrawEnabled:             false,
			AdvanceToEnded:          true,
		}, nil
	}

	remaining, err := grossYield.Sub(insuranceCost)
	if err != nil {
		return Result{}, err
	}
	remainingInternal := remaining.ChangePrecision()
	treasuryInternal, err := remainingInternal.Mul(cfg.TreasuryRatio)
	if err != nil {
		return Result{}, err
	}
	treasury, err := treasuryInternal.ChangePrecision()
	if err != nil {
		return Result{}, err
	}
	prizePool, err := remaining.Sub(treasury)
	if err != nil {
		return Result{}, err
	}
	tier2, tier3, err := splitTiers(prizePool, cfg.Tier2Share, cfg.Tier3Share)
	if err != nil {
		return Result{}, err
	}

	spent, err := insuranceCost.Add(treasury)
	if err != nil {
		return Result{}, err
	}
	spent, err = spent.Add(tier2)
	if err != nil {
		return Result{}, err
	}
	spent, err = spent.Add(tier3)
	if err != nil {
		return Result{}, err
	}
	depositBack, err := returnAmount.Sub(spent)
	if err != nil {
		return Result{}, err
	}

	tier2Disbursed, err := tier2.Add(pendingTier2)
	if err != nil {
		return Result{}, err
	}
	tier3Disbursed, err := tier3.Add(pendingTier3)
	if err != nil {
		return Result{}, err
	}

	newRate, err := rescaleRate(currentRate, depositBack, totalInvested)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Insurance:               insuranceCost,
		Treasury:                treasury,
		Tier2:                   tier2,
		Tier3:                   tier3,
		DepositBack:             depositBack,
		Tier2Disbursed:          tier2Disbursed,
		Tier3Disbursed:          tier3Disbursed,
		NewCumulativeReturnRate: newRate,
		DrawEnabled:             true,
	}, nil
}

// insuranceCost = jackpot * probability * premium, spec §4.5 step 3.
func insuranceCost(cfg Config) (fixedpoint.FPUSDC, error) {
	jackpotInternal := cfg.Jackpot.ChangePrecision()
	costInternal, err := jackpotInternal.Mul(cfg.Probability)
	if err != nil {
		return fixedpoint.FPUSDC{}, err
	}
	costInternal, err = costInternal.Mul(cfg.Premium)
	if err != nil {
		return fixedpoint.FPUSDC{}, err
	}
	return costInternal.ChangePrecision()
}

// splitTiers divides prizePool proportionally between tier2 and tier3.
func splitTiers(prizePool fixedpoint.FPUSDC, tier2Share, tier3Share uint32) (tier2, tier3 fixedpoint.FPUSDC, err error) {
	denom := tier2Share + tier3Share
	tier2, err = prizePool.Mul(uint64(tier2Share))
	if err != nil {
		return
	}
	tier2, err = tier2.Div(uint64(denom))
	if err != nil {
		return
	}
	tier3, err = prizePool.Sub(tier2)
	return
}

// rescaleRate unifies the per-branch "new_rate" formulas in spec §4.5: in
// every branch new_rate is current_rate scaled by the ratio of what
// depositors end up able to claim (depositBack) to what they put in
// (totalInvested).
func rescaleRate(currentRate fixedpoint.FPInternal, depositBack, totalInvested fixedpoint.FPUSDC) (fixedpoint.FPInternal, error) {
	ratio, err := depositBack.ChangePrecision().Div(totalInvested.ChangePrecision())
	if err != nil {
		return fixedpoint.FPInternal{}, err
	}
	return currentRate.Mul(ratio)
}

// ResolveCarryForward decides, per spec §4.5 step 5, whether each tier's
// disbursed amount should be carried into next epoch's pending funds
// (zero winning tickets) or fully consumed (at least one winner).
func ResolveCarryForward(tier2Disbursed fixedpoint.FPUSDC, tier2WinningTickets uint64, tier3Disbursed fixedpoint.FPUSDC, tier3WinningTickets uint64) (nextTier2, nextTier3 fixedpoint.FPUSDC) {
	nextTier2 = fixedpoint.ZeroUSDC()
	nextTier3 = fixedpoint.ZeroUSDC()
	if tier2WinningTickets == 0 {
		nextTier2 = tier2Disbursed
	}
	if tier3WinningTickets == 0 {
		nextTier3 = tier3Disbursed
	}
	return
}
