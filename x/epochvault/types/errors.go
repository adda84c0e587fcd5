package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/epochvault module sentinel errors. Codes follow spec §7's taxonomy;
// propagation policy is strict abort-on-error with no partial commits —
// handlers perform every check before any mutation.
var (
	ErrInvalidEpochStatus = sdkerrors.Register(ModuleName, 1200, "invalid epoch status for requested transition")

	// Stake-update lifecycle.
	ErrStakeUpdateRequestExists = sdkerrors.Register(ModuleName, 1201, "a stake update request already exists for this owner")
	ErrInvalidStakeUpdateState  = sdkerrors.Register(ModuleName, 1202, "invalid stake update request state")
	ErrStakeUpdateAmountMismatch = sdkerrors.Register(ModuleName, 1203, "stake update amount does not match the pending request")
	ErrInsufficientBalance     = sdkerrors.Register(ModuleName, 1204, "insufficient stake balance")

	ErrNumericalOverflow = sdkerrors.Register(ModuleName, 1205, "numerical overflow")

	// Cfg validation.
	ErrEpochExpectedEndIsInPast = sdkerrors.Register(ModuleName, 1206, "epoch expected end is in the past")
	ErrInvalidArgument          = sdkerrors.Register(ModuleName, 1207, "invalid argument")

	// Winner pipeline.
	ErrWinningCombinationNotPublished = sdkerrors.Register(ModuleName, 1208, "winning combination has not been published")
	ErrWinningCombinationAlreadySet   = sdkerrors.Register(ModuleName, 1209, "winning combination already set for this epoch")
	ErrPageIndexOutOfBounds           = sdkerrors.Register(ModuleName, 1210, "page index out of bounds")
	ErrWrongNumberOfWinnersInPage     = sdkerrors.Register(ModuleName, 1211, "wrong number of winners in page")
	ErrPageIndexNotInSequence         = sdkerrors.Register(ModuleName, 1212, "pages must be submitted in strict sequence")
	ErrUnexpectedWinnerIndex          = sdkerrors.Register(ModuleName, 1213, "unexpected winner index")
	ErrWinnerIndexOutOfBounds         = sdkerrors.Register(ModuleName, 1214, "winner index out of bounds")
	ErrInvalidWinnerTier              = sdkerrors.Register(ModuleName, 1215, "invalid winner tier")
	ErrProcessedWinnersMetaMismatch   = sdkerrors.Register(ModuleName, 1216, "processed winners do not match meta counters")
	ErrWinnersAlreadyPublished        = sdkerrors.Register(ModuleName, 1217, "winners already published for this epoch")

	// Claim path.
	ErrInvalidPrizeClaim      = sdkerrors.Register(ModuleName, 1218, "invalid prize claim")
	ErrJackpotNotClaimableYet = sdkerrors.Register(ModuleName, 1219, "jackpot is not claimable yet")
	ErrJackpotAlreadyClaimable = sdkerrors.Register(ModuleName, 1220, "jackpot is already claimable")
	ErrPrizeAlreadyClaimed    = sdkerrors.Register(ModuleName, 1221, "prize already claimed")

	// Authorization and init.
	ErrMissingSignature        = sdkerrors.Register(ModuleName, 1222, "missing required signature")
	ErrInvalidAccountOwner     = sdkerrors.Register(ModuleName, 1223, "account owner mismatch")
	ErrProgramAlreadyInitialized = sdkerrors.Register(ModuleName, 1224, "module already initialized")
	ErrRemovedInstruction      = sdkerrors.Register(ModuleName, 1225, "this instruction has been removed")

	// Vault / investor gateway wrapping tags (spec §7 "nested external
	// protocol failures propagate with a wrapping tag").
	ErrFranciumLendingProtocol = sdkerrors.Register(ModuleName, 1226, "francium_lending_error")
	ErrFranciumFarmingProtocol = sdkerrors.Register(ModuleName, 1227, "francium_farming_error")
)
