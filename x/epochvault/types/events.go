package types

// Event types
const (
	EventTypeInit                    = "init"
	EventTypeCreateEpoch              = "create_epoch"
	EventTypeRequestStakeUpdate       = "request_stake_update"
	EventTypeApproveStakeUpdate       = "approve_stake_update"
	EventTypeCancelStakeUpdate        = "cancel_stake_update"
	EventTypeCompleteStakeUpdate      = "complete_stake_update"
	EventTypeYieldWithdrawByInvestor  = "yield_withdraw_by_investor"
	EventTypeYieldDepositByInvestor   = "yield_deposit_by_investor"
	EventTypeFranciumInvest           = "francium_invest"
	EventTypeFranciumWithdraw         = "francium_withdraw"
	EventTypeCreateEpochWinnersMeta   = "create_epoch_winners_meta"
	EventTypePublishWinners           = "publish_winners"
	EventTypeClaimWinning             = "claim_winning"
	EventTypeFundJackpot              = "fund_jackpot"
	EventTypeWithdrawVault            = "withdraw_vault"
	EventTypeRotateKey                = "rotate_key"
	EventTypeEpochStatusChanged       = "epoch_status_changed"
)

// Event attribute keys
const (
	AttributeKeyOwner         = "owner"
	AttributeKeyAmount        = "amount"
	AttributeKeyEpochIndex    = "epoch_index"
	AttributeKeyPage          = "page"
	AttributeKeyWinnerIndex   = "winner_index"
	AttributeKeyTier          = "tier"
	AttributeKeyPrize         = "prize"
	AttributeKeyTotalInvested = "total_invested"
	AttributeKeyReturnAmount  = "return_amount"
	AttributeKeyDrawEnabled   = "draw_enabled"
	AttributeKeyNewStatus     = "new_status"
	AttributeKeyVault         = "vault"
	AttributeKeyRole          = "role"
	AttributeKeyNewKey        = "new_key"
)
