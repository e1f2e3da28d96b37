package types

// Event types emitted by the picoin module
const (
	EventTypeTransfer        = "picoin_transfer"
	EventTypeFeesCollected   = "fees_collected"
	EventTypeFeesWithdrawn   = "fees_withdrawn"
	EventTypeSupplyAdjusted  = "supply_adjusted"
	EventTypeMint            = "picoin_mint"
	EventTypeBurn            = "picoin_burn"
	EventTypeFeeUpdated      = "transaction_fee_updated"
	EventTypeModulePaused    = "module_paused"
	EventTypeModuleUnpaused  = "module_unpaused"
	EventTypePriceFeedSet    = "price_feed_set"
)

// Event attribute keys
const (
	AttributeKeySender    = "sender"
	AttributeKeyRecipient = "recipient"
	AttributeKeyAmount    = "amount"
	AttributeKeyFee       = "fee"
	AttributeKeyDirection = "direction"
	AttributeKeyAsset     = "asset"
)

// Supply adjustment directions
const (
	DirectionMint = "mint"
	DirectionBurn = "burn"
)
