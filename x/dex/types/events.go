package types

// Event types emitted by the DEX module
const (
	EventTypeSwap             = "tokens_swapped"
	EventTypeLiquidityAdded   = "liquidity_added"
	EventTypeLiquidityRemoved = "liquidity_removed"
	EventTypeFeesWithdrawn    = "fees_withdrawn"
	EventTypeFeeUpdated       = "fee_updated"
	EventTypeModulePaused     = "module_paused"
	EventTypeModuleUnpaused   = "module_unpaused"
	EventTypeOrderPlaced      = "limit_order_placed"
	EventTypeOrderCancelled   = "limit_order_cancelled"
	EventTypeRewardsClaimed   = "rewards_claimed"
	EventTypeRewardsDeposited = "rewards_deposited"
)

// Event attribute keys
const (
	AttributeKeyTokenIn   = "token_in"
	AttributeKeyTokenOut  = "token_out"
	AttributeKeyTokenA    = "token_a"
	AttributeKeyTokenB    = "token_b"
	AttributeKeyAmountIn  = "amount_in"
	AttributeKeyAmountOut = "amount_out"
	AttributeKeyAmountA   = "amount_a"
	AttributeKeyAmountB   = "amount_b"
	AttributeKeyShares    = "shares"
	AttributeKeyTrader    = "trader"
	AttributeKeyProvider  = "provider"
	AttributeKeyToken     = "token"
	AttributeKeyAmount    = "amount"
	AttributeKeyFee       = "fee"
	AttributeKeyOrderID   = "order_id"
	AttributeKeyOwner     = "owner"
)
