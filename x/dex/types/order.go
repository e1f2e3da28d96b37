package types

import (
	"time"

	"cosmossdk.io/math"
)

// OrderStatus represents the current status of a limit order in its lifecycle.
type OrderStatus uint8

const (
	// OrderStatusOpen indicates the order is active and unfilled.
	OrderStatusOpen OrderStatus = 1

	// OrderStatusCancelled indicates the order was cancelled by the owner.
	OrderStatusCancelled OrderStatus = 2
)

// String returns a human-readable representation of the order status
func (s OrderStatus) String() string {
	switch s {
	case OrderStatusOpen:
		return "open"
	case OrderStatusCancelled:
		return "cancelled"
	default:
		return "unspecified"
	}
}

// LimitOrder records a trader's standing intent to swap at a given price.
//
// The order book is record-keeping only: orders are not matched against
// pool reserves on-chain. Tokens are locked in the module account when an
// order is placed and returned in full on cancellation.
type LimitOrder struct {
	// ID is the unique identifier of the order
	ID uint64 `json:"id"`
	// Owner is the address that placed the order
	Owner string `json:"owner"`
	// TokenIn is the token being sold
	TokenIn string `json:"token_in"`
	// TokenOut is the token being bought
	TokenOut string `json:"token_out"`
	// AmountIn is the amount of TokenIn locked for the order
	AmountIn math.Int `json:"amount_in"`
	// LimitPrice is the limit price (TokenOut per TokenIn)
	LimitPrice math.LegacyDec `json:"limit_price"`
	// Status is the current status of the order
	Status OrderStatus `json:"status"`
	// CreatedAt is when the order was created
	CreatedAt time.Time `json:"created_at"`
	// CreatedAtHeight is the block height when created
	CreatedAtHeight int64 `json:"created_at_height"`
}

// IsOpen reports whether the order can still be cancelled
func (o LimitOrder) IsOpen() bool {
	return o.Status == OrderStatusOpen
}
