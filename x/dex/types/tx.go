package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
	Deposit(context.Context, *MsgDeposit) (*MsgDepositResponse, error)
	Withdraw(context.Context, *MsgWithdraw) (*MsgWithdrawResponse, error)
	WithdrawFees(context.Context, *MsgWithdrawFees) (*MsgWithdrawFeesResponse, error)
	UpdateFeePercentage(context.Context, *MsgUpdateFeePercentage) (*MsgUpdateFeePercentageResponse, error)
	Pause(context.Context, *MsgPause) (*MsgPauseResponse, error)
	Unpause(context.Context, *MsgUnpause) (*MsgUnpauseResponse, error)
	PlaceLimitOrder(context.Context, *MsgPlaceLimitOrder) (*MsgPlaceLimitOrderResponse, error)
	CancelLimitOrder(context.Context, *MsgCancelLimitOrder) (*MsgCancelLimitOrderResponse, error)
	DepositRewards(context.Context, *MsgDepositRewards) (*MsgDepositRewardsResponse, error)
	ClaimRewards(context.Context, *MsgClaimRewards) (*MsgClaimRewardsResponse, error)
}

// Response types

// MsgSwapResponse defines the response for Swap
type MsgSwapResponse struct {
	AmountOut math.Int `json:"amount_out"`
}

// MsgDepositResponse defines the response for Deposit
type MsgDepositResponse struct {
	Shares math.Int `json:"shares"`
}

// MsgWithdrawResponse defines the response for Withdraw
type MsgWithdrawResponse struct {
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
}

// MsgWithdrawFeesResponse defines the response for WithdrawFees
type MsgWithdrawFeesResponse struct {
	Amount math.Int `json:"amount"`
}

// MsgUpdateFeePercentageResponse defines the response for UpdateFeePercentage
type MsgUpdateFeePercentageResponse struct{}

// MsgPauseResponse defines the response for Pause
type MsgPauseResponse struct{}

// MsgUnpauseResponse defines the response for Unpause
type MsgUnpauseResponse struct{}

// MsgPlaceLimitOrderResponse defines the response for PlaceLimitOrder
type MsgPlaceLimitOrderResponse struct {
	OrderID uint64 `json:"order_id"`
}

// MsgCancelLimitOrderResponse defines the response for CancelLimitOrder
type MsgCancelLimitOrderResponse struct{}

// MsgDepositRewardsResponse defines the response for DepositRewards
type MsgDepositRewardsResponse struct{}

// MsgClaimRewardsResponse defines the response for ClaimRewards
type MsgClaimRewardsResponse struct {
	Amount math.Int `json:"amount"`
}
