package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	Transfer(context.Context, *MsgTransfer) (*MsgTransferResponse, error)
	AdjustSupply(context.Context, *MsgAdjustSupply) (*MsgAdjustSupplyResponse, error)
	Mint(context.Context, *MsgMint) (*MsgMintResponse, error)
	Burn(context.Context, *MsgBurn) (*MsgBurnResponse, error)
	UpdateTransactionFee(context.Context, *MsgUpdateTransactionFee) (*MsgUpdateTransactionFeeResponse, error)
	SetPriceFeed(context.Context, *MsgSetPriceFeed) (*MsgSetPriceFeedResponse, error)
	WithdrawFees(context.Context, *MsgWithdrawFees) (*MsgWithdrawFeesResponse, error)
	Pause(context.Context, *MsgPause) (*MsgPauseResponse, error)
	Unpause(context.Context, *MsgUnpause) (*MsgUnpauseResponse, error)
}

// Response types

// MsgTransferResponse defines the response for Transfer
type MsgTransferResponse struct {
	Fee math.Int `json:"fee"`
}

// MsgAdjustSupplyResponse defines the response for AdjustSupply
type MsgAdjustSupplyResponse struct {
	// Direction is "mint", "burn" or empty when the price was on target
	Direction string   `json:"direction"`
	Amount    math.Int `json:"amount"`
}

// MsgMintResponse defines the response for Mint
type MsgMintResponse struct{}

// MsgBurnResponse defines the response for Burn
type MsgBurnResponse struct{}

// MsgUpdateTransactionFeeResponse defines the response for UpdateTransactionFee
type MsgUpdateTransactionFeeResponse struct{}

// MsgSetPriceFeedResponse defines the response for SetPriceFeed
type MsgSetPriceFeedResponse struct{}

// MsgWithdrawFeesResponse defines the response for WithdrawFees
type MsgWithdrawFeesResponse struct {
	Amount math.Int `json:"amount"`
}

// MsgPauseResponse defines the response for Pause
type MsgPauseResponse struct{}

// MsgUnpauseResponse defines the response for Unpause
type MsgUnpauseResponse struct{}
