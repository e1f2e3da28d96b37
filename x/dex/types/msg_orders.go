package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgPlaceLimitOrder{}
	_ sdk.Msg = &MsgCancelLimitOrder{}
)

// MsgPlaceLimitOrder defines a message to place a limit order
type MsgPlaceLimitOrder struct {
	Owner      string         `json:"owner"`
	TokenIn    string         `json:"token_in"`
	TokenOut   string         `json:"token_out"`
	AmountIn   math.Int       `json:"amount_in"`
	LimitPrice math.LegacyDec `json:"limit_price"`
}

// NewMsgPlaceLimitOrder creates a new MsgPlaceLimitOrder instance
func NewMsgPlaceLimitOrder(owner, tokenIn, tokenOut string, amountIn math.Int, limitPrice math.LegacyDec) *MsgPlaceLimitOrder {
	return &MsgPlaceLimitOrder{
		Owner:      owner,
		TokenIn:    tokenIn,
		TokenOut:   tokenOut,
		AmountIn:   amountIn,
		LimitPrice: limitPrice,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgPlaceLimitOrder) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgPlaceLimitOrder) Type() string { return "place_limit_order" }

// GetSigners returns the expected signers for MsgPlaceLimitOrder
func (msg MsgPlaceLimitOrder) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

// ValidateBasic performs basic validation of MsgPlaceLimitOrder
func (msg MsgPlaceLimitOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid owner address: %s", err)
	}
	if msg.TokenIn == "" || msg.TokenOut == "" {
		return sdkerrors.Wrap(ErrInvalidInput, "token denominations cannot be empty")
	}
	if msg.TokenIn == msg.TokenOut {
		return sdkerrors.Wrap(ErrInvalidInput, "cannot trade identical tokens")
	}
	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "amount in must be positive")
	}
	if msg.LimitPrice.IsNil() || !msg.LimitPrice.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "limit price must be positive")
	}
	return nil
}

func (msg *MsgPlaceLimitOrder) Reset() { *msg = MsgPlaceLimitOrder{} }
func (msg *MsgPlaceLimitOrder) String() string {
	return fmt.Sprintf("MsgPlaceLimitOrder{%s: %s %s -> %s @ %s}", msg.Owner, msg.AmountIn, msg.TokenIn, msg.TokenOut, msg.LimitPrice)
}
func (*MsgPlaceLimitOrder) ProtoMessage() {}

// MsgCancelLimitOrder defines a message to cancel an open limit order
type MsgCancelLimitOrder struct {
	Owner   string `json:"owner"`
	OrderID uint64 `json:"order_id"`
}

// NewMsgCancelLimitOrder creates a new MsgCancelLimitOrder instance
func NewMsgCancelLimitOrder(owner string, orderID uint64) *MsgCancelLimitOrder {
	return &MsgCancelLimitOrder{Owner: owner, OrderID: orderID}
}

// Route implements the sdk.Msg interface
func (msg MsgCancelLimitOrder) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgCancelLimitOrder) Type() string { return "cancel_limit_order" }

// GetSigners returns the expected signers for MsgCancelLimitOrder
func (msg MsgCancelLimitOrder) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

// ValidateBasic performs basic validation of MsgCancelLimitOrder
func (msg MsgCancelLimitOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid owner address: %s", err)
	}
	if msg.OrderID == 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "order id cannot be zero")
	}
	return nil
}

func (msg *MsgCancelLimitOrder) Reset() { *msg = MsgCancelLimitOrder{} }
func (msg *MsgCancelLimitOrder) String() string {
	return fmt.Sprintf("MsgCancelLimitOrder{%s: #%d}", msg.Owner, msg.OrderID)
}
func (*MsgCancelLimitOrder) ProtoMessage() {}
