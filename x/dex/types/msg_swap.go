package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgSwap{}

// MsgSwap defines a message to swap one token for another through a pool
type MsgSwap struct {
	Trader   string   `json:"trader"`
	TokenIn  string   `json:"token_in"`
	TokenOut string   `json:"token_out"`
	AmountIn math.Int `json:"amount_in"`
}

// NewMsgSwap creates a new MsgSwap instance
func NewMsgSwap(trader, tokenIn, tokenOut string, amountIn math.Int) *MsgSwap {
	return &MsgSwap{
		Trader:   trader,
		TokenIn:  tokenIn,
		TokenOut: tokenOut,
		AmountIn: amountIn,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwap) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSwap) Type() string { return "swap" }

// GetSigners returns the expected signers for MsgSwap
func (msg MsgSwap) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// ValidateBasic performs basic validation of MsgSwap
func (msg MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid trader address: %s", err)
	}
	if msg.TokenIn == "" || msg.TokenOut == "" {
		return sdkerrors.Wrap(ErrInvalidInput, "token denominations cannot be empty")
	}
	if msg.TokenIn == msg.TokenOut {
		return sdkerrors.Wrap(ErrInvalidInput, "cannot swap identical tokens")
	}
	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "amount in must be positive")
	}
	return nil
}

func (msg *MsgSwap) Reset()      { *msg = MsgSwap{} }
func (msg *MsgSwap) String() string {
	return fmt.Sprintf("MsgSwap{%s: %s %s -> %s}", msg.Trader, msg.AmountIn, msg.TokenIn, msg.TokenOut)
}
func (*MsgSwap) ProtoMessage() {}
