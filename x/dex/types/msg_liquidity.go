package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgDeposit{}
	_ sdk.Msg = &MsgWithdraw{}
)

// MsgDeposit defines a message to add liquidity to a pool
type MsgDeposit struct {
	Provider string   `json:"provider"`
	TokenA   string   `json:"token_a"`
	TokenB   string   `json:"token_b"`
	AmountA  math.Int `json:"amount_a"`
	AmountB  math.Int `json:"amount_b"`
}

// NewMsgDeposit creates a new MsgDeposit instance
func NewMsgDeposit(provider, tokenA, tokenB string, amountA, amountB math.Int) *MsgDeposit {
	return &MsgDeposit{
		Provider: provider,
		TokenA:   tokenA,
		TokenB:   tokenB,
		AmountA:  amountA,
		AmountB:  amountB,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgDeposit) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgDeposit) Type() string { return "deposit" }

// GetSigners returns the expected signers for MsgDeposit
func (msg MsgDeposit) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// ValidateBasic performs basic validation of MsgDeposit
func (msg MsgDeposit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid provider address: %s", err)
	}
	if msg.TokenA == "" || msg.TokenB == "" {
		return sdkerrors.Wrap(ErrInvalidInput, "token denominations cannot be empty")
	}
	if msg.TokenA == msg.TokenB {
		return sdkerrors.Wrap(ErrInvalidInput, "pool tokens must differ")
	}
	if msg.AmountA.IsNil() || !msg.AmountA.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "amount A must be positive")
	}
	if msg.AmountB.IsNil() || !msg.AmountB.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "amount B must be positive")
	}
	return nil
}

func (msg *MsgDeposit) Reset() { *msg = MsgDeposit{} }
func (msg *MsgDeposit) String() string {
	return fmt.Sprintf("MsgDeposit{%s: %s %s / %s %s}", msg.Provider, msg.AmountA, msg.TokenA, msg.AmountB, msg.TokenB)
}
func (*MsgDeposit) ProtoMessage() {}

// MsgWithdraw defines a message to withdraw liquidity from a pool. The
// provider's share balance is reduced by the sum of both amounts.
type MsgWithdraw struct {
	Provider string   `json:"provider"`
	TokenA   string   `json:"token_a"`
	TokenB   string   `json:"token_b"`
	AmountA  math.Int `json:"amount_a"`
	AmountB  math.Int `json:"amount_b"`
}

// NewMsgWithdraw creates a new MsgWithdraw instance
func NewMsgWithdraw(provider, tokenA, tokenB string, amountA, amountB math.Int) *MsgWithdraw {
	return &MsgWithdraw{
		Provider: provider,
		TokenA:   tokenA,
		TokenB:   tokenB,
		AmountA:  amountA,
		AmountB:  amountB,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgWithdraw) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgWithdraw) Type() string { return "withdraw" }

// GetSigners returns the expected signers for MsgWithdraw
func (msg MsgWithdraw) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// ValidateBasic performs basic validation of MsgWithdraw
func (msg MsgWithdraw) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid provider address: %s", err)
	}
	if msg.TokenA == "" || msg.TokenB == "" {
		return sdkerrors.Wrap(ErrInvalidInput, "token denominations cannot be empty")
	}
	if msg.TokenA == msg.TokenB {
		return sdkerrors.Wrap(ErrInvalidInput, "pool tokens must differ")
	}
	if msg.AmountA.IsNil() || !msg.AmountA.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "amount A must be positive")
	}
	if msg.AmountB.IsNil() || !msg.AmountB.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "amount B must be positive")
	}
	return nil
}

func (msg *MsgWithdraw) Reset() { *msg = MsgWithdraw{} }
func (msg *MsgWithdraw) String() string {
	return fmt.Sprintf("MsgWithdraw{%s: %s %s / %s %s}", msg.Provider, msg.AmountA, msg.TokenA, msg.AmountB, msg.TokenB)
}
func (*MsgWithdraw) ProtoMessage() {}
