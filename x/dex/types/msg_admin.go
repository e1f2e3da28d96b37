package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgWithdrawFees{}
	_ sdk.Msg = &MsgUpdateFeePercentage{}
	_ sdk.Msg = &MsgPause{}
	_ sdk.Msg = &MsgUnpause{}
)

// MsgWithdrawFees defines a message for the module owner to collect accrued swap fees
type MsgWithdrawFees struct {
	Authority string `json:"authority"`
	Denom     string `json:"denom"`
}

// NewMsgWithdrawFees creates a new MsgWithdrawFees instance
func NewMsgWithdrawFees(authority, denom string) *MsgWithdrawFees {
	return &MsgWithdrawFees{Authority: authority, Denom: denom}
}

// Route implements the sdk.Msg interface
func (msg MsgWithdrawFees) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgWithdrawFees) Type() string { return "withdraw_fees" }

// GetSigners returns the expected signers for MsgWithdrawFees
func (msg MsgWithdrawFees) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs basic validation of MsgWithdrawFees
func (msg MsgWithdrawFees) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid authority address: %s", err)
	}
	if msg.Denom == "" {
		return sdkerrors.Wrap(ErrInvalidInput, "denom cannot be empty")
	}
	return nil
}

func (msg *MsgWithdrawFees) Reset() { *msg = MsgWithdrawFees{} }
func (msg *MsgWithdrawFees) String() string {
	return fmt.Sprintf("MsgWithdrawFees{%s: %s}", msg.Authority, msg.Denom)
}
func (*MsgWithdrawFees) ProtoMessage() {}

// MsgUpdateFeePercentage defines a message to change the swap fee percentage
type MsgUpdateFeePercentage struct {
	Authority     string   `json:"authority"`
	FeePercentage math.Int `json:"fee_percentage"`
}

// NewMsgUpdateFeePercentage creates a new MsgUpdateFeePercentage instance
func NewMsgUpdateFeePercentage(authority string, feePercentage math.Int) *MsgUpdateFeePercentage {
	return &MsgUpdateFeePercentage{Authority: authority, FeePercentage: feePercentage}
}

// Route implements the sdk.Msg interface
func (msg MsgUpdateFeePercentage) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgUpdateFeePercentage) Type() string { return "update_fee_percentage" }

// GetSigners returns the expected signers for MsgUpdateFeePercentage
func (msg MsgUpdateFeePercentage) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs basic validation of MsgUpdateFeePercentage
func (msg MsgUpdateFeePercentage) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid authority address: %s", err)
	}
	if msg.FeePercentage.IsNil() || msg.FeePercentage.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidInput, "fee percentage cannot be negative")
	}
	if msg.FeePercentage.GT(math.NewInt(MaxFeePercentage)) {
		return sdkerrors.Wrapf(ErrFeeTooHigh, "fee percentage %s exceeds maximum %d", msg.FeePercentage, MaxFeePercentage)
	}
	return nil
}

func (msg *MsgUpdateFeePercentage) Reset() { *msg = MsgUpdateFeePercentage{} }
func (msg *MsgUpdateFeePercentage) String() string {
	return fmt.Sprintf("MsgUpdateFeePercentage{%s: %s%%}", msg.Authority, msg.FeePercentage)
}
func (*MsgUpdateFeePercentage) ProtoMessage() {}

// MsgPause defines a message to halt all state-changing module operations
type MsgPause struct {
	Authority string `json:"authority"`
}

// NewMsgPause creates a new MsgPause instance
func NewMsgPause(authority string) *MsgPause {
	return &MsgPause{Authority: authority}
}

// Route implements the sdk.Msg interface
func (msg MsgPause) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgPause) Type() string { return "pause" }

// GetSigners returns the expected signers for MsgPause
func (msg MsgPause) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs basic validation of MsgPause
func (msg MsgPause) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid authority address: %s", err)
	}
	return nil
}

func (msg *MsgPause) Reset()         { *msg = MsgPause{} }
func (msg *MsgPause) String() string { return fmt.Sprintf("MsgPause{%s}", msg.Authority) }
func (*MsgPause) ProtoMessage()      {}

// MsgUnpause defines a message to resume module operations after a pause
type MsgUnpause struct {
	Authority string `json:"authority"`
}

// NewMsgUnpause creates a new MsgUnpause instance
func NewMsgUnpause(authority string) *MsgUnpause {
	return &MsgUnpause{Authority: authority}
}

// Route implements the sdk.Msg interface
func (msg MsgUnpause) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgUnpause) Type() string { return "unpause" }

// GetSigners returns the expected signers for MsgUnpause
func (msg MsgUnpause) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs basic validation of MsgUnpause
func (msg MsgUnpause) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid authority address: %s", err)
	}
	return nil
}

func (msg *MsgUnpause) Reset()         { *msg = MsgUnpause{} }
func (msg *MsgUnpause) String() string { return fmt.Sprintf("MsgUnpause{%s}", msg.Authority) }
func (*MsgUnpause) ProtoMessage()      {}
