package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgDepositRewards{}
	_ sdk.Msg = &MsgClaimRewards{}
)

// MsgDepositRewards defines a message to fund the provider reward pot
type MsgDepositRewards struct {
	Depositor string   `json:"depositor"`
	Amount    math.Int `json:"amount"`
}

// NewMsgDepositRewards creates a new MsgDepositRewards instance
func NewMsgDepositRewards(depositor string, amount math.Int) *MsgDepositRewards {
	return &MsgDepositRewards{Depositor: depositor, Amount: amount}
}

// Route implements the sdk.Msg interface
func (msg MsgDepositRewards) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgDepositRewards) Type() string { return "deposit_rewards" }

// GetSigners returns the expected signers for MsgDepositRewards
func (msg MsgDepositRewards) GetSigners() []sdk.AccAddress {
	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{depositor}
}

// ValidateBasic performs basic validation of MsgDepositRewards
func (msg MsgDepositRewards) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Depositor); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid depositor address: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "amount must be positive")
	}
	return nil
}

func (msg *MsgDepositRewards) Reset() { *msg = MsgDepositRewards{} }
func (msg *MsgDepositRewards) String() string {
	return fmt.Sprintf("MsgDepositRewards{%s: %s}", msg.Depositor, msg.Amount)
}
func (*MsgDepositRewards) ProtoMessage() {}

// MsgClaimRewards defines a message for a provider to claim accrued rewards
type MsgClaimRewards struct {
	Provider string `json:"provider"`
}

// NewMsgClaimRewards creates a new MsgClaimRewards instance
func NewMsgClaimRewards(provider string) *MsgClaimRewards {
	return &MsgClaimRewards{Provider: provider}
}

// Route implements the sdk.Msg interface
func (msg MsgClaimRewards) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgClaimRewards) Type() string { return "claim_rewards" }

// GetSigners returns the expected signers for MsgClaimRewards
func (msg MsgClaimRewards) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// ValidateBasic performs basic validation of MsgClaimRewards
func (msg MsgClaimRewards) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid provider address: %s", err)
	}
	return nil
}

func (msg *MsgClaimRewards) Reset()         { *msg = MsgClaimRewards{} }
func (msg *MsgClaimRewards) String() string { return fmt.Sprintf("MsgClaimRewards{%s}", msg.Provider) }
func (*MsgClaimRewards) ProtoMessage()      {}
