package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgTransfer{}
	_ sdk.Msg = &MsgAdjustSupply{}
	_ sdk.Msg = &MsgMint{}
	_ sdk.Msg = &MsgBurn{}
	_ sdk.Msg = &MsgUpdateTransactionFee{}
	_ sdk.Msg = &MsgWithdrawFees{}
	_ sdk.Msg = &MsgPause{}
	_ sdk.Msg = &MsgUnpause{}
)

// MsgTransfer defines a fee-bearing transfer of the pegged asset
type MsgTransfer struct {
	Sender    string   `json:"sender"`
	Recipient string   `json:"recipient"`
	Amount    math.Int `json:"amount"`
}

// NewMsgTransfer creates a new MsgTransfer instance
func NewMsgTransfer(sender, recipient string, amount math.Int) *MsgTransfer {
	return &MsgTransfer{Sender: sender, Recipient: recipient, Amount: amount}
}

// Route implements the sdk.Msg interface
func (msg MsgTransfer) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgTransfer) Type() string { return "transfer" }

// GetSigners returns the expected signers for MsgTransfer
func (msg MsgTransfer) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic performs basic validation of MsgTransfer
func (msg MsgTransfer) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid sender address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid recipient address: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "amount must be positive")
	}
	return nil
}

func (msg *MsgTransfer) Reset() { *msg = MsgTransfer{} }
func (msg *MsgTransfer) String() string {
	return fmt.Sprintf("MsgTransfer{%s -> %s: %s}", msg.Sender, msg.Recipient, msg.Amount)
}
func (*MsgTransfer) ProtoMessage() {}

// MsgAdjustSupply triggers one supply controller step against the live
// oracle price
type MsgAdjustSupply struct {
	Authority string `json:"authority"`
}

// NewMsgAdjustSupply creates a new MsgAdjustSupply instance
func NewMsgAdjustSupply(authority string) *MsgAdjustSupply {
	return &MsgAdjustSupply{Authority: authority}
}

// Route implements the sdk.Msg interface
func (msg MsgAdjustSupply) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgAdjustSupply) Type() string { return "adjust_supply" }

// GetSigners returns the expected signers for MsgAdjustSupply
func (msg MsgAdjustSupply) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs basic validation of MsgAdjustSupply
func (msg MsgAdjustSupply) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid authority address: %s", err)
	}
	return nil
}

func (msg *MsgAdjustSupply) Reset()         { *msg = MsgAdjustSupply{} }
func (msg *MsgAdjustSupply) String() string { return fmt.Sprintf("MsgAdjustSupply{%s}", msg.Authority) }
func (*MsgAdjustSupply) ProtoMessage()      {}

// MsgMint mints new supply to a recipient. Authority-gated.
type MsgMint struct {
	Authority string   `json:"authority"`
	Recipient string   `json:"recipient"`
	Amount    math.Int `json:"amount"`
}

// NewMsgMint creates a new MsgMint instance
func NewMsgMint(authority, recipient string, amount math.Int) *MsgMint {
	return &MsgMint{Authority: authority, Recipient: recipient, Amount: amount}
}

// Route implements the sdk.Msg interface
func (msg MsgMint) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgMint) Type() string { return "mint" }

// GetSigners returns the expected signers for MsgMint
func (msg MsgMint) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs basic validation of MsgMint
func (msg MsgMint) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid authority address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid recipient address: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "amount must be positive")
	}
	return nil
}

func (msg *MsgMint) Reset() { *msg = MsgMint{} }
func (msg *MsgMint) String() string {
	return fmt.Sprintf("MsgMint{%s -> %s: %s}", msg.Authority, msg.Recipient, msg.Amount)
}
func (*MsgMint) ProtoMessage() {}

// MsgBurn burns supply from a holder. Authority-gated.
type MsgBurn struct {
	Authority string   `json:"authority"`
	Holder    string   `json:"holder"`
	Amount    math.Int `json:"amount"`
}

// NewMsgBurn creates a new MsgBurn instance
func NewMsgBurn(authority, holder string, amount math.Int) *MsgBurn {
	return &MsgBurn{Authority: authority, Holder: holder, Amount: amount}
}

// Route implements the sdk.Msg interface
func (msg MsgBurn) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgBurn) Type() string { return "burn" }

// GetSigners returns the expected signers for MsgBurn
func (msg MsgBurn) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs basic validation of MsgBurn
func (msg MsgBurn) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid authority address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Holder); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid holder address: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "amount must be positive")
	}
	return nil
}

func (msg *MsgBurn) Reset() { *msg = MsgBurn{} }
func (msg *MsgBurn) String() string {
	return fmt.Sprintf("MsgBurn{%s from %s: %s}", msg.Authority, msg.Holder, msg.Amount)
}
func (*MsgBurn) ProtoMessage() {}

// MsgUpdateTransactionFee changes the transfer fee. Authority-gated.
type MsgUpdateTransactionFee struct {
	Authority string   `json:"authority"`
	FeeBps    math.Int `json:"fee_bps"`
}

// NewMsgUpdateTransactionFee creates a new MsgUpdateTransactionFee instance
func NewMsgUpdateTransactionFee(authority string, feeBps math.Int) *MsgUpdateTransactionFee {
	return &MsgUpdateTransactionFee{Authority: authority, FeeBps: feeBps}
}

// Route implements the sdk.Msg interface
func (msg MsgUpdateTransactionFee) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgUpdateTransactionFee) Type() string { return "update_transaction_fee" }

// GetSigners returns the expected signers for MsgUpdateTransactionFee
func (msg MsgUpdateTransactionFee) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs basic validation of MsgUpdateTransactionFee
func (msg MsgUpdateTransactionFee) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid authority address: %s", err)
	}
	if msg.FeeBps.IsNil() || msg.FeeBps.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidInput, "fee cannot be negative")
	}
	if msg.FeeBps.GT(math.NewInt(MaxTransactionFeeBps)) {
		return sdkerrors.Wrapf(ErrFeeTooHigh, "fee %s bps exceeds maximum %d", msg.FeeBps, MaxTransactionFeeBps)
	}
	return nil
}

func (msg *MsgUpdateTransactionFee) Reset() { *msg = MsgUpdateTransactionFee{} }
func (msg *MsgUpdateTransactionFee) String() string {
	return fmt.Sprintf("MsgUpdateTransactionFee{%s: %s bps}", msg.Authority, msg.FeeBps)
}
func (*MsgUpdateTransactionFee) ProtoMessage() {}

// MsgWithdrawFees pays the entire collected transfer fee balance to the
// authority
type MsgWithdrawFees struct {
	Authority string `json:"authority"`
}

// NewMsgWithdrawFees creates a new MsgWithdrawFees instance
func NewMsgWithdrawFees(authority string) *MsgWithdrawFees {
	return &MsgWithdrawFees{Authority: authority}
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
	return nil
}

func (msg *MsgWithdrawFees) Reset()         { *msg = MsgWithdrawFees{} }
func (msg *MsgWithdrawFees) String() string { return fmt.Sprintf("MsgWithdrawFees{%s}", msg.Authority) }
func (*MsgWithdrawFees) ProtoMessage()      {}

// MsgPause halts all state-changing picoin operations
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

// MsgUnpause resumes picoin operations after a pause
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

// MsgSetPriceFeed repoints the supply controller at a different oracle
// asset. Authority-gated.
type MsgSetPriceFeed struct {
	Authority string `json:"authority"`
	Asset     string `json:"asset"`
}

// NewMsgSetPriceFeed creates a new MsgSetPriceFeed instance
func NewMsgSetPriceFeed(authority, asset string) *MsgSetPriceFeed {
	return &MsgSetPriceFeed{Authority: authority, Asset: asset}
}

// Route implements the sdk.Msg interface
func (msg MsgSetPriceFeed) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSetPriceFeed) Type() string { return "set_price_feed" }

// GetSigners returns the expected signers for MsgSetPriceFeed
func (msg MsgSetPriceFeed) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs basic validation of MsgSetPriceFeed
func (msg MsgSetPriceFeed) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid authority address: %s", err)
	}
	if msg.Asset == "" {
		return sdkerrors.Wrap(ErrInvalidInput, "asset cannot be empty")
	}
	return nil
}

func (msg *MsgSetPriceFeed) Reset() { *msg = MsgSetPriceFeed{} }
func (msg *MsgSetPriceFeed) String() string {
	return fmt.Sprintf("MsgSetPriceFeed{%s: %s}", msg.Authority, msg.Asset)
}
func (*MsgSetPriceFeed) ProtoMessage() {}
