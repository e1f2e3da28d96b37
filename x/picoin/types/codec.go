package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgTransfer{}, "picoin/MsgTransfer", nil)
	cdc.RegisterConcrete(&MsgAdjustSupply{}, "picoin/MsgAdjustSupply", nil)
	cdc.RegisterConcrete(&MsgMint{}, "picoin/MsgMint", nil)
	cdc.RegisterConcrete(&MsgBurn{}, "picoin/MsgBurn", nil)
	cdc.RegisterConcrete(&MsgUpdateTransactionFee{}, "picoin/MsgUpdateTransactionFee", nil)
	cdc.RegisterConcrete(&MsgSetPriceFeed{}, "picoin/MsgSetPriceFeed", nil)
	cdc.RegisterConcrete(&MsgWithdrawFees{}, "picoin/MsgWithdrawFees", nil)
	cdc.RegisterConcrete(&MsgPause{}, "picoin/MsgPause", nil)
	cdc.RegisterConcrete(&MsgUnpause{}, "picoin/MsgUnpause", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgTransfer{},
		&MsgAdjustSupply{},
		&MsgMint{},
		&MsgBurn{},
		&MsgUpdateTransactionFee{},
		&MsgSetPriceFeed{},
		&MsgWithdrawFees{},
		&MsgPause{},
		&MsgUnpause{},
	)
}

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
