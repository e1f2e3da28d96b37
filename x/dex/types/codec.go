package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgSwap{}, "dex/MsgSwap", nil)
	cdc.RegisterConcrete(&MsgDeposit{}, "dex/MsgDeposit", nil)
	cdc.RegisterConcrete(&MsgWithdraw{}, "dex/MsgWithdraw", nil)
	cdc.RegisterConcrete(&MsgWithdrawFees{}, "dex/MsgWithdrawFees", nil)
	cdc.RegisterConcrete(&MsgUpdateFeePercentage{}, "dex/MsgUpdateFeePercentage", nil)
	cdc.RegisterConcrete(&MsgPause{}, "dex/MsgPause", nil)
	cdc.RegisterConcrete(&MsgUnpause{}, "dex/MsgUnpause", nil)
	cdc.RegisterConcrete(&MsgPlaceLimitOrder{}, "dex/MsgPlaceLimitOrder", nil)
	cdc.RegisterConcrete(&MsgCancelLimitOrder{}, "dex/MsgCancelLimitOrder", nil)
	cdc.RegisterConcrete(&MsgDepositRewards{}, "dex/MsgDepositRewards", nil)
	cdc.RegisterConcrete(&MsgClaimRewards{}, "dex/MsgClaimRewards", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgSwap{},
		&MsgDeposit{},
		&MsgWithdraw{},
		&MsgWithdrawFees{},
		&MsgUpdateFeePercentage{},
		&MsgPause{},
		&MsgUnpause{},
		&MsgPlaceLimitOrder{},
		&MsgCancelLimitOrder{},
		&MsgDepositRewards{},
		&MsgClaimRewards{},
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
