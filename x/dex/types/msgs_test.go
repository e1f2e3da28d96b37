package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/picoin-network/picoin/x/dex/types"
)

var (
	testAddr  = sdk.AccAddress([]byte("test_address________")).String()
	otherAddr = sdk.AccAddress([]byte("other_address_______")).String()
)

func TestMsgSwap_ValidateBasic(t *testing.T) {
	msg := types.NewMsgSwap(testAddr, "uatom", "upicoin", math.NewInt(100))
	require.NoError(t, msg.ValidateBasic())

	require.Error(t, types.NewMsgSwap("not-bech32", "uatom", "upicoin", math.NewInt(100)).ValidateBasic())
	require.Error(t, types.NewMsgSwap(testAddr, "uatom", "uatom", math.NewInt(100)).ValidateBasic())
	require.Error(t, types.NewMsgSwap(testAddr, "uatom", "upicoin", math.ZeroInt()).ValidateBasic())
	require.Error(t, types.NewMsgSwap(testAddr, "", "upicoin", math.NewInt(100)).ValidateBasic())
}

func TestMsgDeposit_ValidateBasic(t *testing.T) {
	msg := types.NewMsgDeposit(testAddr, "uatom", "upicoin", math.NewInt(100), math.NewInt(100))
	require.NoError(t, msg.ValidateBasic())

	require.Error(t, types.NewMsgDeposit(testAddr, "uatom", "upicoin", math.ZeroInt(), math.NewInt(100)).ValidateBasic())
	require.Error(t, types.NewMsgDeposit(testAddr, "uatom", "uatom", math.NewInt(100), math.NewInt(100)).ValidateBasic())
}

func TestMsgWithdraw_ValidateBasic(t *testing.T) {
	msg := types.NewMsgWithdraw(testAddr, "uatom", "upicoin", math.NewInt(100), math.NewInt(100))
	require.NoError(t, msg.ValidateBasic())

	require.Error(t, types.NewMsgWithdraw(testAddr, "uatom", "upicoin", math.NewInt(100), math.ZeroInt()).ValidateBasic())
	require.Error(t, types.NewMsgWithdraw("bogus", "uatom", "upicoin", math.NewInt(100), math.NewInt(100)).ValidateBasic())
}

func TestMsgPlaceLimitOrder_ValidateBasic(t *testing.T) {
	msg := types.NewMsgPlaceLimitOrder(testAddr, "uatom", "upicoin", math.NewInt(100), math.LegacyNewDec(2))
	require.NoError(t, msg.ValidateBasic())

	require.Error(t, types.NewMsgPlaceLimitOrder(testAddr, "uatom", "upicoin", math.NewInt(100), math.LegacyZeroDec()).ValidateBasic())
	require.Error(t, types.NewMsgPlaceLimitOrder(testAddr, "uatom", "uatom", math.NewInt(100), math.LegacyNewDec(2)).ValidateBasic())
}

func TestMsgUpdateFeePercentage_ValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgUpdateFeePercentage(testAddr, math.NewInt(5)).ValidateBasic())
	require.Error(t, types.NewMsgUpdateFeePercentage(testAddr, math.NewInt(101)).ValidateBasic())
	require.Error(t, types.NewMsgUpdateFeePercentage(testAddr, math.NewInt(-1)).ValidateBasic())
}

func TestParams_Validate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())

	p := types.DefaultParams()
	p.FeePercentage = math.NewInt(101)
	require.ErrorIs(t, p.Validate(), types.ErrFeeTooHigh)

	p = types.DefaultParams()
	p.RewardDenom = ""
	require.Error(t, p.Validate())
}

func TestGenesisState_Validate(t *testing.T) {
	require.NoError(t, types.DefaultGenesis().Validate())

	pool := types.NewPool("uatom", "upicoin")
	require.NoError(t, pool.ApplyDelta(math.NewInt(100), math.NewInt(100), math.NewInt(200)))

	genState := types.DefaultGenesis()
	genState.Pools = []types.Pool{pool}
	genState.Positions = []types.LiquidityPosition{
		{PairID: pool.PairID(), Provider: testAddr, Shares: math.NewInt(150)},
		{PairID: pool.PairID(), Provider: otherAddr, Shares: math.NewInt(50)},
	}
	require.NoError(t, genState.Validate())

	// Position shares must sum to the pool's total shares.
	genState.Positions[1].Shares = math.NewInt(49)
	require.Error(t, genState.Validate())
}
