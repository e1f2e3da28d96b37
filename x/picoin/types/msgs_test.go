package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/picoin-network/picoin/x/picoin/types"
)

var (
	testAddr  = sdk.AccAddress([]byte("test_address________")).String()
	otherAddr = sdk.AccAddress([]byte("other_address_______")).String()
)

func TestMsgTransfer_ValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgTransfer(testAddr, otherAddr, math.NewInt(100)).ValidateBasic())

	require.Error(t, types.NewMsgTransfer("bogus", otherAddr, math.NewInt(100)).ValidateBasic())
	require.Error(t, types.NewMsgTransfer(testAddr, "bogus", math.NewInt(100)).ValidateBasic())
	require.Error(t, types.NewMsgTransfer(testAddr, otherAddr, math.ZeroInt()).ValidateBasic())
}

func TestMsgMintBurn_ValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgMint(testAddr, otherAddr, math.NewInt(100)).ValidateBasic())
	require.Error(t, types.NewMsgMint(testAddr, otherAddr, math.ZeroInt()).ValidateBasic())

	require.NoError(t, types.NewMsgBurn(testAddr, otherAddr, math.NewInt(100)).ValidateBasic())
	require.Error(t, types.NewMsgBurn(testAddr, otherAddr, math.NewInt(-1)).ValidateBasic())
}

func TestMsgUpdateTransactionFee_ValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgUpdateTransactionFee(testAddr, math.NewInt(50)).ValidateBasic())
	require.Error(t, types.NewMsgUpdateTransactionFee(testAddr, math.NewInt(types.MaxTransactionFeeBps+1)).ValidateBasic())
	require.Error(t, types.NewMsgUpdateTransactionFee(testAddr, math.NewInt(-1)).ValidateBasic())
}

func TestMsgSetPriceFeed_ValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgSetPriceFeed(testAddr, "PI-USD").ValidateBasic())
	require.Error(t, types.NewMsgSetPriceFeed(testAddr, "").ValidateBasic())
	require.Error(t, types.NewMsgSetPriceFeed("not-bech32", "PI-USD").ValidateBasic())
}

func TestParams_Validate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())

	p := types.DefaultParams()
	p.TransactionFeeBps = math.NewInt(types.MaxTransactionFeeBps + 1)
	require.ErrorIs(t, p.Validate(), types.ErrFeeTooHigh)

	p = types.DefaultParams()
	p.Denom = ""
	require.Error(t, p.Validate())
}

func TestConstants(t *testing.T) {
	// Peg constants are fixed-point with 18 decimal places.
	require.Equal(t, "314159000000000000000000", types.TargetPrice().String())
	require.Equal(t, "100000000000000000000000000000", types.InitialSupply().String())
}
