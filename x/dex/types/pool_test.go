package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/picoin-network/picoin/x/dex/types"
)

func TestPairID_Canonical(t *testing.T) {
	require.Equal(t, "uatom/upicoin", types.PairID("uatom", "upicoin"))
	require.Equal(t, "uatom/upicoin", types.PairID("upicoin", "uatom"))
	require.Equal(t, types.PairID("a", "b"), types.PairID("b", "a"))
}

func TestNewPool_SortsDenoms(t *testing.T) {
	pool := types.NewPool("upicoin", "uatom")
	require.Equal(t, "uatom", pool.TokenA)
	require.Equal(t, "upicoin", pool.TokenB)
	require.True(t, pool.IsEmpty())
	require.NoError(t, pool.Validate())
}

func TestPool_ReservesFor(t *testing.T) {
	pool := types.NewPool("uatom", "upicoin")
	require.NoError(t, pool.ApplyDelta(math.NewInt(100), math.NewInt(200), math.NewInt(300)))

	in, out := pool.ReservesFor("uatom")
	require.Equal(t, math.NewInt(100), in)
	require.Equal(t, math.NewInt(200), out)

	in, out = pool.ReservesFor("upicoin")
	require.Equal(t, math.NewInt(200), in)
	require.Equal(t, math.NewInt(100), out)
}

func TestPool_ApplyDeltaUnderflow(t *testing.T) {
	pool := types.NewPool("uatom", "upicoin")
	require.NoError(t, pool.ApplyDelta(math.NewInt(100), math.NewInt(100), math.NewInt(200)))

	err := pool.ApplyDelta(math.NewInt(-101), math.ZeroInt(), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrUnderflow)

	// Failed delta leaves the pool untouched.
	require.Equal(t, math.NewInt(100), pool.ReserveA)
	require.Equal(t, math.NewInt(100), pool.ReserveB)
	require.Equal(t, math.NewInt(200), pool.TotalShares)
}

func TestPool_ValidatePartiallyEmpty(t *testing.T) {
	pool := types.NewPool("uatom", "upicoin")
	pool.ReserveA = math.NewInt(100)

	err := pool.Validate()
	require.ErrorIs(t, err, types.ErrInvalidPoolState)

	pool.ReserveA = math.ZeroInt()
	pool.TotalShares = math.NewInt(10)
	require.ErrorIs(t, pool.Validate(), types.ErrInvalidPoolState)
}

func TestPool_ValidateNegative(t *testing.T) {
	pool := types.NewPool("uatom", "upicoin")
	pool.ReserveA = math.NewInt(-1)
	require.ErrorIs(t, pool.Validate(), types.ErrInvalidPoolState)
}
