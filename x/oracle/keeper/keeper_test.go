package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/picoin-network/picoin/testutil/keeper"
	"github.com/picoin-network/picoin/x/oracle/types"
)

func TestSetGetPrice(t *testing.T) {
	k, ctx := testkeeper.OracleKeeper(t)

	err := k.SetPrice(ctx, testkeeper.Authority.String(), "PICOIN", types.Price{
		Price: math.NewInt(314_159).Mul(math.NewIntWithDecimal(1, 18)),
	})
	require.NoError(t, err)

	price, err := k.GetPrice(ctx, "PICOIN")
	require.NoError(t, err)
	require.Equal(t, "PICOIN", price.Asset)
	require.Equal(t, ctx.BlockHeight(), price.BlockHeight)
	require.Equal(t, math.NewInt(314_159).Mul(math.NewIntWithDecimal(1, 18)), price.Price)
}

func TestGetPrice_Missing(t *testing.T) {
	k, ctx := testkeeper.OracleKeeper(t)

	_, err := k.GetPrice(ctx, "UNKNOWN")
	require.ErrorIs(t, err, types.ErrPriceNotFound)
}

func TestSetPrice_Unauthorized(t *testing.T) {
	k, ctx := testkeeper.OracleKeeper(t)

	err := k.SetPrice(ctx, testkeeper.TestAddr("mallory").String(), "PICOIN", types.Price{
		Price: math.NewInt(1),
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestSetPrice_Invalid(t *testing.T) {
	k, ctx := testkeeper.OracleKeeper(t)

	err := k.SetPrice(ctx, testkeeper.Authority.String(), "PICOIN", types.Price{
		Price: math.ZeroInt(),
	})
	require.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestSetPrice_Overwrite(t *testing.T) {
	k, ctx := testkeeper.OracleKeeper(t)

	require.NoError(t, k.SetPrice(ctx, testkeeper.Authority.String(), "PICOIN", types.Price{Price: math.NewInt(100)}))
	require.NoError(t, k.SetPrice(ctx, testkeeper.Authority.String(), "PICOIN", types.Price{Price: math.NewInt(200)}))

	price, err := k.GetPrice(ctx, "PICOIN")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(200), price.Price)
}

func TestGenesis_RoundTrip(t *testing.T) {
	k, ctx := testkeeper.OracleKeeper(t)

	require.NoError(t, k.SetPrice(ctx, testkeeper.Authority.String(), "PICOIN", types.Price{Price: math.NewInt(100)}))
	require.NoError(t, k.SetPrice(ctx, testkeeper.Authority.String(), "ATOM", types.Price{Price: math.NewInt(7)}))

	exported := k.ExportGenesis(ctx)
	require.Len(t, exported.Prices, 2)

	fresh, freshCtx := testkeeper.OracleKeeper(t)
	fresh.InitGenesis(freshCtx, *exported)
	require.Equal(t, exported, fresh.ExportGenesis(freshCtx))
}
