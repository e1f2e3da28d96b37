package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	oraclekeeper "github.com/picoin-network/picoin/x/oracle/keeper"
	oracletypes "github.com/picoin-network/picoin/x/oracle/types"
	"github.com/picoin-network/picoin/x/picoin/keeper"
	"github.com/picoin-network/picoin/x/picoin/types"
)

// PicoinKeeper creates a test keeper for the picoin module together with
// the oracle keeper it reads prices from, both over one in-memory store
func PicoinKeeper(t testing.TB) (*keeper.Keeper, *oraclekeeper.Keeper, *MockBankKeeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	oracleStoreKey := storetypes.NewKVStoreKey(oracletypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(oracleStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	bank := NewMockBankKeeper()
	oracle := oraclekeeper.NewKeeper(oracleStoreKey, Authority.String())
	k := keeper.NewKeeper(storeKey, bank, oracle, Authority.String())

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	k.InitGenesis(ctx, *types.DefaultGenesis())
	oracle.InitGenesis(ctx, *oracletypes.DefaultGenesis())

	return k, oracle, bank, ctx
}
