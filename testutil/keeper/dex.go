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
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/picoin-network/picoin/x/dex/keeper"
	"github.com/picoin-network/picoin/x/dex/types"
)

// Authority is the test authority address used by all keeper fixtures
var Authority = sdk.AccAddress([]byte("authority___________"))

// TestAddr derives a deterministic test address from a name
func TestAddr(name string) sdk.AccAddress {
	bz := make([]byte, 20)
	copy(bz, name)
	return sdk.AccAddress(bz)
}

// DexKeeper creates a test keeper for the dex module backed by a fresh
// in-memory store and a mock bank keeper
func DexKeeper(t testing.TB) (*keeper.Keeper, *MockBankKeeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	bank := NewMockBankKeeper()
	k := keeper.NewKeeper(storeKey, bank, Authority.String())

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	k.InitGenesis(ctx, *types.DefaultGenesis())

	return k, bank, ctx
}

// DexModuleAddr returns the dex module account address
func DexModuleAddr() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}
