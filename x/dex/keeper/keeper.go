package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/picoin-network/picoin/x/dex/types"
)

// Keeper of the dex store
type Keeper struct {
	storeKey   storetypes.StoreKey
	bankKeeper types.BankKeeper

	// authority is the address allowed to pause the module, change fees
	// and withdraw accrued protocol fees
	authority string

	moduleAddr sdk.AccAddress
}

// NewKeeper creates a new dex Keeper instance
func NewKeeper(
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	authority string,
) *Keeper {
	return &Keeper{
		storeKey:   key,
		bankKeeper: bankKeeper,
		authority:  authority,
		moduleAddr: authtypes.NewModuleAddress(types.ModuleName),
	}
}

// GetAuthority returns the module's authority address
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the module account address holding pooled funds
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddr
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// getStore returns the KVStore for the dex module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}
