package keeper

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/picoin-network/picoin/x/picoin/types"
)

// Store keys for the picoin module
var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01}

	// PausedKey is the key for the module pause flag
	PausedKey = []byte{0x02}

	// TotalFeesKey is the key for the collected transfer fee total
	TotalFeesKey = []byte{0x03}

	// TransferLockKey is the module-wide reentrancy lock marker for the
	// fee-bearing transfer path
	TransferLockKey = []byte{0x04}
)

// Keeper of the picoin store
type Keeper struct {
	storeKey     storetypes.StoreKey
	bankKeeper   types.BankKeeper
	oracleKeeper types.OracleKeeper

	// authority is the address allowed to mint, burn, adjust supply,
	// change fees and pause the module
	authority string

	moduleAddr sdk.AccAddress
}

// NewKeeper creates a new picoin Keeper instance
func NewKeeper(
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	oracleKeeper types.OracleKeeper,
	authority string,
) *Keeper {
	return &Keeper{
		storeKey:     key,
		bankKeeper:   bankKeeper,
		oracleKeeper: oracleKeeper,
		authority:    authority,
		moduleAddr:   authtypes.NewModuleAddress(types.ModuleName),
	}
}

// GetAuthority returns the module's authority address
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the module account address holding collected fees
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddr
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

func (k Keeper) getStore(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}

// GetParams returns the current module parameters, falling back to defaults
// when none have been stored
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}

	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		panic(fmt.Errorf("corrupted params record: %w", err))
	}
	return params
}

// SetParams persists the module parameters
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	bz, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("marshal params: %w", err)
	}

	store := k.getStore(ctx)
	store.Set(ParamsKey, bz)
	return nil
}

// TotalSupply returns the current total supply of the pegged asset
func (k Keeper) TotalSupply(ctx sdk.Context) sdk.Coin {
	return k.bankKeeper.GetSupply(ctx, k.GetParams(ctx).Denom)
}

// requireAuthority fails with ErrUnauthorized unless addr is the module authority
func (k Keeper) requireAuthority(addr string) error {
	if addr != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, addr)
	}
	return nil
}
