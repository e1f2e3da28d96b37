package keeper

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/picoin-network/picoin/x/oracle/types"
)

// PriceKeyPrefix is the prefix for price storage (key: asset)
var PriceKeyPrefix = []byte{0x01}

// PriceKey returns the store key for an asset's price
func PriceKey(asset string) []byte {
	return append(PriceKeyPrefix, []byte(asset)...)
}

// Keeper of the oracle store
type Keeper struct {
	storeKey storetypes.StoreKey

	// authority is the only address allowed to post prices
	authority string
}

// NewKeeper creates a new oracle Keeper instance
func NewKeeper(key storetypes.StoreKey, authority string) *Keeper {
	return &Keeper{
		storeKey:  key,
		authority: authority,
	}
}

// GetAuthority returns the module's authority address
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// SetPrice posts a price for an asset. Authority-gated.
func (k Keeper) SetPrice(ctx sdk.Context, authority, asset string, price types.Price) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}
	price.Asset = asset
	price.BlockHeight = ctx.BlockHeight()
	if err := price.Validate(); err != nil {
		return err
	}

	if err := k.setPrice(ctx, price); err != nil {
		return err
	}

	k.Logger(ctx).Info("price updated",
		"asset", asset,
		"price", price.Price.String(),
	)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePriceUpdated,
			sdk.NewAttribute(types.AttributeKeyAsset, asset),
			sdk.NewAttribute(types.AttributeKeyPrice, price.Price.String()),
			sdk.NewAttribute(types.AttributeKeyHeight, fmt.Sprintf("%d", price.BlockHeight)),
		),
	)
	return nil
}

// setPrice persists a price record without authorization checks, for
// genesis import
func (k Keeper) setPrice(ctx sdk.Context, price types.Price) error {
	bz, err := json.Marshal(price)
	if err != nil {
		return fmt.Errorf("marshal price for %s: %w", price.Asset, err)
	}

	store := ctx.KVStore(k.storeKey)
	store.Set(PriceKey(price.Asset), bz)
	return nil
}

// GetPrice returns the posted price for an asset. A missing price is an
// error, never a silent default.
func (k Keeper) GetPrice(ctx sdk.Context, asset string) (types.Price, error) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(PriceKey(asset))
	if bz == nil {
		return types.Price{}, types.ErrPriceNotFound.Wrapf("no price posted for %s", asset)
	}

	var price types.Price
	if err := json.Unmarshal(bz, &price); err != nil {
		panic(fmt.Errorf("corrupted price record for %s: %w", asset, err))
	}
	return price, nil
}

// IteratePrices calls fn for every posted price until fn returns true
func (k Keeper) IteratePrices(ctx sdk.Context, fn func(price types.Price) bool) {
	store := ctx.KVStore(k.storeKey)
	iterator := storetypes.KVStorePrefixIterator(store, PriceKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var price types.Price
		if err := json.Unmarshal(iterator.Value(), &price); err != nil {
			panic(fmt.Errorf("corrupted price record: %w", err))
		}
		if fn(price) {
			break
		}
	}
}

// InitGenesis initializes the oracle module state from a genesis state
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := genState.Validate(); err != nil {
		panic(fmt.Errorf("invalid oracle genesis state: %w", err))
	}
	for _, price := range genState.Prices {
		if err := k.setPrice(ctx, price); err != nil {
			panic(err)
		}
	}
}

// ExportGenesis returns the oracle module's exported genesis state
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	genState := types.GenesisState{Prices: []types.Price{}}
	k.IteratePrices(ctx, func(price types.Price) bool {
		genState.Prices = append(genState.Prices, price)
		return false
	})
	return &genState
}
