package keeper

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/picoin-network/picoin/x/dex/types"
)

// GetPool returns the pool for a token pair. When no pool exists the zero
// pool for the pair is returned, so a first deposit creates it implicitly.
func (k Keeper) GetPool(ctx sdk.Context, tokenA, tokenB string) types.Pool {
	store := k.getStore(ctx)
	pairID := types.PairID(tokenA, tokenB)

	bz := store.Get(PoolKey(pairID))
	if bz == nil {
		return types.NewPool(tokenA, tokenB)
	}

	var pool types.Pool
	if err := json.Unmarshal(bz, &pool); err != nil {
		panic(fmt.Errorf("corrupted pool record for %s: %w", pairID, err))
	}
	return pool
}

// HasPool reports whether a pool record exists for the pair
func (k Keeper) HasPool(ctx sdk.Context, tokenA, tokenB string) bool {
	store := k.getStore(ctx)
	return store.Has(PoolKey(types.PairID(tokenA, tokenB)))
}

// SetPool persists a pool record
func (k Keeper) SetPool(ctx sdk.Context, pool types.Pool) error {
	if err := pool.Validate(); err != nil {
		return err
	}

	bz, err := json.Marshal(pool)
	if err != nil {
		return fmt.Errorf("marshal pool %s: %w", pool.PairID(), err)
	}

	store := k.getStore(ctx)
	store.Set(PoolKey(pool.PairID()), bz)
	return nil
}

// IteratePools calls fn for every stored pool until fn returns true
func (k Keeper) IteratePools(ctx sdk.Context, fn func(pool types.Pool) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := json.Unmarshal(iterator.Value(), &pool); err != nil {
			panic(fmt.Errorf("corrupted pool record: %w", err))
		}
		if fn(pool) {
			break
		}
	}
}

// GetAllPools returns every stored pool
func (k Keeper) GetAllPools(ctx sdk.Context) []types.Pool {
	var pools []types.Pool
	k.IteratePools(ctx, func(pool types.Pool) bool {
		pools = append(pools, pool)
		return false
	})
	return pools
}

// GetLiquidity returns the share balance a provider holds in a pool
func (k Keeper) GetLiquidity(ctx sdk.Context, pairID, provider string) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(LiquidityKey(pairID, provider))
	if bz == nil {
		return math.ZeroInt()
	}

	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		panic(fmt.Errorf("corrupted liquidity record for %s/%s: %w", pairID, provider, err))
	}
	return shares
}

// SetLiquidity stores the share balance a provider holds in a pool.
// A zero balance deletes the record.
func (k Keeper) SetLiquidity(ctx sdk.Context, pairID, provider string, shares math.Int) error {
	if shares.IsNegative() {
		return types.ErrUnderflow.Wrapf("liquidity for %s cannot go negative", provider)
	}

	store := k.getStore(ctx)
	key := LiquidityKey(pairID, provider)

	if shares.IsZero() {
		store.Delete(key)
		return nil
	}

	bz, err := shares.Marshal()
	if err != nil {
		return fmt.Errorf("marshal liquidity for %s: %w", provider, err)
	}
	store.Set(key, bz)
	return nil
}

// IterateLiquidity calls fn for every share balance in a pool
func (k Keeper) IterateLiquidity(ctx sdk.Context, pairID string, fn func(provider string, shares math.Int) bool) {
	store := k.getStore(ctx)
	prefix := append(LiquidityKeyPrefix, []byte(pairID+"/")...)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		provider := string(iterator.Key()[len(prefix):])
		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			panic(fmt.Errorf("corrupted liquidity record in %s: %w", pairID, err))
		}
		if fn(provider, shares) {
			break
		}
	}
}
