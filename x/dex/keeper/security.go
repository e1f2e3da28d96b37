package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/picoin-network/picoin/x/dex/types"
)

// IsPaused reports whether the module is halted
func (k Keeper) IsPaused(ctx sdk.Context) bool {
	store := k.getStore(ctx)
	return store.Has(PausedKey)
}

// SetPaused flips the module pause flag. Only the authority may call this
// through the message server; the keeper method itself is unguarded for
// genesis import.
func (k Keeper) SetPaused(ctx sdk.Context, paused bool) {
	store := k.getStore(ctx)
	if paused {
		store.Set(PausedKey, []byte{0x01})
	} else {
		store.Delete(PausedKey)
	}
}

// requireActive fails with ErrPaused when the module is halted
func (k Keeper) requireActive(ctx sdk.Context) error {
	if k.IsPaused(ctx) {
		return types.ErrPaused.Wrap("module operations are halted")
	}
	return nil
}

// requireAuthority fails with ErrUnauthorized unless addr is the module authority
func (k Keeper) requireAuthority(addr string) error {
	if addr != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, addr)
	}
	return nil
}

// WithReentrancyGuard executes fn with reentrancy protection for one pool.
// The lock is a KVStore marker so it participates in transaction rollback;
// it is released on every exit path including panics.
func (k Keeper) WithReentrancyGuard(ctx sdk.Context, pairID string, fn func() error) error {
	if err := k.acquireReentrancyLock(ctx, pairID); err != nil {
		return err
	}
	defer k.releaseReentrancyLock(ctx, pairID)

	return fn()
}

// acquireReentrancyLock acquires a reentrancy lock in the KVStore
func (k Keeper) acquireReentrancyLock(ctx sdk.Context, lockKey string) error {
	store := k.getStore(ctx)
	key := ReentrancyLockKey(lockKey)

	if store.Has(key) {
		return types.ErrReentrancy.Wrapf("pool %s is already locked", lockKey)
	}

	store.Set(key, []byte{0x01})
	return nil
}

// releaseReentrancyLock releases a reentrancy lock from the KVStore
func (k Keeper) releaseReentrancyLock(ctx sdk.Context, lockKey string) {
	store := k.getStore(ctx)
	store.Delete(ReentrancyLockKey(lockKey))
}
