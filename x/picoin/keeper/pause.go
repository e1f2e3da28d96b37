package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/picoin-network/picoin/x/picoin/types"
)

// IsPaused reports whether the module is halted
func (k Keeper) IsPaused(ctx sdk.Context) bool {
	return k.getStore(ctx).Has(PausedKey)
}

// SetPaused flips the module pause flag without authorization checks, for
// genesis import
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

// Pause halts all state-changing module operations. Authority-gated.
func (k Keeper) Pause(ctx sdk.Context, authority string) error {
	if err := k.requireAuthority(authority); err != nil {
		return err
	}
	if k.IsPaused(ctx) {
		return types.ErrPaused.Wrap("module is already paused")
	}

	k.SetPaused(ctx, true)
	k.Logger(ctx).Info("module paused", "authority", authority)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeModulePaused),
	)
	return nil
}

// Unpause resumes module operations. Authority-gated.
func (k Keeper) Unpause(ctx sdk.Context, authority string) error {
	if err := k.requireAuthority(authority); err != nil {
		return err
	}
	if !k.IsPaused(ctx) {
		return types.ErrInvalidInput.Wrap("module is not paused")
	}

	k.SetPaused(ctx, false)
	k.Logger(ctx).Info("module unpaused", "authority", authority)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeModuleUnpaused),
	)
	return nil
}
