package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/picoin-network/picoin/x/dex/types"
)

// Pause halts all state-changing module operations. Authority-gated.
func (k Keeper) Pause(ctx sdk.Context, authority string) error {
	if err := k.requireAuthority(authority); err != nil {
		return err
	}
	if k.IsPaused(ctx) {
		return types.ErrPaused.Wrap("module is already paused")
	}

	k.SetPaused(ctx, true)
	GetMetrics().PauseEvents.Inc()
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
	GetMetrics().PauseEvents.Inc()
	k.Logger(ctx).Info("module unpaused", "authority", authority)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeModuleUnpaused),
	)
	return nil
}
