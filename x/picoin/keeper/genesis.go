package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/picoin-network/picoin/x/picoin/types"
)

// InitGenesis initializes the picoin module state from a genesis state
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := genState.Validate(); err != nil {
		panic(fmt.Errorf("invalid picoin genesis state: %w", err))
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
	k.SetPaused(ctx, genState.Paused)
	if err := k.setTotalFeesCollected(ctx, genState.TotalFeesCollected); err != nil {
		panic(err)
	}
}

// ExportGenesis returns the picoin module's exported genesis state
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	return &types.GenesisState{
		Params:             k.GetParams(ctx),
		Paused:             k.IsPaused(ctx),
		TotalFeesCollected: k.TotalFeesCollected(ctx),
	}
}
