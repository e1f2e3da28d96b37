package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/picoin-network/picoin/x/dex/types"
)

// InitGenesis initializes the dex module state from a genesis state
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := genState.Validate(); err != nil {
		panic(fmt.Errorf("invalid dex genesis state: %w", err))
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
	k.SetPaused(ctx, genState.Paused)

	for _, pool := range genState.Pools {
		if err := k.SetPool(ctx, pool); err != nil {
			panic(err)
		}
	}
	for _, pos := range genState.Positions {
		if err := k.SetLiquidity(ctx, pos.PairID, pos.Provider, pos.Shares); err != nil {
			panic(err)
		}
	}
	for _, fb := range genState.FeeBalances {
		if err := k.setFeeBalance(ctx, fb.Denom, fb.Amount); err != nil {
			panic(err)
		}
	}
	for _, rb := range genState.RewardBalances {
		if err := k.setRewardBalance(ctx, rb.Provider, rb.Amount); err != nil {
			panic(err)
		}
	}
	for _, order := range genState.Orders {
		if err := k.SetLimitOrder(ctx, order); err != nil {
			panic(err)
		}
	}
	k.SetNextOrderID(ctx, genState.NextOrderID)
}

// ExportGenesis returns the dex module's exported genesis state
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	genState := types.GenesisState{
		Params:         k.GetParams(ctx),
		Paused:         k.IsPaused(ctx),
		Pools:          []types.Pool{},
		Positions:      []types.LiquidityPosition{},
		FeeBalances:    []types.FeeBalance{},
		RewardBalances: []types.RewardBalance{},
		Orders:         []types.LimitOrder{},
		NextOrderID:    k.GetNextOrderID(ctx),
	}

	k.IteratePools(ctx, func(pool types.Pool) bool {
		genState.Pools = append(genState.Pools, pool)
		return false
	})
	for _, pool := range genState.Pools {
		pairID := pool.PairID()
		k.IterateLiquidity(ctx, pairID, func(provider string, shares math.Int) bool {
			genState.Positions = append(genState.Positions, types.LiquidityPosition{
				PairID:   pairID,
				Provider: provider,
				Shares:   shares,
			})
			return false
		})
	}
	k.IterateFeeBalances(ctx, func(denom string, amount math.Int) bool {
		genState.FeeBalances = append(genState.FeeBalances, types.FeeBalance{Denom: denom, Amount: amount})
		return false
	})
	k.IterateRewardBalances(ctx, func(provider string, amount math.Int) bool {
		genState.RewardBalances = append(genState.RewardBalances, types.RewardBalance{Provider: provider, Amount: amount})
		return false
	})
	k.IterateLimitOrders(ctx, func(order types.LimitOrder) bool {
		genState.Orders = append(genState.Orders, order)
		return false
	})

	return &genState
}
