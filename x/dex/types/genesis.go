package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// LiquidityPosition records the share balance a provider holds in one pool
type LiquidityPosition struct {
	PairID   string   `json:"pair_id"`
	Provider string   `json:"provider"`
	Shares   math.Int `json:"shares"`
}

// FeeBalance records the accrued protocol fees for one denomination
type FeeBalance struct {
	Denom  string   `json:"denom"`
	Amount math.Int `json:"amount"`
}

// RewardBalance records the claimable reward balance of one provider
type RewardBalance struct {
	Provider string   `json:"provider"`
	Amount   math.Int `json:"amount"`
}

// GenesisState defines the dex module's genesis state
type GenesisState struct {
	Params         Params              `json:"params"`
	Paused         bool                `json:"paused"`
	Pools          []Pool              `json:"pools"`
	Positions      []LiquidityPosition `json:"positions"`
	FeeBalances    []FeeBalance        `json:"fee_balances"`
	RewardBalances []RewardBalance     `json:"reward_balances"`
	Orders         []LimitOrder        `json:"orders"`
	NextOrderID    uint64              `json:"next_order_id"`
}

// DefaultGenesis returns the default genesis state for the dex module
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:         DefaultParams(),
		Paused:         false,
		Pools:          []Pool{},
		Positions:      []LiquidityPosition{},
		FeeBalances:    []FeeBalance{},
		RewardBalances: []RewardBalance{},
		Orders:         []LimitOrder{},
		NextOrderID:    1,
	}
}

// Validate ensures the genesis state is well-formed
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seenPairs := make(map[string]bool)
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return fmt.Errorf("invalid pool %s: %w", pool.PairID(), err)
		}
		if seenPairs[pool.PairID()] {
			return fmt.Errorf("duplicate pool for pair %s", pool.PairID())
		}
		seenPairs[pool.PairID()] = true
	}

	// Per-pool share sums must match each pool's recorded total.
	shareSums := make(map[string]math.Int)
	for _, pos := range gs.Positions {
		if pos.Provider == "" {
			return fmt.Errorf("liquidity position missing provider address")
		}
		if pos.Shares.IsNil() || pos.Shares.IsNegative() {
			return fmt.Errorf("liquidity position for %s has invalid shares", pos.PairID)
		}
		if !seenPairs[pos.PairID] {
			return fmt.Errorf("liquidity position references unknown pool %s", pos.PairID)
		}
		sum, ok := shareSums[pos.PairID]
		if !ok {
			sum = math.ZeroInt()
		}
		shareSums[pos.PairID] = sum.Add(pos.Shares)
	}
	for _, pool := range gs.Pools {
		sum, ok := shareSums[pool.PairID()]
		if !ok {
			sum = math.ZeroInt()
		}
		if !sum.Equal(pool.TotalShares) {
			return fmt.Errorf("pool %s share sum %s does not match total shares %s", pool.PairID(), sum, pool.TotalShares)
		}
	}

	for _, fb := range gs.FeeBalances {
		if fb.Denom == "" {
			return fmt.Errorf("fee balance missing denom")
		}
		if fb.Amount.IsNil() || fb.Amount.IsNegative() {
			return fmt.Errorf("fee balance for %s cannot be negative", fb.Denom)
		}
	}

	for _, rb := range gs.RewardBalances {
		if rb.Provider == "" {
			return fmt.Errorf("reward balance missing provider address")
		}
		if rb.Amount.IsNil() || rb.Amount.IsNegative() {
			return fmt.Errorf("reward balance for %s cannot be negative", rb.Provider)
		}
	}

	if gs.NextOrderID == 0 {
		return fmt.Errorf("next order id must be positive")
	}
	for _, order := range gs.Orders {
		if order.ID == 0 || order.ID >= gs.NextOrderID {
			return fmt.Errorf("order id %d out of range", order.ID)
		}
		if order.Owner == "" {
			return fmt.Errorf("order %d missing owner address", order.ID)
		}
		if order.AmountIn.IsNil() || !order.AmountIn.IsPositive() {
			return fmt.Errorf("order %d amount in must be positive", order.ID)
		}
	}

	return nil
}
