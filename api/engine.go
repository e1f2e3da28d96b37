package api

import (
	"sort"
	"sync"

	"cosmossdk.io/math"

	dexkeeper "github.com/picoin-network/picoin/x/dex/keeper"
	dextypes "github.com/picoin-network/picoin/x/dex/types"
	picointypes "github.com/picoin-network/picoin/x/picoin/types"
)

// Engine is the read-only view of the exchange the handlers serve. It is
// deliberately narrow so the server can be tested without a chain process.
type Engine interface {
	Quote(tokenIn, tokenOut string, amountIn math.Int) (math.Int, error)
	Pools() ([]PoolResponse, error)
	Pool(pairID string) (PoolResponse, error)
	PegStatus() (PegStatusResponse, error)
}

// DevEngine is an in-memory Engine used for local development and tests.
// Pools are static snapshots; quoting runs the real pricing formula
// against them.
type DevEngine struct {
	mu    sync.RWMutex
	pools map[string]dextypes.Pool

	peg PegStatusResponse
}

// NewDevEngine returns an engine with no pools and a default peg view
func NewDevEngine() *DevEngine {
	return &DevEngine{
		pools: make(map[string]dextypes.Pool),
		peg: PegStatusResponse{
			Name:        picointypes.TokenName,
			Symbol:      picointypes.TokenSymbol,
			Decimals:    picointypes.Decimals,
			Asset:       picointypes.DefaultPriceAsset,
			TargetPrice: picointypes.TargetPrice().String(),
			TotalSupply: "0",
		},
	}
}

// SetPool installs or replaces a pool snapshot
func (e *DevEngine) SetPool(pool dextypes.Pool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pools[pool.PairID()] = pool
}

// SetPegStatus replaces the peg snapshot. Token metadata is fixed and
// carried over when the caller leaves it blank.
func (e *DevEngine) SetPegStatus(peg PegStatusResponse) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if peg.Name == "" {
		peg.Name = picointypes.TokenName
	}
	if peg.Symbol == "" {
		peg.Symbol = picointypes.TokenSymbol
	}
	if peg.Decimals == 0 {
		peg.Decimals = picointypes.Decimals
	}
	e.peg = peg
}

// Quote prices a swap against the stored pool snapshot
func (e *DevEngine) Quote(tokenIn, tokenOut string, amountIn math.Int) (math.Int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	pool, ok := e.pools[dextypes.PairID(tokenIn, tokenOut)]
	if !ok {
		return math.Int{}, dextypes.ErrPoolNotFound.Wrapf("no pool for %s", dextypes.PairID(tokenIn, tokenOut))
	}

	reserveIn, reserveOut := pool.ReservesFor(tokenIn)
	return dexkeeper.CalculateSwapOutput(amountIn, reserveIn, reserveOut)
}

// Pools returns all pool snapshots sorted by pair
func (e *DevEngine) Pools() ([]PoolResponse, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]PoolResponse, 0, len(e.pools))
	for _, pool := range e.pools {
		out = append(out, poolResponse(pool))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PairID < out[j].PairID })
	return out, nil
}

// Pool returns one pool snapshot by pair identifier
func (e *DevEngine) Pool(pairID string) (PoolResponse, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	pool, ok := e.pools[pairID]
	if !ok {
		return PoolResponse{}, dextypes.ErrPoolNotFound.Wrapf("no pool for %s", pairID)
	}
	return poolResponse(pool), nil
}

// PegStatus returns the peg snapshot
func (e *DevEngine) PegStatus() (PegStatusResponse, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.peg, nil
}

func poolResponse(pool dextypes.Pool) PoolResponse {
	return PoolResponse{
		PairID:      pool.PairID(),
		TokenA:      pool.TokenA,
		TokenB:      pool.TokenB,
		ReserveA:    pool.ReserveA.String(),
		ReserveB:    pool.ReserveB.String(),
		TotalShares: pool.TotalShares.String(),
	}
}

var _ Engine = (*DevEngine)(nil)
