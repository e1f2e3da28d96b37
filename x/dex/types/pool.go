package types

import (
	"cosmossdk.io/math"
)

// Pool holds the reserves and liquidity-share ledger for one token pair.
// TokenA and TokenB are always stored in canonical (sorted) order; the
// pair itself is unordered from the caller's point of view.
type Pool struct {
	TokenA      string   `json:"token_a"`
	TokenB      string   `json:"token_b"`
	ReserveA    math.Int `json:"reserve_a"`
	ReserveB    math.Int `json:"reserve_b"`
	TotalShares math.Int `json:"total_shares"`
}

// NewPool returns an empty pool for the given pair. Denoms are sorted
// into canonical order.
func NewPool(tokenA, tokenB string) Pool {
	tokenA, tokenB = SortDenoms(tokenA, tokenB)
	return Pool{
		TokenA:      tokenA,
		TokenB:      tokenB,
		ReserveA:    math.ZeroInt(),
		ReserveB:    math.ZeroInt(),
		TotalShares: math.ZeroInt(),
	}
}

// PairID returns the canonical pair identifier for the pool.
func (p Pool) PairID() string {
	return PairID(p.TokenA, p.TokenB)
}

// IsEmpty reports whether the pool holds no reserves and no shares.
func (p Pool) IsEmpty() bool {
	return p.ReserveA.IsZero() && p.ReserveB.IsZero() && p.TotalShares.IsZero()
}

// ReservesFor returns the pool's reserves oriented for a swap selling
// tokenIn: the first value is the reserve of tokenIn, the second the
// reserve of the other token.
func (p Pool) ReservesFor(tokenIn string) (reserveIn, reserveOut math.Int) {
	if tokenIn == p.TokenA {
		return p.ReserveA, p.ReserveB
	}
	return p.ReserveB, p.ReserveA
}

// ApplyDelta atomically adjusts reserves and total shares in canonical
// order. It fails with ErrUnderflow when any resulting quantity would go
// negative; the pool is unchanged on failure.
func (p *Pool) ApplyDelta(deltaA, deltaB, deltaShares math.Int) error {
	newA := p.ReserveA.Add(deltaA)
	newB := p.ReserveB.Add(deltaB)
	newShares := p.TotalShares.Add(deltaShares)

	if newA.IsNegative() {
		return ErrUnderflow.Wrapf("reserve %s would go negative: %s", p.TokenA, newA)
	}
	if newB.IsNegative() {
		return ErrUnderflow.Wrapf("reserve %s would go negative: %s", p.TokenB, newB)
	}
	if newShares.IsNegative() {
		return ErrUnderflow.Wrapf("total shares would go negative: %s", newShares)
	}

	p.ReserveA = newA
	p.ReserveB = newB
	p.TotalShares = newShares
	return nil
}

// ApplyDeltaFor adjusts reserves oriented by the token being sold into
// the pool: deltaIn applies to tokenIn's reserve, deltaOut to the other.
func (p *Pool) ApplyDeltaFor(tokenIn string, deltaIn, deltaOut, deltaShares math.Int) error {
	if tokenIn == p.TokenA {
		return p.ApplyDelta(deltaIn, deltaOut, deltaShares)
	}
	return p.ApplyDelta(deltaOut, deltaIn, deltaShares)
}

// Validate checks the pool's arithmetic invariants: no negative
// quantities, and reserves and shares are zero together or positive
// together (an empty pool has no reserves and no shares).
func (p Pool) Validate() error {
	if p.ReserveA.IsNil() || p.ReserveB.IsNil() || p.TotalShares.IsNil() {
		return ErrInvalidPoolState.Wrap("pool has nil quantities")
	}
	if p.ReserveA.IsNegative() {
		return ErrInvalidPoolState.Wrapf("negative reserve A: %s", p.ReserveA)
	}
	if p.ReserveB.IsNegative() {
		return ErrInvalidPoolState.Wrapf("negative reserve B: %s", p.ReserveB)
	}
	if p.TotalShares.IsNegative() {
		return ErrInvalidPoolState.Wrapf("negative total shares: %s", p.TotalShares)
	}

	zeroA, zeroB, zeroShares := p.ReserveA.IsZero(), p.ReserveB.IsZero(), p.TotalShares.IsZero()
	if zeroA != zeroB || zeroA != zeroShares {
		return ErrInvalidPoolState.Wrapf(
			"pool %s is partially empty: reserveA=%s reserveB=%s shares=%s",
			p.PairID(), p.ReserveA, p.ReserveB, p.TotalShares,
		)
	}
	return nil
}
