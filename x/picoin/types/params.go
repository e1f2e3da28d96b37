package types

import (
	"cosmossdk.io/math"
)

// TargetPrice returns the fixed peg target the supply controller tracks:
// 314159 units, scaled to 18 decimal places.
func TargetPrice() math.Int {
	return math.NewInt(314159).Mul(PriceScale())
}

// PriceScale returns the fixed-point scale for prices (1e18)
func PriceScale() math.Int {
	return math.NewIntWithDecimal(1, 18)
}

// InitialSupply returns the genesis supply of the pegged asset:
// 100 billion units, scaled to 18 decimal places.
func InitialSupply() math.Int {
	return math.NewInt(100_000_000_000).Mul(PriceScale())
}

// Params defines the parameters for the picoin module
type Params struct {
	// Denom is the base denomination of the pegged asset
	Denom string `json:"denom"`
	// PriceAsset is the oracle asset key the supply controller reads
	PriceAsset string `json:"price_asset"`
	// TransactionFeeBps is the transfer fee in basis points
	TransactionFeeBps math.Int `json:"transaction_fee_bps"`
}

// DefaultParams returns the default picoin parameters: a 0.25% transfer fee
// on the upicoin denomination
func DefaultParams() Params {
	return Params{
		Denom:             DefaultDenom,
		PriceAsset:        DefaultPriceAsset,
		TransactionFeeBps: math.NewInt(25),
	}
}

// Validate checks the parameter set
func (p Params) Validate() error {
	if p.Denom == "" {
		return ErrInvalidInput.Wrap("denom cannot be empty")
	}
	if p.PriceAsset == "" {
		return ErrInvalidInput.Wrap("price asset cannot be empty")
	}
	if p.TransactionFeeBps.IsNil() || p.TransactionFeeBps.IsNegative() {
		return ErrInvalidInput.Wrap("transaction fee cannot be negative")
	}
	if p.TransactionFeeBps.GT(math.NewInt(MaxTransactionFeeBps)) {
		return ErrFeeTooHigh.Wrapf("transaction fee %s bps exceeds maximum %d", p.TransactionFeeBps, MaxTransactionFeeBps)
	}
	return nil
}
