package types

import (
	"cosmossdk.io/math"
)

// MaxFeePercentage bounds the swap skim fee at 100% of the input amount.
const MaxFeePercentage = 100

// Params defines the parameters for the DEX module.
//
// FeePercentage is the swap skim fee in whole percent, deducted from the
// reserve credit of every swap. It is charged in addition to the 0.3%
// multiplicative fee embedded in the quote formula; the two mechanisms
// are intentionally separate and must not be unified.
type Params struct {
	FeePercentage math.Int `json:"fee_percentage"`
	// RewardDenom is the asset paid out by the simplified reward pool.
	RewardDenom string `json:"reward_denom"`
}

// DefaultParams returns default parameters for the DEX module.
func DefaultParams() Params {
	return Params{
		FeePercentage: math.NewInt(1), // 1%
		RewardDenom:   "upicoin",
	}
}

// Validate validates the set of params.
func (p Params) Validate() error {
	if p.FeePercentage.IsNil() || p.FeePercentage.IsNegative() {
		return ErrInvalidInput.Wrap("fee percentage must be non-negative")
	}
	if p.FeePercentage.GT(math.NewInt(MaxFeePercentage)) {
		return ErrFeeTooHigh.Wrapf("fee percentage %s exceeds %d", p.FeePercentage, MaxFeePercentage)
	}
	if p.RewardDenom == "" {
		return ErrInvalidInput.Wrap("reward denom cannot be empty")
	}
	return nil
}
