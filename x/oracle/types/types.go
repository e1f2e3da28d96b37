package types

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
)

const (
	// ModuleName defines the module name
	ModuleName = "oracle"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

// Module sentinel errors
var (
	ErrInvalidInput  = errors.Register(ModuleName, 2, "invalid input")
	ErrPriceNotFound = errors.Register(ModuleName, 3, "price not found")
	ErrUnauthorized  = errors.Register(ModuleName, 4, "unauthorized")
)

// Event types and attribute keys
const (
	EventTypePriceUpdated = "price_updated"

	AttributeKeyAsset  = "asset"
	AttributeKeyPrice  = "price"
	AttributeKeyHeight = "height"
)

// Price is a posted price observation for one asset. Prices are fixed-point
// integers with 18 decimal places.
type Price struct {
	Asset       string   `json:"asset"`
	Price       math.Int `json:"price"`
	BlockHeight int64    `json:"block_height"`
}

// Validate checks a price record
func (p Price) Validate() error {
	if p.Asset == "" {
		return ErrInvalidInput.Wrap("asset cannot be empty")
	}
	if p.Price.IsNil() || !p.Price.IsPositive() {
		return ErrInvalidInput.Wrap("price must be positive")
	}
	return nil
}

// GenesisState defines the oracle module's genesis state
type GenesisState struct {
	Prices []Price `json:"prices"`
}

// DefaultGenesis returns the default genesis state for the oracle module
func DefaultGenesis() *GenesisState {
	return &GenesisState{Prices: []Price{}}
}

// Validate ensures the genesis state is well-formed
func (gs GenesisState) Validate() error {
	seen := make(map[string]bool)
	for _, price := range gs.Prices {
		if err := price.Validate(); err != nil {
			return err
		}
		if seen[price.Asset] {
			return ErrInvalidInput.Wrapf("duplicate price for asset %s", price.Asset)
		}
		seen[price.Asset] = true
	}
	return nil
}
