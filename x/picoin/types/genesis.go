package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// GenesisState defines the picoin module's genesis state
type GenesisState struct {
	Params             Params   `json:"params"`
	Paused             bool     `json:"paused"`
	TotalFeesCollected math.Int `json:"total_fees_collected"`
}

// DefaultGenesis returns the default genesis state for the picoin module
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:             DefaultParams(),
		Paused:             false,
		TotalFeesCollected: math.ZeroInt(),
	}
}

// Validate ensures the genesis state is well-formed
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if gs.TotalFeesCollected.IsNil() || gs.TotalFeesCollected.IsNegative() {
		return fmt.Errorf("total fees collected cannot be negative")
	}
	return nil
}
