package keeper

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/picoin-network/picoin/x/dex/types"
)

// GetParams returns the current module parameters, falling back to defaults
// when none have been stored
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}

	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		panic(fmt.Errorf("corrupted params record: %w", err))
	}
	return params
}

// SetParams persists the module parameters
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	bz, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("marshal params: %w", err)
	}

	store := k.getStore(ctx)
	store.Set(ParamsKey, bz)
	return nil
}

// UpdateFeePercentage changes the swap fee percentage. Authority-gated and
// allowed while paused.
func (k Keeper) UpdateFeePercentage(ctx sdk.Context, authority string, feePercentage math.Int) error {
	if err := k.requireAuthority(authority); err != nil {
		return err
	}
	if feePercentage.IsNil() || feePercentage.IsNegative() {
		return types.ErrInvalidInput.Wrap("fee percentage cannot be negative")
	}
	if feePercentage.GT(math.NewInt(types.MaxFeePercentage)) {
		return types.ErrFeeTooHigh.Wrapf("fee percentage %s exceeds maximum %d", feePercentage, types.MaxFeePercentage)
	}

	params := k.GetParams(ctx)
	oldFee := params.FeePercentage
	params.FeePercentage = feePercentage
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	k.Logger(ctx).Info("swap fee updated",
		"old_fee", oldFee.String(),
		"new_fee", feePercentage.String(),
	)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeeUpdated,
			sdk.NewAttribute(types.AttributeKeyFee, feePercentage.String()),
		),
	)
	return nil
}
