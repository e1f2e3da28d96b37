package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/picoin-network/picoin/x/picoin/types"
)

// Mint creates new supply for a recipient. Authority-gated, allowed while
// paused.
func (k Keeper) Mint(ctx sdk.Context, authority string, recipient sdk.AccAddress, amount math.Int) error {
	if err := k.requireAuthority(authority); err != nil {
		return err
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidInput.Wrap("amount must be positive")
	}

	denom := k.GetParams(ctx).Denom
	if err := k.mintTo(ctx, recipient, denom, amount); err != nil {
		return err
	}

	k.Logger(ctx).Info("supply minted",
		"recipient", recipient.String(),
		"amount", amount.String(),
	)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMint,
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// Burn destroys supply held by an address. Authority-gated, allowed while
// paused.
func (k Keeper) Burn(ctx sdk.Context, authority string, holder sdk.AccAddress, amount math.Int) error {
	if err := k.requireAuthority(authority); err != nil {
		return err
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidInput.Wrap("amount must be positive")
	}

	denom := k.GetParams(ctx).Denom
	if err := k.burnFrom(ctx, holder, denom, amount); err != nil {
		return err
	}

	k.Logger(ctx).Info("supply burned",
		"holder", holder.String(),
		"amount", amount.String(),
	)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBurn,
			sdk.NewAttribute(types.AttributeKeySender, holder.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// UpdateTransactionFee changes the transfer fee in basis points.
// Authority-gated, allowed while paused.
func (k Keeper) UpdateTransactionFee(ctx sdk.Context, authority string, feeBps math.Int) error {
	if err := k.requireAuthority(authority); err != nil {
		return err
	}
	if feeBps.IsNil() || feeBps.IsNegative() {
		return types.ErrInvalidInput.Wrap("fee cannot be negative")
	}
	if feeBps.GT(math.NewInt(types.MaxTransactionFeeBps)) {
		return types.ErrFeeTooHigh.Wrapf("fee %s bps exceeds maximum %d", feeBps, types.MaxTransactionFeeBps)
	}

	params := k.GetParams(ctx)
	oldFee := params.TransactionFeeBps
	params.TransactionFeeBps = feeBps
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	k.Logger(ctx).Info("transaction fee updated",
		"old_fee_bps", oldFee.String(),
		"new_fee_bps", feeBps.String(),
	)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeeUpdated,
			sdk.NewAttribute(types.AttributeKeyFee, feeBps.String()),
		),
	)
	return nil
}

// SetPriceFeed repoints the supply controller at a different oracle asset.
// Authority-gated, allowed while paused.
func (k Keeper) SetPriceFeed(ctx sdk.Context, authority, asset string) error {
	if err := k.requireAuthority(authority); err != nil {
		return err
	}
	if asset == "" {
		return types.ErrInvalidInput.Wrap("asset cannot be empty")
	}

	params := k.GetParams(ctx)
	oldAsset := params.PriceAsset
	params.PriceAsset = asset
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	k.Logger(ctx).Info("price feed updated",
		"old_asset", oldAsset,
		"new_asset", asset,
	)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePriceFeedSet,
			sdk.NewAttribute(types.AttributeKeyAsset, asset),
		),
	)
	return nil
}
