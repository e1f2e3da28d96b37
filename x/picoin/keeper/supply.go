package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/picoin-network/picoin/x/picoin/types"
)

// AdjustSupply runs one supply controller step against the live oracle
// price. Authority-gated.
//
// The controller is linear and unbounded: each invocation mints or burns
// 1000 base units per whole unit of price deviation from the target,
// recomputed from scratch against the current price. Minted coins go to
// the authority; burned coins come from the authority's balance. An
// on-target price is a no-op and emits nothing.
//
// A missing oracle price fails the call; it is never defaulted.
func (k Keeper) AdjustSupply(ctx sdk.Context, authority sdk.AccAddress) (direction string, amount math.Int, err error) {
	if err := k.requireAuthority(authority.String()); err != nil {
		return "", math.Int{}, err
	}
	if err := k.requireActive(ctx); err != nil {
		return "", math.Int{}, err
	}

	params := k.GetParams(ctx)
	price, err := k.oracleKeeper.GetPrice(ctx, params.PriceAsset)
	if err != nil {
		return "", math.Int{}, types.ErrSupplyAdjust.Wrapf("price reference unavailable: %s", err)
	}

	target := types.TargetPrice()
	current := price.Price

	switch {
	case current.LT(target):
		amount = target.Sub(current).Quo(types.PriceScale()).MulRaw(1000)
		if amount.IsZero() {
			return "", math.ZeroInt(), nil
		}
		if err := k.mintTo(ctx, authority, params.Denom, amount); err != nil {
			return "", math.Int{}, err
		}
		direction = types.DirectionMint

	case current.GT(target):
		amount = current.Sub(target).Quo(types.PriceScale()).MulRaw(1000)
		if amount.IsZero() {
			return "", math.ZeroInt(), nil
		}
		if err := k.burnFrom(ctx, authority, params.Denom, amount); err != nil {
			return "", math.Int{}, err
		}
		direction = types.DirectionBurn

	default:
		// On target, nothing to do and no event.
		return "", math.ZeroInt(), nil
	}

	k.Logger(ctx).Info("supply adjusted",
		"direction", direction,
		"amount", amount.String(),
		"current_price", current.String(),
		"target_price", target.String(),
	)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSupplyAdjusted,
			sdk.NewAttribute(types.AttributeKeyDirection, direction),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	return direction, amount, nil
}

// mintTo mints new supply into the module account and pays it out
func (k Keeper) mintTo(ctx sdk.Context, recipient sdk.AccAddress, denom string, amount math.Int) error {
	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, coins); err != nil {
		return types.ErrSupplyAdjust.Wrapf("mint %s: %s", coins, err)
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, coins); err != nil {
		return types.ErrSupplyAdjust.Wrapf("pay out %s: %s", coins, err)
	}
	return nil
}

// burnFrom pulls supply from a holder into the module account and burns it
func (k Keeper) burnFrom(ctx sdk.Context, holder sdk.AccAddress, denom string, amount math.Int) error {
	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, holder, types.ModuleName, coins); err != nil {
		return types.ErrSupplyAdjust.Wrapf("pull %s: %s", coins, err)
	}
	if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, coins); err != nil {
		return types.ErrSupplyAdjust.Wrapf("burn %s: %s", coins, err)
	}
	return nil
}
