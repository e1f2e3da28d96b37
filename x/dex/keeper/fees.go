package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/picoin-network/picoin/x/dex/types"
)

// GetFeeBalance returns the accrued protocol fees for a denomination
func (k Keeper) GetFeeBalance(ctx sdk.Context, denom string) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(FeeBalanceKey(denom))
	if bz == nil {
		return math.ZeroInt()
	}

	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(fmt.Errorf("corrupted fee balance for %s: %w", denom, err))
	}
	return amount
}

// setFeeBalance stores the accrued fee balance for a denomination.
// A zero balance deletes the record.
func (k Keeper) setFeeBalance(ctx sdk.Context, denom string, amount math.Int) error {
	if amount.IsNegative() {
		return types.ErrUnderflow.Wrapf("fee balance for %s cannot go negative", denom)
	}

	store := k.getStore(ctx)
	key := FeeBalanceKey(denom)

	if amount.IsZero() {
		store.Delete(key)
		return nil
	}

	bz, err := amount.Marshal()
	if err != nil {
		return fmt.Errorf("marshal fee balance for %s: %w", denom, err)
	}
	store.Set(key, bz)
	return nil
}

// addFeeBalance accrues fees for a denomination
func (k Keeper) addFeeBalance(ctx sdk.Context, denom string, amount math.Int) error {
	if amount.IsZero() {
		return nil
	}
	GetMetrics().FeesAccrued.WithLabelValues(denom).Add(math.LegacyNewDecFromInt(amount).MustFloat64())
	return k.setFeeBalance(ctx, denom, k.GetFeeBalance(ctx, denom).Add(amount))
}

// IterateFeeBalances calls fn for every denomination with accrued fees
func (k Keeper) IterateFeeBalances(ctx sdk.Context, fn func(denom string, amount math.Int) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, FeeBalanceKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		denom := string(iterator.Key()[len(FeeBalanceKeyPrefix):])
		var amount math.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			panic(fmt.Errorf("corrupted fee balance for %s: %w", denom, err))
		}
		if fn(denom, amount) {
			break
		}
	}
}

// WithdrawFees pays the entire accrued fee balance for one denomination to
// the authority and resets it to zero. Authority-gated, allowed while paused.
func (k Keeper) WithdrawFees(ctx sdk.Context, authority sdk.AccAddress, denom string) (math.Int, error) {
	if err := k.requireAuthority(authority.String()); err != nil {
		return math.Int{}, err
	}

	amount := k.GetFeeBalance(ctx, denom)
	if amount.IsZero() {
		return math.ZeroInt(), nil
	}

	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	if err := k.bankKeeper.SendCoins(ctx, k.moduleAddr, authority, coins); err != nil {
		return math.Int{}, types.ErrTransferFailed.Wrapf("push %s: %s", coins, err)
	}
	if err := k.setFeeBalance(ctx, denom, math.ZeroInt()); err != nil {
		return math.Int{}, err
	}

	k.Logger(ctx).Info("fees withdrawn",
		"denom", denom,
		"amount", amount.String(),
	)

	GetMetrics().FeesWithdrawn.WithLabelValues(denom).Add(math.LegacyNewDecFromInt(amount).MustFloat64())

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeesWithdrawn,
			sdk.NewAttribute(types.AttributeKeyToken, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	return amount, nil
}
