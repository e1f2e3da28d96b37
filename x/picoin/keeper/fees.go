package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/picoin-network/picoin/x/picoin/types"
)

// TotalFeesCollected returns the running total of transfer fees held in
// module custody
func (k Keeper) TotalFeesCollected(ctx sdk.Context) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(TotalFeesKey)
	if bz == nil {
		return math.ZeroInt()
	}

	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(fmt.Errorf("corrupted fee total: %w", err))
	}
	return amount
}

// setTotalFeesCollected stores the running fee total
func (k Keeper) setTotalFeesCollected(ctx sdk.Context, amount math.Int) error {
	if amount.IsNegative() {
		return types.ErrInvalidInput.Wrap("fee total cannot go negative")
	}

	store := k.getStore(ctx)
	if amount.IsZero() {
		store.Delete(TotalFeesKey)
		return nil
	}

	bz, err := amount.Marshal()
	if err != nil {
		return fmt.Errorf("marshal fee total: %w", err)
	}
	store.Set(TotalFeesKey, bz)
	return nil
}

// addCollectedFees accrues a transfer fee into the running total
func (k Keeper) addCollectedFees(ctx sdk.Context, fee math.Int) error {
	return k.setTotalFeesCollected(ctx, k.TotalFeesCollected(ctx).Add(fee))
}

// WithdrawFees pays the entire collected fee balance to the authority and
// resets it to zero. Authority-gated, allowed while paused.
func (k Keeper) WithdrawFees(ctx sdk.Context, authority sdk.AccAddress) (math.Int, error) {
	if err := k.requireAuthority(authority.String()); err != nil {
		return math.Int{}, err
	}

	amount := k.TotalFeesCollected(ctx)
	if amount.IsZero() {
		return math.ZeroInt(), nil
	}

	denom := k.GetParams(ctx).Denom
	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, authority, coins); err != nil {
		return math.Int{}, types.ErrTransferFailed.Wrapf("push %s: %s", coins, err)
	}
	if err := k.setTotalFeesCollected(ctx, math.ZeroInt()); err != nil {
		return math.Int{}, err
	}

	k.Logger(ctx).Info("fees withdrawn", "amount", amount.String())

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeesWithdrawn,
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	return amount, nil
}
