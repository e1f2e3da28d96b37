package keeper

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/picoin-network/picoin/x/dex/types"
)

// LimitOrderKey returns the store key for a limit order
func LimitOrderKey(orderID uint64) []byte {
	orderIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(orderIDBytes, orderID)
	return append(LimitOrderKeyPrefix, orderIDBytes...)
}

// GetLimitOrder returns a stored limit order
func (k Keeper) GetLimitOrder(ctx sdk.Context, orderID uint64) (types.LimitOrder, bool) {
	store := k.getStore(ctx)
	bz := store.Get(LimitOrderKey(orderID))
	if bz == nil {
		return types.LimitOrder{}, false
	}

	var order types.LimitOrder
	if err := json.Unmarshal(bz, &order); err != nil {
		panic(fmt.Errorf("corrupted limit order %d: %w", orderID, err))
	}
	return order, true
}

// SetLimitOrder persists a limit order
func (k Keeper) SetLimitOrder(ctx sdk.Context, order types.LimitOrder) error {
	bz, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal limit order %d: %w", order.ID, err)
	}

	store := k.getStore(ctx)
	store.Set(LimitOrderKey(order.ID), bz)
	return nil
}

// GetNextOrderID returns the next available order ID without consuming it
func (k Keeper) GetNextOrderID(ctx sdk.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(LimitOrderCountKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

// SetNextOrderID stores the next available order ID
func (k Keeper) SetNextOrderID(ctx sdk.Context, id uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	store.Set(LimitOrderCountKey, bz)
}

// PlaceLimitOrder records a standing order and locks its input tokens in
// module custody. Orders are record-keeping only; nothing matches them
// against pool reserves.
func (k Keeper) PlaceLimitOrder(ctx sdk.Context, owner sdk.AccAddress, tokenIn, tokenOut string, amountIn math.Int, limitPrice math.LegacyDec) (uint64, error) {
	if err := k.requireActive(ctx); err != nil {
		return 0, err
	}
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return 0, types.ErrInvalidInput.Wrap("amount in must be positive")
	}
	if limitPrice.IsNil() || !limitPrice.IsPositive() {
		return 0, types.ErrInvalidInput.Wrap("limit price must be positive")
	}
	if tokenIn == tokenOut {
		return 0, types.ErrInvalidInput.Wrap("cannot trade identical tokens")
	}

	coins := sdk.NewCoins(sdk.NewCoin(tokenIn, amountIn))
	if err := k.bankKeeper.SendCoins(ctx, owner, k.moduleAddr, coins); err != nil {
		return 0, types.ErrTransferFailed.Wrapf("lock %s: %s", coins, err)
	}

	orderID := k.GetNextOrderID(ctx)
	order := types.LimitOrder{
		ID:              orderID,
		Owner:           owner.String(),
		TokenIn:         tokenIn,
		TokenOut:        tokenOut,
		AmountIn:        amountIn,
		LimitPrice:      limitPrice,
		Status:          types.OrderStatusOpen,
		CreatedAt:       ctx.BlockTime(),
		CreatedAtHeight: ctx.BlockHeight(),
	}
	if err := k.SetLimitOrder(ctx, order); err != nil {
		return 0, err
	}
	k.SetNextOrderID(ctx, orderID+1)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOrderPlaced,
			sdk.NewAttribute(types.AttributeKeyOrderID, fmt.Sprintf("%d", orderID)),
			sdk.NewAttribute(types.AttributeKeyOwner, owner.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, tokenIn),
			sdk.NewAttribute(types.AttributeKeyTokenOut, tokenOut),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
		),
	)

	return orderID, nil
}

// CancelLimitOrder cancels an open order and returns its locked tokens
func (k Keeper) CancelLimitOrder(ctx sdk.Context, owner sdk.AccAddress, orderID uint64) error {
	if err := k.requireActive(ctx); err != nil {
		return err
	}

	order, found := k.GetLimitOrder(ctx, orderID)
	if !found {
		return types.ErrOrderNotFound.Wrapf("order %d does not exist", orderID)
	}
	if order.Owner != owner.String() {
		return types.ErrUnauthorized.Wrapf("order %d belongs to %s", orderID, order.Owner)
	}
	if !order.IsOpen() {
		return types.ErrInvalidInput.Wrapf("order %d is %s", orderID, order.Status)
	}

	coins := sdk.NewCoins(sdk.NewCoin(order.TokenIn, order.AmountIn))
	if err := k.bankKeeper.SendCoins(ctx, k.moduleAddr, owner, coins); err != nil {
		return types.ErrTransferFailed.Wrapf("unlock %s: %s", coins, err)
	}

	order.Status = types.OrderStatusCancelled
	if err := k.SetLimitOrder(ctx, order); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOrderCancelled,
			sdk.NewAttribute(types.AttributeKeyOrderID, fmt.Sprintf("%d", orderID)),
			sdk.NewAttribute(types.AttributeKeyOwner, owner.String()),
		),
	)
	return nil
}

// IterateLimitOrders calls fn for every stored order until fn returns true
func (k Keeper) IterateLimitOrders(ctx sdk.Context, fn func(order types.LimitOrder) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, LimitOrderKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var order types.LimitOrder
		if err := json.Unmarshal(iterator.Value(), &order); err != nil {
			panic(fmt.Errorf("corrupted limit order record: %w", err))
		}
		if fn(order) {
			break
		}
	}
}
