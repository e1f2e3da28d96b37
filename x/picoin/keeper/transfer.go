package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/picoin-network/picoin/x/picoin/types"
)

// Transfer moves the pegged asset between two holders, routing a fee to
// module custody.
//
// The fee routing is two separate bank sends: the net amount to the
// recipient, then the fee to the module account. Both legs must succeed; if
// the fee leg fails the net leg is reverted. A module-wide lock prevents
// the split from being re-entered while either leg is in flight.
func (k Keeper) Transfer(ctx sdk.Context, sender, recipient sdk.AccAddress, amount math.Int) (math.Int, error) {
	if err := k.requireActive(ctx); err != nil {
		return math.Int{}, err
	}
	if amount.IsNil() || !amount.IsPositive() {
		return math.Int{}, types.ErrInvalidInput.Wrap("amount must be positive")
	}

	if err := k.acquireTransferLock(ctx); err != nil {
		return math.Int{}, err
	}
	defer k.releaseTransferLock(ctx)

	params := k.GetParams(ctx)
	fee := amount.Mul(params.TransactionFeeBps).QuoRaw(10000)
	net := amount.Sub(fee)

	netCoins := sdk.NewCoins(sdk.NewCoin(params.Denom, net))
	if err := k.bankKeeper.SendCoins(ctx, sender, recipient, netCoins); err != nil {
		return math.Int{}, types.ErrTransferFailed.Wrapf("send %s: %s", netCoins, err)
	}

	if fee.IsPositive() {
		feeCoins := sdk.NewCoins(sdk.NewCoin(params.Denom, fee))
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, sender, types.ModuleName, feeCoins); err != nil {
			if revertErr := k.bankKeeper.SendCoins(ctx, recipient, sender, netCoins); revertErr != nil {
				panic(revertErr)
			}
			return math.Int{}, types.ErrTransferFailed.Wrapf("collect fee %s: %s", feeCoins, err)
		}

		if err := k.addCollectedFees(ctx, fee); err != nil {
			return math.Int{}, err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeFeesCollected,
				sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
			),
		)
	}

	k.Logger(ctx).Info("transfer executed",
		"sender", sender.String(),
		"recipient", recipient.String(),
		"amount", amount.String(),
		"fee", fee.String(),
	)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTransfer,
			sdk.NewAttribute(types.AttributeKeySender, sender.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
		),
	)

	return fee, nil
}

// acquireTransferLock acquires the module-wide transfer lock
func (k Keeper) acquireTransferLock(ctx sdk.Context) error {
	store := k.getStore(ctx)
	if store.Has(TransferLockKey) {
		return types.ErrReentrancy.Wrap("transfer is already in progress")
	}
	store.Set(TransferLockKey, []byte{0x01})
	return nil
}

// releaseTransferLock releases the module-wide transfer lock
func (k Keeper) releaseTransferLock(ctx sdk.Context) {
	k.getStore(ctx).Delete(TransferLockKey)
}
