package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/picoin-network/picoin/x/dex/types"
)

// Deposit adds liquidity to a pair's pool, creating the pool on first use.
//
// Shares are issued as the plain sum of both deposited amounts. This is the
// ledger's issuance rule: positions are denominated in deposited units, not
// in a value-weighted measure.
func (k Keeper) Deposit(ctx sdk.Context, provider sdk.AccAddress, tokenA, tokenB string, amountA, amountB math.Int) (math.Int, error) {
	if err := k.requireActive(ctx); err != nil {
		return math.Int{}, err
	}
	if amountA.IsNil() || !amountA.IsPositive() || amountB.IsNil() || !amountB.IsPositive() {
		return math.Int{}, types.ErrInvalidInput.Wrap("deposit amounts must be positive")
	}
	if tokenA == tokenB {
		return math.Int{}, types.ErrInvalidInput.Wrap("pool tokens must differ")
	}

	pairID := types.PairID(tokenA, tokenB)
	shares := amountA.Add(amountB)

	err := k.WithReentrancyGuard(ctx, pairID, func() error {
		pool := k.GetPool(ctx, tokenA, tokenB)

		coinsA := sdk.NewCoins(sdk.NewCoin(tokenA, amountA))
		if err := k.bankKeeper.SendCoins(ctx, provider, k.moduleAddr, coinsA); err != nil {
			return types.ErrTransferFailed.Wrapf("pull %s: %s", coinsA, err)
		}

		coinsB := sdk.NewCoins(sdk.NewCoin(tokenB, amountB))
		if err := k.bankKeeper.SendCoins(ctx, provider, k.moduleAddr, coinsB); err != nil {
			if revertErr := k.bankKeeper.SendCoins(ctx, k.moduleAddr, provider, coinsA); revertErr != nil {
				panic(revertErr)
			}
			return types.ErrTransferFailed.Wrapf("pull %s: %s", coinsB, err)
		}

		if err := pool.ApplyDeltaFor(tokenA, amountA, amountB, shares); err != nil {
			return err
		}
		if err := k.SetPool(ctx, pool); err != nil {
			return err
		}

		position := k.GetLiquidity(ctx, pairID, provider.String())
		return k.SetLiquidity(ctx, pairID, provider.String(), position.Add(shares))
	})
	if err != nil {
		return math.Int{}, err
	}

	k.Logger(ctx).Info("liquidity added",
		"provider", provider.String(),
		"pair", pairID,
		"amount_a", amountA.String(),
		"amount_b", amountB.String(),
		"shares", shares.String(),
	)

	GetMetrics().LiquidityAdded.WithLabelValues(pairID).Inc()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityAdded,
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyTokenA, tokenA),
			sdk.NewAttribute(types.AttributeKeyTokenB, tokenB),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	return shares, nil
}

// Withdraw removes liquidity from a pair's pool. The provider's share
// balance is reduced by amountA + amountB, mirroring the issuance rule.
func (k Keeper) Withdraw(ctx sdk.Context, provider sdk.AccAddress, tokenA, tokenB string, amountA, amountB math.Int) error {
	if err := k.requireActive(ctx); err != nil {
		return err
	}
	if amountA.IsNil() || !amountA.IsPositive() || amountB.IsNil() || !amountB.IsPositive() {
		return types.ErrInvalidInput.Wrap("withdraw amounts must be positive")
	}
	if tokenA == tokenB {
		return types.ErrInvalidInput.Wrap("pool tokens must differ")
	}

	pairID := types.PairID(tokenA, tokenB)
	shares := amountA.Add(amountB)

	err := k.WithReentrancyGuard(ctx, pairID, func() error {
		pool := k.GetPool(ctx, tokenA, tokenB)
		reserveA, reserveB := pool.ReservesFor(tokenA)
		if reserveA.LT(amountA) || reserveB.LT(amountB) {
			return types.ErrInsufficientLiquidity.Wrapf(
				"pool %s reserves (%s, %s) cannot cover withdrawal (%s, %s)",
				pairID, reserveA, reserveB, amountA, amountB,
			)
		}

		position := k.GetLiquidity(ctx, pairID, provider.String())
		if position.LT(shares) {
			return types.ErrInsufficientShares.Wrapf("have %s, need %s", position, shares)
		}

		// A withdrawal must not leave the pool partially empty; reject
		// any that would break reserve/share consistency.
		if err := pool.ApplyDeltaFor(tokenA, amountA.Neg(), amountB.Neg(), shares.Neg()); err != nil {
			return err
		}
		if err := pool.Validate(); err != nil {
			return types.ErrInsufficientLiquidity.Wrapf("withdrawal would leave pool inconsistent: %s", err)
		}

		coinsA := sdk.NewCoins(sdk.NewCoin(tokenA, amountA))
		if err := k.bankKeeper.SendCoins(ctx, k.moduleAddr, provider, coinsA); err != nil {
			return types.ErrTransferFailed.Wrapf("push %s: %s", coinsA, err)
		}

		coinsB := sdk.NewCoins(sdk.NewCoin(tokenB, amountB))
		if err := k.bankKeeper.SendCoins(ctx, k.moduleAddr, provider, coinsB); err != nil {
			if revertErr := k.bankKeeper.SendCoins(ctx, provider, k.moduleAddr, coinsA); revertErr != nil {
				panic(revertErr)
			}
			return types.ErrTransferFailed.Wrapf("push %s: %s", coinsB, err)
		}

		if err := k.SetPool(ctx, pool); err != nil {
			return err
		}
		return k.SetLiquidity(ctx, pairID, provider.String(), position.Sub(shares))
	})
	if err != nil {
		return err
	}

	k.Logger(ctx).Info("liquidity removed",
		"provider", provider.String(),
		"pair", pairID,
		"amount_a", amountA.String(),
		"amount_b", amountB.String(),
		"shares", shares.String(),
	)

	GetMetrics().LiquidityRemoved.WithLabelValues(pairID).Inc()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityRemoved,
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyTokenA, tokenA),
			sdk.NewAttribute(types.AttributeKeyTokenB, tokenB),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	return nil
}
