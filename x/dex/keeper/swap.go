package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/picoin-network/picoin/x/dex/types"
)

// CalculateSwapOutput prices a swap against a constant-product curve with a
// multiplicative 0.3% fee:
//
//	amountInWithFee = amountIn * 997
//	amountOut       = floor(amountInWithFee * reserveOut / (reserveIn * 1000 + amountInWithFee))
//
// Pure function, it never touches state.
func CalculateSwapOutput(amountIn, reserveIn, reserveOut math.Int) (math.Int, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.Int{}, types.ErrInvalidInput.Wrap("amount in must be positive")
	}
	if reserveIn.IsNil() || reserveOut.IsNil() || reserveIn.IsZero() || reserveOut.IsZero() {
		return math.Int{}, types.ErrInvalidInput.Wrap("reserves must be positive")
	}

	amountInWithFee := amountIn.MulRaw(997)
	numerator := amountInWithFee.Mul(reserveOut)
	denominator := reserveIn.MulRaw(1000).Add(amountInWithFee)

	return numerator.Quo(denominator), nil
}

// Quote returns the swap output for a given input against the live pool,
// without executing
func (k Keeper) Quote(ctx sdk.Context, tokenIn, tokenOut string, amountIn math.Int) (math.Int, error) {
	pool := k.GetPool(ctx, tokenIn, tokenOut)
	reserveIn, reserveOut := pool.ReservesFor(tokenIn)
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return math.Int{}, types.ErrPoolNotFound.Wrapf("no liquidity for pair %s", pool.PairID())
	}
	return CalculateSwapOutput(amountIn, reserveIn, reserveOut)
}

// Swap exchanges amountIn of tokenIn for tokenOut through the pair's pool.
//
// Two fees are charged against the trade: the 0.3% embedded in the pricing
// formula, and a skim of FeePercentage percent of the input that is kept in
// module custody and tracked in the fee ledger. Only the post-skim input is
// credited to reserves.
//
// Both bank transfers complete before any reserve bookkeeping; if the output
// transfer fails the input transfer is reverted and the pool is untouched.
func (k Keeper) Swap(ctx sdk.Context, trader sdk.AccAddress, tokenIn, tokenOut string, amountIn math.Int) (math.Int, error) {
	if err := k.requireActive(ctx); err != nil {
		return math.Int{}, err
	}
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.Int{}, types.ErrInvalidInput.Wrap("amount in must be positive")
	}
	if tokenIn == tokenOut {
		return math.Int{}, types.ErrInvalidInput.Wrap("cannot swap identical tokens")
	}

	pairID := types.PairID(tokenIn, tokenOut)

	var amountOut math.Int
	err := k.WithReentrancyGuard(ctx, pairID, func() error {
		pool := k.GetPool(ctx, tokenIn, tokenOut)
		reserveIn, reserveOut := pool.ReservesFor(tokenIn)
		if reserveIn.IsZero() || reserveOut.IsZero() {
			return types.ErrPoolNotFound.Wrapf("no liquidity for pair %s", pairID)
		}

		out, err := CalculateSwapOutput(amountIn, reserveIn, reserveOut)
		if err != nil {
			return err
		}
		if out.IsZero() {
			return types.ErrInsufficientOutput.Wrap("swap output rounds to zero")
		}
		if out.GTE(reserveOut) {
			return types.ErrInsufficientLiquidity.Wrapf("output %s would drain reserve %s", out, reserveOut)
		}

		params := k.GetParams(ctx)
		fee := amountIn.Mul(params.FeePercentage).QuoRaw(100)
		amountInAfterFee := amountIn.Sub(fee)

		// Transfers first: pull the full input, push the output. Revert
		// the input transfer if the output leg fails so a failed swap
		// leaves balances untouched.
		coinsIn := sdk.NewCoins(sdk.NewCoin(tokenIn, amountIn))
		if err := k.bankKeeper.SendCoins(ctx, trader, k.moduleAddr, coinsIn); err != nil {
			return types.ErrTransferFailed.Wrapf("pull %s: %s", coinsIn, err)
		}

		coinsOut := sdk.NewCoins(sdk.NewCoin(tokenOut, out))
		if err := k.bankKeeper.SendCoins(ctx, k.moduleAddr, trader, coinsOut); err != nil {
			if revertErr := k.bankKeeper.SendCoins(ctx, k.moduleAddr, trader, coinsIn); revertErr != nil {
				panic(revertErr)
			}
			return types.ErrTransferFailed.Wrapf("push %s: %s", coinsOut, err)
		}

		if err := pool.ApplyDeltaFor(tokenIn, amountInAfterFee, out.Neg(), math.ZeroInt()); err != nil {
			return err
		}
		if err := k.SetPool(ctx, pool); err != nil {
			return err
		}
		if err := k.addFeeBalance(ctx, tokenIn, fee); err != nil {
			return err
		}

		amountOut = out
		return nil
	})
	if err != nil {
		return math.Int{}, err
	}

	k.Logger(ctx).Info("swap executed",
		"trader", trader.String(),
		"token_in", tokenIn,
		"token_out", tokenOut,
		"amount_in", amountIn.String(),
		"amount_out", amountOut.String(),
	)

	m := GetMetrics()
	m.SwapsTotal.WithLabelValues(pairID).Inc()
	m.SwapVolume.WithLabelValues(tokenIn).Add(math.LegacyNewDecFromInt(amountIn).MustFloat64())

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, tokenIn),
			sdk.NewAttribute(types.AttributeKeyTokenOut, tokenOut),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
		),
	)

	return amountOut, nil
}
