package keeper_test

import (
	"fmt"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/picoin-network/picoin/testutil/keeper"
	"github.com/picoin-network/picoin/x/dex/keeper"
	"github.com/picoin-network/picoin/x/dex/types"
)

const (
	denomA = "uatom"
	denomB = "upicoin"
)

func fundedProvider(t *testing.T, bank *testkeeper.MockBankKeeper, name string, amount int64) sdk.AccAddress {
	t.Helper()
	addr := testkeeper.TestAddr(name)
	bank.FundAccount(addr, sdk.NewCoins(
		sdk.NewCoin(denomA, math.NewInt(amount)),
		sdk.NewCoin(denomB, math.NewInt(amount)),
	))
	return addr
}

func TestDeposit_CreatesPool(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	provider := fundedProvider(t, bank, "provider", 1_000_000)

	shares, err := k.Deposit(ctx, provider, denomA, denomB, math.NewInt(1000), math.NewInt(1000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(2000), shares)

	pool := k.GetPool(ctx, denomA, denomB)
	require.Equal(t, math.NewInt(1000), pool.ReserveA)
	require.Equal(t, math.NewInt(1000), pool.ReserveB)
	require.Equal(t, math.NewInt(2000), pool.TotalShares)
	require.Equal(t, math.NewInt(2000), k.GetLiquidity(ctx, pool.PairID(), provider.String()))

	// Deposited funds moved into module custody.
	moduleAddr := testkeeper.DexModuleAddr()
	require.Equal(t, math.NewInt(1000), bank.GetBalance(ctx, moduleAddr, denomA).Amount)
	require.Equal(t, math.NewInt(1000), bank.GetBalance(ctx, moduleAddr, denomB).Amount)
}

func TestDeposit_InvalidInput(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	provider := fundedProvider(t, bank, "provider", 1_000_000)

	_, err := k.Deposit(ctx, provider, denomA, denomB, math.ZeroInt(), math.NewInt(1000))
	require.ErrorIs(t, err, types.ErrInvalidInput)

	_, err = k.Deposit(ctx, provider, denomA, denomA, math.NewInt(1000), math.NewInt(1000))
	require.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestCalculateSwapOutput_Exact(t *testing.T) {
	// floor(100*997*1000 / (1000*1000 + 100*997)) = 90
	out, err := keeper.CalculateSwapOutput(math.NewInt(100), math.NewInt(1000), math.NewInt(1000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(90), out)
}

func TestCalculateSwapOutput_InvalidInput(t *testing.T) {
	_, err := keeper.CalculateSwapOutput(math.ZeroInt(), math.NewInt(1000), math.NewInt(1000))
	require.ErrorIs(t, err, types.ErrInvalidInput)

	_, err = keeper.CalculateSwapOutput(math.NewInt(100), math.ZeroInt(), math.NewInt(1000))
	require.ErrorIs(t, err, types.ErrInvalidInput)

	_, err = keeper.CalculateSwapOutput(math.NewInt(100), math.NewInt(1000), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestCalculateSwapOutput_Monotonic(t *testing.T) {
	reserveIn := math.NewInt(10_000)
	reserveOut := math.NewInt(10_000)

	prev := math.ZeroInt()
	for amountIn := int64(1); amountIn <= 5000; amountIn += 97 {
		out, err := keeper.CalculateSwapOutput(math.NewInt(amountIn), reserveIn, reserveOut)
		require.NoError(t, err)
		require.True(t, out.GTE(prev), "output decreased at amountIn=%d", amountIn)
		require.True(t, out.LT(reserveOut), "output reached reserve at amountIn=%d", amountIn)
		prev = out
	}
}

func TestSwap_HappyPath(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	provider := fundedProvider(t, bank, "provider", 1_000_000)
	trader := fundedProvider(t, bank, "trader", 1_000_000)

	_, err := k.Deposit(ctx, provider, denomA, denomB, math.NewInt(1000), math.NewInt(1000))
	require.NoError(t, err)

	out, err := k.Swap(ctx, trader, denomA, denomB, math.NewInt(100))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(90), out)

	// The 1% skim fee is kept out of reserves and tracked in the ledger.
	pool := k.GetPool(ctx, denomA, denomB)
	require.Equal(t, math.NewInt(1099), pool.ReserveA)
	require.Equal(t, math.NewInt(910), pool.ReserveB)
	require.Equal(t, math.NewInt(1), k.GetFeeBalance(ctx, denomA))

	require.Equal(t, math.NewInt(1_000_000-100), bank.GetBalance(ctx, trader, denomA).Amount)
	require.Equal(t, math.NewInt(1_000_000+90), bank.GetBalance(ctx, trader, denomB).Amount)
}

func TestSwap_ZeroAmount(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	provider := fundedProvider(t, bank, "provider", 1_000_000)
	trader := fundedProvider(t, bank, "trader", 1_000_000)

	_, err := k.Deposit(ctx, provider, denomA, denomB, math.NewInt(1000), math.NewInt(1000))
	require.NoError(t, err)
	before := k.GetPool(ctx, denomA, denomB)

	_, err = k.Swap(ctx, trader, denomA, denomB, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidInput)

	after := k.GetPool(ctx, denomA, denomB)
	require.Equal(t, before, after)
}

func TestSwap_PoolNotFound(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	trader := fundedProvider(t, bank, "trader", 1_000_000)

	_, err := k.Swap(ctx, trader, denomA, denomB, math.NewInt(100))
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

func TestSwap_RollbackOnOutputFailure(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	provider := fundedProvider(t, bank, "provider", 1_000_000)
	trader := fundedProvider(t, bank, "trader", 1_000_000)

	_, err := k.Deposit(ctx, provider, denomA, denomB, math.NewInt(1000), math.NewInt(1000))
	require.NoError(t, err)
	before := k.GetPool(ctx, denomA, denomB)

	// Fail the output leg only; the revert of the input leg must still go
	// through, so distinguish by denomination.
	moduleAddr := testkeeper.DexModuleAddr()
	bank.FailOnSend = func(from, to sdk.AccAddress, amt sdk.Coins) error {
		if from.Equals(moduleAddr) && !amt.AmountOf(denomB).IsZero() {
			return fmt.Errorf("injected output failure")
		}
		return nil
	}

	_, err = k.Swap(ctx, trader, denomA, denomB, math.NewInt(100))
	require.ErrorIs(t, err, types.ErrTransferFailed)
	bank.FailOnSend = nil

	require.Equal(t, before, k.GetPool(ctx, denomA, denomB))
	require.Equal(t, math.NewInt(1_000_000), bank.GetBalance(ctx, trader, denomA).Amount)
	require.Equal(t, math.NewInt(1_000_000), bank.GetBalance(ctx, trader, denomB).Amount)
	require.True(t, k.GetFeeBalance(ctx, denomA).IsZero())
}

func TestSwap_Reentrancy(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	provider := fundedProvider(t, bank, "provider", 1_000_000)
	trader := fundedProvider(t, bank, "trader", 1_000_000)

	_, err := k.Deposit(ctx, provider, denomA, denomB, math.NewInt(10_000), math.NewInt(10_000))
	require.NoError(t, err)

	// Re-enter swap from inside the transfer callback of the outer swap.
	var reentrantErr error
	entered := false
	bank.OnSend = func(from, to sdk.AccAddress, amt sdk.Coins) {
		if !entered {
			entered = true
			_, reentrantErr = k.Swap(ctx, trader, denomA, denomB, math.NewInt(10))
		}
	}

	_, err = k.Swap(ctx, trader, denomA, denomB, math.NewInt(100))
	bank.OnSend = nil

	require.NoError(t, err)
	require.True(t, entered)
	require.ErrorIs(t, reentrantErr, types.ErrReentrancy)
}

func TestWithdraw_InsufficientShares(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	provider := fundedProvider(t, bank, "provider", 1_000_000)
	outsider := fundedProvider(t, bank, "outsider", 1_000_000)

	_, err := k.Deposit(ctx, provider, denomA, denomB, math.NewInt(1000), math.NewInt(1000))
	require.NoError(t, err)

	err = k.Withdraw(ctx, outsider, denomA, denomB, math.NewInt(10), math.NewInt(10))
	require.ErrorIs(t, err, types.ErrInsufficientShares)
}

func TestWithdraw_InsufficientLiquidity(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	provider := fundedProvider(t, bank, "provider", 1_000_000)

	_, err := k.Deposit(ctx, provider, denomA, denomB, math.NewInt(1000), math.NewInt(1000))
	require.NoError(t, err)

	err = k.Withdraw(ctx, provider, denomA, denomB, math.NewInt(5000), math.NewInt(10))
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}

func TestDepositWithdraw_NoOpEquality(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	provider := fundedProvider(t, bank, "provider", 1_000_000)

	_, err := k.Deposit(ctx, provider, denomA, denomB, math.NewInt(500), math.NewInt(700))
	require.NoError(t, err)
	require.NoError(t, k.Withdraw(ctx, provider, denomA, denomB, math.NewInt(500), math.NewInt(700)))

	pool := k.GetPool(ctx, denomA, denomB)
	require.True(t, pool.IsEmpty())
	require.True(t, k.GetLiquidity(ctx, pool.PairID(), provider.String()).IsZero())
	require.Equal(t, math.NewInt(1_000_000), bank.GetBalance(ctx, provider, denomA).Amount)
	require.Equal(t, math.NewInt(1_000_000), bank.GetBalance(ctx, provider, denomB).Amount)
}

func TestShareSumInvariant(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	p1 := fundedProvider(t, bank, "provider-one", 1_000_000)
	p2 := fundedProvider(t, bank, "provider-two", 1_000_000)

	_, err := k.Deposit(ctx, p1, denomA, denomB, math.NewInt(300), math.NewInt(400))
	require.NoError(t, err)
	_, err = k.Deposit(ctx, p2, denomA, denomB, math.NewInt(100), math.NewInt(200))
	require.NoError(t, err)
	require.NoError(t, k.Withdraw(ctx, p1, denomA, denomB, math.NewInt(50), math.NewInt(50)))

	pool := k.GetPool(ctx, denomA, denomB)
	sum := math.ZeroInt()
	k.IterateLiquidity(ctx, pool.PairID(), func(_ string, shares math.Int) bool {
		sum = sum.Add(shares)
		return false
	})
	require.Equal(t, pool.TotalShares, sum)
}

func TestPause_BlocksOperations(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	provider := fundedProvider(t, bank, "provider", 1_000_000)

	_, err := k.Deposit(ctx, provider, denomA, denomB, math.NewInt(1000), math.NewInt(1000))
	require.NoError(t, err)

	require.NoError(t, k.Pause(ctx, testkeeper.Authority.String()))

	_, err = k.Swap(ctx, provider, denomA, denomB, math.NewInt(10))
	require.ErrorIs(t, err, types.ErrPaused)
	_, err = k.Deposit(ctx, provider, denomA, denomB, math.NewInt(10), math.NewInt(10))
	require.ErrorIs(t, err, types.ErrPaused)
	err = k.Withdraw(ctx, provider, denomA, denomB, math.NewInt(10), math.NewInt(10))
	require.ErrorIs(t, err, types.ErrPaused)

	// Admin operations stay available while paused.
	_, err = k.WithdrawFees(ctx, testkeeper.Authority, denomA)
	require.NoError(t, err)

	require.NoError(t, k.Unpause(ctx, testkeeper.Authority.String()))
	_, err = k.Swap(ctx, provider, denomA, denomB, math.NewInt(10))
	require.NoError(t, err)
}

func TestPause_Unauthorized(t *testing.T) {
	k, _, ctx := testkeeper.DexKeeper(t)

	err := k.Pause(ctx, testkeeper.TestAddr("mallory").String())
	require.ErrorIs(t, err, types.ErrUnauthorized)
	require.False(t, k.IsPaused(ctx))
}

func TestWithdrawFees(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	provider := fundedProvider(t, bank, "provider", 10_000_000)
	trader := fundedProvider(t, bank, "trader", 1_000_000)

	_, err := k.Deposit(ctx, provider, denomA, denomB, math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)
	_, err = k.Swap(ctx, trader, denomA, denomB, math.NewInt(10_000))
	require.NoError(t, err)

	accrued := k.GetFeeBalance(ctx, denomA)
	require.Equal(t, math.NewInt(100), accrued)

	amount, err := k.WithdrawFees(ctx, testkeeper.Authority, denomA)
	require.NoError(t, err)
	require.Equal(t, accrued, amount)
	require.True(t, k.GetFeeBalance(ctx, denomA).IsZero())
	require.Equal(t, accrued, bank.GetBalance(ctx, testkeeper.Authority, denomA).Amount)

	// Withdrawing again is a zero no-op.
	amount, err = k.WithdrawFees(ctx, testkeeper.Authority, denomA)
	require.NoError(t, err)
	require.True(t, amount.IsZero())
}

func TestWithdrawFees_Unauthorized(t *testing.T) {
	k, _, ctx := testkeeper.DexKeeper(t)

	_, err := k.WithdrawFees(ctx, testkeeper.TestAddr("mallory"), denomA)
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestUpdateFeePercentage(t *testing.T) {
	k, _, ctx := testkeeper.DexKeeper(t)

	require.NoError(t, k.UpdateFeePercentage(ctx, testkeeper.Authority.String(), math.NewInt(5)))
	require.Equal(t, math.NewInt(5), k.GetParams(ctx).FeePercentage)

	err := k.UpdateFeePercentage(ctx, testkeeper.Authority.String(), math.NewInt(101))
	require.ErrorIs(t, err, types.ErrFeeTooHigh)

	err = k.UpdateFeePercentage(ctx, testkeeper.TestAddr("mallory").String(), math.NewInt(5))
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestQuote_LivePool(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	provider := fundedProvider(t, bank, "provider", 1_000_000)

	_, err := k.Quote(ctx, denomA, denomB, math.NewInt(100))
	require.ErrorIs(t, err, types.ErrPoolNotFound)

	_, err = k.Deposit(ctx, provider, denomA, denomB, math.NewInt(1000), math.NewInt(1000))
	require.NoError(t, err)

	out, err := k.Quote(ctx, denomA, denomB, math.NewInt(100))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(90), out)

	// Quoting never mutates the pool.
	pool := k.GetPool(ctx, denomA, denomB)
	require.Equal(t, math.NewInt(1000), pool.ReserveA)
}
