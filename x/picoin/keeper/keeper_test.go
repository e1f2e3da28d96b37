package keeper_test

import (
	"fmt"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/picoin-network/picoin/testutil/keeper"
	oraclekeeper "github.com/picoin-network/picoin/x/oracle/keeper"
	oracletypes "github.com/picoin-network/picoin/x/oracle/types"
	"github.com/picoin-network/picoin/x/picoin/types"
)

func fundPicoin(bank *testkeeper.MockBankKeeper, addr sdk.AccAddress, amount int64) {
	bank.FundAccount(addr, sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, math.NewInt(amount))))
}

func countEvents(ctx sdk.Context, eventType string) int {
	n := 0
	for _, ev := range ctx.EventManager().Events() {
		if ev.Type == eventType {
			n++
		}
	}
	return n
}

func TestTransfer_FeeRouting(t *testing.T) {
	k, _, bank, ctx := testkeeper.PicoinKeeper(t)
	sender := testkeeper.TestAddr("sender")
	recipient := testkeeper.TestAddr("recipient")
	fundPicoin(bank, sender, 1_000_000)

	// Default fee is 25 bps: 10000 * 25 / 10000 = 25.
	fee, err := k.Transfer(ctx, sender, recipient, math.NewInt(10_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(25), fee)

	require.Equal(t, math.NewInt(1_000_000-10_000), bank.GetBalance(ctx, sender, types.DefaultDenom).Amount)
	require.Equal(t, math.NewInt(9_975), bank.GetBalance(ctx, recipient, types.DefaultDenom).Amount)

	moduleAddr := authtypes.NewModuleAddress(types.ModuleName)
	require.Equal(t, math.NewInt(25), bank.GetBalance(ctx, moduleAddr, types.DefaultDenom).Amount)
	require.Equal(t, math.NewInt(25), k.TotalFeesCollected(ctx))

	require.Equal(t, 1, countEvents(ctx, types.EventTypeFeesCollected))
	require.Equal(t, 1, countEvents(ctx, types.EventTypeTransfer))
}

func TestTransfer_TinyAmountNoFee(t *testing.T) {
	k, _, bank, ctx := testkeeper.PicoinKeeper(t)
	sender := testkeeper.TestAddr("sender")
	recipient := testkeeper.TestAddr("recipient")
	fundPicoin(bank, sender, 1_000)

	// 100 * 25 / 10000 rounds down to zero; no fee leg, no fee event.
	fee, err := k.Transfer(ctx, sender, recipient, math.NewInt(100))
	require.NoError(t, err)
	require.True(t, fee.IsZero())
	require.Equal(t, math.NewInt(100), bank.GetBalance(ctx, recipient, types.DefaultDenom).Amount)
	require.Equal(t, 0, countEvents(ctx, types.EventTypeFeesCollected))
}

func TestTransfer_RevertOnFeeFailure(t *testing.T) {
	k, _, bank, ctx := testkeeper.PicoinKeeper(t)
	sender := testkeeper.TestAddr("sender")
	recipient := testkeeper.TestAddr("recipient")
	fundPicoin(bank, sender, 1_000_000)

	moduleAddr := authtypes.NewModuleAddress(types.ModuleName)
	bank.FailOnSend = func(from, to sdk.AccAddress, amt sdk.Coins) error {
		if to.Equals(moduleAddr) {
			return fmt.Errorf("injected fee failure")
		}
		return nil
	}

	_, err := k.Transfer(ctx, sender, recipient, math.NewInt(10_000))
	require.ErrorIs(t, err, types.ErrTransferFailed)
	bank.FailOnSend = nil

	// The net leg was reverted; nobody moved and nothing was collected.
	require.Equal(t, math.NewInt(1_000_000), bank.GetBalance(ctx, sender, types.DefaultDenom).Amount)
	require.True(t, bank.GetBalance(ctx, recipient, types.DefaultDenom).Amount.IsZero())
	require.True(t, k.TotalFeesCollected(ctx).IsZero())
}

func TestTransfer_Reentrancy(t *testing.T) {
	k, _, bank, ctx := testkeeper.PicoinKeeper(t)
	sender := testkeeper.TestAddr("sender")
	recipient := testkeeper.TestAddr("recipient")
	fundPicoin(bank, sender, 1_000_000)

	var reentrantErr error
	entered := false
	bank.OnSend = func(from, to sdk.AccAddress, amt sdk.Coins) {
		if !entered {
			entered = true
			_, reentrantErr = k.Transfer(ctx, sender, recipient, math.NewInt(100))
		}
	}

	_, err := k.Transfer(ctx, sender, recipient, math.NewInt(10_000))
	bank.OnSend = nil

	require.NoError(t, err)
	require.True(t, entered)
	require.ErrorIs(t, reentrantErr, types.ErrReentrancy)
}

func TestTransfer_InvalidAndPaused(t *testing.T) {
	k, _, bank, ctx := testkeeper.PicoinKeeper(t)
	sender := testkeeper.TestAddr("sender")
	recipient := testkeeper.TestAddr("recipient")
	fundPicoin(bank, sender, 1_000)

	_, err := k.Transfer(ctx, sender, recipient, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidInput)

	require.NoError(t, k.Pause(ctx, testkeeper.Authority.String()))
	_, err = k.Transfer(ctx, sender, recipient, math.NewInt(100))
	require.ErrorIs(t, err, types.ErrPaused)
}

func setOraclePrice(t *testing.T, oracle *oraclekeeper.Keeper, ctx sdk.Context, price math.Int) {
	t.Helper()
	err := oracle.SetPrice(ctx, testkeeper.Authority.String(), types.DefaultPriceAsset, oracletypes.Price{
		Asset: types.DefaultPriceAsset,
		Price: price,
	})
	require.NoError(t, err)
}

func TestAdjustSupply_MintBelowTarget(t *testing.T) {
	k, oracle, bank, ctx := testkeeper.PicoinKeeper(t)

	// Five whole units below target mints 5000 base units.
	current := types.TargetPrice().Sub(types.PriceScale().MulRaw(5))
	setOraclePrice(t, oracle, ctx, current)

	direction, amount, err := k.AdjustSupply(ctx, testkeeper.Authority)
	require.NoError(t, err)
	require.Equal(t, types.DirectionMint, direction)
	require.Equal(t, math.NewInt(5000), amount)
	require.Equal(t, math.NewInt(5000), bank.GetBalance(ctx, testkeeper.Authority, types.DefaultDenom).Amount)
	require.Equal(t, math.NewInt(5000), bank.GetSupply(ctx, types.DefaultDenom).Amount)
	require.Equal(t, 1, countEvents(ctx, types.EventTypeSupplyAdjusted))
}

func TestAdjustSupply_BurnAboveTarget(t *testing.T) {
	k, oracle, bank, ctx := testkeeper.PicoinKeeper(t)
	fundPicoin(bank, testkeeper.Authority, 100_000)

	current := types.TargetPrice().Add(types.PriceScale().MulRaw(3))
	setOraclePrice(t, oracle, ctx, current)

	direction, amount, err := k.AdjustSupply(ctx, testkeeper.Authority)
	require.NoError(t, err)
	require.Equal(t, types.DirectionBurn, direction)
	require.Equal(t, math.NewInt(3000), amount)
	require.Equal(t, math.NewInt(100_000-3000), bank.GetBalance(ctx, testkeeper.Authority, types.DefaultDenom).Amount)
	require.Equal(t, math.NewInt(100_000-3000), bank.GetSupply(ctx, types.DefaultDenom).Amount)
}

func TestAdjustSupply_OnTargetIsNoOp(t *testing.T) {
	k, oracle, bank, ctx := testkeeper.PicoinKeeper(t)
	setOraclePrice(t, oracle, ctx, types.TargetPrice())

	direction, amount, err := k.AdjustSupply(ctx, testkeeper.Authority)
	require.NoError(t, err)
	require.Empty(t, direction)
	require.True(t, amount.IsZero())
	require.True(t, bank.GetSupply(ctx, types.DefaultDenom).Amount.IsZero())
	require.Equal(t, 0, countEvents(ctx, types.EventTypeSupplyAdjusted))
}

func TestAdjustSupply_SubUnitDeviationIsNoOp(t *testing.T) {
	k, oracle, _, ctx := testkeeper.PicoinKeeper(t)

	// Deviation below one whole unit floors to zero; nothing is minted.
	setOraclePrice(t, oracle, ctx, types.TargetPrice().SubRaw(1))

	direction, amount, err := k.AdjustSupply(ctx, testkeeper.Authority)
	require.NoError(t, err)
	require.Empty(t, direction)
	require.True(t, amount.IsZero())
	require.Equal(t, 0, countEvents(ctx, types.EventTypeSupplyAdjusted))
}

func TestAdjustSupply_MissingPrice(t *testing.T) {
	k, _, _, ctx := testkeeper.PicoinKeeper(t)

	_, _, err := k.AdjustSupply(ctx, testkeeper.Authority)
	require.ErrorIs(t, err, types.ErrSupplyAdjust)
}

func TestAdjustSupply_Unauthorized(t *testing.T) {
	k, oracle, _, ctx := testkeeper.PicoinKeeper(t)
	setOraclePrice(t, oracle, ctx, types.TargetPrice())

	_, _, err := k.AdjustSupply(ctx, testkeeper.TestAddr("mallory"))
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestMintBurn_AuthorityGated(t *testing.T) {
	k, _, bank, ctx := testkeeper.PicoinKeeper(t)
	holder := testkeeper.TestAddr("holder")

	require.NoError(t, k.Mint(ctx, testkeeper.Authority.String(), holder, math.NewInt(500)))
	require.Equal(t, math.NewInt(500), bank.GetBalance(ctx, holder, types.DefaultDenom).Amount)

	require.NoError(t, k.Burn(ctx, testkeeper.Authority.String(), holder, math.NewInt(200)))
	require.Equal(t, math.NewInt(300), bank.GetBalance(ctx, holder, types.DefaultDenom).Amount)
	require.Equal(t, math.NewInt(300), bank.GetSupply(ctx, types.DefaultDenom).Amount)

	err := k.Mint(ctx, testkeeper.TestAddr("mallory").String(), holder, math.NewInt(500))
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestUpdateTransactionFee(t *testing.T) {
	k, _, _, ctx := testkeeper.PicoinKeeper(t)

	require.NoError(t, k.UpdateTransactionFee(ctx, testkeeper.Authority.String(), math.NewInt(100)))
	require.Equal(t, math.NewInt(100), k.GetParams(ctx).TransactionFeeBps)

	err := k.UpdateTransactionFee(ctx, testkeeper.Authority.String(), math.NewInt(types.MaxTransactionFeeBps+1))
	require.ErrorIs(t, err, types.ErrFeeTooHigh)

	err = k.UpdateTransactionFee(ctx, testkeeper.TestAddr("mallory").String(), math.NewInt(10))
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestSetPriceFeed(t *testing.T) {
	k, oracle, _, ctx := testkeeper.PicoinKeeper(t)

	require.NoError(t, k.SetPriceFeed(ctx, testkeeper.Authority.String(), "PI-USD"))
	require.Equal(t, "PI-USD", k.GetParams(ctx).PriceAsset)

	// The controller now reads the repointed feed: only the new asset
	// carries a price, and the adjustment still resolves.
	err := oracle.SetPrice(ctx, testkeeper.Authority.String(), "PI-USD", oracletypes.Price{
		Asset: "PI-USD",
		Price: types.TargetPrice(),
	})
	require.NoError(t, err)
	direction, amount, err := k.AdjustSupply(ctx, testkeeper.Authority)
	require.NoError(t, err)
	require.Empty(t, direction)
	require.True(t, amount.IsZero())

	err = k.SetPriceFeed(ctx, testkeeper.Authority.String(), "")
	require.ErrorIs(t, err, types.ErrInvalidInput)

	err = k.SetPriceFeed(ctx, testkeeper.TestAddr("mallory").String(), "OTHER")
	require.ErrorIs(t, err, types.ErrUnauthorized)
	require.Equal(t, "PI-USD", k.GetParams(ctx).PriceAsset)
}

func TestWithdrawFees(t *testing.T) {
	k, _, bank, ctx := testkeeper.PicoinKeeper(t)
	sender := testkeeper.TestAddr("sender")
	recipient := testkeeper.TestAddr("recipient")
	fundPicoin(bank, sender, 1_000_000)

	_, err := k.Transfer(ctx, sender, recipient, math.NewInt(100_000))
	require.NoError(t, err)
	collected := k.TotalFeesCollected(ctx)
	require.Equal(t, math.NewInt(250), collected)

	amount, err := k.WithdrawFees(ctx, testkeeper.Authority)
	require.NoError(t, err)
	require.Equal(t, collected, amount)
	require.Equal(t, collected, bank.GetBalance(ctx, testkeeper.Authority, types.DefaultDenom).Amount)

	// The counter is reset by the payout; withdrawing again is a no-op.
	require.True(t, k.TotalFeesCollected(ctx).IsZero())
	amount, err = k.WithdrawFees(ctx, testkeeper.Authority)
	require.NoError(t, err)
	require.True(t, amount.IsZero())
}

func TestGenesis_RoundTrip(t *testing.T) {
	k, _, bank, ctx := testkeeper.PicoinKeeper(t)
	sender := testkeeper.TestAddr("sender")
	fundPicoin(bank, sender, 1_000_000)

	_, err := k.Transfer(ctx, sender, testkeeper.TestAddr("recipient"), math.NewInt(10_000))
	require.NoError(t, err)
	require.NoError(t, k.Pause(ctx, testkeeper.Authority.String()))

	exported := k.ExportGenesis(ctx)
	require.True(t, exported.Paused)
	require.Equal(t, math.NewInt(25), exported.TotalFeesCollected)

	fresh, _, _, freshCtx := testkeeper.PicoinKeeper(t)
	fresh.InitGenesis(freshCtx, *exported)
	require.Equal(t, exported, fresh.ExportGenesis(freshCtx))
}
