package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/picoin-network/picoin/x/dex/types"
)

// GetRewardBalance returns the claimable reward balance of a provider
func (k Keeper) GetRewardBalance(ctx sdk.Context, provider string) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(RewardBalanceKey(provider))
	if bz == nil {
		return math.ZeroInt()
	}

	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(fmt.Errorf("corrupted reward balance for %s: %w", provider, err))
	}
	return amount
}

// setRewardBalance stores a provider's claimable reward balance.
// A zero balance deletes the record.
func (k Keeper) setRewardBalance(ctx sdk.Context, provider string, amount math.Int) error {
	if amount.IsNegative() {
		return types.ErrUnderflow.Wrapf("reward balance for %s cannot go negative", provider)
	}

	store := k.getStore(ctx)
	key := RewardBalanceKey(provider)

	if amount.IsZero() {
		store.Delete(key)
		return nil
	}

	bz, err := amount.Marshal()
	if err != nil {
		return fmt.Errorf("marshal reward balance for %s: %w", provider, err)
	}
	store.Set(key, bz)
	return nil
}

// DepositRewards credits a depositor's payment to their own reward balance.
// The reward ledger is a plain per-address deposit account in the reward
// denomination, not a yield mechanism.
func (k Keeper) DepositRewards(ctx sdk.Context, depositor sdk.AccAddress, amount math.Int) error {
	if err := k.requireActive(ctx); err != nil {
		return err
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidInput.Wrap("amount must be positive")
	}

	denom := k.GetParams(ctx).RewardDenom
	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	if err := k.bankKeeper.SendCoins(ctx, depositor, k.moduleAddr, coins); err != nil {
		return types.ErrTransferFailed.Wrapf("pull %s: %s", coins, err)
	}

	balance := k.GetRewardBalance(ctx, depositor.String())
	if err := k.setRewardBalance(ctx, depositor.String(), balance.Add(amount)); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRewardsDeposited,
			sdk.NewAttribute(types.AttributeKeyProvider, depositor.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// ClaimRewards pays the caller's entire recorded reward balance and zeroes
// it. Claiming is a full-balance withdrawal, never partial.
func (k Keeper) ClaimRewards(ctx sdk.Context, provider sdk.AccAddress) (math.Int, error) {
	if err := k.requireActive(ctx); err != nil {
		return math.Int{}, err
	}

	amount := k.GetRewardBalance(ctx, provider.String())
	if amount.IsZero() {
		return math.ZeroInt(), nil
	}

	denom := k.GetParams(ctx).RewardDenom

	err := k.WithReentrancyGuard(ctx, "rewards/"+provider.String(), func() error {
		coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
		if err := k.bankKeeper.SendCoins(ctx, k.moduleAddr, provider, coins); err != nil {
			return types.ErrTransferFailed.Wrapf("push %s: %s", coins, err)
		}
		return k.setRewardBalance(ctx, provider.String(), math.ZeroInt())
	})
	if err != nil {
		return math.Int{}, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRewardsClaimed,
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	return amount, nil
}

// IterateRewardBalances calls fn for every provider with a claimable balance
func (k Keeper) IterateRewardBalances(ctx sdk.Context, fn func(provider string, amount math.Int) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, RewardBalanceKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		provider := string(iterator.Key()[len(RewardBalanceKeyPrefix):])
		var amount math.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			panic(fmt.Errorf("corrupted reward balance for %s: %w", provider, err))
		}
		if fn(provider, amount) {
			break
		}
	}
}
