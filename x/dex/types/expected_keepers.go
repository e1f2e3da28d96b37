package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AccountKeeper defines the expected account keeper
type AccountKeeper interface {
	GetAccount(ctx context.Context, addr sdk.AccAddress) sdk.AccountI
	GetModuleAddress(name string) sdk.AccAddress
}

// BankKeeper defines the expected bank keeper used for token custody
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// DexKeeperV1 is the interface exported for other modules to consume
type DexKeeperV1 interface {
	// GetPool finds a pool by token pair. The zero pool is returned when
	// no pool exists for the pair.
	GetPool(ctx sdk.Context, tokenA, tokenB string) Pool

	// Quote calculates the swap output for a given input without executing.
	Quote(ctx sdk.Context, tokenIn, tokenOut string, amountIn math.Int) (math.Int, error)

	// IsPaused reports whether the module is halted.
	IsPaused(ctx sdk.Context) bool
}
