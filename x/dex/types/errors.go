package types

import (
	"cosmossdk.io/errors"
)

// DEX module sentinel errors
var (
	ErrInvalidInput          = errors.Register(ModuleName, 1, "invalid input")
	ErrPoolNotFound          = errors.Register(ModuleName, 2, "pool not found")
	ErrInsufficientOutput    = errors.Register(ModuleName, 3, "insufficient output amount")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 4, "insufficient liquidity in pool")
	ErrInsufficientShares    = errors.Register(ModuleName, 5, "insufficient liquidity shares")
	ErrUnauthorized          = errors.Register(ModuleName, 6, "unauthorized")
	ErrPaused                = errors.Register(ModuleName, 7, "module is paused")
	ErrReentrancy            = errors.Register(ModuleName, 8, "reentrant call")
	ErrUnderflow             = errors.Register(ModuleName, 9, "arithmetic underflow")
	ErrFeeTooHigh            = errors.Register(ModuleName, 10, "fee too high")
	ErrInvalidPoolState      = errors.Register(ModuleName, 11, "invalid pool state")
	ErrOrderNotFound         = errors.Register(ModuleName, 12, "limit order not found")
	ErrTransferFailed        = errors.Register(ModuleName, 13, "token transfer failed")
)
