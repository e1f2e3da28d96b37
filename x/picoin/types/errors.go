package types

import (
	"cosmossdk.io/errors"
)

// Module sentinel errors
var (
	ErrInvalidInput   = errors.Register(ModuleName, 2, "invalid input")
	ErrUnauthorized   = errors.Register(ModuleName, 3, "unauthorized")
	ErrPaused         = errors.Register(ModuleName, 4, "module is paused")
	ErrReentrancy     = errors.Register(ModuleName, 5, "reentrant call detected")
	ErrFeeTooHigh     = errors.Register(ModuleName, 6, "fee exceeds maximum")
	ErrTransferFailed = errors.Register(ModuleName, 7, "transfer failed")
	ErrSupplyAdjust   = errors.Register(ModuleName, 8, "supply adjustment failed")
)
