package types

const (
	// ModuleName defines the module name
	ModuleName = "picoin"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for the picoin module
	RouterKey = ModuleName
)

const (
	// Token metadata for the pegged asset
	TokenName   = "PiCoin"
	TokenSymbol = "PI"
	Decimals    = 18

	// DefaultDenom is the base denomination of the pegged asset,
	// 18 decimal places
	DefaultDenom = "upicoin"

	// DefaultPriceAsset is the oracle asset key the supply controller
	// tracks
	DefaultPriceAsset = "PICOIN"

	// MaxTransactionFeeBps caps the transfer fee at 10%
	MaxTransactionFeeBps = 1000
)
