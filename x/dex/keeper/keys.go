package keeper

// Store key prefixes for the dex module.
//
// - Pools are stored per sorted token pair.
// - Liquidity positions are stored per pair and provider.
// - Fee balances accrue per denomination.
// - Reentrancy lock markers are transient within a transaction.
var (
	// PoolKeyPrefix is the prefix for pool storage (key: pairID).
	PoolKeyPrefix = []byte{0x01}

	// LiquidityKeyPrefix is the prefix for provider share balances.
	// Key format: 0x02 || pairID || '/' || provider
	LiquidityKeyPrefix = []byte{0x02}

	// FeeBalanceKeyPrefix is the prefix for accrued protocol fees per denom.
	FeeBalanceKeyPrefix = []byte{0x03}

	// RewardBalanceKeyPrefix is the prefix for claimable provider rewards.
	RewardBalanceKeyPrefix = []byte{0x04}

	// ParamsKey is the key for module parameters.
	ParamsKey = []byte{0x05}

	// PausedKey is the key for the module pause flag.
	PausedKey = []byte{0x06}

	// ReentrancyLockPrefix is the prefix for reentrancy lock markers.
	ReentrancyLockPrefix = []byte{0x07}

	// LimitOrderKeyPrefix is the prefix for limit order storage (key: orderID).
	LimitOrderKeyPrefix = []byte{0x08}

	// LimitOrderCountKey is the key for the next available order ID.
	LimitOrderCountKey = []byte{0x09}
)

// PoolKey returns the store key for a pool
func PoolKey(pairID string) []byte {
	return append(PoolKeyPrefix, []byte(pairID)...)
}

// LiquidityKey returns the store key for a provider's share balance in a pool
func LiquidityKey(pairID, provider string) []byte {
	key := append(LiquidityKeyPrefix, []byte(pairID)...)
	key = append(key, '/')
	return append(key, []byte(provider)...)
}

// FeeBalanceKey returns the store key for accrued fees in a denomination
func FeeBalanceKey(denom string) []byte {
	return append(FeeBalanceKeyPrefix, []byte(denom)...)
}

// RewardBalanceKey returns the store key for a provider's claimable rewards
func RewardBalanceKey(provider string) []byte {
	return append(RewardBalanceKeyPrefix, []byte(provider)...)
}

// ReentrancyLockKey returns the store key for a reentrancy lock marker
func ReentrancyLockKey(lockKey string) []byte {
	return append(ReentrancyLockPrefix, []byte(lockKey)...)
}
