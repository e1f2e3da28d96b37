package types

const (
	// ModuleName defines the module name
	ModuleName = "dex"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_" + ModuleName
)

// PairID returns the canonical identifier for an unordered token pair.
// Denoms are sorted lexicographically so that (a, b) and (b, a) resolve
// to the same pool.
func PairID(tokenA, tokenB string) string {
	if tokenA > tokenB {
		tokenA, tokenB = tokenB, tokenA
	}
	return tokenA + "/" + tokenB
}

// SortDenoms returns the pair in canonical (sorted) order together with
// the amounts realigned to follow their denoms.
func SortDenoms(tokenA, tokenB string) (string, string) {
	if tokenA > tokenB {
		return tokenB, tokenA
	}
	return tokenA, tokenB
}
