package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// MockBankKeeper is an in-memory bank keeper for keeper tests. It tracks
// per-address balances and total supply, and supports failure injection
// and a send hook for exercising rollback and reentrancy paths.
type MockBankKeeper struct {
	balances map[string]sdk.Coins
	supply   sdk.Coins

	// FailOnSend, when set, is consulted before every transfer; a non-nil
	// return aborts the transfer.
	FailOnSend func(from, to sdk.AccAddress, amt sdk.Coins) error

	// OnSend, when set, runs after every successful transfer. Tests use
	// it to re-enter keeper operations mid-transfer.
	OnSend func(from, to sdk.AccAddress, amt sdk.Coins)
}

// NewMockBankKeeper creates an empty mock bank keeper
func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{balances: make(map[string]sdk.Coins)}
}

// FundAccount credits an address with coins, growing supply
func (m *MockBankKeeper) FundAccount(addr sdk.AccAddress, coins sdk.Coins) {
	m.balances[addr.String()] = m.balances[addr.String()].Add(coins...)
	m.supply = m.supply.Add(coins...)
}

// GetBalance returns the balance of one denom for an address
func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balances[addr.String()].AmountOf(denom))
}

// SpendableCoins returns all coins held by an address
func (m *MockBankKeeper) SpendableCoins(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	return m.balances[addr.String()]
}

// GetSupply returns the tracked total supply of one denom
func (m *MockBankKeeper) GetSupply(_ context.Context, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.supply.AmountOf(denom))
}

// SendCoins moves coins between two addresses
func (m *MockBankKeeper) SendCoins(_ context.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	if m.FailOnSend != nil {
		if err := m.FailOnSend(from, to, amt); err != nil {
			return err
		}
	}

	fromBalance := m.balances[from.String()]
	newFrom, negative := fromBalance.SafeSub(amt...)
	if negative {
		return fmt.Errorf("insufficient funds: %s has %s, needs %s", from, fromBalance, amt)
	}
	m.balances[from.String()] = newFrom
	m.balances[to.String()] = m.balances[to.String()].Add(amt...)

	if m.OnSend != nil {
		m.OnSend(from, to, amt)
	}
	return nil
}

// SendCoinsFromAccountToModule moves coins from an address to a module account
func (m *MockBankKeeper) SendCoinsFromAccountToModule(ctx context.Context, sender sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.SendCoins(ctx, sender, authtypes.NewModuleAddress(recipientModule), amt)
}

// SendCoinsFromModuleToAccount moves coins from a module account to an address
func (m *MockBankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipient sdk.AccAddress, amt sdk.Coins) error {
	return m.SendCoins(ctx, authtypes.NewModuleAddress(senderModule), recipient, amt)
}

// MintCoins credits a module account with newly minted coins
func (m *MockBankKeeper) MintCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	addr := authtypes.NewModuleAddress(moduleName)
	m.balances[addr.String()] = m.balances[addr.String()].Add(amt...)
	m.supply = m.supply.Add(amt...)
	return nil
}

// BurnCoins destroys coins held by a module account
func (m *MockBankKeeper) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	addr := authtypes.NewModuleAddress(moduleName)
	balance := m.balances[addr.String()]
	newBalance, negative := balance.SafeSub(amt...)
	if negative {
		return fmt.Errorf("insufficient module funds: %s has %s, burning %s", moduleName, balance, amt)
	}
	m.balances[addr.String()] = newBalance
	m.supply, negative = m.supply.SafeSub(amt...)
	if negative {
		return fmt.Errorf("supply underflow burning %s", amt)
	}
	return nil
}
