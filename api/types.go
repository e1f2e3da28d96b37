package api

import (
	"time"
)

// ErrorResponse is the uniform error payload
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse is the uniform success payload for non-resource endpoints
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// RegisterRequest is the body of POST /api/v1/auth/register
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the body of POST /api/v1/auth/login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries a freshly issued token
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	UserID   string `json:"user_id"`
}

// User is an API account record. The store is in-memory; accounts exist
// only for the lifetime of the server process.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// QuoteResponse is the result of GET /api/v1/dex/quote
type QuoteResponse struct {
	TokenIn   string `json:"token_in"`
	TokenOut  string `json:"token_out"`
	AmountIn  string `json:"amount_in"`
	AmountOut string `json:"amount_out"`
}

// PoolResponse describes one liquidity pool
type PoolResponse struct {
	PairID      string `json:"pair_id"`
	TokenA      string `json:"token_a"`
	TokenB      string `json:"token_b"`
	ReserveA    string `json:"reserve_a"`
	ReserveB    string `json:"reserve_b"`
	TotalShares string `json:"total_shares"`
}

// PegStatusResponse describes the supply controller's view of the peg
type PegStatusResponse struct {
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	Decimals     int    `json:"decimals"`
	Asset        string `json:"asset"`
	TargetPrice  string `json:"target_price"`
	CurrentPrice string `json:"current_price,omitempty"`
	TotalSupply  string `json:"total_supply"`
	Paused       bool   `json:"paused"`
}
