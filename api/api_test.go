package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	dextypes "github.com/picoin-network/picoin/x/dex/types"
)

func testServer(t *testing.T) (*Server, *DevEngine) {
	t.Helper()

	engine := NewDevEngine()
	pool := dextypes.NewPool("uatom", "upicoin")
	require.NoError(t, pool.ApplyDelta(math.NewInt(1000), math.NewInt(1000), math.NewInt(2000)))
	engine.SetPool(pool)

	cfg := DefaultConfig()
	cfg.JWTSecret = []byte("test-secret")
	cfg.RateLimitRPS = 1000

	server, err := NewServer(engine, cfg)
	require.NoError(t, err)
	return server, engine
}

func doJSON(t *testing.T, server *Server, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	server, _ := testServer(t)

	w := doJSON(t, server, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "healthy", resp["status"])
}

func TestQuote(t *testing.T) {
	server, _ := testServer(t)

	w := doJSON(t, server, http.MethodGet, "/api/v1/dex/quote?token_in=uatom&token_out=upicoin&amount_in=100", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "90", resp.AmountOut)
}

func TestQuote_BadRequest(t *testing.T) {
	server, _ := testServer(t)

	w := doJSON(t, server, http.MethodGet, "/api/v1/dex/quote?token_in=uatom", nil, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, server, http.MethodGet, "/api/v1/dex/quote?token_in=uatom&token_out=upicoin&amount_in=abc", nil, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuote_UnknownPool(t *testing.T) {
	server, _ := testServer(t)

	w := doJSON(t, server, http.MethodGet, "/api/v1/dex/quote?token_in=ueth&token_out=ubtc&amount_in=100", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPools(t *testing.T) {
	server, _ := testServer(t)

	w := doJSON(t, server, http.MethodGet, "/api/v1/dex/pools", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Pools []PoolResponse `json:"pools"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Pools, 1)
	require.Equal(t, "uatom/upicoin", resp.Pools[0].PairID)
	require.Equal(t, "2000", resp.Pools[0].TotalShares)
}

func TestPool_ByDenoms(t *testing.T) {
	server, _ := testServer(t)

	// Either denom order resolves to the same pool.
	for _, path := range []string{
		"/api/v1/dex/pools/uatom/upicoin",
		"/api/v1/dex/pools/upicoin/uatom",
	} {
		w := doJSON(t, server, http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusOK, w.Code, path)

		var resp PoolResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, "uatom/upicoin", resp.PairID)
	}

	w := doJSON(t, server, http.MethodGet, "/api/v1/dex/pools/ueth/ubtc", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPegStatus(t *testing.T) {
	server, engine := testServer(t)
	engine.SetPegStatus(PegStatusResponse{
		Asset:       "PICOIN",
		TargetPrice: "314159000000000000000000",
		TotalSupply: "100000000000000000000000000000",
	})

	w := doJSON(t, server, http.MethodGet, "/api/v1/peg/status", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp PegStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "PICOIN", resp.Asset)
	require.Equal(t, "314159000000000000000000", resp.TargetPrice)
	require.Equal(t, "PI", resp.Symbol)
	require.Equal(t, 18, resp.Decimals)
}

func TestAuthFlow(t *testing.T) {
	server, _ := testServer(t)

	w := doJSON(t, server, http.MethodPost, "/api/v1/auth/register", RegisterRequest{
		Username: "alice",
		Password: "correct-horse-battery",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// Duplicate registration is rejected.
	w = doJSON(t, server, http.MethodPost, "/api/v1/auth/register", RegisterRequest{
		Username: "alice",
		Password: "correct-horse-battery",
	}, "")
	require.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, server, http.MethodPost, "/api/v1/auth/login", LoginRequest{
		Username: "alice",
		Password: "wrong-password",
	}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, server, http.MethodPost, "/api/v1/auth/login", LoginRequest{
		Username: "alice",
		Password: "correct-horse-battery",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var auth AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &auth))
	require.NotEmpty(t, auth.Token)

	w = doJSON(t, server, http.MethodGet, "/api/v1/account/profile", nil, auth.Token)
	require.Equal(t, http.StatusOK, w.Code)

	var user User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	require.Equal(t, "alice", user.Username)
}

func TestAuth_Rejections(t *testing.T) {
	server, _ := testServer(t)

	w := doJSON(t, server, http.MethodGet, "/api/v1/account/profile", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, server, http.MethodGet, "/api/v1/account/profile", nil, "not-a-jwt")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimit(t *testing.T) {
	engine := NewDevEngine()
	cfg := DefaultConfig()
	cfg.JWTSecret = []byte("test-secret")
	cfg.RateLimitRPS = 1

	server, err := NewServer(engine, cfg)
	require.NoError(t, err)

	limited := false
	for i := 0; i < 10; i++ {
		w := doJSON(t, server, http.MethodGet, "/health", nil, "")
		if w.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	require.True(t, limited, "expected the per-IP limiter to engage")
}

func TestSecurityHeaders(t *testing.T) {
	server, _ := testServer(t)

	w := doJSON(t, server, http.MethodGet, "/health", nil, "")
	require.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	require.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestDevEngine_Quote(t *testing.T) {
	engine := NewDevEngine()
	pool := dextypes.NewPool("uatom", "upicoin")
	require.NoError(t, pool.ApplyDelta(math.NewInt(1000), math.NewInt(1000), math.NewInt(2000)))
	engine.SetPool(pool)

	out, err := engine.Quote("uatom", "upicoin", math.NewInt(100))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(90), out)

	_, err = engine.Quote("ueth", "ubtc", math.NewInt(100))
	require.ErrorIs(t, err, dextypes.ErrPoolNotFound)
}
