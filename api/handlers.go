package api

import (
	"net/http"

	"cosmossdk.io/math"
	"github.com/gin-gonic/gin"

	dextypes "github.com/picoin-network/picoin/x/dex/types"
)

// handleRegister handles account registration
func (s *Server) handleRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request",
			Details: err.Error(),
		})
		return
	}

	user, err := s.authService.Register(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusConflict, ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Success: true,
		Message: "Registration successful",
		Data: gin.H{
			"user_id":  user.ID,
			"username": user.Username,
		},
	})
}

// handleLogin verifies credentials and issues a JWT
func (s *Server) handleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request",
			Details: err.Error(),
		})
		return
	}

	user, err := s.authService.Authenticate(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "Invalid credentials",
		})
		return
	}

	token, err := s.authService.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to generate token",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token:    token,
		Username: user.Username,
		UserID:   user.ID,
	})
}

// handleProfile returns the authenticated account
func (s *Server) handleProfile(c *gin.Context) {
	username := c.GetString("username")
	user, exists := s.authService.GetUser(username)
	if !exists {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "Account not found",
		})
		return
	}
	c.JSON(http.StatusOK, user)
}

// handleQuote prices a swap without executing it.
// GET /api/v1/dex/quote?token_in=uatom&token_out=upicoin&amount_in=100
func (s *Server) handleQuote(c *gin.Context) {
	tokenIn := c.Query("token_in")
	tokenOut := c.Query("token_out")
	amountStr := c.Query("amount_in")

	if tokenIn == "" || tokenOut == "" || amountStr == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "token_in, token_out and amount_in are required",
		})
		return
	}

	amountIn, ok := math.NewIntFromString(amountStr)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "amount_in must be an integer",
		})
		return
	}

	amountOut, err := s.engine.Quote(tokenIn, tokenOut, amountIn)
	if err != nil {
		status := http.StatusBadRequest
		if dextypes.ErrPoolNotFound.Is(err) {
			status = http.StatusNotFound
		}
		c.JSON(status, ErrorResponse{
			Error:   "Quote failed",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, QuoteResponse{
		TokenIn:   tokenIn,
		TokenOut:  tokenOut,
		AmountIn:  amountIn.String(),
		AmountOut: amountOut.String(),
	})
}

// handlePools lists all liquidity pools
func (s *Server) handlePools(c *gin.Context) {
	pools, err := s.engine.Pools()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to list pools",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pools": pools})
}

// handlePool returns one pool addressed by its two denominations, in
// either order
func (s *Server) handlePool(c *gin.Context) {
	pairID := dextypes.PairID(c.Param("token_a"), c.Param("token_b"))

	pool, err := s.engine.Pool(pairID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Pool not found",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, pool)
}

// handlePegStatus reports the supply controller's view of the peg
func (s *Server) handlePegStatus(c *gin.Context) {
	status, err := s.engine.PegStatus()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to read peg status",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, status)
}
