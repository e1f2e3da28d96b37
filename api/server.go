package api

import (
	"context"
	"crypto/rand"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// Server is the HTTP transport in front of the exchange engine. It is
// read-only glue: every state change goes through chain transactions,
// never through this server.
type Server struct {
	router      *gin.Engine
	engine      Engine
	config      *Config
	authService *AuthService
}

// Config holds server configuration
type Config struct {
	Host            string
	Port            string
	JWTSecret       []byte
	CORSOrigins     []string
	RateLimitRPS    int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DefaultConfig returns default server configuration
func DefaultConfig() *Config {
	return &Config{
		Host:            "0.0.0.0",
		Port:            "5000",
		CORSOrigins:     []string{"http://localhost:3000"},
		RateLimitRPS:    100,
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// NewServer creates an API server over an exchange engine
func NewServer(engine Engine, config *Config) (*Server, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if len(config.JWTSecret) == 0 {
		// An ephemeral secret invalidates sessions on restart; fine for
		// development, configure one explicitly in production.
		secret := make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generate JWT secret: %w", err)
		}
		config.JWTSecret = secret
	}

	server := &Server{
		engine:      engine,
		config:      config,
		authService: NewAuthService(config.JWTSecret),
	}
	server.setupRouter()

	return server, nil
}

// setupRouter configures the gin router with middleware and routes
func (s *Server) setupRouter() {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	s.router = gin.New()

	s.router.Use(gin.Recovery())
	s.router.Use(SecurityHeadersMiddleware())
	s.router.Use(LoggerMiddleware())
	s.router.Use(s.CORSMiddleware())
	s.router.Use(RateLimitMiddleware(s.config.RateLimitRPS))

	s.router.GET("/health", s.healthCheck)

	v1 := s.router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", s.handleRegister)
			auth.POST("/login", s.handleLogin)
		}

		dex := v1.Group("/dex")
		{
			dex.GET("/quote", s.handleQuote)
			dex.GET("/pools", s.handlePools)
			dex.GET("/pools/:token_a/:token_b", s.handlePool)
		}

		v1.GET("/peg/status", s.handlePegStatus)

		protected := v1.Group("/account")
		protected.Use(s.AuthMiddleware())
		{
			protected.GET("/profile", s.handleProfile)
		}
	}
}

// healthCheck returns server health status
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	})
}

// Router exposes the configured router for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// Start serves HTTP until SIGINT/SIGTERM, then shuts down gracefully
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:           fmt.Sprintf("%s:%s", s.config.Host, s.config.Port),
		Handler:        s.router,
		ReadTimeout:    s.config.ReadTimeout,
		WriteTimeout:   s.config.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		fmt.Printf("Starting picoin API server on %s:%s\n", s.config.Host, s.config.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("Server error: %v\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
