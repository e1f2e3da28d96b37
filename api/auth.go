package api

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues and validates JWT tokens for API accounts. Accounts
// live in memory; they gate access to the protected route group and
// nothing else.
type AuthService struct {
	jwtSecret []byte
	users     map[string]*User
	mu        sync.RWMutex
}

// NewAuthService creates an authentication service with an empty user store
func NewAuthService(jwtSecret []byte) *AuthService {
	return &AuthService{
		jwtSecret: jwtSecret,
		users:     make(map[string]*User),
	}
}

// Claims represents the JWT claims carried by issued tokens
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Register creates a new account with a bcrypt-hashed password
func (as *AuthService) Register(username, password string) (*User, error) {
	as.mu.Lock()
	defer as.mu.Unlock()

	if _, exists := as.users[username]; exists {
		return nil, fmt.Errorf("username %q already exists", username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		ID:           generateUserID(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	as.users[username] = user
	return user, nil
}

// Authenticate verifies a username/password pair
func (as *AuthService) Authenticate(username, password string) (*User, error) {
	as.mu.RLock()
	user, exists := as.users[username]
	as.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	return user, nil
}

// GenerateToken issues a signed JWT for a user, valid for 24 hours
func (as *AuthService) GenerateToken(user *User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "picoin-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(as.jwtSecret)
}

// ValidateToken parses and verifies a JWT, returning its claims
func (as *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return as.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// GetUser retrieves a user by username
func (as *AuthService) GetUser(username string) (*User, bool) {
	as.mu.RLock()
	defer as.mu.RUnlock()
	user, exists := as.users[username]
	return user, exists
}

// generateUserID generates a unique user ID
func generateUserID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
