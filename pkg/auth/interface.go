package auth

import "time"

//go:generate mockgen -destination=mocks/mock_jwt.go -package=mocks tourbook/pkg/auth TokenManager

// TokenManager defines the interface for session token operations.
type TokenManager interface {
	// GenerateToken creates a new signed token for a user.
	GenerateToken(userID string) (string, error)
	// ValidateToken parses and validates a token, returning the claims if valid.
	ValidateToken(tokenString string) (*Claims, error)
	// Expiry returns the lifetime of issued tokens.
	Expiry() time.Duration
}

// Ensure JWTManager implements TokenManager interface
var _ TokenManager = (*JWTManager)(nil)
