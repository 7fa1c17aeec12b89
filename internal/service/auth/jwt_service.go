package auth

import (
	"context"
	"time"
)

// JWTService issues and verifies stateless bearer tokens.
type JWTService interface {
	// GenerateToken creates a signed token for the user that expires after the
	// configured lifetime.
	GenerateToken(ctx context.Context, userID string) (string, error)

	// ValidateToken checks the signature and expiry of tokenString and returns its claims.
	// Returns ErrExpiredToken, ErrTokenNotYetValid or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims are the verified contents of a token.
type Claims struct {
	UserID    string    `json:"uid"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
	ID        string    `json:"jti"`
}
