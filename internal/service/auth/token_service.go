// Package auth provides bearer-token issuing/verification and password
// hashing for the API.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/inkwell/inkwell-api/internal/domain"
)

// TokenService defines operations for managing bearer tokens.
type TokenService interface {
	// Sign creates a signed token carrying the user's identity and
	// display name.
	Sign(ctx context.Context, user *domain.User) (string, error)

	// Verify checks the token cryptographically and returns its claims.
	// Returns ErrExpiredToken or ErrInvalidToken on failure; callers
	// treat both as an invalid presented credential.
	Verify(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the decoded payload of a verified token.
type Claims struct {
	UserID      uuid.UUID
	DisplayName string
	IssuedAt    time.Time
	ExpiresAt   time.Time
}
