package auth

import "errors"

// Common authentication service errors.
var (
	// ErrInvalidToken indicates the token is malformed or its signature
	// does not verify.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates a well-signed token whose expiry has
	// passed. The API treats it the same as ErrInvalidToken: a presented
	// credential that fails verification.
	ErrExpiredToken = errors.New("authentication token has expired")
)
