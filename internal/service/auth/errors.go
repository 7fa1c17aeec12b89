package auth

import "errors"

// Token verification errors. Callers at the HTTP boundary collapse all of them
// into a single opaque Unauthorized response.
var (
	// ErrInvalidToken indicates the token is malformed, tampered with or carries no subject.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token was issued in the future.
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")
)
