package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid, its signature
	// doesn't match, or its issuer or audience is not ours.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidCredentials is returned by Login for an unknown username or a
	// wrong password. The two cases are indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrRegistrationConflict is returned by Register when the username or
	// email is already registered. The joined error also matches
	// ErrUsernameTaken and/or ErrEmailTaken.
	ErrRegistrationConflict = errors.New("username or email already exists")

	// ErrUsernameTaken indicates the requested username is registered.
	ErrUsernameTaken = errors.New("username already registered")

	// ErrEmailTaken indicates the requested email is registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUnknownHashAlgorithm is returned by NewPasswordHasher.
	ErrUnknownHashAlgorithm = errors.New("unknown password hash algorithm")
)
