package auth

import (
	"context"
	"time"

	"github.com/phrazzld/photos-gateway/internal/domain"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed token describing principal.
	// Returns the token string and its expiry instant.
	GenerateToken(ctx context.Context, principal *domain.Principal) (string, time.Time, error)

	// ValidateToken verifies signature, issuer, audience and expiry (with no
	// clock skew allowance) and extracts the claims.
	// Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the validated content of a token.
type Claims struct {
	// PrincipalID is the registry ID of the principal the token was issued for.
	PrincipalID int `json:"uid"`

	Username string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`

	// Standard registered JWT claims
	Subject   string    `json:"sub"`
	Issuer    string    `json:"iss"`
	Audience  []string  `json:"aud"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
	ID        string    `json:"jti"`
}

// HasRole reports whether the claims carry one of roles.
func (c *Claims) HasRole(roles ...string) bool {
	if c == nil {
		return false
	}
	for _, role := range roles {
		if c.Role == role {
			return true
		}
	}
	return false
}
