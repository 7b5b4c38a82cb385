package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/phrazzld/photos-gateway/internal/config"
	"github.com/phrazzld/photos-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

var fixedTime = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            testSecret,
		Issuer:               "photos-gateway",
		Audience:             "photos-gateway-clients",
		TokenLifetimeMinutes: 60,
	}
}

// NewTestJWTService creates a JWT service whose clock is timeFunc.
func NewTestJWTService(t *testing.T, cfg config.AuthConfig, timeFunc func() time.Time) *hmacJWTService {
	t.Helper()
	svc, err := newHMACJWTService(cfg, timeFunc)
	require.NoError(t, err)
	return svc
}

func at(instant time.Time) func() time.Time {
	return func() time.Time { return instant }
}

func testPrincipal() *domain.Principal {
	return &domain.Principal{ID: 7, Username: "jane", Email: "jane@example.com", Role: domain.RoleUser}
}

func TestNewJWTServiceRejectsBadConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.AuthConfig)
	}{
		{name: "short secret", mutate: func(c *config.AuthConfig) { c.JWTSecret = "short" }},
		{name: "missing issuer", mutate: func(c *config.AuthConfig) { c.Issuer = "" }},
		{name: "missing audience", mutate: func(c *config.AuthConfig) { c.Audience = "" }},
		{name: "zero lifetime", mutate: func(c *config.AuthConfig) { c.TokenLifetimeMinutes = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := testAuthConfig()
			tt.mutate(&cfg)
			_, err := NewJWTService(cfg)
			assert.Error(t, err)
		})
	}
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	svc := NewTestJWTService(t, testAuthConfig(), at(fixedTime))
	principal := testPrincipal()

	token, expiresAt, err := svc.GenerateToken(context.Background(), principal)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, fixedTime.Add(time.Hour).Equal(expiresAt))

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, 7, claims.PrincipalID)
	assert.Equal(t, "jane", claims.Subject)
	assert.Equal(t, "jane", claims.Username)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, domain.RoleUser, claims.Role)
	assert.Equal(t, "photos-gateway", claims.Issuer)
	assert.Equal(t, []string{"photos-gateway-clients"}, claims.Audience)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestGenerateTokenUniqueIDs(t *testing.T) {
	t.Parallel()

	svc := NewTestJWTService(t, testAuthConfig(), at(fixedTime))

	first, _, err := svc.GenerateToken(context.Background(), testPrincipal())
	require.NoError(t, err)
	second, _, err := svc.GenerateToken(context.Background(), testPrincipal())
	require.NoError(t, err)

	c1, err := svc.ValidateToken(context.Background(), first)
	require.NoError(t, err)
	c2, err := svc.ValidateToken(context.Background(), second)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	issue := func(t *testing.T, cfg config.AuthConfig) string {
		svc := NewTestJWTService(t, cfg, at(fixedTime))
		token, _, err := svc.GenerateToken(context.Background(), testPrincipal())
		require.NoError(t, err)
		return token
	}

	otherIssuer := testAuthConfig()
	otherIssuer.Issuer = "someone-else"
	otherAudience := testAuthConfig()
	otherAudience.Audience = "another-app"
	otherSecret := testAuthConfig()
	otherSecret.JWTSecret = "wrong-secret-that-is-long-enough-for-testing"

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		now     time.Time
		wantErr error
	}{
		{
			name:  "valid token",
			token: func(t *testing.T) string { return issue(t, testAuthConfig()) },
			now:   fixedTime.Add(59 * time.Minute),
		},
		{
			name:    "token at its expiry instant",
			token:   func(t *testing.T) string { return issue(t, testAuthConfig()) },
			now:     fixedTime.Add(time.Hour),
			wantErr: ErrExpiredToken,
		},
		{
			name:    "expired token",
			token:   func(t *testing.T) string { return issue(t, testAuthConfig()) },
			now:     fixedTime.Add(2 * time.Hour),
			wantErr: ErrExpiredToken,
		},
		{
			name:    "invalid signature",
			token:   func(t *testing.T) string { return issue(t, otherSecret) },
			now:     fixedTime,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "foreign issuer",
			token:   func(t *testing.T) string { return issue(t, otherIssuer) },
			now:     fixedTime,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "foreign audience",
			token:   func(t *testing.T) string { return issue(t, otherAudience) },
			now:     fixedTime,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "malformed token",
			token:   func(t *testing.T) string { return "not.a.valid.token" },
			now:     fixedTime,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "empty token",
			token:   func(t *testing.T) string { return "" },
			now:     fixedTime,
			wantErr: ErrMissingToken,
		},
		{
			name: "no expiry",
			token: func(t *testing.T) string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
					Subject:  "jane",
					Issuer:   "photos-gateway",
					Audience: jwt.ClaimStrings{"photos-gateway-clients"},
				})
				signed, err := token.SignedString([]byte(testSecret))
				require.NoError(t, err)
				return signed
			},
			now:     fixedTime,
			wantErr: ErrInvalidToken,
		},
		{
			name: "wrong algorithm",
			token: func(t *testing.T) string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
					Issuer:    "photos-gateway",
					Audience:  jwt.ClaimStrings{"photos-gateway-clients"},
					ExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Hour)),
				})
				signed, err := token.SignedString([]byte(testSecret))
				require.NoError(t, err)
				return signed
			},
			now:     fixedTime,
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			token := tt.token(t)
			validator := NewTestJWTService(t, testAuthConfig(), at(tt.now))

			claims, err := validator.ValidateToken(context.Background(), token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "jane", claims.Subject)
		})
	}
}

func TestValidateTokenTampered(t *testing.T) {
	t.Parallel()

	svc := NewTestJWTService(t, testAuthConfig(), at(fixedTime))
	token, _, err := svc.GenerateToken(context.Background(), testPrincipal())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	adminSvc := NewTestJWTService(t, testAuthConfig(), at(fixedTime))
	adminToken, _, err := adminSvc.GenerateToken(context.Background(), &domain.Principal{ID: 1, Username: "admin", Role: domain.RoleAdmin})
	require.NoError(t, err)
	adminParts := strings.Split(adminToken, ".")

	forged := parts[0] + "." + adminParts[1] + "." + parts[2]
	_, err = svc.ValidateToken(context.Background(), forged)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClaimsHasRole(t *testing.T) {
	t.Parallel()

	claims := &Claims{Role: domain.RoleAdmin}
	assert.True(t, claims.HasRole(domain.RoleAdmin))
	assert.True(t, claims.HasRole(domain.RoleUser, domain.RoleAdmin))
	assert.False(t, claims.HasRole(domain.RoleUser))
	assert.False(t, (*Claims)(nil).HasRole(domain.RoleAdmin))
}
