package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/photos-gateway/internal/api/shared"
	"github.com/phrazzld/photos-gateway/internal/domain"
	"github.com/phrazzld/photos-gateway/internal/mocks"
	"github.com/phrazzld/photos-gateway/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func claimsEcho(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := shared.GetClaims(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(claims.Subject))
	})
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	jwtService := &mocks.MockJWTService{
		ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
			switch token {
			case "good":
				return &auth.Claims{PrincipalID: 1, Subject: "admin", Role: domain.RoleAdmin}, nil
			case "expired":
				return nil, auth.ErrExpiredToken
			case "broken":
				return nil, errors.New("key lookup failed")
			default:
				return nil, auth.ErrInvalidToken
			}
		},
	}
	handler := NewAuthMiddleware(jwtService).Authenticate(claimsEcho(t))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
		wantMsg    string
	}{
		{name: "valid token", header: "Bearer good", wantStatus: http.StatusOK, wantBody: "admin"},
		{name: "lowercase scheme", header: "bearer good", wantStatus: http.StatusOK, wantBody: "admin"},
		{name: "missing header", wantStatus: http.StatusUnauthorized, wantMsg: "Authorization header required"},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantMsg: "Invalid authorization format"},
		{name: "no token", header: "Bearer ", wantStatus: http.StatusUnauthorized, wantMsg: "Invalid authorization format"},
		{name: "expired", header: "Bearer expired", wantStatus: http.StatusUnauthorized, wantMsg: "Token expired"},
		{name: "invalid", header: "Bearer forged", wantStatus: http.StatusUnauthorized, wantMsg: "Invalid token"},
		{name: "unexpected failure", header: "Bearer broken", wantStatus: http.StatusInternalServerError, wantMsg: "Authentication error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/api/albums", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantMsg != "" {
				body := decodeError(t, w)
				assert.Equal(t, tt.wantStatus, body.StatusCode)
				assert.Equal(t, tt.wantMsg, body.Message)
				return
			}
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := RequireRole(domain.RoleAdmin)(ok)

	tests := []struct {
		name       string
		claims     *auth.Claims
		wantStatus int
	}{
		{name: "admin", claims: &auth.Claims{Role: domain.RoleAdmin}, wantStatus: http.StatusNoContent},
		{name: "user", claims: &auth.Claims{Role: domain.RoleUser}, wantStatus: http.StatusForbidden},
		{name: "unauthenticated", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/api/auth/admin-only", nil)
			if tt.claims != nil {
				r = r.WithContext(shared.WithClaims(r.Context(), tt.claims))
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
