package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/photos-gateway/internal/api/shared"
	"github.com/phrazzld/photos-gateway/internal/domain"
	"github.com/phrazzld/photos-gateway/internal/platform/logger"
	"github.com/phrazzld/photos-gateway/internal/service/auth"
)

// AuthService is the authentication surface AuthHandler needs.
// *auth.Service satisfies it.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*auth.Session, error)
	Register(ctx context.Context, input auth.RegisterInput) (*auth.Session, error)
	Profile(ctx context.Context, username string) (*domain.Principal, error)
}

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	auth   AuthService
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authService AuthService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		auth:   authService,
		logger: logger.With(slog.String("component", "auth_handler")),
	}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized,
				"Invalid username or password", err, shared.WithElevatedLogLevel())
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newAuthResponse(
		session.Token, session.Principal.Username, session.Principal.Email, session.ExpiresAt))
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.auth.Register(r.Context(), auth.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("principal registered",
		slog.Int("principal_id", session.Principal.ID))

	w.Header().Set("Location", "/api/auth/profile")
	shared.RespondWithJSON(w, r, http.StatusCreated, newAuthResponse(
		session.Token, session.Principal.Username, session.Principal.Email, session.ExpiresAt))
}

// Profile handles GET /api/auth/profile for the token's subject.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := shared.GetClaims(r.Context())
	if !ok || claims.Subject == "" {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	principal, err := h.auth.Profile(r.Context(), claims.Subject)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProfileResponse{
		Username:  principal.Username,
		Email:     principal.Email,
		Role:      principal.Role,
		CreatedAt: principal.CreatedAt,
	})
}

// AdminOnly handles GET /api/auth/admin-only. Role checks happen in
// middleware.RequireRole.
func (h *AuthHandler) AdminOnly(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Welcome Admin! This is a protected resource.",
	})
}
