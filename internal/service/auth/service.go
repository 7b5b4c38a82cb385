package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/photos-gateway/internal/domain"
	"github.com/phrazzld/photos-gateway/internal/store"
)

// Session is the outcome of a successful login or registration.
type Session struct {
	Token     string
	Principal *domain.Principal
	ExpiresAt time.Time
}

// RegisterInput carries the fields needed to create an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Service authenticates principals and issues tokens for them.
type Service struct {
	principals store.PrincipalStore
	tokens     JWTService
	hasher     PasswordHasher
	logger     *slog.Logger
}

// NewService creates an auth Service.
func NewService(principals store.PrincipalStore, tokens JWTService, hasher PasswordHasher, logger *slog.Logger) *Service {
	return &Service{
		principals: principals,
		tokens:     tokens,
		hasher:     hasher,
		logger:     logger.With("component", "auth_service"),
	}
}

// Login verifies username and password and issues a token. An unknown
// username and a wrong password both return ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	principal, err := s.principals.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, store.ErrPrincipalNotFound) {
			s.logger.ErrorContext(ctx, "failed to look up principal", "error", err)
			return nil, fmt.Errorf("failed to look up principal: %w", err)
		}
		// Spend the same hashing work as a real comparison.
		_, _ = s.hasher.Hash(password)
		s.logger.WarnContext(ctx, "failed login attempt", "username", username)
		return nil, ErrInvalidCredentials
	}

	if err := s.hasher.Compare(principal.PasswordHash, password); err != nil {
		s.logger.WarnContext(ctx, "failed login attempt", "username", username)
		return nil, ErrInvalidCredentials
	}

	session, err := s.issue(ctx, principal)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "principal logged in",
		"principal_id", principal.ID,
		"role", principal.Role)
	return session, nil
}

// Register creates a principal with the User role and issues a token.
// Both the username and the email are checked before anything is stored.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	var conflicts []error
	if _, err := s.principals.GetByUsername(ctx, input.Username); err == nil {
		conflicts = append(conflicts, ErrUsernameTaken)
	} else if !errors.Is(err, store.ErrPrincipalNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if _, err := s.principals.GetByEmail(ctx, input.Email); err == nil {
		conflicts = append(conflicts, ErrEmailTaken)
	} else if !errors.Is(err, store.ErrPrincipalNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if len(conflicts) > 0 {
		s.logger.DebugContext(ctx, "registration rejected, identity already registered",
			"username", input.Username)
		return nil, errors.Join(append([]error{ErrRegistrationConflict}, conflicts...)...)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	principal := &domain.Principal{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.principals.Add(ctx, principal); err != nil {
		// A concurrent registration took the identity between check and insert.
		switch {
		case errors.Is(err, store.ErrUsernameExists):
			return nil, errors.Join(ErrRegistrationConflict, ErrUsernameTaken)
		case errors.Is(err, store.ErrEmailExists):
			return nil, errors.Join(ErrRegistrationConflict, ErrEmailTaken)
		}
		s.logger.ErrorContext(ctx, "failed to store principal", "error", err)
		return nil, fmt.Errorf("failed to register principal: %w", err)
	}

	session, err := s.issue(ctx, principal)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "principal registered", "principal_id", principal.ID)
	return session, nil
}

// Profile returns the principal registered under username.
func (s *Service) Profile(ctx context.Context, username string) (*domain.Principal, error) {
	principal, err := s.principals.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return principal, nil
}

func (s *Service) issue(ctx context.Context, principal *domain.Principal) (*Session, error) {
	token, expiresAt, err := s.tokens.GenerateToken(ctx, principal)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &Session{Token: token, Principal: principal, ExpiresAt: expiresAt}, nil
}
