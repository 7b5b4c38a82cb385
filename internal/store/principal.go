package store

import (
	"context"

	"github.com/phrazzld/photos-gateway/internal/domain"
)

// PrincipalStore defines the operations on the registry of accounts that
// may authenticate against the gateway. Username and email lookups are
// case-insensitive.
type PrincipalStore interface {
	// Add stores a new principal and assigns its ID. The uniqueness of the
	// username and email is checked atomically with the insert.
	// Returns ErrUsernameExists or ErrEmailExists on conflict.
	Add(ctx context.Context, principal *domain.Principal) error

	// GetByID retrieves a principal by ID.
	// Returns ErrPrincipalNotFound if no principal has that ID.
	GetByID(ctx context.Context, id int) (*domain.Principal, error)

	// GetByUsername retrieves a principal by username.
	// Returns ErrPrincipalNotFound if no principal has that username.
	GetByUsername(ctx context.Context, username string) (*domain.Principal, error)

	// GetByEmail retrieves a principal by email address.
	// Returns ErrPrincipalNotFound if no principal has that email.
	GetByEmail(ctx context.Context, email string) (*domain.Principal, error)
}
