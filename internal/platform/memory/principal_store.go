package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/phrazzld/photos-gateway/internal/domain"
	"github.com/phrazzld/photos-gateway/internal/store"
)

// Seeded administrator account.
const (
	AdminUsername = "admin"
	AdminEmail    = "admin@photosgateway.com"
)

// PrincipalStore implements store.PrincipalStore with an in-memory list.
// Principals are never deleted, so lookups scan a slice ordered by ID.
type PrincipalStore struct {
	mu         sync.RWMutex
	principals []domain.Principal
	nextID     int
	now        func() time.Time
}

// Ensure PrincipalStore implements store.PrincipalStore interface
var _ store.PrincipalStore = (*PrincipalStore)(nil)

// NewPrincipalStore creates a registry seeded with the administrator
// account. adminPasswordHash must already be hashed with the hasher that
// will verify logins.
func NewPrincipalStore(adminPasswordHash string) *PrincipalStore {
	s := &PrincipalStore{
		nextID: 1,
		now:    func() time.Time { return time.Now().UTC() },
	}
	s.insert(domain.Principal{
		Username:     AdminUsername,
		Email:        AdminEmail,
		PasswordHash: adminPasswordHash,
		Role:         domain.RoleAdmin,
	})
	return s
}

// Add implements store.PrincipalStore.Add
func (s *PrincipalStore) Add(ctx context.Context, principal *domain.Principal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.principals {
		existing := &s.principals[i]
		if strings.EqualFold(existing.Username, principal.Username) {
			return store.NewStoreError("principal", "add", "username already registered", store.ErrUsernameExists)
		}
		if strings.EqualFold(existing.Email, principal.Email) {
			return store.NewStoreError("principal", "add", "email already registered", store.ErrEmailExists)
		}
	}

	stored := s.insert(*principal)
	*principal = stored
	return nil
}

// GetByID implements store.PrincipalStore.GetByID
func (s *PrincipalStore) GetByID(ctx context.Context, id int) (*domain.Principal, error) {
	return s.find(func(p *domain.Principal) bool { return p.ID == id })
}

// GetByUsername implements store.PrincipalStore.GetByUsername
func (s *PrincipalStore) GetByUsername(ctx context.Context, username string) (*domain.Principal, error) {
	return s.find(func(p *domain.Principal) bool { return strings.EqualFold(p.Username, username) })
}

// GetByEmail implements store.PrincipalStore.GetByEmail
func (s *PrincipalStore) GetByEmail(ctx context.Context, email string) (*domain.Principal, error) {
	return s.find(func(p *domain.Principal) bool { return strings.EqualFold(p.Email, email) })
}

func (s *PrincipalStore) find(match func(*domain.Principal) bool) (*domain.Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.principals {
		if match(&s.principals[i]) {
			found := s.principals[i]
			return &found, nil
		}
	}
	return nil, store.ErrPrincipalNotFound
}

// insert assigns the next ID and creation time. Caller holds the write lock
// (or is the constructor).
func (s *PrincipalStore) insert(p domain.Principal) domain.Principal {
	p.ID = s.nextID
	s.nextID++
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	s.principals = append(s.principals, p)
	return p
}
