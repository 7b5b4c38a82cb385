package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/phrazzld/photos-gateway/internal/domain"
	"github.com/phrazzld/photos-gateway/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrincipalStoreSeedsAdmin(t *testing.T) {
	t.Parallel()

	s := NewPrincipalStore("admin-hash")

	admin, err := s.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, 1, admin.ID)
	assert.Equal(t, AdminEmail, admin.Email)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.Equal(t, "admin-hash", admin.PasswordHash)
	assert.False(t, admin.CreatedAt.IsZero())
}

func TestPrincipalStoreLookupsAreCaseInsensitive(t *testing.T) {
	t.Parallel()

	s := NewPrincipalStore("h")
	ctx := context.Background()

	byName, err := s.GetByUsername(ctx, "ADMIN")
	require.NoError(t, err)
	assert.Equal(t, 1, byName.ID)

	byEmail, err := s.GetByEmail(ctx, "Admin@PhotosGateway.com")
	require.NoError(t, err)
	assert.Equal(t, 1, byEmail.ID)

	_, err = s.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, store.ErrPrincipalNotFound)
	_, err = s.GetByID(ctx, 99)
	assert.ErrorIs(t, err, store.ErrPrincipalNotFound)
}

func TestPrincipalStoreAdd(t *testing.T) {
	t.Parallel()

	s := NewPrincipalStore("h")
	ctx := context.Background()

	p := &domain.Principal{Username: "jane", Email: "jane@example.com", PasswordHash: "x", Role: domain.RoleUser}
	require.NoError(t, s.Add(ctx, p))
	assert.Equal(t, 2, p.ID)

	got, err := s.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "jane", got.Username)

	tests := []struct {
		name    string
		p       domain.Principal
		wantErr error
	}{
		{name: "username differs only by case", p: domain.Principal{Username: "Admin", Email: "new@example.com"}, wantErr: store.ErrUsernameExists},
		{name: "email differs only by case", p: domain.Principal{Username: "new", Email: "JANE@example.com"}, wantErr: store.ErrEmailExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.p
			err := s.Add(ctx, &p)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, p.ID)
		})
	}
}

func TestPrincipalStoreReturnsCopies(t *testing.T) {
	t.Parallel()

	s := NewPrincipalStore("h")
	admin, err := s.GetByID(context.Background(), 1)
	require.NoError(t, err)
	admin.Role = domain.RoleUser

	again, err := s.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, again.Role)
}

func TestPrincipalStoreConcurrentDuplicateAdd(t *testing.T) {
	t.Parallel()

	s := NewPrincipalStore("h")
	const n = 20

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.Add(context.Background(), &domain.Principal{Username: "race", Email: "race@example.com"})
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, store.ErrUsernameExists)
	}
	assert.Equal(t, 1, succeeded)
}
