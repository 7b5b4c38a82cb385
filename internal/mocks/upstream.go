package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/phrazzld/photos-gateway/internal/domain"
)

// Call records one write forwarded to the upstream.
type Call[T any] struct {
	Method string
	Path   string
	Entity *T
}

// MockUpstream implements repository.Upstream for testing
type MockUpstream[T any] struct {
	// Function fields for customizable behavior
	FetchAllFn    func(ctx context.Context, path string) ([]T, error)
	FetchByPathFn func(ctx context.Context, path string) ([]T, error)
	SendFn        func(ctx context.Context, method, path string, entity *T) error

	// Data for default implementation, keyed by path. A path with no entry
	// returns an empty list.
	Data map[string][]T

	// FetchErr and SendErr are returned by the defaults when set.
	FetchErr error
	SendErr  error

	mu     sync.Mutex
	pushes []Call[T]
	sends  []Call[T]
	reads  []string
}

// FetchAll implements repository.Upstream
func (m *MockUpstream[T]) FetchAll(ctx context.Context, path string) ([]T, error) {
	m.record(&m.reads, path)
	if m.FetchAllFn != nil {
		return m.FetchAllFn(ctx, path)
	}
	return m.fetch(path)
}

// FetchByPath implements repository.Upstream
func (m *MockUpstream[T]) FetchByPath(ctx context.Context, path string) ([]T, error) {
	m.record(&m.reads, path)
	if m.FetchByPathFn != nil {
		return m.FetchByPathFn(ctx, path)
	}
	return m.fetch(path)
}

// Push implements repository.Upstream
func (m *MockUpstream[T]) Push(ctx context.Context, method, path string, entity T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pushes = append(m.pushes, Call[T]{Method: method, Path: path, Entity: &entity})
}

// Send implements repository.Upstream
func (m *MockUpstream[T]) Send(ctx context.Context, method, path string, entity *T) error {
	m.mu.Lock()
	m.sends = append(m.sends, Call[T]{Method: method, Path: path, Entity: entity})
	m.mu.Unlock()

	if m.SendFn != nil {
		return m.SendFn(ctx, method, path, entity)
	}
	return m.SendErr
}

// Pushes returns the best-effort writes received so far.
func (m *MockUpstream[T]) Pushes() []Call[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call[T](nil), m.pushes...)
}

// Sends returns the checked writes received so far.
func (m *MockUpstream[T]) Sends() []Call[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call[T](nil), m.sends...)
}

// Reads returns the paths fetched so far.
func (m *MockUpstream[T]) Reads() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.reads...)
}

func (m *MockUpstream[T]) fetch(path string) ([]T, error) {
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	return append([]T(nil), m.Data[path]...), nil
}

func (m *MockUpstream[T]) record(dst *[]string, path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	*dst = append(*dst, path)
}

// UnavailableError returns an error wrapping domain.ErrUpstreamUnavailable.
func UnavailableError(reason string) error {
	return fmt.Errorf("%w: %s", domain.ErrUpstreamUnavailable, reason)
}
