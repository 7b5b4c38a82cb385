package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/photos-gateway/internal/domain"
	"github.com/phrazzld/photos-gateway/internal/redact"
	"github.com/phrazzld/photos-gateway/internal/store"
)

// ErrNoParent is returned by GetByParent for kinds without a relationship path.
var ErrNoParent = errors.New("entity kind has no parent relationship")

// Upstream is the typed upstream access a Repository needs.
// upstream.Source satisfies it.
type Upstream[T any] interface {
	FetchAll(ctx context.Context, path string) ([]T, error)
	FetchByPath(ctx context.Context, path string) ([]T, error)
	Push(ctx context.Context, method, path string, entity T)
	Send(ctx context.Context, method, path string, entity *T) error
}

// Kind describes where an entity kind lives upstream.
type Kind struct {
	// Name is the singular name used in logs, e.g. "album".
	Name string

	// Collection is the upstream collection path, e.g. "albums".
	Collection string

	// ParentPath builds the upstream relationship path for a parent ID,
	// e.g. "users/5/albums". Nil for kinds without a parent.
	ParentPath func(parentID int) string
}

// Kinds served by the gateway.
var (
	UserKind = Kind{Name: "user", Collection: "users"}

	AlbumKind = Kind{
		Name:       "album",
		Collection: "albums",
		ParentPath: func(userID int) string { return fmt.Sprintf("users/%d/albums", userID) },
	}

	PhotoKind = Kind{
		Name:       "photo",
		Collection: "photos",
		ParentPath: func(albumID int) string { return fmt.Sprintf("albums/%d/photos", albumID) },
	}
)

// Repository is the merged view of one entity kind.
type Repository[T domain.Entity[T]] struct {
	kind     Kind
	overlay  store.Overlay[T]
	upstream Upstream[T]
	logger   *slog.Logger
}

// New creates a Repository for kind backed by overlay and upstream.
func New[T domain.Entity[T]](kind Kind, overlay store.Overlay[T], upstream Upstream[T], logger *slog.Logger) *Repository[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository[T]{
		kind:     kind,
		overlay:  overlay,
		upstream: upstream,
		logger: logger.With(
			slog.String("component", "repository"),
			slog.String("kind", kind.Name),
		),
	}
}

// GetAll returns every upstream entity followed by every overlay entity.
// An upstream failure fails the whole call.
func (r *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	remote, err := r.upstream.FetchAll(ctx, r.kind.Collection)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to fetch collection from upstream",
			slog.String("error", redact.Error(err)))
		return nil, err
	}

	local := r.overlay.GetAll()
	r.logger.DebugContext(ctx, "merged collection",
		slog.Int("upstream_count", len(remote)),
		slog.Int("overlay_count", len(local)))

	return append(remote, local...), nil
}

// GetByID returns the overlay record if present, otherwise scans the merged
// listing. Returns domain.ErrNotFound when neither has it.
func (r *Repository[T]) GetByID(ctx context.Context, id int) (T, error) {
	if entity, ok := r.overlay.Get(id); ok {
		return entity, nil
	}

	var zero T
	all, err := r.GetAll(ctx)
	if err != nil {
		return zero, err
	}
	for _, entity := range all {
		if entity.EntityID() == id {
			return entity, nil
		}
	}
	return zero, fmt.Errorf("%w: %s %d", domain.ErrNotFound, r.kind.Name, id)
}

// GetByParent returns the upstream relationship listing followed by the
// overlay records pointing at parentID.
func (r *Repository[T]) GetByParent(ctx context.Context, parentID int) ([]T, error) {
	if r.kind.ParentPath == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoParent, r.kind.Name)
	}

	remote, err := r.upstream.FetchByPath(ctx, r.kind.ParentPath(parentID))
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to fetch relationship from upstream",
			slog.Int("parent_id", parentID),
			slog.String("error", redact.Error(err)))
		return nil, err
	}

	return append(remote, r.overlay.GetByForeignKey(parentID)...), nil
}

// Create stores entity in the overlay under a fresh synthetic ID and then
// mirrors it upstream. The mirror's outcome never affects the result.
func (r *Repository[T]) Create(ctx context.Context, entity T) (T, error) {
	if err := entity.Validate(); err != nil {
		var zero T
		return zero, err
	}

	created := r.overlay.Add(entity)
	r.logger.InfoContext(ctx, "created entity in overlay", slog.Int("id", created.EntityID()))

	r.upstream.Push(ctx, http.MethodPost, r.kind.Collection, created)
	return created, nil
}

// Update replaces an overlay record, or simulates an update of an upstream
// record by forwarding it. Returns domain.ErrNotFound when the record is
// not in the overlay and the upstream does not accept the update.
func (r *Repository[T]) Update(ctx context.Context, id int, entity T) (T, error) {
	var zero T
	if err := entity.Validate(); err != nil {
		return zero, err
	}

	if updated, ok := r.overlay.Update(id, entity); ok {
		r.logger.InfoContext(ctx, "updated entity in overlay", slog.Int("id", id))
		return updated, nil
	}

	if r.overlay.Issued(id) {
		return zero, fmt.Errorf("%w: %s %d", domain.ErrNotFound, r.kind.Name, id)
	}

	forwarded := entity.WithID(id)
	if err := r.upstream.Send(ctx, http.MethodPut, r.itemPath(id), &forwarded); err != nil {
		r.logger.WarnContext(ctx, "upstream rejected update",
			slog.Int("id", id),
			slog.String("error", redact.Error(err)))
		return zero, fmt.Errorf("%w: %s %d", domain.ErrNotFound, r.kind.Name, id)
	}

	return forwarded, nil
}

// Delete removes an overlay record, or simulates deleting an upstream
// record by forwarding the request. It reports whether anything was deleted.
func (r *Repository[T]) Delete(ctx context.Context, id int) bool {
	if r.overlay.Delete(id) {
		r.logger.InfoContext(ctx, "deleted entity from overlay", slog.Int("id", id))
		return true
	}

	if r.overlay.Issued(id) {
		return false
	}

	if err := r.upstream.Send(ctx, http.MethodDelete, r.itemPath(id), nil); err != nil {
		r.logger.WarnContext(ctx, "upstream rejected delete",
			slog.Int("id", id),
			slog.String("error", redact.Error(err)))
		return false
	}
	return true
}

func (r *Repository[T]) itemPath(id int) string {
	return fmt.Sprintf("%s/%d", r.kind.Collection, id)
}
