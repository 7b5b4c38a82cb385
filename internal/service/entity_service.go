package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/photos-gateway/internal/domain"
)

// EntityRepository is the merged repository surface the services consume.
// repository.Repository satisfies it.
type EntityRepository[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int) (T, error)
	GetByParent(ctx context.Context, parentID int) ([]T, error)
	Create(ctx context.Context, entity T) (T, error)
	Update(ctx context.Context, id int, entity T) (T, error)
	Delete(ctx context.Context, id int) bool
}

// EntityService provides the CRUD operations shared by every entity kind.
// Non-positive IDs are rejected with domain.ErrInvalidID before the
// repository is consulted.
type EntityService[T domain.Entity[T]] struct {
	name   string
	repo   EntityRepository[T]
	logger *slog.Logger
}

func newEntityService[T domain.Entity[T]](name string, repo EntityRepository[T], log *slog.Logger) EntityService[T] {
	if log == nil {
		log = slog.Default()
	}
	return EntityService[T]{
		name:   name,
		repo:   repo,
		logger: log.With(slog.String("component", name+"_service")),
	}
}

// GetAll returns the merged listing.
func (s *EntityService[T]) GetAll(ctx context.Context) ([]T, error) {
	return s.repo.GetAll(ctx)
}

// Get returns the entity with id.
func (s *EntityService[T]) Get(ctx context.Context, id int) (T, error) {
	if err := s.checkID(ctx, "get", id); err != nil {
		var zero T
		return zero, err
	}
	return s.repo.GetByID(ctx, id)
}

// Create stores a new entity and returns it with its assigned ID.
func (s *EntityService[T]) Create(ctx context.Context, entity T) (T, error) {
	return s.repo.Create(ctx, entity)
}

// Update replaces the entity with id.
func (s *EntityService[T]) Update(ctx context.Context, id int, entity T) (T, error) {
	if err := s.checkID(ctx, "update", id); err != nil {
		var zero T
		return zero, err
	}
	return s.repo.Update(ctx, id, entity)
}

// Delete removes the entity with id and reports whether anything was deleted.
func (s *EntityService[T]) Delete(ctx context.Context, id int) (bool, error) {
	if err := s.checkID(ctx, "delete", id); err != nil {
		return false, err
	}
	return s.repo.Delete(ctx, id), nil
}

// listByParent returns the children of parentID. A non-positive parent ID
// yields an empty list rather than an error.
func (s *EntityService[T]) listByParent(ctx context.Context, parent string, parentID int) ([]T, error) {
	if parentID <= 0 {
		s.logger.WarnContext(ctx, "rejected non-positive parent id",
			slog.String("parent", parent),
			slog.Int("parent_id", parentID))
		return []T{}, nil
	}
	return s.repo.GetByParent(ctx, parentID)
}

func (s *EntityService[T]) checkID(ctx context.Context, op string, id int) error {
	if id > 0 {
		return nil
	}
	s.logger.WarnContext(ctx, "rejected non-positive id",
		slog.String("operation", op),
		slog.Int("id", id))
	return NewServiceError(s.name+" "+op, "id must be positive", domain.ErrInvalidID)
}
