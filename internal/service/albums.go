package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/photos-gateway/internal/domain"
)

// AlbumService serves album CRUD and the per-user listing.
type AlbumService struct {
	EntityService[domain.Album]
}

// NewAlbumService creates an AlbumService over repo.
func NewAlbumService(repo EntityRepository[domain.Album], logger *slog.Logger) *AlbumService {
	return &AlbumService{EntityService: newEntityService("album", repo, logger)}
}

// GetByUser returns the albums owned by userID, upstream first.
func (s *AlbumService) GetByUser(ctx context.Context, userID int) ([]domain.Album, error) {
	return s.listByParent(ctx, "user", userID)
}
