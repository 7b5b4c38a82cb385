package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/phrazzld/photos-gateway/internal/domain"
)

// PhotoService serves photo CRUD, the per-album listing and title search.
type PhotoService struct {
	EntityService[domain.Photo]
}

// NewPhotoService creates a PhotoService over repo.
func NewPhotoService(repo EntityRepository[domain.Photo], logger *slog.Logger) *PhotoService {
	return &PhotoService{EntityService: newEntityService("photo", repo, logger)}
}

// GetByAlbum returns the photos in albumID, upstream first.
func (s *PhotoService) GetByAlbum(ctx context.Context, albumID int) ([]domain.Photo, error) {
	return s.listByParent(ctx, "album", albumID)
}

// Search returns the photos whose title contains query, ignoring case.
// A blank query matches nothing.
func (s *PhotoService) Search(ctx context.Context, query string) ([]domain.Photo, error) {
	if strings.TrimSpace(query) == "" {
		return []domain.Photo{}, nil
	}

	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matches := []domain.Photo{}
	for _, photo := range all {
		if strings.Contains(strings.ToLower(photo.Title), needle) {
			matches = append(matches, photo)
		}
	}

	s.logger.DebugContext(ctx, "searched photos",
		slog.String("query", query),
		slog.Int("matches", len(matches)))
	return matches, nil
}
