package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/photos-gateway/internal/api/shared"
	"github.com/phrazzld/photos-gateway/internal/domain"
)

// PhotoService is the service surface PhotoHandler needs.
type PhotoService interface {
	entityService[domain.Photo]
	GetByAlbum(ctx context.Context, albumID int) ([]domain.Photo, error)
	Search(ctx context.Context, query string) ([]domain.Photo, error)
}

// PhotoHandler handles the /api/photos endpoints.
type PhotoHandler struct {
	entityHandler[domain.Photo, PhotoRequest]
	photos PhotoService
}

// NewPhotoHandler creates a new PhotoHandler
func NewPhotoHandler(svc PhotoService, logger *slog.Logger) *PhotoHandler {
	return &PhotoHandler{
		entityHandler: newEntityHandler[domain.Photo, PhotoRequest]("Photo", "/api/photos", svc, logger),
		photos:        svc,
	}
}

// ListByAlbum handles GET /api/photos/album/{albumId}.
func (h *PhotoHandler) ListByAlbum(w http.ResponseWriter, r *http.Request) {
	albumID, err := getPathID(r, "albumId")
	if err != nil {
		shared.RespondWithJSON(w, r, http.StatusOK, []domain.Photo{})
		return
	}

	photos, err := h.photos.GetByAlbum(r.Context(), albumID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, photos)
}

// Search handles GET /api/photos/search?q=.
func (h *PhotoHandler) Search(w http.ResponseWriter, r *http.Request) {
	photos, err := h.photos.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, photos)
}
