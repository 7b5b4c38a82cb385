package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/photos-gateway/internal/api/shared"
	"github.com/phrazzld/photos-gateway/internal/domain"
)

// AlbumService is the service surface AlbumHandler needs.
type AlbumService interface {
	entityService[domain.Album]
	GetByUser(ctx context.Context, userID int) ([]domain.Album, error)
}

// AlbumHandler handles the /api/albums endpoints.
type AlbumHandler struct {
	entityHandler[domain.Album, AlbumRequest]
	albums AlbumService
}

// NewAlbumHandler creates a new AlbumHandler
func NewAlbumHandler(svc AlbumService, logger *slog.Logger) *AlbumHandler {
	return &AlbumHandler{
		entityHandler: newEntityHandler[domain.Album, AlbumRequest]("Album", "/api/albums", svc, logger),
		albums:        svc,
	}
}

// ListByUser handles GET /api/albums/user/{userId}. A malformed user ID
// yields an empty list, matching the service's treatment of non-positive IDs.
func (h *AlbumHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathID(r, "userId")
	if err != nil {
		shared.RespondWithJSON(w, r, http.StatusOK, []domain.Album{})
		return
	}

	albums, err := h.albums.GetByUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, albums)
}
