package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/photos-gateway/internal/api/shared"
	"github.com/phrazzld/photos-gateway/internal/domain"
	"github.com/phrazzld/photos-gateway/internal/platform/logger"
)

// entityService is the service surface the CRUD handlers call.
// *service.UserService, *service.AlbumService and *service.PhotoService
// satisfy it.
type entityService[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int) (T, error)
	Create(ctx context.Context, entity T) (T, error)
	Update(ctx context.Context, id int, entity T) (T, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// entityRequest is a request DTO convertible to its domain entity.
type entityRequest[T any] interface {
	toDomain() T
}

// entityHandler implements the CRUD endpoints shared by every entity kind.
// R is the request DTO decoded from create and update bodies.
type entityHandler[T domain.Entity[T], R entityRequest[T]] struct {
	label    string // capitalised kind name used in messages, e.g. "Album"
	basePath string // collection path used for Location headers
	service  entityService[T]
	logger   *slog.Logger
}

func newEntityHandler[T domain.Entity[T], R entityRequest[T]](
	label, basePath string,
	svc entityService[T],
	log *slog.Logger,
) entityHandler[T, R] {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for " + label + " handler")
	}
	return entityHandler[T, R]{
		label:    label,
		basePath: basePath,
		service:  svc,
		logger:   log.With(slog.String("component", strings.ToLower(label)+"_handler")),
	}
}

// List handles GET on the collection.
func (h *entityHandler[T, R]) List(w http.ResponseWriter, r *http.Request) {
	entities, err := h.service.GetAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, entities)
}

// Get handles GET /{id}.
func (h *entityHandler[T, R]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	entity, err := h.service.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, h.notFoundMessage(err, id))
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, entity)
}

// Create handles POST on the collection. The response carries the new
// entity and a Location header pointing at it.
func (h *entityHandler[T, R]) Create(w http.ResponseWriter, r *http.Request) {
	var req R
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.service.Create(r.Context(), req.toDomain())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("entity created",
		slog.String("kind", h.label),
		slog.Int("id", created.EntityID()))

	w.Header().Set("Location", fmt.Sprintf("%s/%d", h.basePath, created.EntityID()))
	shared.RespondWithJSON(w, r, http.StatusCreated, created)
}

// Update handles PUT /{id}.
func (h *entityHandler[T, R]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req R
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.service.Update(r.Context(), id, req.toDomain())
	if err != nil {
		HandleAPIError(w, r, err, h.notFoundMessage(err, id))
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}

// Delete handles DELETE /{id}.
func (h *entityHandler[T, R]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if !deleted {
		shared.RespondWithError(w, r, http.StatusNotFound,
			fmt.Sprintf("%s with ID %d not found or could not be deleted", h.label, id))
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("entity deleted",
		slog.String("kind", h.label),
		slog.Int("id", id))
	w.WriteHeader(http.StatusNoContent)
}

// pathID reads a positive ID path parameter, answering 400 when invalid.
func (h *entityHandler[T, R]) pathID(w http.ResponseWriter, r *http.Request, param string) (int, bool) {
	id, err := getPathID(r, param)
	if err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Warn("invalid path parameter",
			slog.String("param_name", param))
		HandleAPIError(w, r, err, fmt.Sprintf("Invalid %s ID", strings.ToLower(h.label)))
		return 0, false
	}
	return id, true
}

func (h *entityHandler[T, R]) notFoundMessage(err error, id int) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Sprintf("%s with ID %d not found", h.label, id)
	case errors.Is(err, domain.ErrInvalidID):
		return fmt.Sprintf("Invalid %s ID", strings.ToLower(h.label))
	}
	return ""
}
