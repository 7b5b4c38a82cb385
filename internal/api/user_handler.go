package api

import (
	"log/slog"

	"github.com/phrazzld/photos-gateway/internal/domain"
)

// UserHandler handles the /api/users endpoints.
type UserHandler struct {
	entityHandler[domain.User, UserRequest]
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(svc entityService[domain.User], logger *slog.Logger) *UserHandler {
	return &UserHandler{
		entityHandler: newEntityHandler[domain.User, UserRequest]("User", "/api/users", svc, logger),
	}
}
