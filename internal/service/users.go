package service

import (
	"log/slog"

	"github.com/phrazzld/photos-gateway/internal/domain"
)

// UserService serves user CRUD.
type UserService struct {
	EntityService[domain.User]
}

// NewUserService creates a UserService over repo.
func NewUserService(repo EntityRepository[domain.User], logger *slog.Logger) *UserService {
	return &UserService{EntityService: newEntityService("user", repo, logger)}
}
