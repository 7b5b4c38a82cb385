package api

import (
	"time"

	"github.com/phrazzld/photos-gateway/internal/domain"
)

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest defines the payload for the registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ProfileResponse describes the authenticated principal.
type ProfileResponse struct {
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// MessageResponse carries a single informational message.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserRequest is the payload for creating or replacing a user.
type UserRequest struct {
	Name     string         `json:"name"     validate:"required,max=100"`
	Username string         `json:"username" validate:"omitempty,max=50"`
	Email    string         `json:"email"    validate:"required,email"`
	Address  domain.Address `json:"address"`
	Phone    string         `json:"phone"`
	Website  string         `json:"website"  validate:"omitempty,url"`
	Company  domain.Company `json:"company"`
}

func (r UserRequest) toDomain() domain.User {
	return domain.User{
		Name:     r.Name,
		Username: r.Username,
		Email:    r.Email,
		Address:  r.Address,
		Phone:    r.Phone,
		Website:  r.Website,
		Company:  r.Company,
	}
}

// AlbumRequest is the payload for creating or replacing an album. Field
// rules are enforced by domain.Album.Validate.
type AlbumRequest struct {
	UserID int    `json:"userId"`
	Title  string `json:"title" validate:"max=200"`
}

func (r AlbumRequest) toDomain() domain.Album {
	return domain.Album{UserID: r.UserID, Title: r.Title}
}

// PhotoRequest is the payload for creating or replacing a photo.
type PhotoRequest struct {
	AlbumID      int    `json:"albumId"`
	Title        string `json:"title"        validate:"required,max=200"`
	URL          string `json:"url"          validate:"required,url"`
	ThumbnailURL string `json:"thumbnailUrl" validate:"omitempty,url"`
}

func (r PhotoRequest) toDomain() domain.Photo {
	return domain.Photo{
		AlbumID:      r.AlbumID,
		Title:        r.Title,
		URL:          r.URL,
		ThumbnailURL: r.ThumbnailURL,
	}
}

func newAuthResponse(token, username, email string, expiresAt time.Time) AuthResponse {
	return AuthResponse{
		Token:     token,
		Username:  username,
		Email:     email,
		ExpiresAt: expiresAt.UTC(),
	}
}
