package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/photos-gateway/internal/api/shared"
	"github.com/phrazzld/photos-gateway/internal/domain"
	"github.com/phrazzld/photos-gateway/internal/service/auth"
	"github.com/phrazzld/photos-gateway/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case err == nil:
		return http.StatusOK

	// Authentication errors
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, auth.ErrRegistrationConflict),
		errors.Is(err, shared.ErrEmptyBody),
		errors.As(err, &verrs):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, store.ErrPrincipalNotFound):
		return http.StatusNotFound

	// The upstream could not be reached or answered with a failure
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var (
		verr  *domain.ValidationError
		verrs validator.ValidationErrors
	)
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"
	case errors.Is(err, auth.ErrRegistrationConflict):
		return "Username or email already exists"
	case errors.Is(err, domain.ErrForbidden):
		return "Insufficient permissions"
	case errors.As(err, &verrs):
		return SanitizeValidationError(verrs)
	case errors.As(err, &verr):
		return verr.Error()
	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"
	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID"
	case errors.Is(err, store.ErrPrincipalNotFound):
		return "User not found"
	case errors.Is(err, domain.ErrNotFound):
		return "Resource not found"
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return "The upstream data source is unavailable"
	default:
		return "An error occurred processing your request"
	}
}

// fieldMessages gives the messages for known field and rule pairs.
var fieldMessages = map[string]string{
	"name.required":     "Name is required",
	"name.max":          "Name cannot exceed 100 characters",
	"username.required": "Username is required",
	"username.min":      "Username must be at least 3 characters",
	"username.max":      "Username cannot exceed 50 characters",
	"email.required":    "Email is required",
	"email.email":       "Invalid email format",
	"website.url":       "Invalid website URL",
	"title.required":    "Title is required",
	"title.max":         "Title cannot exceed 200 characters",
	"url.required":      "URL is required",
	"url.url":           "Invalid URL format",
	"thumbnailUrl.url":  "Invalid thumbnail URL format",
	"password.required": "Password is required",
	"password.min":      "Password must be at least 6 characters",
	"albumId.required":  "Valid AlbumId is required",
	"albumId.gt":        "Valid AlbumId is required",
	"userId.required":   "Valid UserId is required",
	"userId.gt":         "Valid UserId is required",
}

// SanitizeValidationError turns validator failures into a user-facing
// message naming every failing field.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Validation error"
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fieldErrorMessage(fe))
	}
	return strings.Join(messages, "; ")
}

func fieldErrorMessage(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "url":
		return "invalid URL"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "gt":
		return "must be positive"
	default:
		return "validation failed"
	}
}

// HandleAPIError maps err to a status and safe message and writes the
// response. A non-empty message overrides the safe message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" || status == http.StatusInternalServerError || status == http.StatusBadGateway {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
