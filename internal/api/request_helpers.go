package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/photos-gateway/internal/api/shared"
	"github.com/phrazzld/photos-gateway/internal/domain"
)

// getPathID extracts a positive integer ID from the URL path parameters.
// A missing, malformed or non-positive value yields domain.ErrInvalidID.
func getPathID(r *http.Request, paramName string) (int, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return 0, domain.NewValidationError(paramName, paramName+" is required")
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

// decodeAndValidate decodes the JSON body into dst and validates it,
// writing a 400 response on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := shared.DecodeJSON(r, dst); err != nil {
		HandleAPIError(w, r, fmt.Errorf("%w: %w", domain.ErrValidation, err), "Invalid request format")
		return false
	}
	if err := shared.ValidateRequest(dst); err != nil {
		HandleAPIError(w, r, err, "")
		return false
	}
	return true
}
