package middleware

import (
	"net/http"

	"github.com/phrazzld/photos-gateway/internal/api/shared"
)

// Environment marks every request with whether the server runs in
// development mode.
func Environment(development bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(shared.WithDevelopment(r.Context(), development)))
		})
	}
}
