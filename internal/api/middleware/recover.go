package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/photos-gateway/internal/api/shared"
	"github.com/phrazzld/photos-gateway/internal/platform/logger"
	"github.com/phrazzld/photos-gateway/internal/redact"
)

// Recoverer turns a handler panic into a 500 response. The stack is logged
// and, in development only, returned in the response details.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			stack := string(debug.Stack())
			logger.FromContext(r.Context()).Error("panic while serving request",
				"panic", redact.String(fmt.Sprint(rec)),
				"stack", stack,
				"path", r.URL.Path)

			response := shared.ErrorResponse{
				StatusCode: http.StatusInternalServerError,
				Message:    "An error occurred processing your request",
				TraceID:    shared.GetTraceID(r.Context()),
			}
			if shared.IsDevelopment(r.Context()) {
				response.Details = fmt.Sprintf("%v\n%s", rec, stack)
			}
			shared.RespondWithJSON(w, r, http.StatusInternalServerError, response)
		}()
		next.ServeHTTP(w, r)
	})
}
