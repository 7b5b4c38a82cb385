package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Path is where the health check is served.
const Path = "/health"

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        Path,
		Summary:     "Health check endpoint",
		Description: "Returns the health status of the gateway",
		Tags:        []string{"health"},
	}
}
