// Package health serves the gateway's liveness endpoint as a huma operation.
package health

import (
	"context"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
)

// Handler answers health checks.
type Handler struct {
	log *slog.Logger
}

// NewHandler creates a health Handler.
func NewHandler(log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{log: log.With(slog.String("component", "health_handler"))}
}

// SetupRoutes registers the health operation on api.
func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	h.log.DebugContext(ctx, "health check request received")

	return &Output{
		Body: Response{
			Status: "OK",
		},
	}, nil
}
