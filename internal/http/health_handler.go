package http

import (
	"context"
	"log/slog"

	"github.com/tuanvumaihuynh/product-inventory/internal/apperr"
	"github.com/tuanvumaihuynh/product-inventory/internal/http/gen"
)

// HealthChecker reports whether the backing store can serve requests.
type HealthChecker interface {
	IsHealthy(ctx context.Context) (bool, error)
}

type healthHandler struct {
	logger *slog.Logger
	health HealthChecker
}

// Health reports 200 while the store answers and 503 otherwise.
func (h *healthHandler) Health(ctx context.Context, _ gen.HealthRequestObject) (gen.HealthResponseObject, error) {
	ok, err := h.health.IsHealthy(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "store health check failed", slog.Any("error", err))
	}
	if !ok {
		return nil, apperr.StoreUnavailableErr
	}
	return gen.Health200JSONResponse{Status: "ok"}, nil
}
