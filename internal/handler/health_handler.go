package handler

import (
	"context"
	"net/http"
	"time"

	"catalog-service/internal/model"

	"github.com/rs/zerolog"
)

const healthCheckTimeout = 2 * time.Second

var errDatabaseUnavailable = model.NewDomainError(model.KindInternalServerError, "database unavailable")

// HealthHandler reports service liveness.
type HealthHandler struct {
	db     Pinger
	logger zerolog.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db Pinger, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger.With().Str("handler", "health").Logger(),
	}
}

// Check handles GET /health.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error().Err(err).Msg("database ping failed")
		writeError(w, errDatabaseUnavailable, "Service unhealthy", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.Empty("Service healthy"))
}
