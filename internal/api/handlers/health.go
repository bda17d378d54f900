package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/attager/a2a-threat-center/internal/pkg/errors"
	"github.com/attager/a2a-threat-center/internal/pkg/logger"
	"github.com/attager/a2a-threat-center/internal/pkg/utils"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	db        *sql.DB
	generator RunningChecker
	logger    *logger.Logger
}

// RunningChecker reports whether a background task is alive
type RunningChecker interface {
	Running() bool
}

// NewHealthHandler creates a new health handler. generator may be nil when
// the event generator is disabled.
func NewHealthHandler(db *sql.DB, generator RunningChecker, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		db:        db,
		generator: generator,
		logger:    log,
	}
}

// Healthz handles liveness probe
// @Summary Liveness probe
// @Description Check if the application is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Application is alive"
// @Router /health [get]
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok"}
	if h.generator != nil {
		status["generator"] = "stopped"
		if h.generator.Running() {
			status["generator"] = "running"
		}
	}
	utils.WriteSuccess(w, http.StatusOK, status)
}

// Readyz handles readiness probe
// @Summary Readiness probe
// @Description Check if the application is ready to serve requests
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Application is ready"
// @Failure 503 {object} utils.ErrorResponse "Service unavailable"
// @Router /readyz [get]
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	// Check database connection
	if err := h.db.PingContext(ctx); err != nil {
		h.logger.ErrorWithErr(err, "Database ping failed")
		utils.WriteError(w, errors.ServiceUnavailable("Database connection failed"))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]string{
		"status":   "ready",
		"database": "connected",
	})
}
