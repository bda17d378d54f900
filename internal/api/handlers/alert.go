package handlers

import (
	"net/http"
	"strconv"

	"github.com/attager/a2a-threat-center/internal/api/dto"
	"github.com/attager/a2a-threat-center/internal/domain/alert"
	"github.com/attager/a2a-threat-center/internal/pkg/errors"
	"github.com/attager/a2a-threat-center/internal/pkg/logger"
	"github.com/attager/a2a-threat-center/internal/pkg/utils"
	"github.com/go-chi/chi/v5"
)

// Recent alert limits
const (
	DefaultRecentAlerts = 20
	MaxRecentAlerts     = 100
)

type AlertHandler struct {
	service alert.Service
	logger  *logger.Logger
}

func NewAlertHandler(service alert.Service, log *logger.Logger) *AlertHandler {
	return &AlertHandler{service: service, logger: log}
}

// Recent returns the newest generated alerts
// @Summary Recent alerts
// @Description Newest generated alerts first
// @Tags Alerts
// @Produce json
// @Param limit query int false "Number of alerts (default: 20, max: 100)"
// @Success 200 {object} dto.AlertListResponse "Alerts"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /api/alerts/recent [get]
func (h *AlertHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseLimit(r, "limit", DefaultRecentAlerts, MaxRecentAlerts)

	alerts, err := h.service.ListRecent(r.Context(), limit)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to list recent alerts")
		utils.WriteError(w, errors.As(err, "Failed to list alerts"))
		return
	}

	utils.WriteJSON(w, http.StatusOK, dto.AlertListResponse{Alerts: alerts})
}

// Get returns a single alert by ID
// @Summary Get alert by ID
// @Tags Alerts
// @Produce json
// @Param id path int true "Alert ID"
// @Success 200 {object} alert.Alert "Alert details"
// @Failure 400 {object} utils.ErrorResponse "Invalid alert ID"
// @Failure 404 {object} utils.ErrorResponse "Alert not found"
// @Router /api/alerts/{id} [get]
func (h *AlertHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		utils.WriteError(w, errors.BadRequest("Invalid alert ID"))
		return
	}

	a, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		utils.WriteError(w, errors.As(err, "Failed to get alert"))
		return
	}

	utils.WriteJSON(w, http.StatusOK, a)
}
