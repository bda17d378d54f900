package handlers

import (
	"net/http"

	"github.com/attager/a2a-threat-center/internal/domain/overview"
	"github.com/attager/a2a-threat-center/internal/pkg/errors"
	"github.com/attager/a2a-threat-center/internal/pkg/logger"
	"github.com/attager/a2a-threat-center/internal/pkg/utils"
)

type OverviewHandler struct {
	service overview.Service
	logger  *logger.Logger
}

func NewOverviewHandler(service overview.Service, log *logger.Logger) *OverviewHandler {
	return &OverviewHandler{service: service, logger: log}
}

// Overview returns the dashboard counters
// @Summary Dashboard overview
// @Tags Overview
// @Produce json
// @Success 200 {object} overview.Overview "Counters"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /api/overview [get]
func (h *OverviewHandler) Overview(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to compute overview")
		utils.WriteError(w, errors.As(err, "Failed to compute overview"))
		return
	}

	utils.WriteJSON(w, http.StatusOK, o)
}

// Branding returns the header metadata
// @Summary Branding
// @Tags Overview
// @Produce json
// @Success 200 {object} overview.Branding "Branding"
// @Router /api/branding [get]
func (h *OverviewHandler) Branding(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.service.Branding())
}
