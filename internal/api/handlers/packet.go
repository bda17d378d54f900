package handlers

import (
	"net/http"

	"github.com/attager/a2a-threat-center/internal/api/dto"
	"github.com/attager/a2a-threat-center/internal/domain/packet"
	"github.com/attager/a2a-threat-center/internal/pkg/errors"
	"github.com/attager/a2a-threat-center/internal/pkg/logger"
	"github.com/attager/a2a-threat-center/internal/pkg/utils"
	"github.com/attager/a2a-threat-center/internal/pkg/validator"
)

// RecentPacketsLimit is the size of the recent packets feed
const RecentPacketsLimit = 20

type PacketHandler struct {
	service   packet.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewPacketHandler(service packet.Service, log *logger.Logger, val *validator.Validator) *PacketHandler {
	return &PacketHandler{service: service, logger: log, validator: val}
}

// List returns historical packets with filtering and pagination
// @Summary List packets
// @Description Newest first. threat, source and target match substrings; severity and layer match exactly.
// @Tags Packets
// @Produce json
// @Param threat query string false "Threat type substring"
// @Param severity query string false "Severity (low, medium, high)"
// @Param source query string false "Source agent substring"
// @Param target query string false "Target agent substring"
// @Param layer query string false "Protocol layer, e.g. Layer 3"
// @Param page query int false "Page number (default: 1)"
// @Param page_size query int false "Page size (default: 20, max: 100)"
// @Success 200 {object} dto.PacketListResponse "Packets"
// @Failure 400 {object} utils.ErrorResponse "Invalid filter"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /api/packets [get]
func (h *PacketHandler) List(w http.ResponseWriter, r *http.Request) {
	query := dto.ParsePacketQuery(r)
	if errs := h.validator.Validate(query); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Invalid packet filter", errs))
		return
	}

	paging := utils.NewPaginationParams(query.Page, query.PageSize)
	packets, total, err := h.service.List(r.Context(), query.Filter(), paging.PageSize, paging.Offset)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to list packets")
		utils.WriteError(w, errors.As(err, "Failed to list packets"))
		return
	}

	utils.WriteJSON(w, http.StatusOK, dto.PacketListResponse{
		Packets:    packets,
		Page:       paging.Page,
		PageSize:   paging.PageSize,
		TotalItems: total,
		TotalPages: utils.TotalPages(total, paging.PageSize),
	})
}

// Recent returns the newest packets
// @Summary Recent packets
// @Description The 20 newest historical packets
// @Tags Packets
// @Produce json
// @Success 200 {object} dto.PacketListResponse "Packets"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /api/packets/recent [get]
func (h *PacketHandler) Recent(w http.ResponseWriter, r *http.Request) {
	packets, err := h.service.Recent(r.Context(), RecentPacketsLimit)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to list recent packets")
		utils.WriteError(w, errors.As(err, "Failed to list recent packets"))
		return
	}

	utils.WriteJSON(w, http.StatusOK, dto.PacketListResponse{Packets: packets})
}
