package handlers

import (
	"net/http"

	"github.com/attager/a2a-threat-center/internal/domain/agent"
	"github.com/attager/a2a-threat-center/internal/pkg/errors"
	"github.com/attager/a2a-threat-center/internal/pkg/logger"
	"github.com/attager/a2a-threat-center/internal/pkg/utils"
)

type AgentHandler struct {
	service agent.Service
	logger  *logger.Logger
}

func NewAgentHandler(service agent.Service, log *logger.Logger) *AgentHandler {
	return &AgentHandler{service: service, logger: log}
}

// Graph returns the roster together with its network graph
// @Summary Agent graph
// @Description Agents, graph nodes and edges, and communication details for the graph view
// @Tags Agents
// @Produce json
// @Success 200 {object} agent.Graph "Agent graph"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /api/agents [get]
func (h *AgentHandler) Graph(w http.ResponseWriter, r *http.Request) {
	graph, err := h.service.Graph(r.Context())
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to build agent graph")
		utils.WriteError(w, errors.As(err, "Failed to load agents"))
		return
	}

	utils.WriteJSON(w, http.StatusOK, graph)
}
