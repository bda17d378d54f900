package services

import (
	"context"
	"fmt"

	"github.com/attager/a2a-threat-center/internal/domain/agent"
	"github.com/attager/a2a-threat-center/internal/pkg/logger"
)

// AgentService implements agent.Service
type AgentService struct {
	repo   agent.Repository
	logger *logger.Logger
}

// NewAgentService creates a new agent service
func NewAgentService(repo agent.Repository, log *logger.Logger) agent.Service {
	return &AgentService{
		repo:   repo,
		logger: log,
	}
}

// List returns the roster with profile attributes attached
func (s *AgentService) List(ctx context.Context) ([]*agent.Agent, error) {
	agents, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	profiles, err := s.repo.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range agents {
		a.Profile = profiles[a.ID]
	}

	return agents, nil
}

// Graph projects the roster and its communications onto nodes and edges
func (s *AgentService) Graph(ctx context.Context) (*agent.Graph, error) {
	agents, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	comms, err := s.repo.ListCommunications(ctx)
	if err != nil {
		return nil, err
	}

	graph := &agent.Graph{
		Agents:         agents,
		Nodes:          make([]agent.GraphNode, 0, len(agents)),
		Edges:          make([]agent.GraphEdge, 0, len(comms)),
		Communications: comms,
	}

	for _, a := range agents {
		graph.Nodes = append(graph.Nodes, agent.GraphNode{
			ID:    a.ID,
			Label: a.Name,
			Title: nodeTitle(a),
			Group: a.Status,
		})
	}

	for _, c := range comms {
		summary := c.ThreatSummary
		if summary == "" {
			summary = agent.DefaultLinkSummary
		}
		graph.Edges = append(graph.Edges, agent.GraphEdge{
			From:  c.SourceAgentID,
			To:    c.TargetAgentID,
			Label: summary,
			Title: summary,
		})
	}

	return graph, nil
}

// nodeTitle renders the hover text shown by the graph view
func nodeTitle(a *agent.Agent) string {
	return fmt.Sprintf("<b>%s</b><br/>Role: %s<br/>Status: %s<br/>Risk: %.2f", a.Name, a.Role, a.Status, a.RiskScore)
}
