package client

import "context"

// AgentService handles roster and topology API calls
type AgentService struct {
	client *Client
}

// Graph retrieves the roster, its communications and the graph projection
func (s *AgentService) Graph(ctx context.Context) (*Graph, error) {
	var graph Graph
	if err := s.client.doRequest(ctx, "/api/agents", &graph); err != nil {
		return nil, err
	}
	return &graph, nil
}

// List retrieves the roster with profiles attached
func (s *AgentService) List(ctx context.Context) ([]Agent, error) {
	graph, err := s.Graph(ctx)
	if err != nil {
		return nil, err
	}
	return graph.Agents, nil
}
