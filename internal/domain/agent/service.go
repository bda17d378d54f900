package agent

import "context"

// GraphNode is an agent rendered as a network graph vertex
type GraphNode struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
	Title string `json:"title"`
	Group string `json:"group"`
}

// GraphEdge is a communication rendered as a network graph edge
type GraphEdge struct {
	From  int64  `json:"from"`
	To    int64  `json:"to"`
	Label string `json:"label"`
	Title string `json:"title"`
}

// Graph bundles the roster with its graph projection
type Graph struct {
	Agents         []*Agent         `json:"agents"`
	Nodes          []GraphNode      `json:"nodes"`
	Edges          []GraphEdge      `json:"edges"`
	Communications []*Communication `json:"communications"`
}

// Service defines the interface for agent business logic
type Service interface {
	// List returns the roster with profiles attached
	List(ctx context.Context) ([]*Agent, error)

	// Graph returns the roster and communications as a graph
	Graph(ctx context.Context) (*Graph, error)
}
