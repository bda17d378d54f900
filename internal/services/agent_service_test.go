package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/attager/a2a-threat-center/internal/domain/agent"
	"github.com/attager/a2a-threat-center/internal/pkg/logger"
	"github.com/attager/a2a-threat-center/internal/testutil"
)

func TestAgentService_Graph(t *testing.T) {
	repo := testutil.NewMockAgentRepository(testutil.Roster("Atlas-Planner", "Hermes-Router", "Nyx-Vault")...)
	repo.Agents[2].Status = agent.StatusQuarantined
	repo.Agents[2].RiskScore = 0.82
	repo.Profiles[1] = []agent.Profile{{AgentID: 1, Attribute: "zone", Value: "control-plane"}}
	repo.Communications = []*agent.Communication{
		{ID: 1, SourceAgentID: 1, TargetAgentID: 2, SourceName: "Atlas-Planner", TargetName: "Hermes-Router",
			LastActivity: time.Now(), ThreatSummary: "2 Task Replay alerts"},
		{ID: 2, SourceAgentID: 2, TargetAgentID: 3, SourceName: "Hermes-Router", TargetName: "Nyx-Vault",
			LastActivity: time.Now()},
	}

	service := NewAgentService(repo, logger.Nop())
	graph, err := service.Graph(context.Background())
	if err != nil {
		t.Fatalf("Graph() error = %v", err)
	}

	if len(graph.Nodes) != 3 || len(graph.Edges) != 2 || len(graph.Agents) != 3 {
		t.Fatalf("Graph() = %d nodes, %d edges, %d agents", len(graph.Nodes), len(graph.Edges), len(graph.Agents))
	}

	vault := graph.Nodes[2]
	if vault.Group != agent.StatusQuarantined {
		t.Errorf("node group = %s, want quarantined", vault.Group)
	}
	if !strings.Contains(vault.Title, "Risk: 0.82") || !strings.Contains(vault.Title, "<b>Nyx-Vault</b>") {
		t.Errorf("node title = %q", vault.Title)
	}

	if graph.Edges[0].From != 1 || graph.Edges[0].To != 2 || graph.Edges[0].Label != "2 Task Replay alerts" {
		t.Errorf("edge[0] = %+v", graph.Edges[0])
	}
	if graph.Edges[1].Label != agent.DefaultLinkSummary {
		t.Errorf("edge[1] label = %q, want %q", graph.Edges[1].Label, agent.DefaultLinkSummary)
	}

	if len(graph.Agents[0].Profile) != 1 {
		t.Errorf("profile not attached: %+v", graph.Agents[0])
	}
}
