package agent

import "time"

// Agent is a simulated network actor in the A2A roster
type Agent struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	RiskScore float64   `json:"risk_score"`
	LastSeen  time.Time `json:"last_seen"`
	Profile   []Profile `json:"profile,omitempty"`
}

// Profile is a single descriptive attribute of an agent
type Profile struct {
	AgentID   int64  `json:"-"`
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
}

// Communication is the latest observed link between two agents
type Communication struct {
	ID            int64     `json:"id"`
	SourceAgentID int64     `json:"source_agent_id"`
	TargetAgentID int64     `json:"target_agent_id"`
	SourceName    string    `json:"source"`
	TargetName    string    `json:"target"`
	LastActivity  time.Time `json:"last_activity"`
	ThreatSummary string    `json:"threat_summary"`
}

// Agent status values
const (
	StatusNormal      = "normal"
	StatusCaution     = "caution"
	StatusQuarantined = "quarantined"
)

// DefaultLinkSummary labels a communication without a threat summary
const DefaultLinkSummary = "recent traffic"
