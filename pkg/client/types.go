package client

import "time"

// Agent represents a simulated agent in the roster
type Agent struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"` // normal, caution, quarantined
	RiskScore float64   `json:"risk_score"`
	LastSeen  time.Time `json:"last_seen"`
	Profile   []Profile `json:"profile,omitempty"`
}

// Profile is a descriptive agent attribute
type Profile struct {
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
}

// Communication is the latest observed link between two agents
type Communication struct {
	ID            int64     `json:"id"`
	SourceAgentID int64     `json:"source_agent_id"`
	TargetAgentID int64     `json:"target_agent_id"`
	Source        string    `json:"source"`
	Target        string    `json:"target"`
	LastActivity  time.Time `json:"last_activity"`
	ThreatSummary string    `json:"threat_summary"`
}

// GraphNode is a vertex of the agent network graph
type GraphNode struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
	Title string `json:"title"`
	Group string `json:"group"`
}

// GraphEdge is an edge of the agent network graph
type GraphEdge struct {
	From  int64  `json:"from"`
	To    int64  `json:"to"`
	Label string `json:"label"`
	Title string `json:"title"`
}

// Graph is the response of GET /api/agents
type Graph struct {
	Agents         []Agent         `json:"agents"`
	Nodes          []GraphNode     `json:"nodes"`
	Edges          []GraphEdge     `json:"edges"`
	Communications []Communication `json:"communications"`
}

// Packet is a historical threat observation
type Packet struct {
	ID            int64     `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	SourceAgent   string    `json:"source_agent"`
	TargetAgent   string    `json:"target_agent"`
	ProtocolLayer string    `json:"protocol_layer"`
	ThreatType    string    `json:"threat_type"`
	Severity      string    `json:"severity"` // low, medium, high
	Description   string    `json:"description"`
	Resolution    string    `json:"resolution"`
}

// PacketPage is a page of packets with paging metadata
type PacketPage struct {
	Packets    []Packet `json:"packets"`
	Page       int      `json:"page,omitempty"`
	PageSize   int      `json:"page_size,omitempty"`
	TotalItems int64    `json:"total_items,omitempty"`
	TotalPages int      `json:"total_pages,omitempty"`
}

// Alert is a generated threat event. The same shape is used for
// stream events.
type Alert struct {
	ID            int64     `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	SourceAgent   string    `json:"source_agent"`
	TargetAgent   string    `json:"target_agent"`
	SourceAgentID int64     `json:"source_agent_id"`
	TargetAgentID int64     `json:"target_agent_id"`
	ThreatType    string    `json:"threat_type"`
	Severity      string    `json:"severity"`
	ProtocolLayer string    `json:"protocol_layer"`
	Description   string    `json:"description"`
}

// Overview holds the dashboard counters
type Overview struct {
	AgentCount          int64          `json:"agent_count"`
	CommunicationCount  int64          `json:"communication_count"`
	TotalPackets        int64          `json:"total_packets"`
	TotalAlerts         int64          `json:"total_alerts"`
	SeverityCounts      map[string]int `json:"severity_counts"`
	AlertSeverityCounts map[string]int `json:"alert_severity_counts"`
	HighThreats         int            `json:"high_threats"`
	LastUpdate          *time.Time     `json:"last_update"`
}

// Branding is the operations center header metadata
type Branding struct {
	Team      string `json:"team"`
	Solution  string `json:"solution"`
	Tagline   string `json:"tagline"`
	BuildDate string `json:"build_date"`
	Year      int    `json:"year"`
}

// HealthResponse represents the liveness check payload
type HealthResponse struct {
	Status    string `json:"status"`
	Generator string `json:"generator,omitempty"`
}
