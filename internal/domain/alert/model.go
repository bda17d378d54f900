package alert

import "time"

// Alert is a synthetic threat event observed between two agents.
// Once persisted it is never mutated.
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

// Alert severity levels
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Severities lists the severity levels in ascending order
var Severities = []string{SeverityLow, SeverityMedium, SeverityHigh}

// WeightedSeverity pairs a severity with its draw probability
type WeightedSeverity struct {
	Severity string
	Weight   float64
}

// SeverityWeights biases generated alerts toward medium
var SeverityWeights = []WeightedSeverity{
	{Severity: SeverityLow, Weight: 0.3},
	{Severity: SeverityMedium, Weight: 0.4},
	{Severity: SeverityHigh, Weight: 0.3},
}

// ThreatTypes is the catalog of threat labels the generator draws from
var ThreatTypes = []string{
	"Agent Card Spoofing",
	"Task Replay",
	"Message Schema Violation",
	"Server Impersonation",
	"Cross-Agent Task Escalation",
	"Artifact Tampering",
	"Supply Chain Attack",
	"Authentication Threat",
	"Poisoned AgentCard",
	"Emergent Vulnerability",
}

// ProtocolLayers is the catalog of layers a threat can be observed at
var ProtocolLayers = []string{"Layer 2", "Layer 3", "Layer 4", "Layer 6", "Layer 7"}

// IsValidSeverity reports whether s is a known severity
func IsValidSeverity(s string) bool {
	for _, v := range Severities {
		if v == s {
			return true
		}
	}
	return false
}

// IsValidLayer reports whether l is in the protocol layer catalog
func IsValidLayer(l string) bool {
	for _, v := range ProtocolLayers {
		if v == l {
			return true
		}
	}
	return false
}
