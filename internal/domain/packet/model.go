package packet

import "time"

// Packet is a historical threat observation with its resolution
type Packet struct {
	ID            int64     `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	SourceAgent   string    `json:"source_agent"`
	TargetAgent   string    `json:"target_agent"`
	ProtocolLayer string    `json:"protocol_layer"`
	ThreatType    string    `json:"threat_type"`
	Severity      string    `json:"severity"`
	Description   string    `json:"description"`
	Resolution    string    `json:"resolution"`
}

// Filter contains packet filtering options.
// Threat, Source and Target match substrings; Severity and Layer match exactly.
type Filter struct {
	Threat   string
	Severity string
	Source   string
	Target   string
	Layer    string
}
