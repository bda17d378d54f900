package overview

import (
	"context"
	"time"
)

// Overview aggregates dashboard counters
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

// Branding describes the operations center shown in page headers
type Branding struct {
	Team      string `json:"team"`
	Solution  string `json:"solution"`
	Tagline   string `json:"tagline"`
	BuildDate string `json:"build_date"`
	Year      int    `json:"year"`
}

// Service defines the interface for dashboard aggregates
type Service interface {
	// Get computes the overview counters
	Get(ctx context.Context) (*Overview, error)

	// Branding returns header metadata stamped with the current date
	Branding() Branding
}
