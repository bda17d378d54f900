package services

import (
	"context"
	"time"

	"github.com/attager/a2a-threat-center/internal/domain/agent"
	"github.com/attager/a2a-threat-center/internal/domain/alert"
	"github.com/attager/a2a-threat-center/internal/domain/overview"
	"github.com/attager/a2a-threat-center/internal/domain/packet"
	"github.com/attager/a2a-threat-center/internal/pkg/logger"
)

// Branding defaults shown in the dashboard header
const (
	BrandTeam     = "BOB14 Attager Team"
	BrandSolution = "A2A Multi-Agent Threat Detection Center"
	BrandTagline  = "Real-time monitoring that guards agent-to-agent security flows"
)

// OverviewService implements overview.Service
type OverviewService struct {
	agents  agent.Repository
	packets packet.Repository
	alerts  alert.Repository
	now     func() time.Time
	logger  *logger.Logger
}

// NewOverviewService creates a new overview service
func NewOverviewService(agents agent.Repository, packets packet.Repository, alerts alert.Repository, log *logger.Logger) *OverviewService {
	return &OverviewService{
		agents:  agents,
		packets: packets,
		alerts:  alerts,
		now:     time.Now,
		logger:  log,
	}
}

// WithClock replaces the clock used for branding dates
func (s *OverviewService) WithClock(now func() time.Time) *OverviewService {
	s.now = now
	return s
}

// Get computes the dashboard counters
func (s *OverviewService) Get(ctx context.Context) (*overview.Overview, error) {
	var o overview.Overview
	var err error

	if o.AgentCount, err = s.agents.Count(ctx); err != nil {
		return nil, err
	}
	if o.CommunicationCount, err = s.agents.CountCommunications(ctx); err != nil {
		return nil, err
	}
	if o.TotalPackets, err = s.packets.Count(ctx); err != nil {
		return nil, err
	}
	if o.TotalAlerts, err = s.alerts.Count(ctx); err != nil {
		return nil, err
	}

	packetCounts, err := s.packets.CountBySeverity(ctx)
	if err != nil {
		return nil, err
	}
	o.SeverityCounts = withAllSeverities(packetCounts)
	o.HighThreats = o.SeverityCounts[alert.SeverityHigh]

	alertCounts, err := s.alerts.CountBySeverity(ctx)
	if err != nil {
		return nil, err
	}
	o.AlertSeverityCounts = withAllSeverities(alertCounts)

	if o.LastUpdate, err = s.packets.LatestTimestamp(ctx); err != nil {
		return nil, err
	}

	return &o, nil
}

// Branding returns header metadata stamped with the current date
func (s *OverviewService) Branding() overview.Branding {
	now := s.now()
	return overview.Branding{
		Team:      BrandTeam,
		Solution:  BrandSolution,
		Tagline:   BrandTagline,
		BuildDate: now.Format("2006.01.02"),
		Year:      now.Year(),
	}
}
