package worker

import (
	"context"
	"fmt"
	"sync"

	"github.com/attager/a2a-threat-center/internal/domain/agent"
	"github.com/attager/a2a-threat-center/internal/domain/alert"
	"github.com/attager/a2a-threat-center/internal/domain/packet"
	"github.com/attager/a2a-threat-center/internal/pkg/logger"
	"github.com/attager/a2a-threat-center/internal/pkg/metrics"
	"github.com/robfig/cron/v3"
)

// StatsRefresher periodically copies store aggregates into Prometheus gauges
type StatsRefresher struct {
	agents   agent.Repository
	alerts   alert.Repository
	packets  packet.Repository
	schedule string
	logger   *logger.Logger

	scheduler    *cron.Cron
	isRunning    bool
	runningMutex sync.Mutex
}

// NewStatsRefresher creates a new stats refresher
func NewStatsRefresher(
	agents agent.Repository,
	alerts alert.Repository,
	packets packet.Repository,
	schedule string,
	log *logger.Logger,
) *StatsRefresher {
	return &StatsRefresher{
		agents:   agents,
		alerts:   alerts,
		packets:  packets,
		schedule: schedule,
		logger:   log.WithComponent("stats_refresher"),
	}
}

// Start refreshes once and then schedules refreshes until Stop or ctx is done
func (s *StatsRefresher) Start(ctx context.Context) error {
	s.runningMutex.Lock()
	defer s.runningMutex.Unlock()

	if s.isRunning {
		return fmt.Errorf("stats refresher is already running")
	}

	if _, err := cron.ParseStandard(s.schedule); err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", s.schedule, err)
	}

	s.scheduler = cron.New()
	if _, err := s.scheduler.AddFunc(s.schedule, func() {
		if err := s.Refresh(ctx); err != nil {
			s.logger.ErrorWithErr(err, "Failed to refresh store stats")
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule stats refresh: %w", err)
	}

	if err := s.Refresh(ctx); err != nil {
		s.logger.ErrorWithErr(err, "Initial stats refresh failed")
	}

	s.scheduler.Start()
	s.isRunning = true

	s.logger.With("schedule", s.schedule).Info("Stats refresher started")

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop stops the scheduler and waits for a running refresh to finish
func (s *StatsRefresher) Stop() {
	s.runningMutex.Lock()
	defer s.runningMutex.Unlock()

	if !s.isRunning {
		return
	}

	<-s.scheduler.Stop().Done()
	s.isRunning = false

	s.logger.Info("Stats refresher stopped")
}

// Refresh reads the current aggregates and updates the gauges
func (s *StatsRefresher) Refresh(ctx context.Context) error {
	agentCount, err := s.agents.Count(ctx)
	if err != nil {
		return err
	}
	metrics.SetAgentsCount(float64(agentCount))

	alertCounts, err := s.alerts.CountBySeverity(ctx)
	if err != nil {
		return err
	}
	packetCounts, err := s.packets.CountBySeverity(ctx)
	if err != nil {
		return err
	}

	for _, sev := range alert.Severities {
		metrics.SetAlertsCount(sev, float64(alertCounts[sev]))
		metrics.SetPacketsCount(sev, float64(packetCounts[sev]))
	}

	return nil
}
