package services

import (
	"context"

	"github.com/attager/a2a-threat-center/internal/domain/alert"
	"github.com/attager/a2a-threat-center/internal/pkg/errors"
	"github.com/attager/a2a-threat-center/internal/pkg/logger"
)

// AlertService implements alert.Service
type AlertService struct {
	repo   alert.Repository
	logger *logger.Logger
}

// NewAlertService creates a new alert service
func NewAlertService(repo alert.Repository, log *logger.Logger) alert.Service {
	return &AlertService{
		repo:   repo,
		logger: log,
	}
}

// Create validates and persists a new alert. On success a.ID holds the store id.
func (s *AlertService) Create(ctx context.Context, a *alert.Alert) (int64, error) {
	if err := validateAlert(a); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, a)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to create alert")
		return 0, err
	}
	a.ID = id

	s.logger.WithFields(map[string]interface{}{
		"alert_id":    id,
		"source":      a.SourceAgent,
		"target":      a.TargetAgent,
		"severity":    a.Severity,
		"threat_type": a.ThreatType,
	}).Debug("Alert created")

	return id, nil
}

func validateAlert(a *alert.Alert) error {
	if a.SourceAgent == "" || a.TargetAgent == "" {
		return errors.BadRequest("Alert requires source and target agents")
	}
	if a.SourceAgent == a.TargetAgent {
		return errors.BadRequest("Alert source and target must differ")
	}
	if !alert.IsValidSeverity(a.Severity) {
		return errors.ValidationError("Invalid severity", map[string]string{"severity": a.Severity})
	}
	if a.ThreatType == "" {
		return errors.BadRequest("Alert requires a threat type")
	}
	if a.Timestamp.IsZero() {
		return errors.BadRequest("Alert requires a timestamp")
	}
	return nil
}

// GetByID retrieves an alert by ID
func (s *AlertService) GetByID(ctx context.Context, id int64) (*alert.Alert, error) {
	return s.repo.GetByID(ctx, id)
}

// ListRecent returns the newest alerts first
func (s *AlertService) ListRecent(ctx context.Context, limit int) ([]*alert.Alert, error) {
	return s.repo.ListRecent(ctx, limit)
}

// GetSummary gets alert counts by severity, with every severity present
func (s *AlertService) GetSummary(ctx context.Context) (map[string]int, error) {
	counts, err := s.repo.CountBySeverity(ctx)
	if err != nil {
		return nil, err
	}
	return withAllSeverities(counts), nil
}

func withAllSeverities(counts map[string]int) map[string]int {
	out := make(map[string]int, len(alert.Severities))
	for _, sev := range alert.Severities {
		out[sev] = counts[sev]
	}
	return out
}
