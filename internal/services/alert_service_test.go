package services

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/attager/a2a-threat-center/internal/domain/alert"
	"github.com/attager/a2a-threat-center/internal/pkg/errors"
	"github.com/attager/a2a-threat-center/internal/pkg/logger"
	"github.com/attager/a2a-threat-center/internal/testutil"
)

func newAlert(source, target, severity string) *alert.Alert {
	return &alert.Alert{
		Timestamp:     time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
		SourceAgent:   source,
		TargetAgent:   target,
		ThreatType:    "Task Replay",
		Severity:      severity,
		ProtocolLayer: "Layer 3",
		Description:   source + " → " + target + " communication matched 'Task Replay' signature",
	}
}

func TestAlertService_Create(t *testing.T) {
	mockRepo := testutil.NewMockAlertRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewAlertService(mockRepo, log)

	tests := []struct {
		name     string
		alert    *alert.Alert
		wantErr  bool
		wantCode string
	}{
		{
			name:  "valid alert",
			alert: newAlert("Atlas-Planner", "Hermes-Router", alert.SeverityHigh),
		},
		{
			name:     "same source and target",
			alert:    newAlert("Atlas-Planner", "Atlas-Planner", alert.SeverityLow),
			wantErr:  true,
			wantCode: errors.ErrCodeBadRequest,
		},
		{
			name:     "missing target",
			alert:    newAlert("Atlas-Planner", "", alert.SeverityLow),
			wantErr:  true,
			wantCode: errors.ErrCodeBadRequest,
		},
		{
			name:     "unknown severity",
			alert:    newAlert("Atlas-Planner", "Nyx-Vault", "critical"),
			wantErr:  true,
			wantCode: errors.ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			id, err := service.Create(ctx, tt.alert)

			if (err != nil) != tt.wantErr {
				t.Errorf("Create() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantErr {
				if !errors.HasCode(err, tt.wantCode) {
					t.Errorf("Create() error code = %v, want %s", err, tt.wantCode)
				}
				return
			}

			if id == 0 || tt.alert.ID != id {
				t.Errorf("Create() id = %d, alert.ID = %d", id, tt.alert.ID)
			}
		})
	}
}

func TestAlertService_CreateIDsUnique(t *testing.T) {
	service := NewAlertService(testutil.NewMockAlertRepository(), logger.Nop())

	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		id, err := service.Create(context.Background(), newAlert("Cetus-Analyzer", "Nyx-Vault", alert.SeverityMedium))
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
}

func TestAlertService_CreateStoreFailure(t *testing.T) {
	mockRepo := testutil.NewMockAlertRepository()
	mockRepo.CreateError = errors.DatabaseError("Failed to create alert", stderrors.New("disk full"))
	service := NewAlertService(mockRepo, logger.Nop())

	a := newAlert("Atlas-Planner", "Hermes-Router", alert.SeverityLow)
	if _, err := service.Create(context.Background(), a); !errors.HasCode(err, errors.ErrCodeDatabase) {
		t.Errorf("Create() error = %v, want DATABASE_ERROR", err)
	}
	if a.ID != 0 {
		t.Errorf("alert.ID = %d after failed create", a.ID)
	}
}

func TestAlertService_GetSummary(t *testing.T) {
	mockRepo := testutil.NewMockAlertRepository()
	service := NewAlertService(mockRepo, logger.Nop())
	ctx := context.Background()

	for _, sev := range []string{alert.SeverityHigh, alert.SeverityHigh, alert.SeverityLow} {
		if _, err := service.Create(ctx, newAlert("Helios-Executor", "Nyx-Vault", sev)); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	summary, err := service.GetSummary(ctx)
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}

	want := map[string]int{alert.SeverityLow: 1, alert.SeverityMedium: 0, alert.SeverityHigh: 2}
	for sev, count := range want {
		got, ok := summary[sev]
		if !ok || got != count {
			t.Errorf("summary[%s] = %d (present %v), want %d", sev, got, ok, count)
		}
	}
}
