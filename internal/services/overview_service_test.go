package services

import (
	"context"
	"testing"
	"time"

	"github.com/attager/a2a-threat-center/internal/domain/alert"
	"github.com/attager/a2a-threat-center/internal/pkg/logger"
	"github.com/attager/a2a-threat-center/internal/repository/sqlstore"
	"github.com/attager/a2a-threat-center/internal/testutil"
)

func TestOverviewService_Get(t *testing.T) {
	db := testutil.SeededDB(t)
	ctx := context.Background()

	alerts := sqlstore.NewAlertRepository(db, "sqlite")
	if _, err := alerts.Create(ctx, newAlert("Atlas-Planner", "Nyx-Vault", alert.SeverityMedium)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	service := NewOverviewService(
		sqlstore.NewAgentRepository(db, "sqlite"),
		sqlstore.NewPacketRepository(db, "sqlite"),
		alerts,
		logger.Nop(),
	)

	o, err := service.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if o.AgentCount != 5 || o.CommunicationCount != 4 || o.TotalPackets != 6 || o.TotalAlerts != 1 {
		t.Errorf("counts = %+v", o)
	}
	if o.HighThreats != 4 {
		t.Errorf("HighThreats = %d, want 4", o.HighThreats)
	}
	if o.SeverityCounts[alert.SeverityLow] != 0 {
		t.Errorf("SeverityCounts = %v", o.SeverityCounts)
	}
	if o.AlertSeverityCounts[alert.SeverityMedium] != 1 {
		t.Errorf("AlertSeverityCounts = %v", o.AlertSeverityCounts)
	}
	if o.LastUpdate == nil || !o.LastUpdate.Equal(testutil.SeedTime.Add(-time.Minute)) {
		t.Errorf("LastUpdate = %v", o.LastUpdate)
	}
}

func TestOverviewService_Branding(t *testing.T) {
	service := NewOverviewService(nil, nil, nil, logger.Nop()).
		WithClock(func() time.Time { return time.Date(2025, 11, 3, 8, 0, 0, 0, time.UTC) })

	b := service.Branding()
	if b.BuildDate != "2025.11.03" || b.Year != 2025 {
		t.Errorf("Branding() = %+v", b)
	}
	if b.Team != BrandTeam {
		t.Errorf("Team = %q", b.Team)
	}
}
