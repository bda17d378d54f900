package sqlstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/attager/a2a-threat-center/internal/domain/alert"
	"github.com/attager/a2a-threat-center/internal/domain/packet"
	"github.com/attager/a2a-threat-center/internal/pkg/errors"
	"github.com/attager/a2a-threat-center/internal/repository/sqlstore"
	"github.com/attager/a2a-threat-center/internal/testutil"
	"github.com/attager/a2a-threat-center/migrations"
)

func TestRebind(t *testing.T) {
	tests := []struct {
		driver string
		query  string
		want   string
	}{
		{"sqlite", "SELECT * FROM alerts WHERE id = ?", "SELECT * FROM alerts WHERE id = ?"},
		{"postgres", "SELECT * FROM alerts WHERE id = ?", "SELECT * FROM alerts WHERE id = $1"},
		{"postgres", "LIMIT ? OFFSET ?", "LIMIT $1 OFFSET $2"},
		{"postgres", "SELECT 1", "SELECT 1"},
	}

	for _, tt := range tests {
		t.Run(tt.driver+"/"+tt.query, func(t *testing.T) {
			if got := sqlstore.Rebind(tt.driver, tt.query); got != tt.want {
				t.Errorf("Rebind() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := testutil.NewTestDB(t)

	migrationsFS, err := migrations.GetFS("sqlite")
	if err != nil {
		t.Fatalf("GetFS() error = %v", err)
	}

	applied, err := sqlstore.RunMigrations(db, "sqlite", migrationsFS)
	if err != nil {
		t.Fatalf("RunMigrations() error = %v", err)
	}
	if applied != 0 {
		t.Errorf("second RunMigrations() applied %d migrations, want 0", applied)
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)

	seeded, err := sqlstore.Seed(ctx, db, "sqlite", testutil.SeedTime)
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if !seeded {
		t.Fatal("Seed() on empty store = false, want true")
	}

	seeded, err = sqlstore.Seed(ctx, db, "sqlite", testutil.SeedTime.Add(time.Hour))
	if err != nil {
		t.Fatalf("second Seed() error = %v", err)
	}
	if seeded {
		t.Error("second Seed() = true, want false")
	}

	agents := sqlstore.NewAgentRepository(db, "sqlite")
	count, err := agents.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 5 {
		t.Errorf("agent count = %d, want 5", count)
	}

	packets := sqlstore.NewPacketRepository(db, "sqlite")
	total, err := packets.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if total != 6 {
		t.Errorf("packet count = %d, want 6", total)
	}
}

func TestAgentRepository(t *testing.T) {
	ctx := context.Background()
	repo := sqlstore.NewAgentRepository(testutil.SeededDB(t), "sqlite")

	agents, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(agents) != 5 {
		t.Fatalf("List() returned %d agents, want 5", len(agents))
	}
	if agents[0].Name != "Atlas-Planner" {
		t.Errorf("first agent = %s, want Atlas-Planner", agents[0].Name)
	}
	wantSeen := testutil.SeedTime.Add(-5 * time.Minute)
	if !agents[0].LastSeen.Equal(wantSeen) {
		t.Errorf("LastSeen = %v, want %v", agents[0].LastSeen, wantSeen)
	}

	profiles, err := repo.ListProfiles(ctx)
	if err != nil {
		t.Fatalf("ListProfiles() error = %v", err)
	}
	if len(profiles[agents[0].ID]) == 0 {
		t.Error("ListProfiles() returned no attributes for the first agent")
	}

	comms, err := repo.ListCommunications(ctx)
	if err != nil {
		t.Fatalf("ListCommunications() error = %v", err)
	}
	if len(comms) != 4 {
		t.Fatalf("ListCommunications() returned %d links, want 4", len(comms))
	}
	for i := 1; i < len(comms); i++ {
		if comms[i].LastActivity.After(comms[i-1].LastActivity) {
			t.Errorf("links not ordered by last activity: %v after %v", comms[i].LastActivity, comms[i-1].LastActivity)
		}
	}
	if comms[0].SourceName == "" || comms[0].TargetName == "" {
		t.Errorf("link names not joined: %+v", comms[0])
	}
}

func TestAlertRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := sqlstore.NewAlertRepository(testutil.NewTestDB(t), "sqlite")

	base := time.Date(2025, 3, 14, 10, 0, 0, 123456000, time.UTC)
	var ids []int64
	for i, severity := range []string{alert.SeverityLow, alert.SeverityHigh, alert.SeverityHigh} {
		id, err := repo.Create(ctx, &alert.Alert{
			Timestamp:     base.Add(time.Duration(i) * time.Second),
			SourceAgent:   "Atlas-Planner",
			TargetAgent:   "Nyx-Vault",
			SourceAgentID: 1,
			TargetAgentID: 4,
			ThreatType:    "Task Replay",
			Severity:      severity,
			ProtocolLayer: "Layer 3",
			Description:   "Atlas-Planner → Nyx-Vault communication matched 'Task Replay' signature",
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		ids = append(ids, id)
	}

	if ids[0] >= ids[1] || ids[1] >= ids[2] {
		t.Errorf("ids not increasing: %v", ids)
	}

	got, err := repo.GetByID(ctx, ids[0])
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !got.Timestamp.Equal(base) {
		t.Errorf("Timestamp = %v, want %v", got.Timestamp, base)
	}
	if got.Description != "Atlas-Planner → Nyx-Vault communication matched 'Task Replay' signature" {
		t.Errorf("Description = %q", got.Description)
	}

	recent, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(recent) != 2 || recent[0].ID != ids[2] {
		t.Errorf("ListRecent() not newest first: %+v", recent)
	}

	counts, err := repo.CountBySeverity(ctx)
	if err != nil {
		t.Fatalf("CountBySeverity() error = %v", err)
	}
	if counts[alert.SeverityHigh] != 2 || counts[alert.SeverityLow] != 1 {
		t.Errorf("CountBySeverity() = %v", counts)
	}
}

func TestAlertRepository_GetByIDNotFound(t *testing.T) {
	repo := sqlstore.NewAlertRepository(testutil.NewTestDB(t), "sqlite")

	_, err := repo.GetByID(context.Background(), 42)
	if !errors.HasCode(err, errors.ErrCodeNotFound) {
		t.Errorf("GetByID() error = %v, want NOT_FOUND", err)
	}
}

func TestAlertRepository_RejectsUnknownSeverity(t *testing.T) {
	repo := sqlstore.NewAlertRepository(testutil.NewTestDB(t), "sqlite")

	_, err := repo.Create(context.Background(), &alert.Alert{
		Timestamp:     time.Now(),
		SourceAgent:   "a",
		TargetAgent:   "b",
		ThreatType:    "Task Replay",
		Severity:      "critical",
		ProtocolLayer: "Layer 2",
		Description:   "x",
	})
	if !errors.HasCode(err, errors.ErrCodeDatabase) {
		t.Errorf("Create() error = %v, want DATABASE_ERROR", err)
	}
}

func TestPacketRepository_ListWithPagination(t *testing.T) {
	ctx := context.Background()
	repo := sqlstore.NewPacketRepository(testutil.SeededDB(t), "sqlite")

	tests := []struct {
		name      string
		filter    packet.Filter
		limit     int
		offset    int
		wantTotal int64
		wantLen   int
	}{
		{name: "all", limit: 20, wantTotal: 6, wantLen: 6},
		{name: "paged", limit: 4, offset: 4, wantTotal: 6, wantLen: 2},
		{name: "severity", filter: packet.Filter{Severity: "high"}, limit: 20, wantTotal: 4, wantLen: 4},
		{name: "threat substring", filter: packet.Filter{Threat: "Replay"}, limit: 20, wantTotal: 1, wantLen: 1},
		{name: "source substring", filter: packet.Filter{Source: "Hermes"}, limit: 20, wantTotal: 2, wantLen: 2},
		{name: "layer", filter: packet.Filter{Layer: "Layer 2"}, limit: 20, wantTotal: 2, wantLen: 2},
		{name: "combined", filter: packet.Filter{Severity: "high", Target: "Atlas"}, limit: 20, wantTotal: 2, wantLen: 2},
		{name: "no match", filter: packet.Filter{Threat: "Quantum"}, limit: 20, wantTotal: 0, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packets, total, err := repo.ListWithPagination(ctx, tt.filter, tt.limit, tt.offset)
			if err != nil {
				t.Fatalf("ListWithPagination() error = %v", err)
			}
			if total != tt.wantTotal {
				t.Errorf("total = %d, want %d", total, tt.wantTotal)
			}
			if len(packets) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(packets), tt.wantLen)
			}
			for i := 1; i < len(packets); i++ {
				if packets[i].Timestamp.After(packets[i-1].Timestamp) {
					t.Errorf("packets not newest first at %d", i)
				}
			}
		})
	}
}

func TestPacketRepository_LatestTimestamp(t *testing.T) {
	ctx := context.Background()

	empty := sqlstore.NewPacketRepository(testutil.NewTestDB(t), "sqlite")
	latest, err := empty.LatestTimestamp(ctx)
	if err != nil {
		t.Fatalf("LatestTimestamp() error = %v", err)
	}
	if latest != nil {
		t.Errorf("LatestTimestamp() on empty store = %v, want nil", latest)
	}

	seeded := sqlstore.NewPacketRepository(testutil.SeededDB(t), "sqlite")
	latest, err = seeded.LatestTimestamp(ctx)
	if err != nil {
		t.Fatalf("LatestTimestamp() error = %v", err)
	}
	want := testutil.SeedTime.Add(-time.Minute)
	if latest == nil || !latest.Equal(want) {
		t.Errorf("LatestTimestamp() = %v, want %v", latest, want)
	}
}
