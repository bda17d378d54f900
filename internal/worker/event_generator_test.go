package worker

import (
	"context"
	stderrors "errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/attager/a2a-threat-center/internal/config"
	"github.com/attager/a2a-threat-center/internal/domain/alert"
	"github.com/attager/a2a-threat-center/internal/pkg/errors"
	"github.com/attager/a2a-threat-center/internal/pkg/logger"
	"github.com/attager/a2a-threat-center/internal/repository/sqlstore"
	"github.com/attager/a2a-threat-center/internal/services"
	"github.com/attager/a2a-threat-center/internal/stream"
	"github.com/attager/a2a-threat-center/internal/testutil"
)

// scriptedRand replays fixed draws, then returns zero
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testGeneratorConfig = config.GeneratorConfig{
	Enabled:     true,
	MinInterval: 3 * time.Second,
	MaxInterval: 6 * time.Second,
}

func newTestGenerator(t *testing.T, names ...string) (*EventGenerator, *testutil.MockAlertRepository, *stream.Queue) {
	t.Helper()

	alerts := testutil.NewMockAlertRepository()
	queue := stream.NewQueue(stream.DefaultCapacity, 10*time.Millisecond)
	gen := NewEventGenerator(
		testutil.NewMockAgentRepository(testutil.Roster(names...)...),
		services.NewAlertService(alerts, logger.Nop()),
		queue,
		testGeneratorConfig,
		logger.Nop(),
	)
	return gen, alerts, queue
}

func TestEventGenerator_TickForcedPair(t *testing.T) {
	db := testutil.SeededDB(t)
	ctx := context.Background()

	alertRepo := sqlstore.NewAlertRepository(db, "sqlite")
	queue := stream.NewQueue(stream.DefaultCapacity, time.Second)
	now := time.Date(2025, 3, 14, 12, 0, 0, 123456789, time.UTC)
	stamped := now.Truncate(time.Microsecond)

	gen := NewEventGenerator(
		sqlstore.NewAgentRepository(db, "sqlite"),
		services.NewAlertService(alertRepo, logger.Nop()),
		queue,
		testGeneratorConfig,
		logger.Nop(),
	).WithRand(&scriptedRand{
		// source index, target index, threat, layer
		ints:   []int{0, 0, 1, 4},
		floats: []float64{0.5},
	}).WithClock(fixedClock{now})

	a, err := gen.Tick(ctx)
	if err != nil {
		t.Fatalf("Tick() error = %v", err)
	}

	if a.SourceAgent != "Atlas-Planner" || a.TargetAgent != "Hermes-Router" {
		t.Fatalf("pair = %s → %s, want Atlas-Planner → Hermes-Router", a.SourceAgent, a.TargetAgent)
	}
	if a.ThreatType != "Task Replay" || a.Severity != alert.SeverityMedium || a.ProtocolLayer != "Layer 7" {
		t.Errorf("alert = %+v", a)
	}
	if a.Description != "Atlas-Planner → Hermes-Router communication matched 'Task Replay' signature" {
		t.Errorf("Description = %q", a.Description)
	}

	stored, err := alertRepo.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID(%d) error = %v", a.ID, err)
	}
	if stored.SourceAgent != "Atlas-Planner" || stored.TargetAgent != "Hermes-Router" || !stored.Timestamp.Equal(stamped) {
		t.Errorf("stored alert = %+v", stored)
	}

	ev, err := queue.Consume(ctx)
	if err != nil {
		t.Fatalf("Consume() error = %v", err)
	}
	if ev.ID != a.ID {
		t.Errorf("published id = %d, want %d", ev.ID, a.ID)
	}
	// the streamed event is a copy of the stored row
	if !ev.Timestamp.Equal(stored.Timestamp) {
		t.Errorf("streamed timestamp = %s, stored = %s", ev.Timestamp.Format(time.RFC3339Nano), stored.Timestamp.Format(time.RFC3339Nano))
	}
	if ev.Description != stored.Description || ev.Severity != stored.Severity || ev.ProtocolLayer != stored.ProtocolLayer {
		t.Errorf("streamed event = %+v, stored = %+v", ev, stored)
	}
}

func TestEventGenerator_TickDistinctPair(t *testing.T) {
	names := []string{"Atlas-Planner", "Hermes-Router", "Cetus-Analyzer", "Nyx-Vault", "Helios-Executor"}
	gen, _, queue := newTestGenerator(t, names...)
	gen.WithRand(rand.New(rand.NewSource(42)))

	valid := make(map[string]bool)
	for _, n := range names {
		valid[n] = true
	}

	ctx := context.Background()
	pairs := make(map[[2]string]bool)
	for i := 0; i < 500; i++ {
		a, err := gen.Tick(ctx)
		if err != nil {
			t.Fatalf("Tick() error = %v", err)
		}
		if a.SourceAgent == a.TargetAgent {
			t.Fatalf("source equals target: %s", a.SourceAgent)
		}
		if !valid[a.SourceAgent] || !valid[a.TargetAgent] {
			t.Fatalf("unknown agent in %s → %s", a.SourceAgent, a.TargetAgent)
		}
		if !alert.IsValidSeverity(a.Severity) || !alert.IsValidLayer(a.ProtocolLayer) {
			t.Fatalf("invalid labels: %+v", a)
		}
		pairs[[2]string{a.SourceAgent, a.TargetAgent}] = true
		queue.Consume(ctx)
	}

	// 5 agents give 20 ordered pairs; 500 draws should hit all of them
	if len(pairs) != 20 {
		t.Errorf("observed %d ordered pairs, want 20", len(pairs))
	}
}

func TestEventGenerator_SeverityDistribution(t *testing.T) {
	gen, _, _ := newTestGenerator(t, "a", "b")
	gen.WithRand(rand.New(rand.NewSource(7)))

	const draws = 10000
	counts := make(map[string]int)
	for i := 0; i < draws; i++ {
		counts[gen.pickSeverity()]++
	}

	for _, w := range alert.SeverityWeights {
		got := float64(counts[w.Severity]) / draws
		if math.Abs(got-w.Weight) > 0.03 {
			t.Errorf("%s frequency = %.3f, want %.2f ± 0.03", w.Severity, got, w.Weight)
		}
	}
}

func TestEventGenerator_PickSeverityBoundaries(t *testing.T) {
	tests := []struct {
		x    float64
		want string
	}{
		{0, alert.SeverityLow},
		{0.29, alert.SeverityLow},
		{0.3, alert.SeverityMedium},
		{0.69, alert.SeverityMedium},
		{0.71, alert.SeverityHigh},
		{0.9999, alert.SeverityHigh},
	}

	for _, tt := range tests {
		gen, _, _ := newTestGenerator(t, "a", "b")
		gen.WithRand(&scriptedRand{floats: []float64{tt.x}})
		if got := gen.pickSeverity(); got != tt.want {
			t.Errorf("pickSeverity(%v) = %s, want %s", tt.x, got, tt.want)
		}
	}
}

func TestEventGenerator_NotEnoughAgents(t *testing.T) {
	for _, names := range [][]string{nil, {"Atlas-Planner"}} {
		gen, alerts, queue := newTestGenerator(t, names...)

		_, err := gen.Tick(context.Background())
		if !stderrors.Is(err, ErrNotEnoughAgents) {
			t.Errorf("Tick() with %d agents error = %v, want ErrNotEnoughAgents", len(names), err)
		}
		if alerts.Len() != 0 || queue.Len() != 0 {
			t.Errorf("Tick() wrote %d alerts and %d events", alerts.Len(), queue.Len())
		}
	}
}

func TestEventGenerator_StoreFailureSkipsPublish(t *testing.T) {
	gen, alerts, queue := newTestGenerator(t, "Atlas-Planner", "Hermes-Router")
	alerts.CreateError = errors.DatabaseError("Failed to create alert", stderrors.New("database is locked"))

	_, err := gen.Tick(context.Background())
	if !errors.HasCode(err, errors.ErrCodeDatabase) {
		t.Errorf("Tick() error = %v, want DATABASE_ERROR", err)
	}
	if queue.Len() != 0 {
		t.Errorf("queue length = %d, want 0", queue.Len())
	}
}

func TestEventGenerator_FullQueueDropsWithoutError(t *testing.T) {
	alerts := testutil.NewMockAlertRepository()
	queue := stream.NewQueue(1, 10*time.Millisecond)
	gen := NewEventGenerator(
		testutil.NewMockAgentRepository(testutil.Roster("Atlas-Planner", "Hermes-Router")...),
		services.NewAlertService(alerts, logger.Nop()),
		queue,
		testGeneratorConfig,
		logger.Nop(),
	)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := gen.Tick(ctx); err != nil {
			t.Fatalf("Tick() error = %v", err)
		}
	}

	if alerts.Len() != 3 {
		t.Errorf("persisted %d alerts, want 3", alerts.Len())
	}
	if queue.Len() != 1 {
		t.Errorf("queue length = %d, want 1", queue.Len())
	}
}

func TestEventGenerator_NextDelay(t *testing.T) {
	gen, _, _ := newTestGenerator(t, "a", "b")
	gen.WithRand(rand.New(rand.NewSource(1)))

	for i := 0; i < 1000; i++ {
		d := gen.nextDelay()
		if d < 3*time.Second || d > 6*time.Second {
			t.Fatalf("nextDelay() = %v, want within [3s, 6s]", d)
		}
	}
}

func TestEventGenerator_RunStopsOnCancel(t *testing.T) {
	gen, alerts, _ := newTestGenerator(t, "Atlas-Planner", "Hermes-Router")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		gen.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for alerts.Len() == 0 {
		select {
		case <-deadline:
			t.Fatal("Run() did not generate an alert")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}
