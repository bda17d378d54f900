package worker

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/attager/a2a-threat-center/internal/config"
	"github.com/attager/a2a-threat-center/internal/domain/agent"
	"github.com/attager/a2a-threat-center/internal/domain/alert"
	"github.com/attager/a2a-threat-center/internal/pkg/logger"
	"github.com/attager/a2a-threat-center/internal/pkg/metrics"
	"github.com/attager/a2a-threat-center/internal/stream"
)

// ErrNotEnoughAgents is returned by Tick when the roster cannot supply two distinct agents
var ErrNotEnoughAgents = errors.New("at least two agents are required to generate an event")

// Rand is the randomness the generator draws from. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Clock supplies event timestamps
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Publisher accepts freshly persisted events for delivery
type Publisher interface {
	Publish(ctx context.Context, ev stream.Event) bool
}

// EventGenerator fabricates synthetic threat alerts on an irregular cadence,
// persists them and hands them to the delivery queue.
type EventGenerator struct {
	agents      agent.Repository
	alerts      alert.Service
	publisher   Publisher
	minInterval time.Duration
	maxInterval time.Duration
	rand        Rand
	clock       Clock
	logger      *logger.Logger
}

// NewEventGenerator creates a new event generator worker
func NewEventGenerator(
	agents agent.Repository,
	alerts alert.Service,
	publisher Publisher,
	cfg config.GeneratorConfig,
	log *logger.Logger,
) *EventGenerator {
	return &EventGenerator{
		agents:      agents,
		alerts:      alerts,
		publisher:   publisher,
		minInterval: cfg.MinInterval,
		maxInterval: cfg.MaxInterval,
		rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
		clock:       systemClock{},
		logger:      log.WithComponent("event_generator"),
	}
}

// WithRand replaces the random source
func (g *EventGenerator) WithRand(r Rand) *EventGenerator {
	g.rand = r
	return g
}

// WithClock replaces the clock
func (g *EventGenerator) WithClock(c Clock) *EventGenerator {
	g.clock = c
	return g
}

// Run generates events until ctx is cancelled
func (g *EventGenerator) Run(ctx context.Context) {
	g.logger.WithFields(map[string]interface{}{
		"min_interval": g.minInterval.String(),
		"max_interval": g.maxInterval.String(),
	}).Info("Starting event generator")

	for {
		if _, err := g.Tick(ctx); err != nil {
			g.logger.ErrorWithErr(err, "Event generation failed")
		}

		timer := time.NewTimer(g.nextDelay())
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			g.logger.Info("Event generator stopped")
			return
		}
	}
}

// Tick performs one generation step. The returned alert carries its store id.
// Timestamps are cut to the store's microsecond precision so the streamed
// event matches the persisted row. A full delivery queue drops the event
// without error.
func (g *EventGenerator) Tick(ctx context.Context) (*alert.Alert, error) {
	roster, err := g.agents.List(ctx)
	if err != nil {
		metrics.RecordGeneratorFailure("roster")
		return nil, fmt.Errorf("read roster: %w", err)
	}
	if len(roster) < 2 {
		metrics.RecordGeneratorFailure("not_enough_agents")
		return nil, ErrNotEnoughAgents
	}

	source, target := g.pickPair(roster)
	threat := alert.ThreatTypes[g.rand.Intn(len(alert.ThreatTypes))]
	severity := g.pickSeverity()
	layer := alert.ProtocolLayers[g.rand.Intn(len(alert.ProtocolLayers))]

	a := &alert.Alert{
		Timestamp:     g.clock.Now().UTC().Truncate(time.Microsecond),
		SourceAgent:   source.Name,
		TargetAgent:   target.Name,
		SourceAgentID: source.ID,
		TargetAgentID: target.ID,
		ThreatType:    threat,
		Severity:      severity,
		ProtocolLayer: layer,
		Description:   Describe(source.Name, target.Name, threat),
	}

	if _, err := g.alerts.Create(ctx, a); err != nil {
		metrics.RecordGeneratorFailure("store")
		return nil, fmt.Errorf("persist alert: %w", err)
	}
	metrics.RecordAlertGenerated(a.Severity, a.ThreatType)

	if !g.publisher.Publish(ctx, stream.NewEvent(a)) {
		g.logger.With("alert_id", a.ID).Warn("Delivery queue full, event dropped")
	}

	return a, nil
}

// Describe renders the human-readable alert description
func Describe(source, target, threat string) string {
	return fmt.Sprintf("%s → %s communication matched '%s' signature", source, target, threat)
}

// pickPair samples two distinct agents uniformly without replacement
func (g *EventGenerator) pickPair(roster []*agent.Agent) (*agent.Agent, *agent.Agent) {
	n := len(roster)
	i := g.rand.Intn(n)
	j := g.rand.Intn(n - 1)
	if j >= i {
		j++
	}
	return roster[i], roster[j]
}

func (g *EventGenerator) pickSeverity() string {
	x := g.rand.Float64()
	var cumulative float64
	for _, w := range alert.SeverityWeights {
		cumulative += w.Weight
		if x < cumulative {
			return w.Severity
		}
	}
	return alert.SeverityWeights[len(alert.SeverityWeights)-1].Severity
}

// nextDelay draws the pause before the next iteration from [min, max]
func (g *EventGenerator) nextDelay() time.Duration {
	span := g.maxInterval - g.minInterval
	if span <= 0 {
		return g.minInterval
	}
	return g.minInterval + time.Duration(g.rand.Float64()*float64(span))
}
