package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/attager/a2a-threat-center/internal/domain/agent"
	"github.com/attager/a2a-threat-center/internal/domain/alert"
	"github.com/attager/a2a-threat-center/internal/domain/packet"
	"github.com/attager/a2a-threat-center/internal/pkg/errors"
)

// MockAgentRepository is a mock implementation of agent.Repository
type MockAgentRepository struct {
	Agents         []*agent.Agent
	Profiles       map[int64][]agent.Profile
	Communications []*agent.Communication
	ListError      error
}

func NewMockAgentRepository(agents ...*agent.Agent) *MockAgentRepository {
	return &MockAgentRepository{
		Agents:   agents,
		Profiles: make(map[int64][]agent.Profile),
	}
}

func (m *MockAgentRepository) List(ctx context.Context) ([]*agent.Agent, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.Agents, nil
}

func (m *MockAgentRepository) Count(ctx context.Context) (int64, error) {
	if m.ListError != nil {
		return 0, m.ListError
	}
	return int64(len(m.Agents)), nil
}

func (m *MockAgentRepository) ListProfiles(ctx context.Context) (map[int64][]agent.Profile, error) {
	return m.Profiles, nil
}

func (m *MockAgentRepository) ListCommunications(ctx context.Context) ([]*agent.Communication, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.Communications, nil
}

func (m *MockAgentRepository) CountCommunications(ctx context.Context) (int64, error) {
	return int64(len(m.Communications)), nil
}

// MockAlertRepository is a mock implementation of alert.Repository.
// It is safe for use from the generator goroutine.
type MockAlertRepository struct {
	mu          sync.Mutex
	Alerts      map[int64]*alert.Alert
	NextID      int64
	CreateError error
	GetError    error
}

func NewMockAlertRepository() *MockAlertRepository {
	return &MockAlertRepository{
		Alerts: make(map[int64]*alert.Alert),
		NextID: 1,
	}
}

func (m *MockAlertRepository) Create(ctx context.Context, a *alert.Alert) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateError != nil {
		return 0, m.CreateError
	}
	id := m.NextID
	m.NextID++
	stored := *a
	stored.ID = id
	m.Alerts[id] = &stored
	return id, nil
}

func (m *MockAlertRepository) GetByID(ctx context.Context, id int64) (*alert.Alert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetError != nil {
		return nil, m.GetError
	}
	a, ok := m.Alerts[id]
	if !ok {
		return nil, errors.NotFound("Alert")
	}
	return a, nil
}

func (m *MockAlertRepository) ListRecent(ctx context.Context, limit int) ([]*alert.Alert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetError != nil {
		return nil, m.GetError
	}
	result := make([]*alert.Alert, 0, len(m.Alerts))
	for _, a := range m.Alerts {
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MockAlertRepository) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.Alerts)), nil
}

func (m *MockAlertRepository) CountBySeverity(ctx context.Context) (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := make(map[string]int)
	for _, a := range m.Alerts {
		counts[a.Severity]++
	}
	return counts, nil
}

// Len returns the number of stored alerts
func (m *MockAlertRepository) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Alerts)
}

// MockPacketRepository is a mock implementation of packet.Repository
type MockPacketRepository struct {
	Packets   []*packet.Packet
	ListError error
	// LastFilter records the filter of the most recent list call
	LastFilter packet.Filter
}

func NewMockPacketRepository(packets ...*packet.Packet) *MockPacketRepository {
	return &MockPacketRepository{Packets: packets}
}

func (m *MockPacketRepository) ListWithPagination(ctx context.Context, filter packet.Filter, limit, offset int) ([]*packet.Packet, int64, error) {
	m.LastFilter = filter
	if m.ListError != nil {
		return nil, 0, m.ListError
	}

	total := int64(len(m.Packets))
	if offset >= len(m.Packets) {
		return []*packet.Packet{}, total, nil
	}
	end := offset + limit
	if end > len(m.Packets) {
		end = len(m.Packets)
	}
	return m.Packets[offset:end], total, nil
}

func (m *MockPacketRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.Packets)), nil
}

func (m *MockPacketRepository) CountBySeverity(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, p := range m.Packets {
		counts[p.Severity]++
	}
	return counts, nil
}

func (m *MockPacketRepository) LatestTimestamp(ctx context.Context) (*time.Time, error) {
	var latest *time.Time
	for _, p := range m.Packets {
		ts := p.Timestamp
		if latest == nil || ts.After(*latest) {
			latest = &ts
		}
	}
	return latest, nil
}

// Roster builds agents with the given names and ids starting at 1
func Roster(names ...string) []*agent.Agent {
	agents := make([]*agent.Agent, 0, len(names))
	for i, name := range names {
		agents = append(agents, &agent.Agent{
			ID:       int64(i + 1),
			Name:     name,
			Role:     "test",
			Status:   agent.StatusNormal,
			LastSeen: SeedTime,
		})
	}
	return agents
}
