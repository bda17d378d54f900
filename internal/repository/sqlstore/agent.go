package sqlstore

import (
	"context"
	"database/sql"

	"github.com/attager/a2a-threat-center/internal/domain/agent"
	"github.com/attager/a2a-threat-center/internal/pkg/errors"
)

type AgentRepository struct {
	db     *sql.DB
	driver string
}

func NewAgentRepository(db *sql.DB, driver string) agent.Repository {
	return &AgentRepository{db: db, driver: driver}
}

func (r *AgentRepository) List(ctx context.Context) ([]*agent.Agent, error) {
	defer track("select", "agents")()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, role, status, risk_score, last_seen
		FROM agents ORDER BY id
	`)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list agents", err)
	}
	defer rows.Close()

	agents := make([]*agent.Agent, 0, 8)
	for rows.Next() {
		var a agent.Agent
		var lastSeen string
		if err := rows.Scan(&a.ID, &a.Name, &a.Role, &a.Status, &a.RiskScore, &lastSeen); err != nil {
			return nil, errors.DatabaseError("Failed to scan agent", err)
		}
		a.LastSeen = parseTime(lastSeen)
		agents = append(agents, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to list agents", err)
	}
	return agents, nil
}

func (r *AgentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM agents").Scan(&count); err != nil {
		return 0, errors.DatabaseError("Failed to count agents", err)
	}
	return count, nil
}

func (r *AgentRepository) ListProfiles(ctx context.Context) (map[int64][]agent.Profile, error) {
	defer track("select", "agent_profiles")()

	rows, err := r.db.QueryContext(ctx, `
		SELECT agent_id, attribute, value
		FROM agent_profiles ORDER BY agent_id, attribute
	`)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list agent profiles", err)
	}
	defer rows.Close()

	profiles := make(map[int64][]agent.Profile)
	for rows.Next() {
		var p agent.Profile
		if err := rows.Scan(&p.AgentID, &p.Attribute, &p.Value); err != nil {
			return nil, errors.DatabaseError("Failed to scan agent profile", err)
		}
		profiles[p.AgentID] = append(profiles[p.AgentID], p)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to list agent profiles", err)
	}
	return profiles, nil
}

func (r *AgentRepository) ListCommunications(ctx context.Context) ([]*agent.Communication, error) {
	defer track("select", "communications")()

	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.source_agent_id, c.target_agent_id, s.name, t.name,
			c.last_activity, COALESCE(c.threat_summary, '')
		FROM communications c
		JOIN agents s ON c.source_agent_id = s.id
		JOIN agents t ON c.target_agent_id = t.id
		ORDER BY c.last_activity DESC, c.id DESC
	`)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list communications", err)
	}
	defer rows.Close()

	comms := make([]*agent.Communication, 0, 8)
	for rows.Next() {
		var c agent.Communication
		var lastActivity string
		if err := rows.Scan(&c.ID, &c.SourceAgentID, &c.TargetAgentID, &c.SourceName, &c.TargetName,
			&lastActivity, &c.ThreatSummary); err != nil {
			return nil, errors.DatabaseError("Failed to scan communication", err)
		}
		c.LastActivity = parseTime(lastActivity)
		if c.ThreatSummary == "" {
			c.ThreatSummary = agent.DefaultLinkSummary
		}
		comms = append(comms, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to list communications", err)
	}
	return comms, nil
}

func (r *AgentRepository) CountCommunications(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM communications").Scan(&count); err != nil {
		return 0, errors.DatabaseError("Failed to count communications", err)
	}
	return count, nil
}
