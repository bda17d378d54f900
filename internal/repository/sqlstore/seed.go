package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type seedAgent struct {
	name      string
	role      string
	status    string
	riskScore float64
	seenAgo   time.Duration
	profile   [][2]string
}

type seedLink struct {
	source, target string
	activeAgo      time.Duration
	summary        string
}

type seedPacket struct {
	ago                                     time.Duration
	source, target, layer, threat, severity string
	description, resolution                 string
}

var seedAgents = []seedAgent{
	{"Atlas-Planner", "Task coordination", "normal", 0.24, 5 * time.Minute, [][2]string{
		{"mission", "Task decomposition and scheduling"},
		{"trust_level", "high"},
		{"zone", "control-plane"},
	}},
	{"Hermes-Router", "Message routing", "caution", 0.61, 2 * time.Minute, [][2]string{
		{"mission", "Routing A2A traffic between agents"},
		{"trust_level", "medium"},
		{"zone", "message-bus"},
	}},
	{"Cetus-Analyzer", "Log analysis", "normal", 0.18, 1 * time.Minute, [][2]string{
		{"mission", "Correlating agent telemetry"},
		{"trust_level", "high"},
		{"zone", "analytics"},
	}},
	{"Nyx-Vault", "Secret storage", "quarantined", 0.82, 8 * time.Minute, [][2]string{
		{"mission", "Issuing scoped credentials"},
		{"trust_level", "restricted"},
		{"zone", "secure-enclave"},
	}},
	{"Helios-Executor", "Task execution", "normal", 0.33, 3 * time.Minute, [][2]string{
		{"mission", "Executing approved actions"},
		{"trust_level", "medium"},
		{"zone", "edge"},
	}},
}

var seedLinks = []seedLink{
	{"Atlas-Planner", "Hermes-Router", 2 * time.Minute, "2 Task Replay alerts"},
	{"Hermes-Router", "Cetus-Analyzer", 1 * time.Minute, "Message schema violation detected"},
	{"Atlas-Planner", "Nyx-Vault", 4 * time.Minute, "Cross-agent privilege escalation attempt"},
	{"Cetus-Analyzer", "Helios-Executor", 1 * time.Minute, "Suspected artifact tampering"},
}

var seedPackets = []seedPacket{
	{10 * time.Minute, "Atlas-Planner", "Helios-Executor", "Layer 3", "Task Replay", "high",
		"Repeated requests with the same task ID",
		"Replay blocking policy applied"},
	{8 * time.Minute, "Hermes-Router", "Nyx-Vault", "Layer 2", "Message Schema Violation", "medium",
		"AgentCard schema fields missing",
		"Schema validation tightened"},
	{6 * time.Minute, "Nyx-Vault", "Atlas-Planner", "Layer 4", "Server Impersonation", "high",
		"Forged certificate received during TLS handshake",
		"Session blocked and keys rotated"},
	{5 * time.Minute, "Cetus-Analyzer", "Hermes-Router", "Layer 3", "Agent Card Spoofing", "high",
		"AgentCard received from an unregistered domain",
		"Domain added to blocklist"},
	{3 * time.Minute, "Helios-Executor", "Atlas-Planner", "Layer 2", "Artifact Tampering", "medium",
		"Artifact hash mismatch",
		"Artifact retransmission requested"},
	{1 * time.Minute, "Hermes-Router", "Atlas-Planner", "Layer 6", "Supply Chain Attack", "high",
		"Malicious package detected during dependency update",
		"Update rolled back and verified"},
}

// Seed populates an empty store with the demo roster, links and packet history.
// It returns false without writing anything when agents already exist.
func Seed(ctx context.Context, db *sql.DB, driver string, now time.Time) (bool, error) {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM agents").Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count agents: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	ids := make(map[string]int64, len(seedAgents))
	insertAgent := Rebind(driver, `
		INSERT INTO agents (name, role, status, risk_score, last_seen)
		VALUES (?, ?, ?, ?, ?) RETURNING id
	`)
	insertProfile := Rebind(driver, "INSERT INTO agent_profiles (agent_id, attribute, value) VALUES (?, ?, ?)")

	for _, a := range seedAgents {
		var id int64
		if err := tx.QueryRowContext(ctx, insertAgent,
			a.name, a.role, a.status, a.riskScore, formatTime(now.Add(-a.seenAgo)),
		).Scan(&id); err != nil {
			return false, fmt.Errorf("failed to seed agent %s: %w", a.name, err)
		}
		ids[a.name] = id

		for _, attr := range a.profile {
			if _, err := tx.ExecContext(ctx, insertProfile, id, attr[0], attr[1]); err != nil {
				return false, fmt.Errorf("failed to seed profile for %s: %w", a.name, err)
			}
		}
	}

	insertLink := Rebind(driver, `
		INSERT INTO communications (source_agent_id, target_agent_id, last_activity, threat_summary)
		VALUES (?, ?, ?, ?)
	`)
	for _, l := range seedLinks {
		if _, err := tx.ExecContext(ctx, insertLink,
			ids[l.source], ids[l.target], formatTime(now.Add(-l.activeAgo)), l.summary,
		); err != nil {
			return false, fmt.Errorf("failed to seed link %s -> %s: %w", l.source, l.target, err)
		}
	}

	insertPacket := Rebind(driver, `
		INSERT INTO packets (timestamp, source_agent, target_agent, protocol_layer,
			threat_type, severity, description, resolution)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	for _, p := range seedPackets {
		if _, err := tx.ExecContext(ctx, insertPacket,
			formatTime(now.Add(-p.ago)), p.source, p.target, p.layer,
			p.threat, p.severity, p.description, p.resolution,
		); err != nil {
			return false, fmt.Errorf("failed to seed packet: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit seed: %w", err)
	}
	return true, nil
}
