package sqlstore

import (
	"context"
	"database/sql"

	"github.com/attager/a2a-threat-center/internal/domain/alert"
	"github.com/attager/a2a-threat-center/internal/pkg/errors"
)

type AlertRepository struct {
	db     *sql.DB
	driver string
}

func NewAlertRepository(db *sql.DB, driver string) alert.Repository {
	return &AlertRepository{db: db, driver: driver}
}

const alertColumns = `id, timestamp, source_agent, target_agent, source_agent_id, target_agent_id,
	threat_type, severity, protocol_layer, description`

func (r *AlertRepository) Create(ctx context.Context, a *alert.Alert) (int64, error) {
	defer track("insert", "alerts")()

	query := Rebind(r.driver, `
		INSERT INTO alerts (timestamp, source_agent, target_agent, source_agent_id, target_agent_id,
			threat_type, severity, protocol_layer, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		formatTime(a.Timestamp), a.SourceAgent, a.TargetAgent, a.SourceAgentID, a.TargetAgentID,
		a.ThreatType, a.Severity, a.ProtocolLayer, a.Description,
	).Scan(&id)
	if err != nil {
		return 0, errors.DatabaseError("Failed to create alert", err)
	}

	return id, nil
}

func (r *AlertRepository) GetByID(ctx context.Context, id int64) (*alert.Alert, error) {
	defer track("select", "alerts")()

	query := Rebind(r.driver, "SELECT "+alertColumns+" FROM alerts WHERE id = ?")

	a, err := scanAlert(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Alert")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get alert", err)
	}

	return a, nil
}

func (r *AlertRepository) ListRecent(ctx context.Context, limit int) ([]*alert.Alert, error) {
	defer track("select", "alerts")()

	query := Rebind(r.driver, "SELECT "+alertColumns+" FROM alerts ORDER BY id DESC LIMIT ?")

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list alerts", err)
	}
	defer rows.Close()

	alerts := make([]*alert.Alert, 0, limit)
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan alert", err)
		}
		alerts = append(alerts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to list alerts", err)
	}
	return alerts, nil
}

func (r *AlertRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM alerts").Scan(&count); err != nil {
		return 0, errors.DatabaseError("Failed to count alerts", err)
	}
	return count, nil
}

func (r *AlertRepository) CountBySeverity(ctx context.Context) (map[string]int, error) {
	return countBySeverity(ctx, r.db, "alerts")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAlert(s rowScanner) (*alert.Alert, error) {
	var a alert.Alert
	var timestamp string
	err := s.Scan(&a.ID, &timestamp, &a.SourceAgent, &a.TargetAgent, &a.SourceAgentID, &a.TargetAgentID,
		&a.ThreatType, &a.Severity, &a.ProtocolLayer, &a.Description)
	if err != nil {
		return nil, err
	}
	a.Timestamp = parseTime(timestamp)
	return &a, nil
}

// countBySeverity groups a table with a severity column
func countBySeverity(ctx context.Context, db *sql.DB, table string) (map[string]int, error) {
	defer track("count", table)()

	rows, err := db.QueryContext(ctx, "SELECT severity, COUNT(*) FROM "+table+" GROUP BY severity")
	if err != nil {
		return nil, errors.DatabaseError("Failed to count "+table+" by severity", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var severity string
		var count int
		if err := rows.Scan(&severity, &count); err != nil {
			return nil, errors.DatabaseError("Failed to scan count", err)
		}
		counts[severity] = count
	}

	return counts, rows.Err()
}
