package sqlstore

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/attager/a2a-threat-center/internal/domain/packet"
	"github.com/attager/a2a-threat-center/internal/pkg/errors"
)

type PacketRepository struct {
	db     *sql.DB
	driver string
}

func NewPacketRepository(db *sql.DB, driver string) packet.Repository {
	return &PacketRepository{db: db, driver: driver}
}

func (r *PacketRepository) ListWithPagination(ctx context.Context, filter packet.Filter, limit, offset int) ([]*packet.Packet, int64, error) {
	defer track("select", "packets")()

	where, args := packetWhere(filter)

	var total int64
	countQuery := Rebind(r.driver, "SELECT COUNT(*) FROM packets"+where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, errors.DatabaseError("Failed to count packets", err)
	}

	query := Rebind(r.driver, `
		SELECT id, timestamp, source_agent, target_agent, protocol_layer,
			threat_type, severity, description, resolution
		FROM packets`+where+`
		ORDER BY timestamp DESC, id DESC
		LIMIT ? OFFSET ?
	`)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list packets", err)
	}
	defer rows.Close()

	packets := make([]*packet.Packet, 0, limit)
	for rows.Next() {
		var p packet.Packet
		var timestamp string
		if err := rows.Scan(&p.ID, &timestamp, &p.SourceAgent, &p.TargetAgent, &p.ProtocolLayer,
			&p.ThreatType, &p.Severity, &p.Description, &p.Resolution); err != nil {
			return nil, 0, errors.DatabaseError("Failed to scan packet", err)
		}
		p.Timestamp = parseTime(timestamp)
		packets = append(packets, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, errors.DatabaseError("Failed to list packets", err)
	}
	return packets, total, nil
}

// packetWhere builds the WHERE clause for a filter using ? placeholders
func packetWhere(filter packet.Filter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if filter.Threat != "" {
		conds = append(conds, "threat_type LIKE ?")
		args = append(args, "%"+filter.Threat+"%")
	}
	if filter.Severity != "" {
		conds = append(conds, "severity = ?")
		args = append(args, filter.Severity)
	}
	if filter.Source != "" {
		conds = append(conds, "source_agent LIKE ?")
		args = append(args, "%"+filter.Source+"%")
	}
	if filter.Target != "" {
		conds = append(conds, "target_agent LIKE ?")
		args = append(args, "%"+filter.Target+"%")
	}
	if filter.Layer != "" {
		conds = append(conds, "protocol_layer = ?")
		args = append(args, filter.Layer)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *PacketRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM packets").Scan(&count); err != nil {
		return 0, errors.DatabaseError("Failed to count packets", err)
	}
	return count, nil
}

func (r *PacketRepository) CountBySeverity(ctx context.Context) (map[string]int, error) {
	return countBySeverity(ctx, r.db, "packets")
}

func (r *PacketRepository) LatestTimestamp(ctx context.Context) (*time.Time, error) {
	var latest sql.NullString
	if err := r.db.QueryRowContext(ctx, "SELECT MAX(timestamp) FROM packets").Scan(&latest); err != nil {
		return nil, errors.DatabaseError("Failed to read latest packet time", err)
	}
	if !latest.Valid || latest.String == "" {
		return nil, nil
	}

	t := parseTime(latest.String)
	return &t, nil
}
