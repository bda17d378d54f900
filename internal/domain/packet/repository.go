package packet

import (
	"context"
	"time"
)

// Repository defines the interface for packet data access
type Repository interface {
	// ListWithPagination retrieves packets newest first with filters and pagination
	ListWithPagination(ctx context.Context, filter Filter, limit, offset int) ([]*Packet, int64, error)

	// Count returns the number of packets
	Count(ctx context.Context) (int64, error)

	// CountBySeverity counts packets by severity
	CountBySeverity(ctx context.Context) (map[string]int, error)

	// LatestTimestamp returns the newest packet time, or nil if there are none
	LatestTimestamp(ctx context.Context) (*time.Time, error)
}
