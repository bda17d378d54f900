package alert

import "context"

// Repository defines the interface for alert data access.
// Alerts are append-only: there is no update or delete.
type Repository interface {
	// Create persists an alert and returns the store-assigned id
	Create(ctx context.Context, alert *Alert) (int64, error)

	// GetByID retrieves an alert by ID
	GetByID(ctx context.Context, id int64) (*Alert, error)

	// ListRecent returns the newest alerts first
	ListRecent(ctx context.Context, limit int) ([]*Alert, error)

	// Count returns the number of persisted alerts
	Count(ctx context.Context) (int64, error)

	// CountBySeverity counts alerts by severity
	CountBySeverity(ctx context.Context) (map[string]int, error)
}
