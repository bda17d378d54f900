package alert

import "context"

// Service defines the interface for alert business logic
type Service interface {
	// Create validates and persists a new alert, setting its ID
	Create(ctx context.Context, alert *Alert) (int64, error)

	// GetByID retrieves an alert by ID
	GetByID(ctx context.Context, id int64) (*Alert, error)

	// ListRecent returns the newest alerts first
	ListRecent(ctx context.Context, limit int) ([]*Alert, error)

	// GetSummary gets alert counts by severity
	GetSummary(ctx context.Context) (map[string]int, error)
}
