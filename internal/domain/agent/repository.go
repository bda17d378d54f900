package agent

import "context"

// Repository defines the interface for agent data access
type Repository interface {
	// List returns the full roster ordered by id
	List(ctx context.Context) ([]*Agent, error)

	// Count returns the roster size
	Count(ctx context.Context) (int64, error)

	// ListProfiles returns profile attributes grouped by agent id
	ListProfiles(ctx context.Context) (map[int64][]Profile, error)

	// ListCommunications returns links joined with agent names, most recent first
	ListCommunications(ctx context.Context) ([]*Communication, error)

	// CountCommunications returns the number of links
	CountCommunications(ctx context.Context) (int64, error)
}
