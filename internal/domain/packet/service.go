package packet

import "context"

// Service defines the interface for packet business logic
type Service interface {
	// List retrieves packets with filters and pagination
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Packet, int64, error)

	// Recent returns the newest packets
	Recent(ctx context.Context, limit int) ([]*Packet, error)
}
