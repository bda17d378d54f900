package services

import (
	"context"

	"github.com/attager/a2a-threat-center/internal/domain/packet"
	"github.com/attager/a2a-threat-center/internal/pkg/logger"
)

// PacketService implements packet.Service
type PacketService struct {
	repo   packet.Repository
	logger *logger.Logger
}

// NewPacketService creates a new packet service
func NewPacketService(repo packet.Repository, log *logger.Logger) packet.Service {
	return &PacketService{
		repo:   repo,
		logger: log,
	}
}

// List retrieves packets with filters and pagination
func (s *PacketService) List(ctx context.Context, filter packet.Filter, limit, offset int) ([]*packet.Packet, int64, error) {
	return s.repo.ListWithPagination(ctx, filter, limit, offset)
}

// Recent returns the newest packets
func (s *PacketService) Recent(ctx context.Context, limit int) ([]*packet.Packet, error) {
	packets, _, err := s.repo.ListWithPagination(ctx, packet.Filter{}, limit, 0)
	return packets, err
}
