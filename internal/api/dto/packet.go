package dto

import (
	"net/http"
	"strconv"

	"github.com/attager/a2a-threat-center/internal/domain/packet"
)

// PacketQuery holds the filter and paging parameters of GET /api/packets
type PacketQuery struct {
	Threat   string `query:"threat" validate:"max=100"`
	Severity string `query:"severity" validate:"omitempty,severity"`
	Source   string `query:"source" validate:"max=100"`
	Target   string `query:"target" validate:"max=100"`
	Layer    string `query:"layer" validate:"omitempty,layer"`
	Page     int    `query:"page" validate:"gte=0"`
	PageSize int    `query:"page_size" validate:"gte=0,lte=100"`
}

// ParsePacketQuery reads a PacketQuery from the request query string.
// Non-numeric page values are treated as absent.
func ParsePacketQuery(r *http.Request) PacketQuery {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))
	return PacketQuery{
		Threat:   q.Get("threat"),
		Severity: q.Get("severity"),
		Source:   q.Get("source"),
		Target:   q.Get("target"),
		Layer:    q.Get("layer"),
		Page:     page,
		PageSize: pageSize,
	}
}

// Filter converts the query into a repository filter
func (q PacketQuery) Filter() packet.Filter {
	return packet.Filter{
		Threat:   q.Threat,
		Severity: q.Severity,
		Source:   q.Source,
		Target:   q.Target,
		Layer:    q.Layer,
	}
}

// PacketListResponse is the body of GET /api/packets and GET /api/packets/recent
type PacketListResponse struct {
	Packets    []*packet.Packet `json:"packets"`
	Page       int              `json:"page,omitempty"`
	PageSize   int              `json:"page_size,omitempty"`
	TotalItems int64            `json:"total_items,omitempty"`
	TotalPages int              `json:"total_pages,omitempty"`
}
