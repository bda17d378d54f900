package client

import (
	"context"
	"net/url"
	"strconv"
)

// PacketService handles packet history API calls
type PacketService struct {
	client *Client
}

// PacketListOptions contains filters for listing packets
type PacketListOptions struct {
	Threat   string // substring of the threat type
	Severity string // low, medium, high
	Source   string // substring of the source agent
	Target   string // substring of the target agent
	Layer    string // exact protocol layer, e.g. "Layer 3"
	Page     int
	PageSize int
}

func (o *PacketListOptions) values() url.Values {
	query := url.Values{}
	if o == nil {
		return query
	}
	set := func(key, value string) {
		if value != "" {
			query.Set(key, value)
		}
	}
	set("threat", o.Threat)
	set("severity", o.Severity)
	set("source", o.Source)
	set("target", o.Target)
	set("layer", o.Layer)
	if o.Page > 0 {
		query.Set("page", strconv.Itoa(o.Page))
	}
	if o.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(o.PageSize))
	}
	return query
}

// List retrieves a filtered page of packets, newest first
func (s *PacketService) List(ctx context.Context, opts *PacketListOptions) (*PacketPage, error) {
	path := "/api/packets"
	if query := opts.values(); len(query) > 0 {
		path += "?" + query.Encode()
	}

	var page PacketPage
	if err := s.client.doRequest(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Recent retrieves the newest packets
func (s *PacketService) Recent(ctx context.Context) ([]Packet, error) {
	var page PacketPage
	if err := s.client.doRequest(ctx, "/api/packets/recent", &page); err != nil {
		return nil, err
	}
	return page.Packets, nil
}
