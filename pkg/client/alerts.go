package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// AlertService handles generated alert API calls
type AlertService struct {
	client *Client
}

// Recent retrieves the newest generated alerts. A limit of zero uses the
// server default.
func (s *AlertService) Recent(ctx context.Context, limit int) ([]Alert, error) {
	path := "/api/alerts/recent"
	if limit > 0 {
		path += "?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	}

	var resp struct {
		Alerts []Alert `json:"alerts"`
	}
	if err := s.client.doRequest(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Alerts, nil
}

// Get retrieves a single alert by ID
func (s *AlertService) Get(ctx context.Context, id int64) (*Alert, error) {
	var alert Alert
	if err := s.client.doRequest(ctx, fmt.Sprintf("/api/alerts/%d", id), &alert); err != nil {
		return nil, err
	}
	return &alert, nil
}
