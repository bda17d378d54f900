package client

import "context"

// Overview retrieves the dashboard counters
func (c *Client) Overview(ctx context.Context) (*Overview, error) {
	var o Overview
	if err := c.doRequest(ctx, "/api/overview", &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// Branding retrieves the operations center header metadata
func (c *Client) Branding(ctx context.Context) (*Branding, error) {
	var b Branding
	if err := c.doRequest(ctx, "/api/branding", &b); err != nil {
		return nil, err
	}
	return &b, nil
}
