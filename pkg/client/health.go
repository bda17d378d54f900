package client

import "context"

// Health checks the liveness of the API and the generator state
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var resp struct {
		Data HealthResponse `json:"data"`
	}
	if err := c.doRequest(ctx, "/healthz", &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Ping is a simple connectivity test
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Health(ctx)
	return err
}
