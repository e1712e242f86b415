package api

import (
	"context"

	"taskhub/internal/entity"
)

func (c *Client) ListStatuses(ctx context.Context) ([]entity.Status, error) {
	var statuses []entity.Status
	if err := c.get(ctx, "/status/status", &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

func (c *Client) GetStatus(ctx context.Context, statusID string) (entity.Status, error) {
	var status entity.Status
	if err := c.get(ctx, "/status/status/"+statusID, &status); err != nil {
		return entity.Status{}, err
	}
	return status, nil
}
