package api

import (
	"context"
	"net/http"

	"taskhub/internal/entity"
)

func (c *Client) CreateModule(ctx context.Context, in entity.ModuleInput) error {
	return c.sendJSON(ctx, http.MethodPost, "/modules", in, nil)
}

func (c *Client) UpdateModule(ctx context.Context, moduleID string, in entity.ModuleInput) error {
	return c.sendJSON(ctx, http.MethodPut, "/modules/"+moduleID, in, nil)
}

func (c *Client) DeleteModule(ctx context.Context, moduleID string) error {
	return c.do(ctx, http.MethodDelete, "/modules/"+moduleID, nil, "", nil)
}

func (c *Client) GetModule(ctx context.Context, moduleID string) (entity.Module, error) {
	var module entity.Module
	if err := c.get(ctx, "/modules/"+moduleID, &module); err != nil {
		return entity.Module{}, err
	}
	return module, nil
}

// ModulesStatuses fetches a project's modules together with the full status
// list in one call. There is no single all-projects module endpoint; callers
// that need every module iterate projects and merge.
func (c *Client) ModulesStatuses(ctx context.Context, projectID string) (entity.ModulesStatuses, error) {
	var combined entity.ModulesStatuses
	if err := c.get(ctx, "/status/"+projectID+"/modules-statuses/", &combined); err != nil {
		return entity.ModulesStatuses{}, err
	}
	return combined, nil
}
