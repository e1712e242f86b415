package api

import (
	"context"
	"net/http"

	"taskhub/internal/entity"
)

// ProjectInput is the create/update payload for a project.
type ProjectInput struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Technology     string   `json:"technology"`
	EstimatedHours int      `json:"estimatedHours"`
	StartDate      string   `json:"startDate"`
	CompletionDate string   `json:"completionDate"`
	ManagerEmail   string   `json:"manager_email"`
	Developers     []string `json:"developers"`
}

func (c *Client) ListProjects(ctx context.Context) ([]entity.Project, error) {
	var projects []entity.Project
	if err := c.get(ctx, "/projects/", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) CreateProject(ctx context.Context, in ProjectInput) error {
	if in.Developers == nil {
		in.Developers = []string{}
	}
	return c.sendJSON(ctx, http.MethodPost, "/project/", in, nil)
}

func (c *Client) UpdateProject(ctx context.Context, in ProjectInput) error {
	if in.Developers == nil {
		in.Developers = []string{}
	}
	return c.sendJSON(ctx, http.MethodPut, "/project/", in, nil)
}

func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	return c.do(ctx, http.MethodDelete, "/projects/"+projectID, nil, "", nil)
}

// ManagerProjects lists the projects owned by a manager.
func (c *Client) ManagerProjects(ctx context.Context, managerID string) ([]entity.Project, error) {
	var projects []entity.Project
	if err := c.get(ctx, "/managers/"+managerID+"/projects/", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// DeveloperProjects lists the projects a developer is assigned to.
func (c *Client) DeveloperProjects(ctx context.Context, developerID string) ([]entity.Project, error) {
	var projects []entity.Project
	if err := c.get(ctx, "/developer/"+developerID+"/", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) ProjectDevelopers(ctx context.Context, projectID string) ([]entity.User, error) {
	var developers []entity.User
	if err := c.get(ctx, "/projects/"+projectID+"/developers", &developers); err != nil {
		return nil, err
	}
	return developers, nil
}

func (c *Client) AssignDeveloper(ctx context.Context, projectID, developerID string) error {
	path := "/admin/projects/" + projectID + "/assign-developers/" + developerID
	return c.do(ctx, http.MethodPut, path, nil, "", nil)
}

func (c *Client) DeassignDeveloper(ctx context.Context, projectID, developerID string) error {
	path := "/admin/projects/" + projectID + "/deassign-developers/" + developerID
	return c.do(ctx, http.MethodDelete, path, nil, "", nil)
}
