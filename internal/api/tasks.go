package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"taskhub/internal/entity"
)

// TaskCreate is the multipart payload for task creation. Image and ImageName
// are optional; when Image is nil no image part is sent.
type TaskCreate struct {
	Title        string
	Priority     string
	Description  string
	TotalMinutes int
	ModuleID     string
	ProjectID    string
	StatusID     string
	Image        io.Reader
	ImageName    string
}

// CreateTask submits a new task as a multipart form so the optional UI image
// can ride along.
func (c *Client) CreateTask(ctx context.Context, in TaskCreate) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":        in.Title,
		"priority":     in.Priority,
		"description":  in.Description,
		"totalMinutes": strconv.Itoa(in.TotalMinutes),
		"module_id":    in.ModuleID,
		"project_id":   in.ProjectID,
		"status_id":    in.StatusID,
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return fmt.Errorf("write field %s: %w", name, err)
		}
	}

	if in.Image != nil {
		part, err := mw.CreateFormFile("image", in.ImageName)
		if err != nil {
			return fmt.Errorf("create image part: %w", err)
		}
		if _, err := io.Copy(part, in.Image); err != nil {
			return fmt.Errorf("copy image: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/tasks/", &buf, mw.FormDataContentType(), nil)
}

// UpdateTask sends a JSON update. The image cannot be replaced this way.
func (c *Client) UpdateTask(ctx context.Context, taskID string, in entity.TaskInput) error {
	return c.sendJSON(ctx, http.MethodPut, "/tasks/"+taskID, in, nil)
}

func (c *Client) ProjectTasks(ctx context.Context, projectID string) ([]entity.Task, error) {
	var tasks []entity.Task
	if err := c.get(ctx, "/tasks/"+projectID, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// DeveloperTasks lists only the tasks assigned to one developer within a
// project.
func (c *Client) DeveloperTasks(ctx context.Context, userID, projectID string) ([]entity.Task, error) {
	var tasks []entity.Task
	if err := c.get(ctx, "/tasks/developer/"+userID+"/"+projectID, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateTaskStatus hits the dedicated status-update endpoint; the rest of the
// task is untouched.
func (c *Client) UpdateTaskStatus(ctx context.Context, taskID, statusID string) error {
	return c.do(ctx, http.MethodPut, "/tasks/"+taskID+"/status/"+statusID, nil, "", nil)
}
