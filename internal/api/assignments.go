package api

import (
	"context"
	"net/http"

	"taskhub/internal/entity"
)

// AssignTask creates one developer⇄task association. Batch assignment is a
// caller-side loop over this call, one request per developer.
func (c *Client) AssignTask(ctx context.Context, userID, taskID string) error {
	body := map[string]string{"userId": userID, "taskId": taskID}
	return c.sendJSON(ctx, http.MethodPost, "/user-tasks/assign", body, nil)
}

// TaskUsers lists the users assigned to a task. The backend answers 404 when
// nobody is assigned; callers treat that as an empty list.
func (c *Client) TaskUsers(ctx context.Context, taskID string) ([]entity.TaskUser, error) {
	var users []entity.TaskUser
	if err := c.get(ctx, "/user-tasks/task/"+taskID, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) DeassignTask(ctx context.Context, userID, taskID string) error {
	return c.do(ctx, http.MethodDelete, "/user-tasks/"+userID+"/"+taskID, nil, "", nil)
}
