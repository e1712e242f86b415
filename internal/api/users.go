package api

import (
	"context"
	"net/http"
	"net/url"

	"taskhub/internal/entity"
)

// LoginResult is the backend's answer to a successful login.
type LoginResult struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	Role    string `json:"role"`
	Name    string `json:"name"`
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var res LoginResult
	body := map[string]string{"email": email, "password": password}
	if err := c.sendJSON(ctx, http.MethodPost, "/login", body, &res); err != nil {
		return LoginResult{}, err
	}
	return res, nil
}

func (c *Client) Register(ctx context.Context, firstname, role, email, password string) error {
	body := map[string]string{
		"firstname": firstname,
		"role":      role,
		"email":     email,
		"password":  password,
	}
	return c.sendJSON(ctx, http.MethodPost, "/register/", body, nil)
}

func (c *Client) ListUsers(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := c.get(ctx, "/users/", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes a user by email. The backend authorizes the call by the
// admin_id header, not the session.
func (c *Client) DeleteUser(ctx context.Context, adminID, email string) error {
	path := "/delete_user?email=" + url.QueryEscape(email)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("admin_id", adminID)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	return nil
}

func (c *Client) ListManagers(ctx context.Context) ([]entity.User, error) {
	var managers []entity.User
	if err := c.get(ctx, "/admin/managers", &managers); err != nil {
		return nil, err
	}
	return managers, nil
}

func (c *Client) ListDevelopers(ctx context.Context) ([]entity.User, error) {
	var developers []entity.User
	if err := c.get(ctx, "/admin/developers", &developers); err != nil {
		return nil, err
	}
	return developers, nil
}
