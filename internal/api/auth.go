package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/globobank/frauddesk/internal/models"
)

// Login exchanges credentials for the authenticated user and a bearer
// token. Credentials are validated locally first so empty input never
// produces a network call. Failed attempts are retried once only when the
// transport itself failed.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ValidationError("email and password are required", nil)
	}

	data, err := c.write(ctx, http.MethodPost, "/auth/login", models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, "", err
	}

	var resp models.LoginResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, "", unknownError(err)
	}
	if resp.User == nil || resp.Token == "" {
		return nil, "", &Error{Code: CodeUnknown, Message: "malformed login response"}
	}
	return resp.User, resp.Token, nil
}

// Me fetches the authenticated user for the current token. It is never
// cached: the point of calling it is to observe the server's view.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	data, apiErr := c.attempt(ctx, http.MethodGet, "/auth/me", nil, nil)
	if apiErr != nil {
		return nil, apiErr
	}

	var resp struct {
		User *models.User `json:"user"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, unknownError(err)
	}
	if resp.User == nil {
		return nil, &Error{Code: CodeUnknown, Message: "malformed user response"}
	}
	return resp.User, nil
}
