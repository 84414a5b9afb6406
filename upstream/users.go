package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ADAPortal/models"
)

// LoginResult is the token-issuance response. The token never reaches
// the browser; it lives on the session row.
type LoginResult struct {
	Token   string `json:"token"`
	User_ID int    `json:"user_id"`
	Email   string `json:"email"`
}

func (c *Client) Login(ctx context.Context, credentials models.Login) (LoginResult, error) {
	var result LoginResult
	err := c.do(ctx, http.MethodPost, "/login/", "", credentials, &result)
	return result, err
}

// Me validates a token and returns the caller's identity and role
// flags. This is the one current-user fetch behind every admin
// request.
func (c *Client) Me(ctx context.Context, token string) (models.CurrentUser, error) {
	var user models.CurrentUser
	err := c.do(ctx, http.MethodGet, "/me/", token, nil, &user)
	return user, err
}

func (c *Client) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users/", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, token string, id int) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d/", id), token, nil, &user)
	return user, err
}

func (c *Client) CreateUser(ctx context.Context, token string, payload models.UserWrite) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodPost, "/users/", token, payload, &user)
	return user, err
}

func (c *Client) PatchUser(ctx context.Context, token string, id int, payload models.UserWrite) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/users/%d/", id), token, payload, &user)
	return user, err
}

func (c *Client) DeleteUser(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d/", id), token, nil, nil)
}
