package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/ADAPortal/models"
)

func (c *Client) ListUpdates(ctx context.Context, token string) ([]models.Update, error) {
	var updates []models.Update
	if err := c.do(ctx, http.MethodGet, "/updates/", token, nil, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

func (c *Client) GetUpdate(ctx context.Context, token string, id int) (models.Update, error) {
	var update models.Update
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/updates/%d/", id), token, nil, &update)
	return update, err
}

func (c *Client) CreateUpdate(ctx context.Context, token string, payload models.UpdateCreate) (models.Update, error) {
	var update models.Update
	err := c.do(ctx, http.MethodPost, "/updates/", token, payload, &update)
	return update, err
}

// CreateUpdateWithImage posts multipart when an image file accompanies
// the fields.
func (c *Client) CreateUpdateWithImage(ctx context.Context, token string, fields map[string]string, filename string, image io.Reader) (models.Update, error) {
	var update models.Update
	err := c.doMultipart(ctx, http.MethodPost, "/updates/", token, fields, "image", filename, image, &update)
	return update, err
}

func (c *Client) EditUpdate(ctx context.Context, token string, id int, payload models.UpdateEdit) (models.Update, error) {
	var update models.Update
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/updates/%d/", id), token, payload, &update)
	return update, err
}

func (c *Client) EditUpdateWithImage(ctx context.Context, token string, id int, fields map[string]string, filename string, image io.Reader) (models.Update, error) {
	var update models.Update
	err := c.doMultipart(ctx, http.MethodPatch, fmt.Sprintf("/updates/%d/", id), token, fields, "image", filename, image, &update)
	return update, err
}

// UpdateAction invokes a moderation action endpoint. Deny carries its
// reason in the payload; the rest post an empty body.
func (c *Client) UpdateAction(ctx context.Context, token string, id int, action string, payload interface{}) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/updates/%d/%s/", id, action), token, payload, nil)
}
