package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ADAPortal/models"
)

func (c *Client) ListHistory(ctx context.Context, token string) ([]models.HistoryEvent, error) {
	var events []models.HistoryEvent
	if err := c.do(ctx, http.MethodGet, "/history/", token, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) GetHistoryEvent(ctx context.Context, token string, id int) (models.HistoryEvent, error) {
	var event models.HistoryEvent
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/history/%d/", id), token, nil, &event)
	return event, err
}

func (c *Client) CreateHistoryEvent(ctx context.Context, token string, payload models.HistoryEventWrite) (models.HistoryEvent, error) {
	var event models.HistoryEvent
	err := c.do(ctx, http.MethodPost, "/history/", token, payload, &event)
	return event, err
}

func (c *Client) UpdateHistoryEvent(ctx context.Context, token string, id int, payload models.HistoryEventWrite) (models.HistoryEvent, error) {
	var event models.HistoryEvent
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/history/%d/", id), token, payload, &event)
	return event, err
}

func (c *Client) DeleteHistoryEvent(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/history/%d/", id), token, nil, nil)
}
