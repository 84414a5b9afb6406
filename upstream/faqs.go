package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ADAPortal/models"
)

func (c *Client) ListFAQs(ctx context.Context, token string) ([]models.FAQ, error) {
	var faqs []models.FAQ
	if err := c.do(ctx, http.MethodGet, "/faqs/", token, nil, &faqs); err != nil {
		return nil, err
	}
	return faqs, nil
}

func (c *Client) GetFAQ(ctx context.Context, token string, id int) (models.FAQ, error) {
	var faq models.FAQ
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/faqs/%d/", id), token, nil, &faq)
	return faq, err
}

func (c *Client) CreateFAQ(ctx context.Context, token string, payload models.FAQWrite) (models.FAQ, error) {
	var faq models.FAQ
	err := c.do(ctx, http.MethodPost, "/faqs/", token, payload, &faq)
	return faq, err
}

func (c *Client) UpdateFAQ(ctx context.Context, token string, id int, payload models.FAQWrite) (models.FAQ, error) {
	var faq models.FAQ
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/faqs/%d/", id), token, payload, &faq)
	return faq, err
}

func (c *Client) DeleteFAQ(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/faqs/%d/", id), token, nil, nil)
}
