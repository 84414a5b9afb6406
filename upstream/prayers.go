package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ADAPortal/models"
)

// ListPrayers fetches the public wall by default; admin listing passes
// the unfiltered flag and sees unapproved requests too.
func (c *Client) ListPrayers(ctx context.Context, token string, all bool) ([]models.PrayerRequest, error) {
	path := "/prayers/"
	if all {
		path += "?admin=true"
	}
	var prayers []models.PrayerRequest
	if err := c.do(ctx, http.MethodGet, path, token, nil, &prayers); err != nil {
		return nil, err
	}
	return prayers, nil
}

func (c *Client) CreatePrayer(ctx context.Context, payload models.PrayerCreate) (models.PrayerRequest, error) {
	var prayer models.PrayerRequest
	err := c.do(ctx, http.MethodPost, "/prayers/", "", payload, &prayer)
	return prayer, err
}

func (c *Client) DeletePrayer(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/prayers/%d/", id), token, nil, nil)
}

func (c *Client) ApprovePrayer(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/prayers/%d/approve/", id), token, nil, nil)
}

// LikeResult echoes the server-side counters after a like.
type LikeResult struct {
	Likes    int  `json:"likes"`
	Is_Viral bool `json:"is_viral"`
}

func (c *Client) LikePrayer(ctx context.Context, id int) (LikeResult, error) {
	var result LikeResult
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/prayers/%d/like/", id), "", nil, &result)
	return result, err
}
