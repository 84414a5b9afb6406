package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// GeoIPClient resolves a caller's country from their IP, used to
// pre-select the phone country code on public forms.
type GeoIPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewGeoIPClient(baseURL string) *GeoIPClient {
	return &GeoIPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

type GeoIPResult struct {
	Country_Code string `json:"country_code"`
	Country_Name string `json:"country_name"`
}

func (c *GeoIPClient) Lookup(ctx context.Context, ip string) (GeoIPResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s/json/", c.baseURL, ip), nil)
	if err != nil {
		return GeoIPResult{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return GeoIPResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return GeoIPResult{}, fmt.Errorf("geoip lookup returned %d", resp.StatusCode)
	}

	var result GeoIPResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return GeoIPResult{}, err
	}
	return result, nil
}
