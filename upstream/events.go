package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/ADAPortal/models"
)

// EventsClient reads the national events/locations data provider. It
// carries its own static token, separate from the content API.
type EventsClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewEventsClient(baseURL, token string) *EventsClient {
	return &EventsClient{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// eventsPage covers the provider's paginated shape. Flat arrays are
// handled by decoding into the results slice directly.
type eventsPage struct {
	Results []models.NationalEvent `json:"results"`
	Next    *string                `json:"next"`
}

// FetchEvents retrieves the full national plan, following pagination
// when present and deduplicating by event ID.
func (c *EventsClient) FetchEvents(ctx context.Context) ([]models.NationalEvent, error) {
	next := c.baseURL + "/events/"
	seen := make(map[int]bool)
	var events []models.NationalEvent

	for next != "" {
		raw, err := c.fetch(ctx, next)
		if err != nil {
			return nil, err
		}

		page, err := decodeEvents(raw)
		if err != nil {
			return nil, err
		}
		for _, event := range page.Results {
			if seen[event.Event_ID] {
				continue
			}
			seen[event.Event_ID] = true
			events = append(events, event)
		}

		if page.Next == nil {
			break
		}
		next = *page.Next
	}

	return events, nil
}

// rawLocation is the provider's wire shape before cleanup.
type rawLocation struct {
	ID                         int      `json:"id"`
	Type                       string   `json:"type"`
	Name                       string   `json:"name"`
	Latitude                   *float64 `json:"latitude"`
	Longitude                  *float64 `json:"longitude"`
	Address                    *string  `json:"address"`
	Leader_Name                string   `json:"leader_name"`
	Leader_Phone               string   `json:"leader_phone"`
	Official_Government_Province string `json:"official_government_province"`
}

// FetchLocations queries the provider's location search and normalizes
// the result: composite IDs, nulled placeholder fields, title-cased
// provinces, deduplicated entries.
func (c *EventsClient) FetchLocations(ctx context.Context, query string) ([]models.Location, error) {
	endpoint := c.baseURL + "/public-locations/search/?q=" + url.QueryEscape(query)
	raw, err := c.fetch(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var rawLocations []rawLocation
	if err := json.Unmarshal(raw, &rawLocations); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(rawLocations))
	locations := make([]models.Location, 0, len(rawLocations))
	for _, item := range rawLocations {
		id := fmt.Sprintf("%s-%d", item.Type, item.ID)
		if seen[id] {
			continue
		}
		seen[id] = true
		locations = append(locations, cleanLocation(id, item))
	}
	return locations, nil
}

func (c *EventsClient) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Token "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("events provider returned %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func decodeEvents(raw []byte) (eventsPage, error) {
	trimmed := strings.TrimLeftFunc(string(raw), unicode.IsSpace)
	if strings.HasPrefix(trimmed, "[") {
		var flat []models.NationalEvent
		if err := json.Unmarshal(raw, &flat); err != nil {
			return eventsPage{}, err
		}
		return eventsPage{Results: flat}, nil
	}

	var page eventsPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return eventsPage{}, err
	}
	return page, nil
}

func cleanLocation(id string, item rawLocation) models.Location {
	loc := models.Location{
		Location_ID: id,
		Type:        item.Type,
		Name:        item.Name,
		Latitude:    item.Latitude,
		Longitude:   item.Longitude,
	}

	if item.Address != nil && strings.TrimSpace(*item.Address) != "" {
		loc.Address = item.Address
	}
	if item.Leader_Name != "" && item.Leader_Name != "N/A" {
		name := item.Leader_Name
		loc.Leader_Name = &name
	}
	if item.Leader_Phone != "" {
		phone := item.Leader_Phone
		loc.Leader_Phone = &phone
	}
	if province := formatProvince(item.Official_Government_Province); province != "" {
		loc.Province = &province
	}
	return loc
}

// formatProvince turns the provider's underscored value into a display
// name, e.g. "maputo_city" -> "Maputo City".
func formatProvince(raw string) string {
	if raw == "" {
		return ""
	}
	words := strings.Split(raw, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
