package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchEventsFlatArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events/", r.URL.Path)
		assert.Equal(t, "Token events-token", r.Header.Get("Authorization"))
		w.Write([]byte(`[{"id":1,"title":"Youth Conference"},{"id":2,"title":"Leadership Summit"}]`))
	}))
	defer server.Close()

	client := NewEventsClient(server.URL, "events-token")
	events, err := client.FetchEvents(context.Background())
	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "Youth Conference", events[0].Title)
}

func TestFetchEventsPaginated(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.RawQuery {
		case "page=2":
			// second page repeats event 2; the duplicate must be dropped
			w.Write([]byte(`{"results":[{"id":2,"title":"Repeat"},{"id":3,"title":"Third"}],"next":null}`))
		default:
			next := fmt.Sprintf("%s/events/?page=2", server.URL)
			body := map[string]interface{}{
				"results": []map[string]interface{}{
					{"id": 1, "title": "First"},
					{"id": 2, "title": "Second"},
				},
				"next": next,
			}
			json.NewEncoder(w).Encode(body)
		}
	}))
	defer server.Close()

	client := NewEventsClient(server.URL, "events-token")
	events, err := client.FetchEvents(context.Background())
	assert.NoError(t, err)
	assert.Len(t, events, 3)
	assert.Equal(t, "Second", events[1].Title, "first occurrence of a duplicated ID wins")
	assert.Equal(t, "Third", events[2].Title)
}

func TestFetchEventsProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewEventsClient(server.URL, "events-token")
	_, err := client.FetchEvents(context.Background())
	assert.Error(t, err)
}

func TestFetchLocations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/public-locations/search/", r.URL.Path)
		assert.Equal(t, "maputo", r.URL.Query().Get("q"))
		w.Write([]byte(`[
			{"id":1,"type":"assembly","name":"Central Assembly","latitude":-25.9,"longitude":32.5,
			 "address":"Av. 24 de Julho","leader_name":"Pastor Jose","leader_phone":"+258840000000",
			 "official_government_province":"maputo_city"},
			{"id":1,"type":"district","name":"Maputo District","address":"  ","leader_name":"N/A",
			 "official_government_province":""},
			{"id":1,"type":"assembly","name":"Duplicate of the first"}
		]`))
	}))
	defer server.Close()

	client := NewEventsClient(server.URL, "events-token")
	locations, err := client.FetchLocations(context.Background(), "maputo")
	assert.NoError(t, err)
	assert.Len(t, locations, 2, "same type+id must deduplicate")

	first := locations[0]
	assert.Equal(t, "assembly-1", first.Location_ID)
	assert.Equal(t, "Central Assembly", first.Name)
	assert.NotNil(t, first.Address)
	assert.NotNil(t, first.Leader_Name)
	assert.Equal(t, "Pastor Jose", *first.Leader_Name)
	assert.NotNil(t, first.Province)
	assert.Equal(t, "Maputo City", *first.Province)

	second := locations[1]
	assert.Equal(t, "district-1", second.Location_ID)
	assert.Nil(t, second.Address, "blank address becomes nil")
	assert.Nil(t, second.Leader_Name, "N/A leader becomes nil")
	assert.Nil(t, second.Province)
}

func TestFormatProvince(t *testing.T) {
	assert.Equal(t, "Maputo City", formatProvince("maputo_city"))
	assert.Equal(t, "Sofala", formatProvince("sofala"))
	assert.Equal(t, "", formatProvince(""))
	assert.Equal(t, "Cabo Delgado", formatProvince("cabo_delgado"))
}

func TestGeoIPLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/196.28.232.1/json/", r.URL.Path)
		w.Write([]byte(`{"country_code":"MZ","country_name":"Mozambique"}`))
	}))
	defer server.Close()

	client := NewGeoIPClient(server.URL)
	result, err := client.Lookup(context.Background(), "196.28.232.1")
	assert.NoError(t, err)
	assert.Equal(t, "MZ", result.Country_Code)
	assert.Equal(t, "Mozambique", result.Country_Name)
}
