package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ADAPortal/models"
)

func providerAPI(events []models.NationalEvent, locations string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/events/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(events)
	})
	mux.HandleFunc("/public-locations/search/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(locations))
	})
	return mux
}

func TestPublicEventsSortedAndSearched(t *testing.T) {
	events := []models.NationalEvent{
		{Event_ID: 1, Title: "Leadership Summit", Category: "training", Start_Date: "2026-06-01"},
		{Event_ID: 2, Title: "Youth Conference", Category: "youth", Start_Date: "2026-03-15"},
		{Event_ID: 3, Title: "Prayer Meeting", Category: "conferences", Start_Date: "2026-01-10"},
	}

	_, cleanup := SetupController(t, providerAPI(events, "[]"))
	defer cleanup()

	c, w := SetupTestContext()
	PublicEvents(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Events []models.NationalEvent `json:"events"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Events, 3)
	assert.Equal(t, "Prayer Meeting", body.Events[0].Title, "events sort by start date")

	// search filters on title and category
	c, w = SetupTestContext()
	c.Request = httptest.NewRequest(http.MethodGet, "/events?q=youth", nil)
	PublicEvents(c)

	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Events, 1)
	assert.Equal(t, "Youth Conference", body.Events[0].Title)
}

func TestPublicEventsTranslatesForPortuguese(t *testing.T) {
	events := []models.NationalEvent{
		{Event_ID: 1, Title: "Youth Conference", Start_Date: "2026-03-15"},
	}

	_, cleanup := SetupController(t, providerAPI(events, "[]"))
	defer cleanup()

	c, w := SetupTestContext()
	c.Request = httptest.NewRequest(http.MethodGet, "/events?lang=pt", nil)
	PublicEvents(c)

	var body struct {
		Events []models.NationalEvent `json:"events"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Conferência de Jovens", body.Events[0].Title)
}

const locationsJSON = `[
	{"id":1,"type":"assembly","name":"Central","latitude":-25.96,"longitude":32.57,
	 "official_government_province":"maputo_city"},
	{"id":2,"type":"assembly","name":"Beira Assembly","latitude":-19.84,"longitude":34.83,
	 "official_government_province":"sofala"},
	{"id":3,"type":"assembly","name":"No Coordinates"}
]`

func TestPublicLocationsNearestFirst(t *testing.T) {
	_, cleanup := SetupController(t, providerAPI(nil, locationsJSON))
	defer cleanup()

	c, w := SetupTestContext()
	c.Request = httptest.NewRequest(http.MethodGet, "/locations?lat=-25.9&lon=32.6", nil)
	PublicLocations(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Locations []models.Location `json:"locations"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Locations, 3)
	assert.Equal(t, "Central", body.Locations[0].Name)
	assert.NotNil(t, body.Locations[0].Distance_Km)
	assert.Equal(t, "No Coordinates", body.Locations[2].Name, "entries without coordinates sort last")
}

func TestPublicLocationsInvalidCoordinates(t *testing.T) {
	_, cleanup := SetupController(t, providerAPI(nil, locationsJSON))
	defer cleanup()

	c, w := SetupTestContext()
	c.Request = httptest.NewRequest(http.MethodGet, "/locations?lat=abc&lon=32.6", nil)
	PublicLocations(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublicLocationsProvinceFilter(t *testing.T) {
	_, cleanup := SetupController(t, providerAPI(nil, locationsJSON))
	defer cleanup()

	c, w := SetupTestContext()
	c.Request = httptest.NewRequest(http.MethodGet, "/locations?province=sofala", nil)
	PublicLocations(c)

	var body struct {
		Locations []models.Location `json:"locations"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Locations, 1)
	assert.Equal(t, "Beira Assembly", body.Locations[0].Name)
}

func TestGroupedLocations(t *testing.T) {
	_, cleanup := SetupController(t, providerAPI(nil, locationsJSON))
	defer cleanup()

	c, w := SetupTestContext()
	GroupedLocations(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Provinces map[string][]models.Location `json:"provinces"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Provinces["Maputo City"], 1)
	assert.Len(t, body.Provinces["Sofala"], 1)
	assert.Len(t, body.Provinces["Unknown"], 1)
}

func TestGeoIPCountryDegradesGracefully(t *testing.T) {
	_, cleanup := SetupController(t, http.NotFoundHandler())
	defer cleanup()

	// GeoIP is nil in the test wiring; the endpoint must still answer
	c, w := SetupTestContext()
	GeoIPCountry(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "", body["country_code"])
}

func TestTranslations(t *testing.T) {
	_, cleanup := SetupController(t, http.NotFoundHandler())
	defer cleanup()

	c, w := SetupTestContext()
	c.Params = []gin.Param{{Key: "lang", Value: "pt"}}
	Translations(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Language string            `json:"language"`
		Strings  map[string]string `json:"strings"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "pt", body.Language)
	assert.Equal(t, "Início", body.Strings["nav.home"])

	c, w = SetupTestContext()
	c.Params = []gin.Param{{Key: "lang", Value: "fr"}}
	Translations(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
