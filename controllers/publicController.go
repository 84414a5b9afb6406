package controllers

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ADAPortal/geo"
	"github.com/ADAPortal/i18n"
	"github.com/ADAPortal/models"
)

// PublicEvents serves the national events plan. With lang=pt, titles,
// descriptions and locations go through the church-terms translator.
func PublicEvents(c *gin.Context) {
	events, err := Events.FetchEvents(c.Request.Context())
	Metrics.RecordUpstream("events", err)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load events"})
		return
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start_Date < events[j].Start_Date
	})

	if search := strings.ToLower(strings.TrimSpace(c.Query("q"))); search != "" {
		filtered := events[:0]
		for _, e := range events {
			haystack := strings.ToLower(e.Title + " " + e.Category + " " + e.Description)
			if strings.Contains(haystack, search) {
				filtered = append(filtered, e)
			}
		}
		events = filtered
	}

	if lang := c.Query("lang"); lang == i18n.LangPT {
		for i := range events {
			events[i].Title = i18n.TranslateDynamic(events[i].Title, lang)
			events[i].Description = i18n.TranslateDynamic(events[i].Description, lang)
			events[i].Location = i18n.TranslateDynamic(events[i].Location, lang)
		}
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// PublicLocations serves the assembly directory. Optional filters:
// q (free text), province, and lat/lon for a nearest-first sort with
// per-entry distances.
func PublicLocations(c *gin.Context) {
	locations, err := Events.FetchLocations(c.Request.Context(), c.Query("q"))
	Metrics.RecordUpstream("locations", err)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load locations"})
		return
	}

	if province := strings.TrimSpace(c.Query("province")); province != "" {
		filtered := locations[:0]
		for _, loc := range locations {
			if loc.Province != nil && strings.EqualFold(*loc.Province, province) {
				filtered = append(filtered, loc)
			}
		}
		locations = filtered
	}

	latRaw, lonRaw := c.Query("lat"), c.Query("lon")
	if latRaw != "" && lonRaw != "" {
		lat, latErr := strconv.ParseFloat(latRaw, 64)
		lon, lonErr := strconv.ParseFloat(lonRaw, 64)
		if latErr != nil || lonErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
			return
		}
		geo.SortByDistance(locations, lat, lon)
	}

	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

// GroupedLocations returns the directory bucketed by province for the
// accordion view.
func GroupedLocations(c *gin.Context) {
	locations, err := Events.FetchLocations(c.Request.Context(), c.Query("q"))
	Metrics.RecordUpstream("locations", err)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load locations"})
		return
	}

	grouped := make(map[string][]models.Location)
	for _, loc := range locations {
		province := "Unknown"
		if loc.Province != nil {
			province = *loc.Province
		}
		grouped[province] = append(grouped[province], loc)
	}

	c.JSON(http.StatusOK, gin.H{"provinces": grouped})
}

// GeoIPCountry resolves the caller's country for pre-selecting the
// phone code on public forms. Failures degrade to an empty result
// rather than an error; the form just shows its default.
func GeoIPCountry(c *gin.Context) {
	if GeoIP == nil {
		c.JSON(http.StatusOK, gin.H{"country_code": "", "country_name": ""})
		return
	}

	result, err := GeoIP.Lookup(c.Request.Context(), c.ClientIP())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"country_code": "", "country_name": ""})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"country_code": result.Country_Code,
		"country_name": result.Country_Name,
	})
}

// Translations hands the static string table for a language to the
// frontend in one shot.
func Translations(c *gin.Context) {
	lang := c.Param("lang")
	if lang != i18n.LangEN && lang != i18n.LangPT {
		c.JSON(http.StatusNotFound, gin.H{"error": "unsupported language"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"language": lang, "strings": i18n.Table(lang)})
}
