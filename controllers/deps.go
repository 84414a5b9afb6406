package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"

	"github.com/ADAPortal/metrics"
	"github.com/ADAPortal/models"
	"github.com/ADAPortal/sessions"
	"github.com/ADAPortal/upstream"
	"github.com/ADAPortal/workflow"
)

// Package-level collaborators, wired once from main. Tests swap these
// the same way the session store tests swap the goqu DB.
var (
	API      *upstream.Client
	Events   *upstream.EventsClient
	GeoIP    *upstream.GeoIPClient
	Sessions *sessions.Store
	Updates  *workflow.Reloader
	Metrics  *metrics.Collector

	sanitizer = bluemonday.StrictPolicy()
)

func Setup(api *upstream.Client, events *upstream.EventsClient, geoip *upstream.GeoIPClient, store *sessions.Store, reloader *workflow.Reloader, collector *metrics.Collector) {
	API = api
	Events = events
	GeoIP = geoip
	Sessions = store
	Updates = reloader
	Metrics = collector
}

func currentUser(c *gin.Context) models.CurrentUser {
	return c.MustGet("currentUser").(models.CurrentUser)
}

func currentSession(c *gin.Context) models.Session {
	return c.MustGet("session").(models.Session)
}

// respondUpstreamError applies the uniform error taxonomy: 401/403
// destroy the session, 404 sends the caller back to the list view,
// validation bodies surface inline, everything else is a generic
// upstream failure. Local state is never mutated on failure.
func respondUpstreamError(c *gin.Context, err error) {
	var badRequest *upstream.BadRequestError

	switch {
	case errors.Is(err, upstream.ErrUnauthorized):
		if v, ok := c.Get("session"); ok {
			_ = Sessions.Delete(v.(models.Session).Session_ID)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credential rejected", "reason": "credential"})
	case errors.Is(err, upstream.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource no longer exists"})
	case errors.As(err, &badRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": badRequest.Body})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream request failed"})
	}
}

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
