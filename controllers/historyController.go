package controllers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ADAPortal/models"
)

// PublicHistory renders the timeline, newest year first.
func PublicHistory(c *gin.Context) {
	events, err := API.ListHistory(c.Request.Context(), "")
	Metrics.RecordUpstream("history", err)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load history"})
		return
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Year > events[j].Year
	})

	c.JSON(http.StatusOK, gin.H{"history": events})
}

func AdminListHistory(c *gin.Context) {
	session := currentSession(c)

	events, err := API.ListHistory(c.Request.Context(), session.Upstream_Token)
	Metrics.RecordUpstream("history", err)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": events})
}

func AdminGetHistoryEvent(c *gin.Context) {
	session := currentSession(c)

	id, err := strconv.Atoi(c.Param("history_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid history event ID"})
		return
	}

	event, err := API.GetHistoryEvent(c.Request.Context(), session.Upstream_Token, id)
	Metrics.RecordUpstream("history", err)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

func AdminCreateHistoryEvent(c *gin.Context) {
	session := currentSession(c)

	var payload models.HistoryEventWrite
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if payload.Title == "" || payload.Year == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and year are required"})
		return
	}

	event, err := API.CreateHistoryEvent(c.Request.Context(), session.Upstream_Token, payload)
	Metrics.RecordUpstream("history", err)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "History event created successfully.", "event": event})
}

func AdminUpdateHistoryEvent(c *gin.Context) {
	session := currentSession(c)

	id, err := strconv.Atoi(c.Param("history_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid history event ID"})
		return
	}

	var payload models.HistoryEventWrite
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := API.UpdateHistoryEvent(c.Request.Context(), session.Upstream_Token, id, payload)
	Metrics.RecordUpstream("history", err)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "History event updated successfully.", "event": event})
}

func AdminDeleteHistoryEvent(c *gin.Context) {
	session := currentSession(c)

	id, err := strconv.Atoi(c.Param("history_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid history event ID"})
		return
	}

	if err := API.DeleteHistoryEvent(c.Request.Context(), session.Upstream_Token, id); err != nil {
		Metrics.RecordUpstream("history", err)
		respondUpstreamError(c, err)
		return
	}
	Metrics.RecordUpstream("history", nil)

	c.JSON(http.StatusOK, gin.H{"message": "History event deleted."})
}
