package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ADAPortal/models"
)

// PublicPrayerWall lists approved requests only. The upstream already
// filters, but an unapproved entry must never slip onto the wall, so
// the gate is applied again here.
func PublicPrayerWall(c *gin.Context) {
	prayers, err := API.ListPrayers(c.Request.Context(), "", false)
	Metrics.RecordUpstream("prayers", err)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load prayer wall"})
		return
	}

	approved := make([]models.PrayerRequest, 0, len(prayers))
	for _, p := range prayers {
		if p.Is_Approved {
			approved = append(approved, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{"prayers": approved})
}

// SubmitPrayer accepts a public prayer request. Content is sanitized
// and the request lands unapproved, invisible until a moderator
// approves it.
func SubmitPrayer(c *gin.Context) {
	var payload models.PrayerCreate

	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload.Author = strings.TrimSpace(sanitizer.Sanitize(payload.Author))
	payload.Content = strings.TrimSpace(sanitizer.Sanitize(payload.Content))

	if payload.Author == "" || payload.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "author and content are required"})
		return
	}
	if !models.ValidPrayerCategory(payload.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid prayer category"})
		return
	}

	prayer, err := API.CreatePrayer(c.Request.Context(), payload)
	Metrics.RecordUpstream("prayers", err)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Prayer request submitted. It will appear once approved.",
		"prayer":  prayer,
	})
}

// LikePrayer increments the like counter. The caller applies the
// bump optimistically and reverts if this fails.
func LikePrayer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("prayer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer ID"})
		return
	}

	result, err := API.LikePrayer(c.Request.Context(), id)
	Metrics.RecordUpstream("prayers", err)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "liked",
		"likes":    result.Likes,
		"is_viral": result.Is_Viral,
	})
}

// AdminListPrayers shows the full wall, unapproved included.
func AdminListPrayers(c *gin.Context) {
	session := currentSession(c)

	prayers, err := API.ListPrayers(c.Request.Context(), session.Upstream_Token, true)
	Metrics.RecordUpstream("prayers", err)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"prayers": prayers})
}

func ApprovePrayer(c *gin.Context) {
	session := currentSession(c)

	id, err := strconv.Atoi(c.Param("prayer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer ID"})
		return
	}

	if err := API.ApprovePrayer(c.Request.Context(), session.Upstream_Token, id); err != nil {
		Metrics.RecordUpstream("prayers", err)
		respondUpstreamError(c, err)
		return
	}
	Metrics.RecordUpstream("prayers", nil)

	c.JSON(http.StatusOK, gin.H{"message": "Prayer approved."})
}

func DeletePrayer(c *gin.Context) {
	session := currentSession(c)

	id, err := strconv.Atoi(c.Param("prayer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer ID"})
		return
	}

	if err := API.DeletePrayer(c.Request.Context(), session.Upstream_Token, id); err != nil {
		Metrics.RecordUpstream("prayers", err)
		respondUpstreamError(c, err)
		return
	}
	Metrics.RecordUpstream("prayers", nil)

	c.JSON(http.StatusOK, gin.H{"message": "Prayer deleted."})
}
