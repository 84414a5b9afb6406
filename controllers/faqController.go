package controllers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ADAPortal/models"
)

// PublicFAQs lists questions sorted by their display order, lowest
// first, newest as the tiebreak.
func PublicFAQs(c *gin.Context) {
	faqs, err := API.ListFAQs(c.Request.Context(), "")
	Metrics.RecordUpstream("faqs", err)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load FAQs"})
		return
	}

	sort.SliceStable(faqs, func(i, j int) bool {
		if faqs[i].Order != faqs[j].Order {
			return faqs[i].Order < faqs[j].Order
		}
		return faqs[i].Created_At.After(faqs[j].Created_At)
	})

	c.JSON(http.StatusOK, gin.H{"faqs": faqs})
}

func AdminListFAQs(c *gin.Context) {
	session := currentSession(c)

	faqs, err := API.ListFAQs(c.Request.Context(), session.Upstream_Token)
	Metrics.RecordUpstream("faqs", err)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"faqs": faqs})
}

func AdminGetFAQ(c *gin.Context) {
	session := currentSession(c)

	id, err := strconv.Atoi(c.Param("faq_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid FAQ ID"})
		return
	}

	faq, err := API.GetFAQ(c.Request.Context(), session.Upstream_Token, id)
	Metrics.RecordUpstream("faqs", err)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"faq": faq})
}

func AdminCreateFAQ(c *gin.Context) {
	session := currentSession(c)

	var payload models.FAQWrite
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if payload.Question == "" || payload.Answer == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question and answer are required"})
		return
	}

	faq, err := API.CreateFAQ(c.Request.Context(), session.Upstream_Token, payload)
	Metrics.RecordUpstream("faqs", err)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "FAQ created successfully.", "faq": faq})
}

func AdminUpdateFAQ(c *gin.Context) {
	session := currentSession(c)

	id, err := strconv.Atoi(c.Param("faq_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid FAQ ID"})
		return
	}

	var payload models.FAQWrite
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	faq, err := API.UpdateFAQ(c.Request.Context(), session.Upstream_Token, id, payload)
	Metrics.RecordUpstream("faqs", err)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "FAQ updated successfully.", "faq": faq})
}

func AdminDeleteFAQ(c *gin.Context) {
	session := currentSession(c)

	id, err := strconv.Atoi(c.Param("faq_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid FAQ ID"})
		return
	}

	if err := API.DeleteFAQ(c.Request.Context(), session.Upstream_Token, id); err != nil {
		Metrics.RecordUpstream("faqs", err)
		respondUpstreamError(c, err)
		return
	}
	Metrics.RecordUpstream("faqs", nil)

	c.JSON(http.StatusOK, gin.H{"message": "FAQ deleted."})
}
