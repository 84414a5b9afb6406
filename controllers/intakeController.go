package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ADAPortal/models"
	"github.com/ADAPortal/services"
)

// SubmitCounselling takes a public counselling intake and forwards it
// to the counselling team by email.
func SubmitCounselling(c *gin.Context) {
	var intake models.CounsellingIntake

	if err := c.ShouldBindJSON(&intake); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	intake.Name = strings.TrimSpace(sanitizer.Sanitize(intake.Name))
	intake.Message = strings.TrimSpace(sanitizer.Sanitize(intake.Message))

	if intake.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if intake.Email == "" && intake.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "an email or phone number is required"})
		return
	}
	if !models.ValidCounsellingTopic(intake.Topic) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid counselling topic"})
		return
	}

	email := services.GetEmailService()
	if email == nil {
		log.Println("counselling intake received but email service is not configured")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Counselling intake is temporarily unavailable"})
		return
	}

	if err := email.SendCounsellingIntake(intake); err != nil {
		log.Printf("failed to forward counselling intake: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to submit your request. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Your request has been received. Someone will reach out soon."})
}

// SubmitDecision records a receive-Jesus decision and notifies the
// follow-up team.
func SubmitDecision(c *gin.Context) {
	var decision models.Decision

	if err := c.ShouldBindJSON(&decision); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	decision.Name = strings.TrimSpace(sanitizer.Sanitize(decision.Name))

	if decision.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	email := services.GetEmailService()
	if email == nil {
		log.Println("decision received but email service is not configured")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Submission is temporarily unavailable"})
		return
	}

	if err := email.SendDecisionNotification(decision); err != nil {
		log.Printf("failed to forward decision: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to submit. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the family! Someone will be in touch."})
}
