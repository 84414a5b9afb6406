package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckManager rejects non-manager callers on moderation routes.
func CheckManager(c *gin.Context) {
	isManager := c.MustGet("manager").(bool)

	if !isManager {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Manager role required"})
		return
	}
}
