package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/ADAPortal/sessions"
	"github.com/ADAPortal/upstream"
	"github.com/ADAPortal/workflow"
)

// CheckAuth guards every admin route. It unwraps the portal JWT, loads
// the session it names, enforces the inactivity window, and validates
// the wrapped upstream token with a current-user fetch. Role flags
// from that fetch gate all manager-only affordances downstream.
func CheckAuth(store *sessions.Store, api *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			return
		}

		authToken := strings.Split(authHeader, " ")
		if len(authToken) != 2 || authToken[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		token, err := jwt.Parse(authToken[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(os.Getenv("SECRET")), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		sessionID, _ := claims["sid"].(string)
		if sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		session, err := store.Touch(sessionID)
		switch {
		case errors.Is(err, sessions.ErrExpired):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired", "reason": "timeout"})
			return
		case errors.Is(err, sessions.ErrNotFound):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session not found"})
			return
		case err != nil:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session", "details": err.Error()})
			return
		}

		user, err := api.Me(c.Request.Context(), session.Upstream_Token)
		if err != nil {
			if errors.Is(err, upstream.ErrUnauthorized) {
				_ = store.Delete(session.Session_ID)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Credential rejected", "reason": "credential"})
				return
			}
			c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "Failed to validate session"})
			return
		}

		c.Set("currentUser", user)
		c.Set("session", session)
		c.Set("manager", workflow.IsManager(user))

		c.Next()
	}
}
