package controllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/ADAPortal/models"
	"github.com/ADAPortal/upstream"
)

// UserLogin proxies credentials to the upstream token endpoint, opens
// a session around the issued token and hands the browser a portal
// JWT. The upstream token itself never leaves the server.
func UserLogin(c *gin.Context) {
	var credentials models.Login

	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := API.Login(c.Request.Context(), credentials)
	if err != nil {
		if errors.Is(err, upstream.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		var badRequest *upstream.BadRequestError
		if errors.As(err, &badRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username or password"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Login service unavailable"})
		return
	}

	user, err := API.Me(c.Request.Context(), result.Token)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load user profile"})
		return
	}

	session, err := Sessions.Create(user.User_ID, user.Username, result.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	generateToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": session.Session_ID,
		"exp": time.Now().Add(time.Hour * 24).Unix(),
	})

	token, err := generateToken.SignedString([]byte(os.Getenv("SECRET")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User logged in successfully.",
		"token":   token,
		"user":    user,
	})
}

// UserLogout destroys the session; the acknowledged-notification set
// goes with it, so a fresh login starts with a clean slate.
func UserLogout(c *gin.Context) {
	session := currentSession(c)

	if err := Sessions.Delete(session.Session_ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out."})
}

func GetMe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": currentUser(c)})
}

// SessionActivity is an explicit keep-alive ping; CheckAuth already
// stamped the activity, so there is nothing left to do.
func SessionActivity(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Session active."})
}
