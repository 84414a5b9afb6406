package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ADAPortal/models"
)

// User administration is manager-only; the router mounts these behind
// CheckManager.

func AdminListUsers(c *gin.Context) {
	session := currentSession(c)

	users, err := API.ListUsers(c.Request.Context(), session.Upstream_Token)
	Metrics.RecordUpstream("users", err)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

func AdminGetUser(c *gin.Context) {
	session := currentSession(c)

	id, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := API.GetUser(c.Request.Context(), session.Upstream_Token, id)
	Metrics.RecordUpstream("users", err)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func AdminCreateUser(c *gin.Context) {
	session := currentSession(c)

	var payload models.UserWrite
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if payload.Username == nil || *payload.Username == "" || payload.Password == nil || *payload.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	user, err := API.CreateUser(c.Request.Context(), session.Upstream_Token, payload)
	Metrics.RecordUpstream("users", err)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User created successfully.", "user": user})
}

func AdminPatchUser(c *gin.Context) {
	session := currentSession(c)

	id, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var payload models.UserWrite
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := API.PatchUser(c.Request.Context(), session.Upstream_Token, id, payload)
	Metrics.RecordUpstream("users", err)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully.", "user": user})
}

func AdminDeleteUser(c *gin.Context) {
	user := currentUser(c)
	session := currentSession(c)

	id, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if id == user.User_ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot delete your own account"})
		return
	}

	if err := API.DeleteUser(c.Request.Context(), session.Upstream_Token, id); err != nil {
		Metrics.RecordUpstream("users", err)
		respondUpstreamError(c, err)
		return
	}
	Metrics.RecordUpstream("users", nil)

	c.JSON(http.StatusOK, gin.H{"message": "User deleted."})
}
