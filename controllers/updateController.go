package controllers

import (
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ADAPortal/models"
	"github.com/ADAPortal/workflow"
)

// adminUpdate decorates an update with the action menu for the caller.
type adminUpdate struct {
	models.Update
	Available_Actions []workflow.Action `json:"available_actions"`
}

// AdminListUpdates serves the moderation dashboard: the freshly
// reloaded update list, per-status tab counts, and the caller's
// unacknowledged returned-for-review popups. Popups are marked
// acknowledged the moment they are handed out, so re-running the check
// on the next poll never duplicates them.
func AdminListUpdates(c *gin.Context) {
	user := currentUser(c)
	session := currentSession(c)

	updates, err := Updates.Reload(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to refresh updates"})
		return
	}

	seen, err := Sessions.NotifiedIDs(session.Session_ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	popups := workflow.ReviewPopups(updates, user, seen)
	if len(popups) > 0 {
		ids := make([]int, len(popups))
		for i, p := range popups {
			ids[i] = p.Update_ID
		}
		if err := Sessions.MarkNotified(session.Session_ID, ids...); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		Metrics.RecordPopups(len(popups))
	}

	decorated := make([]adminUpdate, len(updates))
	for i, u := range updates {
		decorated[i] = adminUpdate{Update: u, Available_Actions: workflow.AvailableActions(u, user)}
	}

	c.JSON(http.StatusOK, gin.H{
		"updates": decorated,
		"counts":  workflow.StatusCounts(updates),
		"popups":  popups,
	})
}

func AdminGetUpdate(c *gin.Context) {
	user := currentUser(c)
	session := currentSession(c)

	id, err := strconv.Atoi(c.Param("update_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update ID"})
		return
	}

	update, err := API.GetUpdate(c.Request.Context(), session.Upstream_Token, id)
	Metrics.RecordUpstream("updates", err)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"update":            update,
		"available_actions": workflow.AvailableActions(update, user),
	})
}

// AdminCreateUpdate accepts JSON, or multipart when an image file is
// attached, and forwards either shape upstream. New updates enter the
// workflow as pending.
func AdminCreateUpdate(c *gin.Context) {
	session := currentSession(c)

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		fields, filename, image, err := readUpdateForm(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if fields["title"] == "" || !models.ValidUpdateCategory(fields["category"]) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title and a valid category are required"})
			return
		}

		update, err := API.CreateUpdateWithImage(c.Request.Context(), session.Upstream_Token, fields, filename, image)
		Metrics.RecordUpstream("updates", err)
		if err != nil {
			respondUpstreamError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Update created successfully.", "update": update})
		return
	}

	var payload models.UpdateCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if payload.Title == "" || !models.ValidUpdateCategory(payload.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and a valid category are required"})
		return
	}

	update, err := API.CreateUpdate(c.Request.Context(), session.Upstream_Token, payload)
	Metrics.RecordUpstream("updates", err)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Update created successfully.", "update": update})
}

// AdminEditUpdate saves edits. When the owner saves an update that was
// returned for review, the save doubles as a resubmission: status goes
// back to pending and the rejection reason is cleared, in the same
// upstream call.
func AdminEditUpdate(c *gin.Context) {
	user := currentUser(c)
	session := currentSession(c)

	id, err := strconv.Atoi(c.Param("update_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update ID"})
		return
	}

	update, err := API.GetUpdate(c.Request.Context(), session.Upstream_Token, id)
	Metrics.RecordUpstream("updates", err)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	if !workflow.IsOwner(update, user) && !workflow.IsManager(user) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the owner or a manager can edit this update"})
		return
	}

	resubmit := update.Status == models.UpdateStatusReview && workflow.IsOwner(update, user)

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		fields, filename, image, err := readUpdateForm(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if resubmit {
			fields["status"] = models.UpdateStatusPending
			fields["rejection_reason"] = ""
		}

		saved, err := API.EditUpdateWithImage(c.Request.Context(), session.Upstream_Token, id, fields, filename, image)
		Metrics.RecordUpstream("updates", err)
		if err != nil {
			respondUpstreamError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Update saved successfully.", "update": saved})
		return
	}

	var payload models.UpdateEdit
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Status and reason are workflow-owned, never caller-supplied.
	payload.Status = nil
	payload.Rejection_Reason = nil
	if resubmit {
		pending := models.UpdateStatusPending
		cleared := ""
		payload.Status = &pending
		payload.Rejection_Reason = &cleared
	}

	saved, err := API.EditUpdate(c.Request.Context(), session.Upstream_Token, id, payload)
	Metrics.RecordUpstream("updates", err)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Update saved successfully.", "update": saved})
}

// UpdateModerationAction performs a workflow action. The transition
// table and role rules are checked here before anything is proxied;
// a failed upstream call leaves every piece of local state untouched.
func UpdateModerationAction(c *gin.Context) {
	user := currentUser(c)
	session := currentSession(c)

	id, err := strconv.Atoi(c.Param("update_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update ID"})
		return
	}

	action := workflow.Action(c.Param("action"))

	update, err := API.GetUpdate(c.Request.Context(), session.Upstream_Token, id)
	Metrics.RecordUpstream("updates", err)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	if !workflow.Allowed(update, user, action) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Action not permitted for this update"})
		return
	}

	var payload interface{}
	if action == workflow.ActionDeny {
		var deny models.UpdateDeny
		if err := c.ShouldBindJSON(&deny); err != nil || strings.TrimSpace(deny.Reason) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A rejection reason is required"})
			return
		}
		payload = deny
	}

	if err := API.UpdateAction(c.Request.Context(), session.Upstream_Token, id, string(action), payload); err != nil {
		Metrics.RecordUpstream("updates", err)
		respondUpstreamError(c, err)
		return
	}
	Metrics.RecordUpstream("updates", nil)
	Metrics.RecordTransition(string(action))

	// Denying your own update must not come back as a popup later in
	// this session.
	if action == workflow.ActionDeny && workflow.IsOwner(update, user) {
		if err := Sessions.MarkNotified(session.Session_ID, id); err != nil {
			log.Printf("failed to suppress self-deny notification for update %d: %v", id, err)
		}
	}

	if _, err := Updates.Reload(c.Request.Context()); err != nil {
		log.Printf("post-action refresh failed: %v", err)
	}

	target, _ := workflow.Target(update.Status, action)
	c.JSON(http.StatusOK, gin.H{
		"message": "Action applied successfully.",
		"status":  target,
	})
}

// DismissReviewNotifications acknowledges every review popup the
// caller could currently see. New review IDs re-arm on their own.
func DismissReviewNotifications(c *gin.Context) {
	user := currentUser(c)
	session := currentSession(c)

	updates, _ := Updates.Snapshot()
	ids := workflow.ReviewIDs(updates, user)

	if err := Sessions.MarkNotified(session.Session_ID, ids...); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notifications dismissed.", "dismissed": len(ids)})
}

// PublicUpdates lists live content only.
func PublicUpdates(c *gin.Context) {
	updates, err := API.ListUpdates(c.Request.Context(), "")
	Metrics.RecordUpstream("updates", err)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load updates"})
		return
	}

	live := make([]models.Update, 0, len(updates))
	for _, u := range updates {
		if u.Status == models.UpdateStatusLive {
			live = append(live, u)
		}
	}

	c.JSON(http.StatusOK, gin.H{"updates": live})
}

// readUpdateForm pulls the text fields and optional image out of a
// multipart save.
func readUpdateForm(c *gin.Context) (map[string]string, string, io.Reader, error) {
	fields := map[string]string{}
	for _, key := range []string{"title", "description", "category"} {
		if value := c.PostForm(key); value != "" {
			fields[key] = value
		}
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return fields, "", nil, nil
		}
		return nil, "", nil, err
	}
	return fields, header.Filename, file, nil
}
