package models

import "time"

// Update status values (closed enum on the content API).
const (
	UpdateStatusPending  = "pending"
	UpdateStatusLive     = "live"
	UpdateStatusReview   = "review"
	UpdateStatusInactive = "inactive"
	UpdateStatusDeleted  = "deleted"
)

// Update category values.
const (
	UpdateCategoryVideo        = "video"
	UpdateCategoryAnnouncement = "announcement"
	UpdateCategoryNewsletter   = "newsletter"
	UpdateCategoryGallery      = "gallery"
	UpdateCategoryApostle      = "apostle"
)

var UpdateCategories = []string{
	UpdateCategoryVideo,
	UpdateCategoryAnnouncement,
	UpdateCategoryNewsletter,
	UpdateCategoryGallery,
	UpdateCategoryApostle,
}

// Teams match the department list on user profiles.
var UpdateTeams = []string{
	"HQ",
	"Youth Ministry",
	"BOT",
	"GOQ",
	"Men of Integrity",
	"Go-Quickly",
	"Child Evangelism",
	"Apostle's Update Team",
	"FABM Team",
}

type Update struct {
	Update_ID        int       `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Category         string    `json:"category"`
	Image            *string   `json:"image"`
	Created_By       int       `json:"created_by"`
	Team             string    `json:"team"`
	Status           string    `json:"status"`
	Rejection_Reason *string   `json:"rejection_reason"`
	Created_At       time.Time `json:"created_at"`
}

// Reason returns the rejection reason or an empty string.
func (u Update) Reason() string {
	if u.Rejection_Reason == nil {
		return ""
	}
	return *u.Rejection_Reason
}

type UpdateCreate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// UpdateEdit carries partial fields for PATCH-style edits. Status and
// rejection reason are set by the gateway on resubmission, never taken
// from the request body.
type UpdateEdit struct {
	Title            *string `json:"title,omitempty"`
	Description      *string `json:"description,omitempty"`
	Category         *string `json:"category,omitempty"`
	Status           *string `json:"status,omitempty"`
	Rejection_Reason *string `json:"rejection_reason,omitempty"`
}

type UpdateDeny struct {
	Reason string `json:"reason"`
}

func ValidUpdateCategory(category string) bool {
	for _, c := range UpdateCategories {
		if c == category {
			return true
		}
	}
	return false
}
