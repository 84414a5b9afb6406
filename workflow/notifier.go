package workflow

import "github.com/ADAPortal/models"

// AckStore is the session-scoped acknowledgment set behind the
// returned-for-review popups. Implemented by the sessions package.
type AckStore interface {
	NotifiedIDs(sessionID string) (map[int]bool, error)
	MarkNotified(sessionID string, updateIDs ...int) error
}

// ReviewPopups returns the caller's own review-status updates whose
// IDs are not yet acknowledged in this session. Acknowledged IDs never
// re-trigger; new review IDs always surface, even after a dismissal,
// because dismissing only acknowledges the IDs visible at the time.
func ReviewPopups(updates []models.Update, user models.CurrentUser, seen map[int]bool) []models.Update {
	var popups []models.Update
	for _, u := range updates {
		if u.Status != models.UpdateStatusReview {
			continue
		}
		if !IsOwner(u, user) {
			continue
		}
		if seen[u.Update_ID] {
			continue
		}
		popups = append(popups, u)
	}
	return popups
}

// ReviewIDs lists the IDs of the user's updates currently in review,
// acknowledged or not. DismissAll marks exactly this set.
func ReviewIDs(updates []models.Update, user models.CurrentUser) []int {
	var ids []int
	for _, u := range updates {
		if u.Status == models.UpdateStatusReview && IsOwner(u, user) {
			ids = append(ids, u.Update_ID)
		}
	}
	return ids
}
