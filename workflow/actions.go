package workflow

import "github.com/ADAPortal/models"

// Action is a moderation action on an update.
type Action string

const (
	ActionApprove    Action = "approve"
	ActionDeny       Action = "deny"
	ActionActivate   Action = "activate"
	ActionDeactivate Action = "deactivate"
	ActionDelete     Action = "delete_soft"
	ActionRestore    Action = "restore"
)

// actionOrder fixes the order actions are offered in.
var actionOrder = []Action{
	ActionApprove,
	ActionDeny,
	ActionActivate,
	ActionDeactivate,
	ActionDelete,
	ActionRestore,
}

// transitions is the full moderation table. Restore lands on inactive;
// a manager takes restored content live with an explicit activate.
var transitions = map[string]map[Action]string{
	models.UpdateStatusPending: {
		ActionApprove: models.UpdateStatusLive,
		ActionDeny:    models.UpdateStatusReview,
		ActionDelete:  models.UpdateStatusDeleted,
	},
	models.UpdateStatusLive: {
		ActionDeny:       models.UpdateStatusReview,
		ActionDeactivate: models.UpdateStatusInactive,
	},
	models.UpdateStatusReview: {
		ActionActivate: models.UpdateStatusLive,
		ActionDelete:   models.UpdateStatusDeleted,
	},
	models.UpdateStatusInactive: {
		ActionActivate: models.UpdateStatusLive,
		ActionDeny:     models.UpdateStatusReview,
	},
	models.UpdateStatusDeleted: {
		ActionRestore: models.UpdateStatusInactive,
	},
}

// Target returns the status an action moves an update to, if the
// transition exists at all.
func Target(status string, action Action) (string, bool) {
	row, ok := transitions[status]
	if !ok {
		return "", false
	}
	target, ok := row[action]
	return target, ok
}

// IsManager reports whether a user holds moderation privileges:
// superuser, staff, or HQ department.
func IsManager(user models.CurrentUser) bool {
	return user.Is_Superuser || user.Is_Staff || user.Department == "HQ"
}

// IsOwner reports whether the user originally created the update.
func IsOwner(update models.Update, user models.CurrentUser) bool {
	return update.Created_By == user.User_ID
}

// Allowed reports whether the user may perform the action on the
// update in its current status. Soft delete is open to the owner;
// everything else is manager-only.
func Allowed(update models.Update, user models.CurrentUser, action Action) bool {
	if _, ok := Target(update.Status, action); !ok {
		return false
	}
	if action == ActionDelete {
		return IsManager(user) || IsOwner(update, user)
	}
	return IsManager(user)
}

// AvailableActions returns the action set the user may perform on the
// update, in a stable order. This drives the admin action menu.
func AvailableActions(update models.Update, user models.CurrentUser) []Action {
	var actions []Action
	for _, action := range actionOrder {
		if Allowed(update, user, action) {
			actions = append(actions, action)
		}
	}
	return actions
}

// StatusCounts tallies updates per status for the admin tab headers.
func StatusCounts(updates []models.Update) map[string]int {
	counts := make(map[string]int, len(transitions))
	for _, u := range updates {
		counts[u.Status]++
	}
	return counts
}
