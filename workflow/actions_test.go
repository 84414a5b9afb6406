package workflow

import (
	"testing"

	"github.com/ADAPortal/models"
	"github.com/stretchr/testify/assert"
)

func manager() models.CurrentUser {
	return models.CurrentUser{User_ID: 1, Username: "admin", Is_Superuser: true, Department: "HQ"}
}

func regular(id int) models.CurrentUser {
	return models.CurrentUser{User_ID: id, Username: "editor", Department: "Maputo"}
}

func TestTarget(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		action   Action
		expected string
		ok       bool
	}{
		{"approve pending", models.UpdateStatusPending, ActionApprove, models.UpdateStatusLive, true},
		{"deny pending", models.UpdateStatusPending, ActionDeny, models.UpdateStatusReview, true},
		{"deny live", models.UpdateStatusLive, ActionDeny, models.UpdateStatusReview, true},
		{"deny inactive", models.UpdateStatusInactive, ActionDeny, models.UpdateStatusReview, true},
		{"activate review", models.UpdateStatusReview, ActionActivate, models.UpdateStatusLive, true},
		{"activate inactive", models.UpdateStatusInactive, ActionActivate, models.UpdateStatusLive, true},
		{"deactivate live", models.UpdateStatusLive, ActionDeactivate, models.UpdateStatusInactive, true},
		{"soft delete pending", models.UpdateStatusPending, ActionDelete, models.UpdateStatusDeleted, true},
		{"soft delete review", models.UpdateStatusReview, ActionDelete, models.UpdateStatusDeleted, true},
		{"restore deleted", models.UpdateStatusDeleted, ActionRestore, models.UpdateStatusInactive, true},
		{"approve live is invalid", models.UpdateStatusLive, ActionApprove, "", false},
		{"approve review is invalid", models.UpdateStatusReview, ActionApprove, "", false},
		{"deny review is invalid", models.UpdateStatusReview, ActionDeny, "", false},
		{"delete live is invalid", models.UpdateStatusLive, ActionDelete, "", false},
		{"restore live is invalid", models.UpdateStatusLive, ActionRestore, "", false},
		{"unknown status", "bogus", ActionApprove, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, ok := Target(tt.status, tt.action)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, target)
		})
	}
}

func TestIsManager(t *testing.T) {
	assert.True(t, IsManager(models.CurrentUser{Is_Superuser: true}))
	assert.True(t, IsManager(models.CurrentUser{Is_Staff: true}))
	assert.True(t, IsManager(models.CurrentUser{Department: "HQ"}))
	assert.False(t, IsManager(models.CurrentUser{Department: "Beira"}))
	assert.False(t, IsManager(models.CurrentUser{}))
}

func TestAllowed(t *testing.T) {
	update := models.Update{Update_ID: 7, Created_By: 42, Status: models.UpdateStatusPending}

	// only managers can approve
	assert.True(t, Allowed(update, manager(), ActionApprove))
	assert.False(t, Allowed(update, regular(42), ActionApprove))

	// soft delete is allowed for the owner even without manager rights
	assert.True(t, Allowed(update, regular(42), ActionDelete))
	assert.True(t, Allowed(update, manager(), ActionDelete))
	assert.False(t, Allowed(update, regular(99), ActionDelete))

	// invalid transitions stay forbidden regardless of role
	live := models.Update{Update_ID: 8, Created_By: 42, Status: models.UpdateStatusLive}
	assert.False(t, Allowed(live, regular(42), ActionDelete))
	assert.False(t, Allowed(live, manager(), ActionApprove))
}

func TestAvailableActions(t *testing.T) {
	tests := []struct {
		name     string
		update   models.Update
		user     models.CurrentUser
		expected []Action
	}{
		{
			name:     "manager on pending update",
			update:   models.Update{Created_By: 42, Status: models.UpdateStatusPending},
			user:     manager(),
			expected: []Action{ActionApprove, ActionDeny, ActionDelete},
		},
		{
			name:     "owner on own pending update",
			update:   models.Update{Created_By: 42, Status: models.UpdateStatusPending},
			user:     regular(42),
			expected: []Action{ActionDelete},
		},
		{
			name:     "non owner on pending update",
			update:   models.Update{Created_By: 42, Status: models.UpdateStatusPending},
			user:     regular(99),
			expected: nil,
		},
		{
			name:     "manager on live update",
			update:   models.Update{Created_By: 42, Status: models.UpdateStatusLive},
			user:     manager(),
			expected: []Action{ActionDeny, ActionDeactivate},
		},
		{
			name:     "manager on review update",
			update:   models.Update{Created_By: 42, Status: models.UpdateStatusReview},
			user:     manager(),
			expected: []Action{ActionActivate, ActionDelete},
		},
		{
			name:     "owner on own review update",
			update:   models.Update{Created_By: 42, Status: models.UpdateStatusReview},
			user:     regular(42),
			expected: []Action{ActionDelete},
		},
		{
			name:     "manager on inactive update",
			update:   models.Update{Created_By: 42, Status: models.UpdateStatusInactive},
			user:     manager(),
			expected: []Action{ActionDeny, ActionActivate},
		},
		{
			name:     "manager on deleted update",
			update:   models.Update{Created_By: 42, Status: models.UpdateStatusDeleted},
			user:     manager(),
			expected: []Action{ActionRestore},
		},
		{
			name:     "owner on own deleted update cannot restore",
			update:   models.Update{Created_By: 42, Status: models.UpdateStatusDeleted},
			user:     regular(42),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AvailableActions(tt.update, tt.user))
		})
	}
}

// A denied update edited by its owner goes back through the normal
// approval cycle rather than straight to live.
func TestDenyEditApproveCycle(t *testing.T) {
	status := models.UpdateStatusLive

	next, ok := Target(status, ActionDeny)
	assert.True(t, ok)
	assert.Equal(t, models.UpdateStatusReview, next)

	// resubmission resets the update to pending, not a workflow action
	status = models.UpdateStatusPending

	next, ok = Target(status, ActionApprove)
	assert.True(t, ok)
	assert.Equal(t, models.UpdateStatusLive, next)
}

func TestStatusCounts(t *testing.T) {
	updates := []models.Update{
		{Status: models.UpdateStatusLive},
		{Status: models.UpdateStatusLive},
		{Status: models.UpdateStatusPending},
		{Status: models.UpdateStatusReview},
		{Status: models.UpdateStatusDeleted},
	}

	counts := StatusCounts(updates)
	assert.Equal(t, 2, counts[models.UpdateStatusLive])
	assert.Equal(t, 1, counts[models.UpdateStatusPending])
	assert.Equal(t, 1, counts[models.UpdateStatusReview])
	assert.Equal(t, 1, counts[models.UpdateStatusDeleted])
	assert.Equal(t, 0, counts[models.UpdateStatusInactive])
}
