package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ADAPortal/models"
)

func TestAdminDeleteUserBlocksSelfDelete(t *testing.T) {
	var deleted bool
	mux := http.NewServeMux()
	mux.HandleFunc("/users/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deleted = true
		}
		w.WriteHeader(http.StatusOK)
	})

	_, cleanup := SetupController(t, mux)
	defer cleanup()

	manager := MockManager()
	c, w := SetupTestContext()
	SetAuthenticatedUser(c, manager, true)
	c.Params = []gin.Param{{Key: "user_id", Value: "1"}}

	AdminDeleteUser(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot delete your own account")
	assert.False(t, deleted, "self-delete must never reach upstream")
}

func TestAdminDeleteUser(t *testing.T) {
	var deletedPath string
	mux := http.NewServeMux()
	mux.HandleFunc("/users/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deletedPath = r.URL.Path
		}
		w.WriteHeader(http.StatusOK)
	})

	_, cleanup := SetupController(t, mux)
	defer cleanup()

	c, w := SetupTestContext()
	SetAuthenticatedUser(c, MockManager(), true)
	c.Params = []gin.Param{{Key: "user_id", Value: "9"}}

	AdminDeleteUser(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/users/9/", deletedPath)
}

func TestAdminCreateUserValidation(t *testing.T) {
	_, cleanup := SetupController(t, http.NotFoundHandler())
	defer cleanup()

	tests := []struct {
		name string
		body string
	}{
		{"missing username", `{"password":"secret"}`},
		{"missing password", `{"username":"new-editor"}`},
		{"empty username", `{"username":"","password":"secret"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := SetupTestContext()
			SetAuthenticatedUser(c, MockManager(), true)
			c.Request = newJSONRequest(http.MethodPost, "/admin/users", tt.body)

			AdminCreateUser(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "username and password are required")
		})
	}
}

func TestAdminCreateUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/", func(w http.ResponseWriter, r *http.Request) {
		var payload models.UserWrite
		json.NewDecoder(r.Body).Decode(&payload)
		json.NewEncoder(w).Encode(models.User{User_ID: 9, Username: *payload.Username})
	})

	_, cleanup := SetupController(t, mux)
	defer cleanup()

	c, w := SetupTestContext()
	SetAuthenticatedUser(c, MockManager(), true)
	c.Request = newJSONRequest(http.MethodPost, "/admin/users",
		`{"username":"new-editor","password":"secret","department":"Youth Ministry"}`)

	AdminCreateUser(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		User models.User `json:"user"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "new-editor", body.User.Username)
}
