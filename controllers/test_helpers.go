package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ADAPortal/metrics"
	"github.com/ADAPortal/models"
	"github.com/ADAPortal/sessions"
	"github.com/ADAPortal/upstream"
	"github.com/ADAPortal/workflow"
)

// SetupController wires the package collaborators around a fake
// upstream server and a sqlmock-backed session store. Tests swap the
// globals the way main does, then restore them on cleanup.
func SetupController(t *testing.T, upstreamHandler http.Handler) (sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}

	server := httptest.NewServer(upstreamHandler)
	api := upstream.NewClient(server.URL, "service-token")
	store := sessions.NewStore(goqu.New("postgres", db), 3*time.Minute)
	reloader := workflow.NewReloader(func(ctx context.Context) ([]models.Update, error) {
		return api.ListUpdates(ctx, "")
	})
	collector := metrics.NewCollector(prometheus.NewRegistry())

	oldAPI, oldEvents, oldGeoIP := API, Events, GeoIP
	oldSessions, oldUpdates, oldMetrics := Sessions, Updates, Metrics

	Setup(api, upstream.NewEventsClient(server.URL, "events-token"), nil, store, reloader, collector)

	cleanup := func() {
		server.Close()
		db.Close()
		Setup(oldAPI, oldEvents, oldGeoIP, oldSessions, oldUpdates, oldMetrics)
	}
	return mock, cleanup
}

// SetupTestContext creates a test Gin context with a response recorder
func SetupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

// SetAuthenticatedUser simulates what the CheckAuth middleware does
func SetAuthenticatedUser(c *gin.Context, user models.CurrentUser, isManager bool) {
	c.Set("currentUser", user)
	c.Set("session", models.Session{
		Session_ID:     "test-session",
		User_ID:        user.User_ID,
		Username:       user.Username,
		Upstream_Token: "upstream-token",
		Last_Activity:  time.Now().UTC(),
	})
	c.Set("manager", isManager)
}

func MockManager() models.CurrentUser {
	return models.CurrentUser{User_ID: 1, Username: "admin", Is_Superuser: true, Department: "HQ"}
}

func MockUser() models.CurrentUser {
	return models.CurrentUser{User_ID: 2, Username: "editor", Department: "Youth Ministry"}
}
