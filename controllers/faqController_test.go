package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ADAPortal/models"
)

func faqAPI(faqs []models.FAQ) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/faqs/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(faqs)
	})
	return mux
}

func TestPublicFAQsSorted(t *testing.T) {
	now := time.Now()
	faqs := []models.FAQ{
		{FAQ_ID: 1, Question: "Old at order 1", Order: 1, Created_At: now.Add(-time.Hour)},
		{FAQ_ID: 2, Question: "Order 2", Order: 2, Created_At: now},
		{FAQ_ID: 3, Question: "New at order 1", Order: 1, Created_At: now},
	}

	_, cleanup := SetupController(t, faqAPI(faqs))
	defer cleanup()

	c, w := SetupTestContext()
	PublicFAQs(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		FAQs []models.FAQ `json:"faqs"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.FAQs, 3)
	assert.Equal(t, "New at order 1", body.FAQs[0].Question, "newest wins within the same order")
	assert.Equal(t, "Old at order 1", body.FAQs[1].Question)
	assert.Equal(t, "Order 2", body.FAQs[2].Question)
}

func TestAdminCreateFAQValidation(t *testing.T) {
	_, cleanup := SetupController(t, faqAPI(nil))
	defer cleanup()

	c, w := SetupTestContext()
	SetAuthenticatedUser(c, MockUser(), false)
	c.Request = newJSONRequest(http.MethodPost, "/admin/faqs", `{"question":"","answer":"yes"}`)

	AdminCreateFAQ(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "question and answer are required")
}

func TestPublicHistoryNewestFirst(t *testing.T) {
	history := []models.HistoryEvent{
		{History_ID: 1, Year: 1995, Title: "First assembly"},
		{History_ID: 2, Year: 2010, Title: "National expansion"},
		{History_ID: 3, Year: 2003, Title: "Bible school opens"},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/history/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(history)
	})

	_, cleanup := SetupController(t, mux)
	defer cleanup()

	c, w := SetupTestContext()
	PublicHistory(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		History []models.HistoryEvent `json:"history"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2010, body.History[0].Year)
	assert.Equal(t, 2003, body.History[1].Year)
	assert.Equal(t, 1995, body.History[2].Year)
}
