package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ADAPortal/models"
)

func prayerAPI(prayers []models.PrayerRequest, created *models.PrayerCreate) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/prayers/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(prayers)
		case r.Method == http.MethodPost && r.URL.Path == "/prayers/":
			if created != nil {
				json.NewDecoder(r.Body).Decode(created)
			}
			json.NewEncoder(w).Encode(models.PrayerRequest{Prayer_ID: 10})
		default:
			w.WriteHeader(http.StatusOK)
		}
	})
	return mux
}

func TestPublicPrayerWallFiltersUnapproved(t *testing.T) {
	prayers := []models.PrayerRequest{
		{Prayer_ID: 1, Author: "Ana", Is_Approved: true},
		{Prayer_ID: 2, Author: "Bento", Is_Approved: false},
	}

	_, cleanup := SetupController(t, prayerAPI(prayers, nil))
	defer cleanup()

	c, w := SetupTestContext()
	PublicPrayerWall(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Prayers []models.PrayerRequest `json:"prayers"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Prayers, 1)
	assert.Equal(t, "Ana", body.Prayers[0].Author)
}

func TestSubmitPrayerSanitizesContent(t *testing.T) {
	var created models.PrayerCreate
	_, cleanup := SetupController(t, prayerAPI(nil, &created))
	defer cleanup()

	c, w := SetupTestContext()
	c.Request = newJSONRequest(http.MethodPost, "/prayers",
		`{"author":"<script>alert(1)</script>Ana","category":"Healing","content":"Pray for <b>my family</b>"}`)

	SubmitPrayer(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ana", created.Author, "markup must be stripped before forwarding")
	assert.Equal(t, "Pray for my family", created.Content)
}

func TestSubmitPrayerValidation(t *testing.T) {
	_, cleanup := SetupController(t, prayerAPI(nil, nil))
	defer cleanup()

	tests := []struct {
		name string
		body string
	}{
		{"missing author", `{"category":"Healing","content":"x"}`},
		{"missing content", `{"author":"Ana","category":"Healing"}`},
		{"invalid category", `{"author":"Ana","category":"Bogus","content":"x"}`},
		{"markup-only author", `{"author":"<script></script>","category":"Healing","content":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := SetupTestContext()
			c.Request = newJSONRequest(http.MethodPost, "/prayers", tt.body)

			SubmitPrayer(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLikePrayer(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/prayers/3/like/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"likes": 12, "is_viral": true})
	})

	_, cleanup := SetupController(t, mux)
	defer cleanup()

	c, w := SetupTestContext()
	c.Params = []gin.Param{{Key: "prayer_id", Value: "3"}}

	LikePrayer(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Likes   int  `json:"likes"`
		IsViral bool `json:"is_viral"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 12, body.Likes)
	assert.True(t, body.IsViral)
}

func TestAdminListPrayersIncludesUnapproved(t *testing.T) {
	prayers := []models.PrayerRequest{
		{Prayer_ID: 1, Is_Approved: true},
		{Prayer_ID: 2, Is_Approved: false},
	}

	_, cleanup := SetupController(t, prayerAPI(prayers, nil))
	defer cleanup()

	c, w := SetupTestContext()
	SetAuthenticatedUser(c, MockManager(), true)

	AdminListPrayers(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Prayers []models.PrayerRequest `json:"prayers"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Prayers, 2)
}

func TestApprovePrayerInvalidID(t *testing.T) {
	_, cleanup := SetupController(t, prayerAPI(nil, nil))
	defer cleanup()

	c, w := SetupTestContext()
	SetAuthenticatedUser(c, MockManager(), true)
	c.Params = []gin.Param{{Key: "prayer_id", Value: "abc"}}

	ApprovePrayer(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
