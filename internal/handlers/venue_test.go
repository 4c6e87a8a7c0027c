package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turnstile-app/turnstile-backend/internal/database"
	"github.com/turnstile-app/turnstile-backend/internal/migrations"
	"github.com/turnstile-app/turnstile-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB points the package-level connection at a fresh in-memory
// SQLite database.
func SetupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Venue{},
		&models.VenueVisit{},
		&models.Event{},
		&models.EventLog{},
		&models.List{},
		&models.ListItem{},
		&models.ListFollow{},
		&models.Badge{},
		&models.UserLink{},
	))
	for _, m := range migrations.GetMigrations() {
		require.NoError(t, m.Up(db))
	}

	database.DB = db
}

func authedRequest(t *testing.T, userID, method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	c.Request = req
	c.Set("userId", userID)
	return c, w
}

func TestMarkVisit_AwardsBadgeOnCompletion(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	user := models.User{Username: "fan", Email: "fan@example.com"}
	require.NoError(t, database.DB.Create(&user).Error)

	venue := models.Venue{Name: "Fenway Park", Slug: "fenway-park"}
	require.NoError(t, database.DB.Create(&venue).Error)

	list := models.List{
		Name: "One Park", Slug: "one-park",
		ListType: models.ListTypeVenue, Source: models.ListSourceSystem,
		ItemCount: 1,
	}
	require.NoError(t, database.DB.Create(&list).Error)
	require.NoError(t, database.DB.Create(&models.ListItem{
		ListID:      list.ID,
		VenueID:     &venue.ID,
		DisplayName: venue.Name,
	}).Error)

	c, w := authedRequest(t, user.ID, "POST", "/api/venues/fenway-park/visits", gin.H{
		"relationship": "VISITED",
	})
	c.Params = gin.Params{{Key: "slug", Value: "fenway-park"}}

	MarkVisit(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Visit     models.VenueVisit `json:"visit"`
		NewBadges []models.Badge    `json:"newBadges"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, venue.ID, resp.Visit.VenueID)
	require.Len(t, resp.NewBadges, 1)
	assert.Equal(t, list.ID, resp.NewBadges[0].ListID)
	assert.Equal(t, 1, resp.NewBadges[0].ItemCountAtCompletion)
}

func TestMarkVisit_DuplicateIsConflict(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	user := models.User{Username: "dupe", Email: "dupe@example.com"}
	require.NoError(t, database.DB.Create(&user).Error)
	venue := models.Venue{Name: "Wrigley Field", Slug: "wrigley-field"}
	require.NoError(t, database.DB.Create(&venue).Error)

	for i, wantStatus := range []int{http.StatusCreated, http.StatusConflict} {
		c, w := authedRequest(t, user.ID, "POST", "/api/venues/wrigley-field/visits", gin.H{
			"relationship": "VISITED",
		})
		c.Params = gin.Params{{Key: "slug", Value: "wrigley-field"}}

		MarkVisit(c)
		assert.Equal(t, wantStatus, w.Code, "attempt %d", i)
	}
}

func TestMarkVisit_WantToVisitDoesNotAward(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	user := models.User{Username: "wisher", Email: "wisher@example.com"}
	require.NoError(t, database.DB.Create(&user).Error)
	venue := models.Venue{Name: "Petco Park", Slug: "petco-park"}
	require.NoError(t, database.DB.Create(&venue).Error)

	list := models.List{
		Name: "One Wish", Slug: "one-wish",
		ListType: models.ListTypeVenue, Source: models.ListSourceSystem,
		ItemCount: 1,
	}
	require.NoError(t, database.DB.Create(&list).Error)
	require.NoError(t, database.DB.Create(&models.ListItem{
		ListID:      list.ID,
		VenueID:     &venue.ID,
		DisplayName: venue.Name,
	}).Error)

	c, w := authedRequest(t, user.ID, "POST", "/api/venues/petco-park/visits", gin.H{
		"relationship": "WANT_TO_VISIT",
	})
	c.Params = gin.Params{{Key: "slug", Value: "petco-park"}}

	MarkVisit(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var badges []models.Badge
	require.NoError(t, database.DB.Find(&badges).Error)
	assert.Empty(t, badges, "wishlist marks must not count toward badges")
}

func TestMarkVisit_UnknownVenue(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	user := models.User{Username: "lost", Email: "lost@example.com"}
	require.NoError(t, database.DB.Create(&user).Error)

	c, w := authedRequest(t, user.ID, "POST", "/api/venues/nowhere/visits", gin.H{
		"relationship": "VISITED",
	})
	c.Params = gin.Params{{Key: "slug", Value: "nowhere"}}

	MarkVisit(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
