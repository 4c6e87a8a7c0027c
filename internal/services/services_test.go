package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/turnstile-app/turnstile-backend/internal/migrations"
	"github.com/turnstile-app/turnstile-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupDB opens a fresh in-memory SQLite database with the full schema,
// including the partial unique index the badge ledger relies on.
func setupDB(t *testing.T) *gorm.DB {
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
	))

	for _, m := range migrations.GetMigrations() {
		require.NoError(t, m.Up(db))
	}

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// createVenueList seeds n venues plus a system list targeting all of
// them, and returns the list and the venues in display order.
func createVenueList(t *testing.T, db *gorm.DB, name string, n int) (*models.List, []models.Venue) {
	t.Helper()

	list := &models.List{
		Name:      name,
		Slug:      name,
		ListType:  models.ListTypeVenue,
		Source:    models.ListSourceSystem,
		ItemCount: n,
	}
	require.NoError(t, db.Create(list).Error)

	venues := make([]models.Venue, 0, n)
	for i := 0; i < n; i++ {
		venue := models.Venue{
			Name: fmt.Sprintf("%s Venue %d", name, i),
			Slug: fmt.Sprintf("%s-venue-%d", name, i),
		}
		require.NoError(t, db.Create(&venue).Error)
		venues = append(venues, venue)

		item := models.ListItem{
			ListID:       list.ID,
			VenueID:      &venue.ID,
			DisplayName:  venue.Name,
			DisplayOrder: i,
		}
		require.NoError(t, db.Create(&item).Error)
	}

	return list, venues
}

// createEventList seeds a system list over event tags.
func createEventList(t *testing.T, db *gorm.DB, name string, tags []string) *models.List {
	t.Helper()

	list := &models.List{
		Name:      name,
		Slug:      name,
		ListType:  models.ListTypeEvent,
		Source:    models.ListSourceSystem,
		ItemCount: len(tags),
	}
	require.NoError(t, db.Create(list).Error)

	for i, tag := range tags {
		tag := tag
		item := models.ListItem{
			ListID:       list.ID,
			EventTag:     &tag,
			DisplayName:  tag,
			DisplayOrder: i,
		}
		require.NoError(t, db.Create(&item).Error)
	}

	return list
}

func markVisited(t *testing.T, db *gorm.DB, userID, venueID string) {
	t.Helper()
	now := time.Now()
	visit := models.VenueVisit{
		UserID:       userID,
		VenueID:      venueID,
		Relationship: models.RelationshipVisited,
		VisitedAt:    &now,
	}
	require.NoError(t, db.Create(&visit).Error)
}

// logEventWithTags creates an event carrying the tags and a log of it
// for the user.
func logEventWithTags(t *testing.T, db *gorm.DB, userID string, tags ...string) {
	t.Helper()

	slug := uuid.New().String()
	event := models.Event{
		Name: fmt.Sprintf("event-%s", slug),
		Slug: slug,
		Tags: pq.StringArray(tags),
	}
	require.NoError(t, db.Create(&event).Error)

	entry := models.EventLog{
		UserID:     userID,
		EventID:    &event.ID,
		AttendedAt: time.Now(),
	}
	require.NoError(t, db.Create(&entry).Error)
}

func badgesFor(t *testing.T, db *gorm.DB, userID, listID string) []models.Badge {
	t.Helper()
	var badges []models.Badge
	require.NoError(t, db.Where("user_id = ? AND list_id = ?", userID, listID).
		Order("created_at asc").Find(&badges).Error)
	return badges
}
