package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turnstile-app/turnstile-backend/internal/models"
)

func TestResolveMembership_EmptyUser(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "fresh")

	m, err := ResolveMembership(db, user.ID)
	require.NoError(t, err)

	assert.NotNil(t, m.VisitedVenueIDs)
	assert.NotNil(t, m.EventTags)
	assert.Empty(t, m.VisitedVenueIDs)
	assert.Empty(t, m.EventTags)
}

func TestResolveMembership_VisitedOnly(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "visitor")

	venue := models.Venue{Name: "Fenway Park", Slug: "fenway-park"}
	require.NoError(t, db.Create(&venue).Error)
	wishlist := models.Venue{Name: "Wrigley Field", Slug: "wrigley-field"}
	require.NoError(t, db.Create(&wishlist).Error)

	markVisited(t, db, user.ID, venue.ID)
	require.NoError(t, db.Create(&models.VenueVisit{
		UserID:       user.ID,
		VenueID:      wishlist.ID,
		Relationship: models.RelationshipWantToVisit,
	}).Error)

	m, err := ResolveMembership(db, user.ID)
	require.NoError(t, err)

	assert.True(t, m.HasVenue(venue.ID))
	assert.False(t, m.HasVenue(wishlist.ID), "want_to_visit must not count as visited")
}

func TestResolveMembership_UnionsEventTags(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "tennisfan")

	logEventWithTags(t, db, user.ID, "grand_slam:us_open", "night_session")
	logEventWithTags(t, db, user.ID, "grand_slam:us_open", "grand_slam:wimbledon")

	// A log with no catalogued event contributes nothing.
	require.NoError(t, db.Create(&models.EventLog{
		UserID:     user.ID,
		AttendedAt: time.Now(),
	}).Error)

	m, err := ResolveMembership(db, user.ID)
	require.NoError(t, err)

	assert.Len(t, m.EventTags, 3)
	assert.True(t, m.HasTag("grand_slam:us_open"))
	assert.True(t, m.HasTag("grand_slam:wimbledon"))
	assert.True(t, m.HasTag("night_session"))
}

func TestResolveMembership_IgnoresOtherUsers(t *testing.T) {
	db := setupDB(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	venue := models.Venue{Name: "Coors Field", Slug: "coors-field"}
	require.NoError(t, db.Create(&venue).Error)
	markVisited(t, db, bob.ID, venue.ID)
	logEventWithTags(t, db, bob.ID, "grand_slam:french_open")

	m, err := ResolveMembership(db, alice.ID)
	require.NoError(t, err)

	assert.Empty(t, m.VisitedVenueIDs)
	assert.Empty(t, m.EventTags)
}
