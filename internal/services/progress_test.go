package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/turnstile-app/turnstile-backend/internal/models"
)

func strPtr(s string) *string { return &s }

func membershipWith(venues []string, tags []string) *Membership {
	m := &Membership{
		VisitedVenueIDs: make(map[string]struct{}),
		EventTags:       make(map[string]struct{}),
	}
	for _, v := range venues {
		m.VisitedVenueIDs[v] = struct{}{}
	}
	for _, tag := range tags {
		m.EventTags[tag] = struct{}{}
	}
	return m
}

func TestEvaluateList_VenueSatisfaction(t *testing.T) {
	list := &models.List{ListType: models.ListTypeVenue, ItemCount: 3}
	items := []models.ListItem{
		{ID: "a", VenueID: strPtr("v1"), DisplayName: "Fenway Park", DisplayOrder: 0},
		{ID: "b", VenueID: strPtr("v2"), DisplayName: "Wrigley Field", DisplayOrder: 1},
		{ID: "c", VenueID: strPtr("v3"), DisplayName: "Dodger Stadium", DisplayOrder: 2},
	}

	progress := EvaluateList(list, items, membershipWith([]string{"v1", "v3"}, nil))

	assert.Equal(t, 2, progress.VisitedCount)
	assert.Equal(t, 3, progress.Total)
	assert.True(t, progress.Items[0].Satisfied)
	assert.False(t, progress.Items[1].Satisfied)
	assert.True(t, progress.Items[2].Satisfied)
}

func TestEvaluateList_EventTagSatisfaction(t *testing.T) {
	list := &models.List{ListType: models.ListTypeEvent, ItemCount: 2}
	items := []models.ListItem{
		{ID: "a", EventTag: strPtr("grand_slam:us_open"), DisplayName: "US Open", DisplayOrder: 0},
		{ID: "b", EventTag: strPtr("grand_slam:wimbledon"), DisplayName: "Wimbledon", DisplayOrder: 1},
	}

	progress := EvaluateList(list, items, membershipWith(nil, []string{"grand_slam:us_open"}))

	assert.Equal(t, 1, progress.VisitedCount)
	assert.True(t, progress.Items[0].Satisfied)
	assert.False(t, progress.Items[1].Satisfied)
}

func TestEvaluateList_OrderingByDisplayOrderThenID(t *testing.T) {
	list := &models.List{ListType: models.ListTypeVenue}
	items := []models.ListItem{
		{ID: "z", VenueID: strPtr("v1"), DisplayName: "Third", DisplayOrder: 2},
		{ID: "b", VenueID: strPtr("v2"), DisplayName: "Second", DisplayOrder: 1},
		{ID: "c", VenueID: strPtr("v3"), DisplayName: "First tie B", DisplayOrder: 0},
		{ID: "a", VenueID: strPtr("v4"), DisplayName: "First tie A", DisplayOrder: 0},
	}

	progress := EvaluateList(list, items, membershipWith(nil, nil))

	names := []string{}
	for _, item := range progress.Items {
		names = append(names, item.DisplayName)
	}
	assert.Equal(t, []string{"First tie A", "First tie B", "Second", "Third"}, names)

	// Input slice is left untouched.
	assert.Equal(t, "Third", items[0].DisplayName)
}

func TestEvaluateList_MalformedItemsUnsatisfied(t *testing.T) {
	list := &models.List{ListType: models.ListTypeVenue}
	items := []models.ListItem{
		{ID: "a", DisplayName: "No reference at all"},
		{ID: "b", EventTag: strPtr("wrong_kind"), DisplayName: "Tag on a venue list"},
		{ID: "c", VenueID: strPtr("v1"), DisplayName: "Fine"},
	}

	progress := EvaluateList(list, items, membershipWith([]string{"v1"}, []string{"wrong_kind"}))

	assert.Equal(t, 1, progress.VisitedCount)
	assert.Equal(t, 3, progress.Total)
}

func TestEvaluateList_UnknownListType(t *testing.T) {
	list := &models.List{ListType: "MYSTERY"}
	items := []models.ListItem{
		{ID: "a", VenueID: strPtr("v1"), DisplayName: "Anything"},
	}

	progress := EvaluateList(list, items, membershipWith([]string{"v1"}, nil))

	assert.Equal(t, 0, progress.VisitedCount)
	assert.Equal(t, 1, progress.Total)
	assert.False(t, progress.Items[0].Satisfied)
}

func TestEvaluateList_EmptyItems(t *testing.T) {
	list := &models.List{ListType: models.ListTypeVenue}

	progress := EvaluateList(list, nil, membershipWith([]string{"v1"}, nil))

	assert.Equal(t, 0, progress.VisitedCount)
	assert.Equal(t, 0, progress.Total)
	assert.Empty(t, progress.Items)
}
