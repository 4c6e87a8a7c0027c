package services

import (
	"fmt"

	"github.com/turnstile-app/turnstile-backend/internal/models"
	"gorm.io/gorm"
)

// Membership holds the two fact sets the badge engine evaluates lists
// against: venues the user has marked visited, and the union of event
// tags across every event the user has logged.
type Membership struct {
	VisitedVenueIDs map[string]struct{}
	EventTags       map[string]struct{}
}

func (m *Membership) HasVenue(venueID string) bool {
	_, ok := m.VisitedVenueIDs[venueID]
	return ok
}

func (m *Membership) HasTag(tag string) bool {
	_, ok := m.EventTags[tag]
	return ok
}

// ResolveMembership loads both fact sets for a user. Read-only; both
// sets are empty (never nil) for users with no activity. Each fact type
// is loaded all-or-nothing: any store failure aborts the whole resolve.
func ResolveMembership(db *gorm.DB, userID string) (*Membership, error) {
	m := &Membership{
		VisitedVenueIDs: make(map[string]struct{}),
		EventTags:       make(map[string]struct{}),
	}

	var venueIDs []string
	if err := db.Model(&models.VenueVisit{}).
		Where("user_id = ? AND relationship = ?", userID, models.RelationshipVisited).
		Pluck("venue_id", &venueIDs).Error; err != nil {
		return nil, fmt.Errorf("could not load membership data: %w", err)
	}
	for _, id := range venueIDs {
		m.VisitedVenueIDs[id] = struct{}{}
	}

	var logs []models.EventLog
	if err := db.Preload("Event").
		Where("user_id = ?", userID).
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("could not load membership data: %w", err)
	}
	for _, entry := range logs {
		if entry.Event == nil {
			continue
		}
		for _, tag := range entry.Event.Tags {
			if tag != "" {
				m.EventTags[tag] = struct{}{}
			}
		}
	}

	return m, nil
}
