package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Venue struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name    string `json:"name"`
	Slug    string `gorm:"uniqueIndex" json:"slug"` // URL friendly
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `gorm:"default:'USA'" json:"country"`
	Sport   string `gorm:"index" json:"sport"`

	Capacity   int    `json:"capacity"`
	OpenedYear int    `json:"openedYear"`
	ImageURL   string `json:"imageUrl"`
}

func (v *Venue) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return
}

// VisitRelationship distinguishes a confirmed visit from a wishlist entry.
type VisitRelationship string

const (
	RelationshipVisited     VisitRelationship = "VISITED"
	RelationshipWantToVisit VisitRelationship = "WANT_TO_VISIT"
)

// VenueVisit records a user's relationship with a venue. At most one row
// per (user, venue, relationship).
type VenueVisit struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID string `gorm:"uniqueIndex:idx_user_venue_rel" json:"userId"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`

	VenueID string `gorm:"uniqueIndex:idx_user_venue_rel" json:"venueId"`
	Venue   Venue  `gorm:"foreignKey:VenueID" json:"venue"`

	Relationship VisitRelationship `gorm:"type:text;uniqueIndex:idx_user_venue_rel" json:"relationship"`

	VisitedAt *time.Time `json:"visitedAt"`
	Notes     string     `gorm:"type:text" json:"notes"`
	PhotoURL  string     `json:"photoUrl"`
}

func (vv *VenueVisit) BeforeCreate(tx *gorm.DB) (err error) {
	if vv.ID == "" {
		vv.ID = uuid.New().String()
	}
	return
}
