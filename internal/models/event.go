package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Event is a scheduled game/match at a venue. Tags are free-form labels
// ("grand_slam:us_open", "rivalry:subway_series") that lists can target.
type Event struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name  string `json:"name"`
	Slug  string `gorm:"uniqueIndex" json:"slug"`
	Sport string `gorm:"index" json:"sport"`

	VenueID string `gorm:"index" json:"venueId"`
	Venue   Venue  `gorm:"foreignKey:VenueID" json:"venue"`

	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`

	StartsAt time.Time `json:"startsAt"`

	Tags pq.StringArray `gorm:"type:text[]" json:"tags"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return
}

// EventLog is a user's record of having attended an event. EventID is
// nullable: a log may be a free-form entry with no catalogued event.
type EventLog struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID string `gorm:"index" json:"userId"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`

	EventID *string `gorm:"index" json:"eventId"`
	Event   *Event  `gorm:"foreignKey:EventID" json:"event,omitempty"`

	AttendedAt time.Time `json:"attendedAt"`
	Notes      string    `gorm:"type:text" json:"notes"`
	Rating     int       `json:"rating"` // 0 = unrated, else 1-5
	PhotoURL   string    `json:"photoUrl"`
}

func (el *EventLog) BeforeCreate(tx *gorm.DB) (err error) {
	if el.ID == "" {
		el.ID = uuid.New().String()
	}
	return
}
