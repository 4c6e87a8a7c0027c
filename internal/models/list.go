package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListType string
type ListSource string

const (
	ListTypeVenue ListType = "VENUE"
	ListTypeEvent ListType = "EVENT"

	ListSourceSystem ListSource = "SYSTEM"
	ListSourceUser   ListSource = "USER"
)

// List is a named collection of target items a user can complete, e.g.
// "All 30 MLB Stadiums" (venue list) or "Grand Slams" (event-tag list).
// ItemCount mirrors the current number of ListItems and must be kept in
// step by whichever flow mutates the items.
type List struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string `json:"name"`
	Slug        string `gorm:"uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description"`

	ListType ListType   `gorm:"type:text" json:"listType"`
	Sport    string     `gorm:"index" json:"sport"`
	Source   ListSource `gorm:"type:text;default:'SYSTEM'" json:"source"`

	ItemCount int `gorm:"default:0" json:"itemCount"`

	// Only set for user-authored lists.
	OwnerID *string `gorm:"index" json:"ownerId,omitempty"`
	Owner   *User   `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`

	Items []ListItem `gorm:"foreignKey:ListID" json:"items,omitempty"`
}

func (l *List) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return
}

// ListItem is one target entry in a List. Exactly one of VenueID /
// EventTag is set, matching the parent list's type.
type ListItem struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	ListID string `gorm:"index" json:"listId"`
	List   List   `gorm:"foreignKey:ListID" json:"-"`

	VenueID  *string `gorm:"index" json:"venueId,omitempty"`
	EventTag *string `gorm:"index" json:"eventTag,omitempty"`

	DisplayName  string `json:"displayName"`
	DisplayOrder int    `json:"displayOrder"`
}

func (li *ListItem) BeforeCreate(tx *gorm.DB) (err error) {
	if li.ID == "" {
		li.ID = uuid.New().String()
	}
	return
}

// ListFollow marks a list as tracked by a user.
type ListFollow struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	UserID string `gorm:"uniqueIndex:idx_user_list_follow" json:"userId"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`

	ListID string `gorm:"uniqueIndex:idx_user_list_follow" json:"listId"`
	List   List   `gorm:"foreignKey:ListID" json:"list"`
}

func (lf *ListFollow) BeforeCreate(tx *gorm.DB) (err error) {
	if lf.ID == "" {
		lf.ID = uuid.New().String()
	}
	return
}
