package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Badge records that a user completed a list at a specific size on a
// specific date. Rows are never deleted; when a list's size changes and
// the user completes the new version, the old badge is flagged legacy
// and kept as a permanent "Vintage <year>" record.
//
// At most one non-legacy badge may exist per (user, list); a partial
// unique index enforces this at the storage layer (see migrations).
type Badge struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID string `gorm:"index:idx_badge_user_list" json:"userId"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`

	ListID string `gorm:"index:idx_badge_user_list" json:"listId"`
	List   List   `gorm:"foreignKey:ListID" json:"list"`

	CompletedAt           time.Time `json:"completedAt"`
	ItemCountAtCompletion int       `json:"itemCountAtCompletion"`
	IsLegacy              bool      `gorm:"default:false" json:"isLegacy"`
}

func (b *Badge) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}
