package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserLink represents a follower/following relationship between users.
type UserLink struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FollowerID string `gorm:"uniqueIndex:idx_follower_followed" json:"followerId"`
	Follower   User   `gorm:"foreignKey:FollowerID" json:"follower"`

	FollowedID string `gorm:"uniqueIndex:idx_follower_followed" json:"followedId"`
	Followed   User   `gorm:"foreignKey:FollowedID" json:"followed"`
}

func (ul *UserLink) BeforeCreate(tx *gorm.DB) (err error) {
	if ul.ID == "" {
		ul.ID = uuid.New().String()
	}
	return
}
