package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/turnstile-app/turnstile-backend/internal/database"
	"github.com/turnstile-app/turnstile-backend/internal/models"
)

// FollowUser handles POST /users/:username/follow
func FollowUser(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var target models.User
	if err := database.DB.First(&target, "username = ?", c.Param("username")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if target.ID == userID.(string) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot follow yourself"})
		return
	}

	link := models.UserLink{FollowerID: userID.(string), FollowedID: target.ID}
	if err := database.DB.Create(&link).Error; err != nil {
		if strings.Contains(err.Error(), "unique") || strings.Contains(err.Error(), "UNIQUE") {
			c.JSON(http.StatusOK, gin.H{"following": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to follow user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"following": true})
}

// UnfollowUser handles DELETE /users/:username/follow
func UnfollowUser(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var target models.User
	if err := database.DB.First(&target, "username = ?", c.Param("username")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	database.DB.Where("follower_id = ? AND followed_id = ?", userID, target.ID).
		Delete(&models.UserLink{})

	c.JSON(http.StatusOK, gin.H{"following": false})
}

// GetFollowers handles GET /users/:username/followers
func GetFollowers(c *gin.Context) {
	var user models.User
	if err := database.DB.First(&user, "username = ?", c.Param("username")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var links []models.UserLink
	if err := database.DB.Preload("Follower").
		Where("followed_id = ?", user.ID).
		Find(&links).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load followers"})
		return
	}

	followers := make([]models.User, 0, len(links))
	for _, l := range links {
		followers = append(followers, l.Follower)
	}

	c.JSON(http.StatusOK, gin.H{"followers": followers})
}

// GetFollowing handles GET /users/:username/following
func GetFollowing(c *gin.Context) {
	var user models.User
	if err := database.DB.First(&user, "username = ?", c.Param("username")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var links []models.UserLink
	if err := database.DB.Preload("Followed").
		Where("follower_id = ?", user.ID).
		Find(&links).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load following"})
		return
	}

	following := make([]models.User, 0, len(links))
	for _, l := range links {
		following = append(following, l.Followed)
	}

	c.JSON(http.StatusOK, gin.H{"following": following})
}

// FeedEntry is one item in the activity feed: either a venue visit or
// an event log by a followed user.
type FeedEntry struct {
	Type  string             `json:"type"` // "visit" | "log"
	User  models.User        `json:"user"`
	Visit *models.VenueVisit `json:"visit,omitempty"`
	Log   *models.EventLog   `json:"log,omitempty"`
}

// GetFeed handles GET /me/feed: recent visits and logs from followed
// users, newest first.
func GetFeed(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var followedIDs []string
	if err := database.DB.Model(&models.UserLink{}).
		Where("follower_id = ?", userID).
		Pluck("followed_id", &followedIDs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load feed"})
		return
	}
	if len(followedIDs) == 0 {
		c.JSON(http.StatusOK, gin.H{"feed": []FeedEntry{}})
		return
	}

	var visits []models.VenueVisit
	database.DB.Preload("Venue").Preload("User").
		Where("user_id IN ? AND relationship = ?", followedIDs, models.RelationshipVisited).
		Order("created_at desc").Limit(25).
		Find(&visits)

	var logs []models.EventLog
	database.DB.Preload("Event").Preload("User").
		Where("user_id IN ?", followedIDs).
		Order("created_at desc").Limit(25).
		Find(&logs)

	feed := make([]FeedEntry, 0, len(visits)+len(logs))
	for i := range visits {
		feed = append(feed, FeedEntry{Type: "visit", User: visits[i].User, Visit: &visits[i]})
	}
	for i := range logs {
		feed = append(feed, FeedEntry{Type: "log", User: logs[i].User, Log: &logs[i]})
	}

	c.JSON(http.StatusOK, gin.H{"feed": feed})
}
