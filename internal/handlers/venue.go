package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/turnstile-app/turnstile-backend/internal/database"
	"github.com/turnstile-app/turnstile-backend/internal/models"
	"github.com/turnstile-app/turnstile-backend/internal/services"
	"github.com/turnstile-app/turnstile-backend/pkg/logger"
)

// badgePassTimeout bounds the badge-evaluation pass on write paths.
// On expiry the remaining candidate lists are skipped, never the
// triggering request.
const badgePassTimeout = 3 * time.Second

// Per-user budget for membership writes (visits and event logs).
const (
	writeRateLimit  = 30
	writeRateWindow = time.Minute
)

type MarkVisitInput struct {
	Relationship models.VisitRelationship `json:"relationship" binding:"required"`
	VisitedAt    *time.Time               `json:"visitedAt"`
	Notes        string                   `json:"notes"`
	PhotoURL     string                   `json:"photoUrl"`
}

// ListVenues handles GET /venues
func ListVenues(c *gin.Context) {
	sport := c.Query("sport")
	cacheKey := "venues:" + sport

	// Venue catalog changes rarely; serve from cache when possible.
	var venues []models.Venue
	if database.Redis != nil {
		if err := database.CacheGet(cacheKey, &venues); err == nil {
			c.JSON(http.StatusOK, gin.H{"venues": venues})
			return
		}
	}

	query := database.DB.Order("name asc")
	if sport != "" {
		query = query.Where("sport = ?", sport)
	}
	if err := query.Find(&venues).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load venues"})
		return
	}

	if database.Redis != nil {
		_ = database.CacheSet(cacheKey, venues, 10*time.Minute)
	}

	c.JSON(http.StatusOK, gin.H{"venues": venues})
}

// GetVenue handles GET /venues/:slug
func GetVenue(c *gin.Context) {
	var venue models.Venue
	if err := database.DB.First(&venue, "slug = ?", c.Param("slug")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"venue": venue})
}

// MarkVisit handles POST /venues/:slug/visits. Recording a visit is
// the trigger point for badge evaluation; newly awarded badges ride
// along on the response for a transient UI notice.
func MarkVisit(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if !allowWrite(c, userID.(string)) {
		return
	}

	var input MarkVisitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Relationship != models.RelationshipVisited && input.Relationship != models.RelationshipWantToVisit {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid relationship"})
		return
	}

	var venue models.Venue
	if err := database.DB.First(&venue, "slug = ?", c.Param("slug")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		return
	}

	visit := models.VenueVisit{
		UserID:       userID.(string),
		VenueID:      venue.ID,
		Relationship: input.Relationship,
		VisitedAt:    input.VisitedAt,
		Notes:        input.Notes,
		PhotoURL:     input.PhotoURL,
	}

	if err := database.DB.Create(&visit).Error; err != nil {
		// One row per (user, venue, relationship); repeat marks are a conflict.
		c.JSON(http.StatusConflict, gin.H{"error": "Already recorded"})
		return
	}

	newBadges := runBadgePass(c.Request.Context(), userID.(string))

	c.JSON(http.StatusCreated, gin.H{
		"visit":     visit,
		"newBadges": newBadges,
	})
}

// RemoveVisit handles DELETE /venues/:slug/visits/:relationship
func RemoveVisit(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var venue models.Venue
	if err := database.DB.First(&venue, "slug = ?", c.Param("slug")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		return
	}

	result := database.DB.
		Where("user_id = ? AND venue_id = ? AND relationship = ?",
			userID, venue.ID, c.Param("relationship")).
		Delete(&models.VenueVisit{})
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Visit not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": true})
}

// GetMyVisits handles GET /me/visits
func GetMyVisits(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var visits []models.VenueVisit
	query := database.DB.Preload("Venue").Where("user_id = ?", userID)
	if rel := c.Query("relationship"); rel != "" {
		query = query.Where("relationship = ?", rel)
	}
	if err := query.Order("created_at desc").Find(&visits).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load visits"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"visits": visits})
}

// allowWrite enforces the per-user write budget. Skipped entirely when
// Redis is not configured; on a limit breach it writes the 429 itself.
func allowWrite(c *gin.Context, userID string) bool {
	if database.Redis == nil {
		return true
	}

	allowed, err := database.CheckRateLimit(userID, writeRateLimit, writeRateWindow)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Rate limit check failed"})
		return false
	}
	if !allowed {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "You're recording too fast. Please wait a minute."})
		return false
	}
	return true
}

// runBadgePass runs a best-effort, time-bounded badge evaluation after
// a membership mutation. Errors are logged and swallowed: the visit or
// log that triggered the pass has already been committed, and badge
// computation must never fail it.
func runBadgePass(parent context.Context, userID string) []models.Badge {
	ctx, cancel := context.WithTimeout(parent, badgePassTimeout)
	defer cancel()

	engine := services.NewBadgeEngine(database.DB)
	newBadges, err := engine.CheckBadges(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("Badge evaluation failed")
		return []models.Badge{}
	}
	if newBadges == nil {
		return []models.Badge{}
	}
	return newBadges
}
