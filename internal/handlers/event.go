package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/turnstile-app/turnstile-backend/internal/database"
	"github.com/turnstile-app/turnstile-backend/internal/models"
)

type LogEventInput struct {
	EventID    *string    `json:"eventId"`
	AttendedAt *time.Time `json:"attendedAt"`
	Notes      string     `json:"notes"`
	Rating     int        `json:"rating"`
	PhotoURL   string     `json:"photoUrl"`
}

// ListEvents handles GET /events
func ListEvents(c *gin.Context) {
	query := database.DB.Preload("Venue").Order("starts_at desc")

	if sport := c.Query("sport"); sport != "" {
		query = query.Where("sport = ?", sport)
	}
	if venueID := c.Query("venueId"); venueID != "" {
		query = query.Where("venue_id = ?", venueID)
	}

	var events []models.Event
	if err := query.Limit(100).Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// GetEvent handles GET /events/:slug
func GetEvent(c *gin.Context) {
	var event models.Event
	if err := database.DB.Preload("Venue").First(&event, "slug = ?", c.Param("slug")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

// LogEvent handles POST /logs. Saving a log is the second trigger point
// for badge evaluation.
func LogEvent(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if !allowWrite(c, userID.(string)) {
		return
	}

	var input LogEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Rating < 0 || input.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 0 and 5"})
		return
	}

	if input.EventID != nil {
		var event models.Event
		if err := database.DB.First(&event, "id = ?", *input.EventID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
	}

	attendedAt := time.Now()
	if input.AttendedAt != nil {
		attendedAt = *input.AttendedAt
	}

	entry := models.EventLog{
		UserID:     userID.(string),
		EventID:    input.EventID,
		AttendedAt: attendedAt,
		Notes:      input.Notes,
		Rating:     input.Rating,
		PhotoURL:   input.PhotoURL,
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save log"})
		return
	}

	newBadges := runBadgePass(c.Request.Context(), userID.(string))

	c.JSON(http.StatusCreated, gin.H{
		"log":       entry,
		"newBadges": newBadges,
	})
}

// GetMyLogs handles GET /me/logs
func GetMyLogs(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var logs []models.EventLog
	if err := database.DB.Preload("Event").Preload("Event.Venue").
		Where("user_id = ?", userID).
		Order("attended_at desc").
		Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// DeleteLog handles DELETE /logs/:id
func DeleteLog(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result := database.DB.
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		Delete(&models.EventLog{})
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Log not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": true})
}
