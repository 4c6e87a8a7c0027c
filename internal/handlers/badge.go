package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/turnstile-app/turnstile-backend/internal/database"
	"github.com/turnstile-app/turnstile-backend/internal/models"
	"github.com/turnstile-app/turnstile-backend/internal/services"
)

// GetMyBadges handles GET /me/badges
func GetMyBadges(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var badges []models.Badge
	if err := database.DB.Preload("List").
		Where("user_id = ?", userID).
		Order("completed_at desc").
		Find(&badges).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load badges"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"badges": badges})
}

// GetUserBadges handles GET /users/:username/badges
func GetUserBadges(c *gin.Context) {
	var user models.User
	if err := database.DB.First(&user, "username = ?", c.Param("username")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var badges []models.Badge
	if err := database.DB.Preload("List").
		Where("user_id = ?", user.ID).
		Order("completed_at desc").
		Find(&badges).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load badges"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"badges": badges})
}

// GetBadgeItems handles GET /me/badges/:listId/items. The checklist is
// evaluated against the list's current items, so a legacy badge's view
// shows how the now-edited list stands for the user today.
func GetBadgeItems(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	engine := services.NewBadgeEngine(database.DB)
	items, err := engine.BadgeItems(c.Param("listId"), userID.(string))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetTrackedProgress handles GET /me/tracked
func GetTrackedProgress(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	engine := services.NewBadgeEngine(database.DB)
	tracked, err := engine.TrackedProgress(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tracked lists"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tracked": tracked})
}
