package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/turnstile-app/turnstile-backend/internal/database"
	"github.com/turnstile-app/turnstile-backend/internal/models"
)

type UpdateProfileInput struct {
	DisplayName   string `json:"displayName"`
	Avatar        string `json:"avatar"`
	Bio           string `json:"bio"`
	FavoriteSport string `json:"favoriteSport"`
	HomeCity      string `json:"homeCity"`
}

// GetProfile handles GET /users/:username
func GetProfile(c *gin.Context) {
	var user models.User
	if err := database.DB.First(&user, "username = ?", c.Param("username")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var visitCount, logCount, badgeCount int64
	database.DB.Model(&models.VenueVisit{}).
		Where("user_id = ? AND relationship = ?", user.ID, models.RelationshipVisited).
		Count(&visitCount)
	database.DB.Model(&models.EventLog{}).Where("user_id = ?", user.ID).Count(&logCount)
	database.DB.Model(&models.Badge{}).Where("user_id = ?", user.ID).Count(&badgeCount)

	c.JSON(http.StatusOK, gin.H{
		"user": user,
		"stats": gin.H{
			"venuesVisited": visitCount,
			"eventsLogged":  logCount,
			"badges":        badgeCount,
		},
	})
}

// UpdateProfile handles PUT /me/profile
func UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	updates := map[string]interface{}{
		"display_name":   input.DisplayName,
		"avatar":         input.Avatar,
		"bio":            input.Bio,
		"favorite_sport": input.FavoriteSport,
		"home_city":      input.HomeCity,
	}
	if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
