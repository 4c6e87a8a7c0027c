package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/turnstile-app/turnstile-backend/internal/database"
	"github.com/turnstile-app/turnstile-backend/internal/models"
	"github.com/turnstile-app/turnstile-backend/internal/services"
	"github.com/turnstile-app/turnstile-backend/pkg/utils"
	"gorm.io/gorm"
)

type CreateListInput struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	ListType    models.ListType `json:"listType" binding:"required"`
	Sport       string          `json:"sport"`
}

type AddListItemInput struct {
	VenueID      *string `json:"venueId"`
	EventTag     *string `json:"eventTag"`
	DisplayName  string  `json:"displayName"`
	DisplayOrder int     `json:"displayOrder"`
}

// BrowseLists handles GET /lists
func BrowseLists(c *gin.Context) {
	sport := c.Query("sport")
	source := c.Query("source")
	if source == "" {
		source = string(models.ListSourceSystem)
	}
	cacheKey := "lists:" + sport + ":" + source

	var lists []models.List
	if database.Redis != nil {
		if err := database.CacheGet(cacheKey, &lists); err == nil {
			c.JSON(http.StatusOK, gin.H{"lists": lists})
			return
		}
	}

	query := database.DB.Where("source = ?", source)
	if sport != "" {
		query = query.Where("sport = ?", sport)
	}
	if err := query.Order("name asc").Find(&lists).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load lists"})
		return
	}

	if database.Redis != nil {
		_ = database.CacheSet(cacheKey, lists, 10*time.Minute)
	}

	c.JSON(http.StatusOK, gin.H{"lists": lists})
}

// invalidateListCache drops cached browse pages after a list mutation.
func invalidateListCache() {
	if database.Redis != nil {
		go database.CacheInvalidate("lists:*")
	}
}

// GetList handles GET /lists/:slug. Authenticated callers get their
// per-item progress alongside the list.
func GetList(c *gin.Context) {
	var list models.List
	if err := database.DB.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order asc")
	}).First(&list, "slug = ?", c.Param("slug")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
		return
	}

	resp := gin.H{"list": list}

	if userID, ok := c.Get("userId"); ok {
		engine := services.NewBadgeEngine(database.DB)
		if progress, err := engine.ListProgressFor(list.ID, userID.(string)); err == nil {
			resp["progress"] = progress
		}
	}

	c.JSON(http.StatusOK, resp)
}

// CreateList handles POST /lists
func CreateList(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input CreateListInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.ListType != models.ListTypeVenue && input.ListType != models.ListTypeEvent {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid list type"})
		return
	}

	ownerID := userID.(string)
	list := models.List{
		Name:        input.Name,
		Slug:        utils.GenerateSlug(input.Name),
		Description: input.Description,
		ListType:    input.ListType,
		Sport:       input.Sport,
		Source:      models.ListSourceUser,
		OwnerID:     &ownerID,
	}

	if result := database.DB.Create(&list); result.Error != nil {
		if strings.Contains(result.Error.Error(), "unique") || strings.Contains(result.Error.Error(), "UNIQUE") {
			c.JSON(http.StatusConflict, gin.H{"error": "A list with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create list"})
		return
	}

	invalidateListCache()

	c.JSON(http.StatusCreated, gin.H{"list": list})
}

// AddListItem handles POST /lists/:slug/items. Owner-only; keeps the
// list's item_count in step inside the same transaction.
func AddListItem(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input AddListItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, ok := ownedList(c, userID.(string))
	if !ok {
		return
	}

	// Exactly one of venueId / eventTag, matching the list's type.
	switch list.ListType {
	case models.ListTypeVenue:
		if input.VenueID == nil || input.EventTag != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Venue lists take a venueId"})
			return
		}
	case models.ListTypeEvent:
		if input.EventTag == nil || input.VenueID != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Event lists take an eventTag"})
			return
		}
	}

	displayName := input.DisplayName
	if input.VenueID != nil {
		var venue models.Venue
		if err := database.DB.First(&venue, "id = ?", *input.VenueID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
			return
		}
		if displayName == "" {
			displayName = venue.Name
		}
	}
	if displayName == "" && input.EventTag != nil {
		displayName = *input.EventTag
	}

	item := models.ListItem{
		ListID:       list.ID,
		VenueID:      input.VenueID,
		EventTag:     input.EventTag,
		DisplayName:  displayName,
		DisplayOrder: input.DisplayOrder,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		return tx.Model(&models.List{}).
			Where("id = ?", list.ID).
			UpdateColumn("item_count", gorm.Expr("item_count + ?", 1)).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item"})
		return
	}

	invalidateListCache()

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// RemoveListItem handles DELETE /lists/:slug/items/:itemId
func RemoveListItem(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	list, ok := ownedList(c, userID.(string))
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND list_id = ?", c.Param("itemId"), list.ID).
			Delete(&models.ListItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&models.List{}).
			Where("id = ?", list.ID).
			UpdateColumn("item_count", gorm.Expr("item_count - ?", 1)).Error
	})
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
		return
	}

	invalidateListCache()

	c.JSON(http.StatusOK, gin.H{"removed": true})
}

// DeleteList handles DELETE /lists/:slug. System lists are permanent.
func DeleteList(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	list, ok := ownedList(c, userID.(string))
	if !ok {
		return
	}

	if err := database.DB.Delete(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete list"})
		return
	}

	invalidateListCache()

	c.JSON(http.StatusOK, gin.H{"removed": true})
}

// FollowList handles POST /lists/:slug/follow
func FollowList(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var list models.List
	if err := database.DB.First(&list, "slug = ?", c.Param("slug")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
		return
	}

	follow := models.ListFollow{UserID: userID.(string), ListID: list.ID}
	if err := database.DB.Create(&follow).Error; err != nil {
		if strings.Contains(err.Error(), "unique") || strings.Contains(err.Error(), "UNIQUE") {
			c.JSON(http.StatusOK, gin.H{"following": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to follow list"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"following": true})
}

// UnfollowList handles DELETE /lists/:slug/follow
func UnfollowList(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var list models.List
	if err := database.DB.First(&list, "slug = ?", c.Param("slug")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
		return
	}

	database.DB.Where("user_id = ? AND list_id = ?", userID, list.ID).
		Delete(&models.ListFollow{})

	c.JSON(http.StatusOK, gin.H{"following": false})
}

// ownedList resolves :slug to a list the acting user owns, writing the
// error response itself when it can't.
func ownedList(c *gin.Context, userID string) (*models.List, bool) {
	var list models.List
	if err := database.DB.First(&list, "slug = ?", c.Param("slug")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
		return nil, false
	}
	if list.Source != models.ListSourceUser || list.OwnerID == nil || *list.OwnerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the list owner can modify it"})
		return nil, false
	}
	return &list, true
}
