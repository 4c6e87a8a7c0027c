package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turnstile-app/turnstile-backend/internal/database"
	"github.com/turnstile-app/turnstile-backend/internal/models"
)

func TestCreateListAndAddItems_MaintainsItemCount(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	user := models.User{Username: "curator", Email: "curator@example.com"}
	require.NoError(t, database.DB.Create(&user).Error)

	c, w := authedRequest(t, user.ID, "POST", "/api/lists", gin.H{
		"name":     "Cathedrals of Baseball",
		"listType": "VENUE",
		"sport":    "baseball",
	})
	CreateList(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		List models.List `json:"list"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.ListSourceUser, created.List.Source)
	assert.Equal(t, 0, created.List.ItemCount)

	venue := models.Venue{Name: "Fenway Park", Slug: "fenway-park"}
	require.NoError(t, database.DB.Create(&venue).Error)

	c, w = authedRequest(t, user.ID, "POST", "/api/lists/"+created.List.Slug+"/items", gin.H{
		"venueId": venue.ID,
	})
	c.Params = gin.Params{{Key: "slug", Value: created.List.Slug}}
	AddListItem(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var list models.List
	require.NoError(t, database.DB.First(&list, "id = ?", created.List.ID).Error)
	assert.Equal(t, 1, list.ItemCount)

	var item models.ListItem
	require.NoError(t, database.DB.First(&item, "list_id = ?", list.ID).Error)
	assert.Equal(t, "Fenway Park", item.DisplayName, "display name defaults to the venue's")

	c, w = authedRequest(t, user.ID, "DELETE", "/api/lists/"+list.Slug+"/items/"+item.ID, nil)
	c.Params = gin.Params{{Key: "slug", Value: list.Slug}, {Key: "itemId", Value: item.ID}}
	RemoveListItem(c)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, database.DB.First(&list, "id = ?", list.ID).Error)
	assert.Equal(t, 0, list.ItemCount)
}

func TestAddListItem_RejectsMismatchedReference(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	user := models.User{Username: "mixer", Email: "mixer@example.com"}
	require.NoError(t, database.DB.Create(&user).Error)

	list := models.List{
		Name: "Tag List", Slug: "tag-list",
		ListType: models.ListTypeEvent, Source: models.ListSourceUser,
		OwnerID: &user.ID,
	}
	require.NoError(t, database.DB.Create(&list).Error)

	c, w := authedRequest(t, user.ID, "POST", "/api/lists/tag-list/items", gin.H{
		"venueId": "some-venue",
	})
	c.Params = gin.Params{{Key: "slug", Value: "tag-list"}}
	AddListItem(c)

	assert.Equal(t, http.StatusBadRequest, w.Code, "event lists must not accept venue items")
}

func TestListMutation_OwnerOnly(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	owner := models.User{Username: "owner", Email: "owner@example.com"}
	stranger := models.User{Username: "stranger", Email: "stranger@example.com"}
	require.NoError(t, database.DB.Create(&owner).Error)
	require.NoError(t, database.DB.Create(&stranger).Error)

	list := models.List{
		Name: "Private Parks", Slug: "private-parks",
		ListType: models.ListTypeVenue, Source: models.ListSourceUser,
		OwnerID: &owner.ID,
	}
	require.NoError(t, database.DB.Create(&list).Error)

	c, w := authedRequest(t, stranger.ID, "DELETE", "/api/lists/private-parks", nil)
	c.Params = gin.Params{{Key: "slug", Value: "private-parks"}}
	DeleteList(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteList_SystemListsArePermanent(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	user := models.User{Username: "vandal", Email: "vandal@example.com"}
	require.NoError(t, database.DB.Create(&user).Error)

	list := models.List{
		Name: "All 30 MLB Stadiums", Slug: "all-30-mlb-stadiums",
		ListType: models.ListTypeVenue, Source: models.ListSourceSystem,
	}
	require.NoError(t, database.DB.Create(&list).Error)

	c, w := authedRequest(t, user.ID, "DELETE", "/api/lists/all-30-mlb-stadiums", nil)
	c.Params = gin.Params{{Key: "slug", Value: "all-30-mlb-stadiums"}}
	DeleteList(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestFollowList_Idempotent(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	user := models.User{Username: "follower", Email: "follower@example.com"}
	require.NoError(t, database.DB.Create(&user).Error)

	list := models.List{
		Name: "Grand Slams", Slug: "grand-slams",
		ListType: models.ListTypeEvent, Source: models.ListSourceSystem,
	}
	require.NoError(t, database.DB.Create(&list).Error)

	for _, wantStatus := range []int{http.StatusCreated, http.StatusOK} {
		c, w := authedRequest(t, user.ID, "POST", "/api/lists/grand-slams/follow", nil)
		c.Params = gin.Params{{Key: "slug", Value: "grand-slams"}}
		FollowList(c)
		assert.Equal(t, wantStatus, w.Code)
	}

	var count int64
	database.DB.Model(&models.ListFollow{}).
		Where("user_id = ? AND list_id = ?", user.ID, list.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}
