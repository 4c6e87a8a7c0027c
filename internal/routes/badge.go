package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/turnstile-app/turnstile-backend/internal/handlers"
	"github.com/turnstile-app/turnstile-backend/internal/middleware"
)

func RegisterBadgeRoutes(r gin.IRouter) {
	me := r.Group("/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("/badges", handlers.GetMyBadges)
		me.GET("/badges/:listId/items", handlers.GetBadgeItems)
		me.GET("/tracked", handlers.GetTrackedProgress)
	}

	r.GET("/users/:username/badges", handlers.GetUserBadges)
}
