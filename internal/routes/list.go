package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/turnstile-app/turnstile-backend/internal/handlers"
	"github.com/turnstile-app/turnstile-backend/internal/middleware"
)

func RegisterListRoutes(r gin.IRouter) {
	lists := r.Group("/lists")
	{
		lists.GET("", handlers.BrowseLists)
		lists.GET("/:slug", middleware.OptionalAuthMiddleware(), handlers.GetList)

		protected := lists.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("", middleware.WriteRateLimit(), handlers.CreateList)
			protected.DELETE("/:slug", handlers.DeleteList)
			protected.POST("/:slug/items", middleware.WriteRateLimit(), handlers.AddListItem)
			protected.DELETE("/:slug/items/:itemId", handlers.RemoveListItem)
			protected.POST("/:slug/follow", handlers.FollowList)
			protected.DELETE("/:slug/follow", handlers.UnfollowList)
		}
	}
}
