package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/turnstile-app/turnstile-backend/internal/handlers"
	"github.com/turnstile-app/turnstile-backend/internal/middleware"
)

func RegisterSocialRoutes(r gin.IRouter) {
	users := r.Group("/users")
	{
		users.GET("/:username", handlers.GetProfile)
		users.GET("/:username/followers", handlers.GetFollowers)
		users.GET("/:username/following", handlers.GetFollowing)

		protected := users.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/:username/follow", handlers.FollowUser)
			protected.DELETE("/:username/follow", handlers.UnfollowUser)
		}
	}

	me := r.Group("/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.PUT("/profile", handlers.UpdateProfile)
		me.GET("/feed", handlers.GetFeed)
	}
}
