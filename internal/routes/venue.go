package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/turnstile-app/turnstile-backend/internal/handlers"
	"github.com/turnstile-app/turnstile-backend/internal/middleware"
)

func RegisterVenueRoutes(r gin.IRouter) {
	venues := r.Group("/venues")
	{
		venues.GET("", handlers.ListVenues)
		venues.GET("/:slug", handlers.GetVenue)

		protected := venues.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/:slug/visits", middleware.WriteRateLimit(), handlers.MarkVisit)
			protected.DELETE("/:slug/visits/:relationship", handlers.RemoveVisit)
		}
	}

	r.GET("/me/visits", middleware.AuthMiddleware(), handlers.GetMyVisits)
}
