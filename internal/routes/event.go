package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/turnstile-app/turnstile-backend/internal/handlers"
	"github.com/turnstile-app/turnstile-backend/internal/middleware"
)

func RegisterEventRoutes(r gin.IRouter) {
	events := r.Group("/events")
	{
		events.GET("", handlers.ListEvents)
		events.GET("/:slug", handlers.GetEvent)
	}

	logs := r.Group("/logs")
	logs.Use(middleware.AuthMiddleware())
	{
		logs.POST("", middleware.WriteRateLimit(), handlers.LogEvent)
		logs.DELETE("/:id", handlers.DeleteLog)
	}

	r.GET("/me/logs", middleware.AuthMiddleware(), handlers.GetMyLogs)
}
