package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/turnstile-app/turnstile-backend/internal/handlers"
	"github.com/turnstile-app/turnstile-backend/internal/middleware"
)

func RegisterUploadRoutes(r gin.IRouter) {
	uploads := r.Group("/uploads")
	uploads.Use(middleware.AuthMiddleware(), middleware.WriteRateLimit())
	{
		uploads.POST("/photo", handlers.UploadPhoto)
	}
}
