package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/turnstile-app/turnstile-backend/internal/handlers"
	"github.com/turnstile-app/turnstile-backend/internal/middleware"
)

func RegisterAuthRoutes(r gin.IRouter) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
		auth.GET("/me", middleware.AuthMiddleware(), handlers.GetMe)
	}
}
