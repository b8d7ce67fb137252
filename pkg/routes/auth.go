package routes

import (
	"github.com/gin-gonic/gin"

	"bakery_frontdesk/pkg/controllers/auth"
	"bakery_frontdesk/pkg/middleware"
)

// RegisterAuthRoutes registers login/logout and the identity probe.
func RegisterAuthRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/logout", auth.Logout)
		authGroup.GET("/me", middleware.RequireAuth(), auth.Me)
	}
}
