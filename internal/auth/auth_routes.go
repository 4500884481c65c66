package auth

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me", authMW, middleware.RateLimitByUser(2, 5), handler.Me)
	}
}
