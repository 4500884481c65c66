package rbac

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, logger *zap.Logger) {
	group := r.Group("/rbac")
	group.Use(authMW, middleware.ContextLogger(logger))
	{
		group.POST("/enforce", handler.Enforce)
		group.GET("/permissions", handler.MyPermissions)
	}
}
