package notification

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	authMW gin.HandlerFunc,
	logger *zap.Logger,
) {
	notifications := r.Group("/notifications")
	notifications.Use(
		authMW,
		middleware.ContextLogger(logger),
		middleware.RBACAuthorize(rbacService, "notification", "read"),
	)
	{
		notifications.GET("", handler.List)
		notifications.PATCH("/:id/read", handler.MarkRead)
	}
}
