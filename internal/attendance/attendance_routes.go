package attendance

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
	ctxLogger := middleware.ContextLogger(logger)

	attendance := r.Group("/attendance")
	attendance.Use(authMW, ctxLogger)
	{
		attendance.GET("/daily", middleware.RBACAuthorize(rbacService, "attendance", "read"), handler.Daily)
		attendance.GET("/latecomers", middleware.RBACAuthorize(rbacService, "attendance", "read"), handler.LateComers)
		attendance.GET("/team-dashboard", middleware.RBACAuthorize(rbacService, "attendance", "read_team"), handler.TeamDashboard)
	}

	analytics := r.Group("/analytics")
	analytics.Use(authMW, ctxLogger, middleware.RBACAuthorize(rbacService, "analytics", "read"))
	{
		analytics.GET("/leaves", handler.LeaveSummary)
		analytics.GET("/leaves/export",
			middleware.RateLimitByUser(0.2, 2),
			handler.ExportLeaveSummary,
		)
		analytics.GET("/trends", handler.MonthlyTrends)
	}
}
