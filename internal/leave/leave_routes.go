package leave

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	authMW gin.HandlerFunc,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	ctxLogger := middleware.ContextLogger(logger)

	own := r.Group("/leave")
	own.Use(authMW, ctxLogger)
	{
		own.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "leave", "create"),
			middleware.Idempotency(rdb, logger),
			handler.Submit,
		)
		own.GET("", middleware.RBACAuthorize(rbacService, "leave", "read_own"), handler.ListOwn)
		own.GET("/today", middleware.RBACAuthorize(rbacService, "leave", "read_own"), handler.Today)
		own.GET("/balance", middleware.RBACAuthorize(rbacService, "leave", "read_own"), handler.Balance)
		own.GET("/calendar", middleware.RBACAuthorize(rbacService, "leave", "read_own"), handler.Calendar)
		own.GET("/:id", middleware.RBACAuthorize(rbacService, "leave", "read_own"), handler.GetByID)
		own.PUT("/:id", middleware.RBACAuthorize(rbacService, "leave", "update_own"), handler.Edit)
		own.DELETE("/:id", middleware.RBACAuthorize(rbacService, "leave", "delete_own"), handler.Cancel)
		own.PATCH("/:id/decision", middleware.RBACAuthorize(rbacService, "leave", "decide_hr"), handler.DecideAsHR)
	}

	hr := r.Group("/hr")
	hr.Use(authMW, ctxLogger, middleware.RBACAuthorize(rbacService, "leave", "review_hr"))
	{
		hr.GET("/leaves", handler.ListForHR)
		hr.GET("/leaves/pending", handler.ListPendingForHR)
	}

	manager := r.Group("/manager/:managerId")
	manager.Use(authMW, ctxLogger)
	{
		manager.GET("/leaves", middleware.RBACAuthorize(rbacService, "leave", "review_team"), handler.ListTeam)
		manager.PATCH("/leave/:id/approve", middleware.RBACAuthorize(rbacService, "leave", "decide_team"), handler.DecideAsManager)
	}

	r.GET("/admin/leaves",
		authMW, ctxLogger,
		middleware.RBACAuthorize(rbacService, "leave", "review_all"),
		handler.ListForAdmin,
	)
	r.PATCH("/leaves/:id/approve",
		authMW, ctxLogger,
		middleware.RBACAuthorize(rbacService, "leave", "decide_admin"),
		handler.DecideAsAdmin,
	)
}
