package user

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
	admin := r.Group("/admin")
	admin.Use(authMW, middleware.ContextLogger(logger))
	{
		admin.POST("/users",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "user", "manage"),
			handler.Create,
		)
		admin.GET("/users",
			middleware.RBACAuthorize(rbacService, "user", "read"),
			handler.List,
		)
		admin.PATCH("/users/:id/role",
			middleware.RBACAuthorize(rbacService, "user", "manage"),
			handler.UpdateRole,
		)
		admin.POST("/assign-manager",
			middleware.RBACAuthorize(rbacService, "user", "manage"),
			handler.AssignManager,
		)
	}

	users := r.Group("/users")
	users.Use(authMW, middleware.ContextLogger(logger))
	{
		users.PATCH("/:id/balances",
			middleware.RBACAuthorize(rbacService, "user", "balance"),
			handler.UpdateBalances,
		)
	}

	profile := r.Group("/profile")
	profile.Use(authMW, middleware.ContextLogger(logger))
	{
		profile.GET("", handler.GetProfile)
		profile.PUT("", middleware.RateLimitByUser(0.5, 3), handler.UpdateProfile)
	}

	r.GET("/manager/:managerId/team",
		authMW,
		middleware.ContextLogger(logger),
		middleware.RBACAuthorize(rbacService, "user", "read_team"),
		handler.ListTeam,
	)
}
