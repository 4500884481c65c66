package app

import (
	"context"
	"database/sql"

	"go-leave/internal/attendance"
	"go-leave/internal/auth"
	"go-leave/internal/config"
	"go-leave/internal/leave"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/middleware"
	"go-leave/internal/notification"
	"go-leave/internal/rbac"
	"go-leave/internal/rbac/infra"
	"go-leave/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	mongoDB *mongo.Database,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(rbac.ModelText)
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer, rbac.Grants, rbac.Inherits, logger)
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo, cfg.JWTSecret, cfg.TokenTTL, logger)
	userService := user.NewService(db, userRepo, rdb, logger)
	attendanceService := attendance.NewService(attendanceRepo, userService, rdb, logger)
	leaveService := leave.NewService(db, leaveRepo, logger)
	approvalService := leave.NewApprovalService(
		db,
		leaveRepo,
		leave.NewOutboxEventPublisher(outboxRepo),
		attendanceService,
		logger,
	)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.IsProduction(), cfg.TokenTTL, logger)
	userHandler := user.NewHandler(userService, logger)
	leaveHandler := leave.NewHandler(leaveService, approvalService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())
	authMW := middleware.AuthMiddleware(cfg.JWTSecret)

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authMW)
		user.RegisterRoutes(api, userHandler, rbacService, authMW, logger)
		leave.RegisterRoutes(api, leaveHandler, rbacService, authMW, rdb, logger)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, authMW, logger)
		rbac.RegisterRoutes(api, rbacHandler, authMW, logger)
	}

	if mongoDB != nil {
		store, err := notification.NewStore(context.Background(), mongoDB)
		if err != nil {
			return err
		}
		translator, err := notification.NewTranslator(cfg.DefaultLocale)
		if err != nil {
			return err
		}
		// the API only reads the inbox, delivery happens in the consumer
		notificationService := notification.NewService(store, translator, nil, "", logger)
		notification.RegisterRoutes(api, notification.NewHandler(notificationService, logger), rbacService, authMW, logger)
	}

	return nil
}
