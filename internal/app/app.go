package app

import (
	"context"
	"fmt"

	"go-leave/internal/config"
	"go-leave/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and registers every module on router.
// The returned cleanup closes the connections.
func BuildApp(router *gin.Engine, cfg *config.Config) (func(), error) {
	logger := zap.L().Named("app")

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	gormDB, sqlDB, err := connectDatabase(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	if err := Migrate(context.Background(), sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.ConnRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	logger.Info("redis connection established")

	cleanups := []func(context.Context) error{
		func(context.Context) error { return sqlDB.Close() },
		func(context.Context) error { return redisClient.Close() },
	}

	var mongoDB *mongo.Database
	if cfg.MongoURI != "" {
		db, disconnect, err := connection.ConnectMongoWithRetry(cfg.MongoURI, cfg.MongoDatabase, cfg.ConnRetries)
		if err != nil {
			runCleanups(cleanups)
			return nil, err
		}
		mongoDB = db
		cleanups = append(cleanups, disconnect)
	} else {
		logger.Warn("MONGODB_URI not set, notification inbox disabled")
	}

	if err := registerModules(router, cfg, sqlDB, gormDB, redisClient, mongoDB, zap.L()); err != nil {
		runCleanups(cleanups)
		return nil, err
	}

	return func() { runCleanups(cleanups) }, nil
}

func runCleanups(cleanups []func(context.Context) error) {
	for i := len(cleanups) - 1; i >= 0; i-- {
		if err := cleanups[i](context.Background()); err != nil {
			zap.L().Warn("cleanup failed", zap.Error(err))
		}
	}
}
