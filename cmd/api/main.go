package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-leave/internal/app"
	"go-leave/internal/bootstrap"
	"go-leave/internal/config"
	"go-leave/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	apperror.Init()
	r := gin.Default()

	// build dependency + routes
	cleanup, err := app.BuildApp(r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = bootstrap.RunHTTPServer(
		ctx,
		r,
		bootstrap.ServerConfig{
			Port:            cfg.Port,
			Env:             cfg.Env,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: cfg.ShutdownTimeout,
		},
		bootstrap.NewStdoutAuditLogger(logger, "go-leave-api"),
		logger,
	)
	if err != nil {
		logger.Error("http server stopped with error", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
