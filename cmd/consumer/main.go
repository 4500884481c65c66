package main

import (
	"go-leave/internal/app"
	"go-leave/internal/config"
	"go-leave/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if err := app.RunConsumer(cfg); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
