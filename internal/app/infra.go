package app

import (
	"database/sql"
	"fmt"

	"go-leave/internal/config"
	"go-leave/internal/shared/connection"

	"gorm.io/gorm"
)

func connectDatabase(cfg *config.Config) (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		cfg.ConnRetries,
	)
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("get sql.DB: %w", err)
	}
	return gormDB, sqlDB, nil
}
