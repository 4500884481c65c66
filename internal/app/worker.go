package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-leave/internal/bootstrap"
	"go-leave/internal/config"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/messaging/kafka/producer"
	"go-leave/internal/shared/connection"

	"go.uber.org/zap"
)

func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	_, sqlDB, err := connectDatabase(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.ConnRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	audit := bootstrap.NewStdoutAuditLogger(zap.L(), "go-leave-worker")
	audit.Log(ctx, bootstrap.AuditLog{Action: "WORKER_START", Message: "Worker started", Meta: map[string]any{"env": cfg.Env}})

	done := make(chan struct{})
	go func() {
		defer close(done)
		producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, 3*time.Second)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	audit.Log(ctx, bootstrap.AuditLog{
		Action:  "WORKER_SHUTDOWN",
		Message: "Worker is shutting down",
		Meta:    map[string]any{"signal": sig.String()},
	})

	logger.Info("worker shutting down")
	cancel()
	<-done

	return nil
}
