package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-leave/internal/bootstrap"
	"go-leave/internal/config"
	"go-leave/internal/events"
	"go-leave/internal/messaging/kafka/consumer"
	"go-leave/internal/notification"
	"go-leave/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	if cfg.MongoURI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}

	mongoDB, disconnect, err := connection.ConnectMongoWithRetry(cfg.MongoURI, cfg.MongoDatabase, cfg.ConnRetries)
	if err != nil {
		return err
	}
	defer disconnect(context.Background())

	store, err := notification.NewStore(context.Background(), mongoDB)
	if err != nil {
		return err
	}
	translator, err := notification.NewTranslator(cfg.DefaultLocale)
	if err != nil {
		return err
	}

	var poster notification.Poster
	if cfg.MattermostURL != "" && cfg.MattermostToken != "" {
		poster = notification.NewMattermostClient(cfg.MattermostURL, cfg.MattermostToken)
	} else {
		logger.Warn("mattermost not configured, decisions are stored in the inbox only")
	}

	notificationService := notification.NewService(store, translator, poster, cfg.MattermostChannelID, zap.L())

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.LeaveDecisionTopic,
		GroupID:        "go-leave-notification",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	audit := bootstrap.NewStdoutAuditLogger(zap.L(), "go-leave-consumer")
	audit.Log(ctx, bootstrap.AuditLog{Action: "CONSUMER_START", Message: "Consumer started", Meta: map[string]any{"env": cfg.Env}})

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeLeaveDecisions(ctx, reader, notificationService, logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	audit.Log(ctx, bootstrap.AuditLog{
		Action:  "CONSUMER_SHUTDOWN",
		Message: "Consumer is shutting down",
		Meta:    map[string]any{"signal": sig.String()},
	})

	logger.Info("consumer shutting down")
	cancel()
	<-done

	return nil
}
