package consumer

import (
	"context"
	"encoding/json"

	"go-leave/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type LeaveDecidedHandler interface {
	HandleLeaveDecided(ctx context.Context, event events.LeaveDecidedEvent) error
}

// ConsumeLeaveDecisions runs until ctx is cancelled. Messages that cannot be decoded
// are committed and skipped; handler failures are left uncommitted for redelivery.
func ConsumeLeaveDecisions(
	ctx context.Context,
	reader MessageReader,
	handler LeaveDecidedHandler,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_decision")
	log.Info("leave decision consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave decision consumer stopped")
				return
			}
			log.Error("fetch leave decision message failed", zap.Error(err))
			continue
		}

		handleMessage(ctx, reader, handler, msg, log)
	}
}

func handleMessage(
	ctx context.Context,
	reader MessageReader,
	handler LeaveDecidedHandler,
	msg kafkago.Message,
	log *zap.Logger,
) {
	var event events.LeaveDecidedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode leave decided event failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		_ = reader.CommitMessages(ctx, msg)
		return
	}
	if event.RequestID == "" {
		event.RequestID = header(msg, "request_id")
	}

	if err := handler.HandleLeaveDecided(ctx, event); err != nil {
		log.Error("handle leave decided event failed",
			zap.String("request_id", event.RequestID),
			zap.String("leave_id", event.LeaveID),
			zap.String("status", event.Status),
			zap.Error(err),
		)
		return
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit leave decision message failed", zap.Error(err))
		return
	}

	log.Info("leave decision notified",
		zap.String("request_id", event.RequestID),
		zap.String("leave_id", event.LeaveID),
		zap.String("owner_id", event.OwnerID),
		zap.String("status", event.Status),
	)
}

func header(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
