package producer

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-leave/internal/messaging/kafka"
	kafkaMock "go-leave/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	messages []kafkago.Message
	failFor  map[string]error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if err, ok := w.failFor[string(m.Key)]; ok {
			return err
		}
		w.messages = append(w.messages, m)
	}
	return nil
}

func headerValue(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("no pending events", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().ListPending(ctx, batchSize).Return(nil, nil)

		sent, err := ProcessPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())

		require.NoError(t, err)
		assert.Zero(t, sent)
	})

	t.Run("list failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().ListPending(ctx, batchSize).Return(nil, errors.New("db down"))

		_, err := ProcessPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())

		assert.EqualError(t, err, "db down")
	})

	t.Run("sent and failed events are marked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failFor: map[string]error{"leave-2": errors.New("broker unavailable")}}

		repo.EXPECT().ListPending(ctx, batchSize).Return([]kafka.OutboxEvent{
			{ID: "o-1", RequestID: "req-1", AggregateType: "leave", AggregateID: "leave-1", EventType: "leave.decided", Topic: "leave.decision.v1", Payload: []byte(`{}`)},
			{ID: "o-2", AggregateType: "leave", AggregateID: "leave-2", EventType: "leave.decided", Topic: "leave.decision.v1", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkSent(ctx, "o-1").Return(nil)
		repo.EXPECT().MarkFailed(ctx, "o-2", "broker unavailable").Return(nil)

		sent, err := ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

		require.NoError(t, err)
		assert.Equal(t, 1, sent)
		require.Len(t, writer.messages, 1)

		msg := writer.messages[0]
		assert.Equal(t, "leave.decision.v1", msg.Topic)
		assert.Equal(t, "leave-1", string(msg.Key))
		assert.Equal(t, "leave.decided", headerValue(msg, "event_type"))
		assert.Equal(t, "req-1", headerValue(msg, "request_id"))
		assert.Equal(t, "o-1", headerValue(msg, "outbox_id"))
	})
}

func TestToMessage_OmitsEmptyRequestID(t *testing.T) {
	msg := toMessage(kafka.OutboxEvent{ID: "o-1", AggregateID: "a-1", EventType: "x"})

	assert.Empty(t, headerValue(msg, "request_id"))
	assert.Len(t, msg.Headers, 3)
}

func TestPurgeSentEvents(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC)

	t.Run("cutoff is a week back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().PurgeSent(ctx, time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)).Return(int64(4), nil)

		PurgeSentEvents(ctx, repo, zap.NewNop(), now)
	})

	t.Run("error is logged only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().PurgeSent(ctx, gomock.Any()).Return(int64(0), errors.New("db down"))

		assert.NotPanics(t, func() { PurgeSentEvents(ctx, repo, zap.NewNop(), now) })
	})
}
