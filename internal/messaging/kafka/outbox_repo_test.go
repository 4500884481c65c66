package kafka_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"go-leave/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutboxEvent(t *testing.T) {
	event, err := kafka.NewOutboxEvent("leave", "leave-1", "leave.decided", "leave.decision.v1", "req-1", map[string]string{"status": "APPROVED"})

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, kafka.OutboxStatusPending, event.Status)
	assert.JSONEq(t, `{"status":"APPROVED"}`, string(event.Payload))
	assert.NoError(t, kafka.ValidateOutboxEvent(event))
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := kafka.OutboxEvent{ID: "o-1", Topic: "t", Payload: []byte(`{}`), Status: kafka.OutboxStatusPending}

	tests := []struct {
		name   string
		mutate func(e *kafka.OutboxEvent)
	}{
		{name: "missing id", mutate: func(e *kafka.OutboxEvent) { e.ID = "" }},
		{name: "missing topic", mutate: func(e *kafka.OutboxEvent) { e.Topic = "" }},
		{name: "empty payload", mutate: func(e *kafka.OutboxEvent) { e.Payload = nil }},
		{name: "unknown status", mutate: func(e *kafka.OutboxEvent) { e.Status = "queued" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			assert.Error(t, kafka.ValidateOutboxEvent(e))
		})
	}
}

func TestOutboxRepository_CreateInTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	event := kafka.OutboxEvent{
		ID: "o-1", AggregateType: "leave", AggregateID: "leave-1",
		EventType: "leave.decided", Topic: "leave.decision.v1", Payload: []byte(`{}`), Status: kafka.OutboxStatusPending,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs("o-1", "", "leave", "leave-1", "leave.decided", "leave.decision.v1", []byte(`{}`), kafka.OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, kafka.NewOutboxRepository(db).WithTx(tx).Create(context.Background(), event))
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	due := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at"}).
		AddRow("o-1", "req-1", "leave", "leave-1", "leave.decided", "leave.decision.v1", []byte(`{}`), kafka.OutboxStatusFailed, 2, due)

	mock.ExpectQuery(regexp.QuoteMeta("FROM outbox_events")).
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 10).
		WillReturnRows(rows)

	events, err := kafka.NewOutboxRepository(db).ListPending(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "req-1", events[0].RequestID)
	assert.Equal(t, 2, events[0].RetryCount)
	assert.Equal(t, due, events[0].NextRetryAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs("o-1", kafka.OutboxStatusFailed, "broker unavailable", kafka.MaxOutboxRetries, kafka.OutboxStatusDead).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = kafka.NewOutboxRepository(db).MarkFailed(context.Background(), "o-1", "broker unavailable")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_PurgeSent(t *testing.T) {
	cutoff := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	t.Run("returns removed rows", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM outbox_events")).
			WithArgs(kafka.OutboxStatusSent, cutoff).
			WillReturnResult(sqlmock.NewResult(0, 3))

		removed, err := kafka.NewOutboxRepository(db).PurgeSent(context.Background(), cutoff)

		require.NoError(t, err)
		assert.Equal(t, int64(3), removed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM outbox_events")).WillReturnError(errors.New("db down"))

		_, err = kafka.NewOutboxRepository(db).PurgeSent(context.Background(), cutoff)

		assert.EqualError(t, err, "db down")
	})
}
