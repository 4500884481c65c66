package leave

import (
	"context"

	"go-leave/internal/events"
	"go-leave/internal/messaging/kafka"
)

type EventPublisher interface {
	PublishLeaveDecided(ctx context.Context, event events.LeaveDecidedEvent) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishLeaveDecided(context.Context, events.LeaveDecidedEvent) error {
	return nil
}

type outboxEventPublisher struct {
	outbox kafka.OutboxRepository
}

// NewOutboxEventPublisher queues events in the outbox table; the worker ships them to Kafka.
func NewOutboxEventPublisher(outbox kafka.OutboxRepository) EventPublisher {
	if outbox == nil {
		return noopEventPublisher{}
	}
	return &outboxEventPublisher{outbox: outbox}
}

func (p *outboxEventPublisher) PublishLeaveDecided(ctx context.Context, event events.LeaveDecidedEvent) error {
	msg, err := kafka.NewOutboxEvent(
		"leave",
		event.LeaveID,
		event.EventType,
		events.LeaveDecisionTopic,
		event.RequestID,
		event,
	)
	if err != nil {
		return err
	}
	return p.outbox.Create(ctx, msg)
}

// SummaryInvalidator drops cached analytics after leave data changes.
type SummaryInvalidator interface {
	InvalidateLeaveSummary(ctx context.Context) error
}

type noopInvalidator struct{}

func (noopInvalidator) InvalidateLeaveSummary(context.Context) error { return nil }
