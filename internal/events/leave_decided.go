package events

import "time"

const (
	LeaveDecisionTopic    = "leave.decision.v1"
	LeaveDecidedEventType = "leave.decided"
)

// LeaveDecidedEvent is emitted once an approver changes a leave's status.
type LeaveDecidedEvent struct {
	EventType   string    `json:"event_type"`
	LeaveID     string    `json:"leave_id"`
	OwnerID     string    `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	OwnerEmail  string    `json:"owner_email"`
	LeaveType   string    `json:"leave_type"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Status      string    `json:"status"`
	DecidedBy   string    `json:"decided_by"`
	DeciderRole string    `json:"decider_role"`
	Comment     string    `json:"comment"`
	RequestID   string    `json:"request_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
