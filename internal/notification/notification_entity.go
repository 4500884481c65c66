package notification

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	KindLeaveApproved = "leave_approved"
	KindLeaveRejected = "leave_rejected"
)

// Notification is one inbox entry. EventKey is unique so redelivered events do not duplicate.
type Notification struct {
	ID        bson.ObjectID  `bson:"_id,omitempty"`
	EventKey  string         `bson:"event_key"`
	UserID    string         `bson:"user_id"`
	LeaveID   string         `bson:"leave_id"`
	Kind      string         `bson:"kind"`
	Data      map[string]any `bson:"data"`
	Title     string         `bson:"title"`
	Message   string         `bson:"message"`
	Locale    string         `bson:"locale"`
	RequestID string         `bson:"request_id,omitempty"`
	Read      bool           `bson:"read"`
	CreatedAt time.Time      `bson:"created_at"`
	ReadAt    *time.Time     `bson:"read_at,omitempty"`
}
