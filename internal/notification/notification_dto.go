package notification

import "time"

type ListNotificationsQuery struct {
	UnreadOnly bool   `form:"unread"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
	Locale     string `form:"lang"`
}

type NotificationResponse struct {
	ID        string     `json:"id"`
	LeaveID   string     `json:"leave_id"`
	Kind      string     `json:"kind"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Read      bool       `json:"read"`
	CreatedAt time.Time  `json:"created_at"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
}
