package leave

import "github.com/shopspring/decimal"

type SubmitLeaveRequest struct {
	Type      string `json:"type" binding:"required,leave_type"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

// EditLeaveRequest keeps the stored reason when Reason is empty.
type EditLeaveRequest struct {
	Type      string `json:"type" binding:"required,leave_type"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason"`
}

type DecisionRequest struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
}

type ListLeavesQuery struct {
	Status string `form:"status"`
	Role   string `form:"role"`
}

type LeaveResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	UserName       string  `json:"user_name,omitempty"`
	UserRole       string  `json:"user_role,omitempty"`
	Type           string  `json:"type"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	Duration       int     `json:"duration"`
	Reason         string  `json:"reason"`
	Status         string  `json:"status"`
	ManagerComment *string `json:"manager_comment,omitempty"`
	HRComment      *string `json:"hr_comment,omitempty"`
	DecidedBy      *string `json:"decided_by,omitempty"`
	DecidedAt      *string `json:"decided_at,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

type TodayStatusResponse struct {
	OnLeaveToday bool           `json:"on_leave_today"`
	Leave        *LeaveResponse `json:"leave,omitempty"`
}

type BalanceLine struct {
	Allotted  decimal.Decimal `json:"allotted"`
	Used      decimal.Decimal `json:"used"`
	Remaining decimal.Decimal `json:"remaining"`
}

type BalanceResponse struct {
	Year int         `json:"year"`
	Paid BalanceLine `json:"paid"`
	Sick BalanceLine `json:"sick"`
}

type CalendarEvent struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Title  string `json:"title"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Status string `json:"status"`
	Color  string `json:"color"`
}
