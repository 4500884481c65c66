package attendance

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

type DailyAttendanceEntry struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type LateComer struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	LastLogin string `json:"last_login"`
}

// LeaveSummary maps an owner role to the approved leave days taken.
type LeaveSummary map[string]int

type TeamDashboard struct {
	TotalLeavesPending int `json:"total_leaves_pending"`
	UpcomingLeaves     int `json:"upcoming_leaves"`
	LatecomerCount     int `json:"latecomer_count"`
}

type MonthlyTrend struct {
	Month      int `json:"month"`
	LeaveCount int `json:"leave_count"`
}

type DateRangeQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}
