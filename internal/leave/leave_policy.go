package leave

import "go-leave/internal/domain"

const (
	DurationThresholdDays    = 5
	MonthlyApprovedThreshold = 5
	// AdminApprovalThresholdDays is the duration an admin may override once exceeded.
	AdminApprovalThresholdDays = 5
)

// DecideInitialStatus picks the approval chain a new or edited leave starts in.
func DecideInitialStatus(role domain.Role, durationDays, approvedLeavesThisMonth int) domain.LeaveStatus {
	switch role {
	case domain.RoleHR:
		return domain.StatusPendingAdminApproval
	case domain.RoleManager:
		if durationDays >= DurationThresholdDays {
			return domain.StatusPendingHRAdminApproval
		}
		return domain.StatusPendingHRApproval
	case domain.RoleEmployee:
		if durationDays >= DurationThresholdDays && approvedLeavesThisMonth >= MonthlyApprovedThreshold {
			return domain.StatusPendingAdminApproval
		}
		return domain.StatusPending
	case domain.RoleAdmin:
		return domain.StatusPending
	}

	if durationDays > AdminApprovalThresholdDays {
		return domain.StatusPendingAdminApproval
	}
	return domain.StatusPending
}
