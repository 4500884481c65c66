package leave_test

import (
	"testing"

	"go-leave/internal/domain"
	"go-leave/internal/leave"

	"github.com/stretchr/testify/assert"
)

func TestDecideInitialStatus(t *testing.T) {
	tests := []struct {
		name     string
		role     domain.Role
		duration int
		approved int
		want     domain.LeaveStatus
	}{
		{"hr short leave", domain.RoleHR, 1, 0, domain.StatusPendingAdminApproval},
		{"hr long leave", domain.RoleHR, 20, 9, domain.StatusPendingAdminApproval},
		{"manager below threshold", domain.RoleManager, 4, 0, domain.StatusPendingHRApproval},
		{"manager at threshold", domain.RoleManager, 5, 0, domain.StatusPendingHRAdminApproval},
		{"employee short leave busy month", domain.RoleEmployee, 3, 6, domain.StatusPending},
		{"employee long leave busy month", domain.RoleEmployee, 6, 6, domain.StatusPendingAdminApproval},
		{"employee at both thresholds", domain.RoleEmployee, 5, 5, domain.StatusPendingAdminApproval},
		{"employee long leave quiet month", domain.RoleEmployee, 10, 4, domain.StatusPending},
		{"admin", domain.RoleAdmin, 30, 30, domain.StatusPending},
		{"unknown role at boundary", domain.Role("CONTRACTOR"), 5, 0, domain.StatusPending},
		{"unknown role above boundary", domain.Role(""), 6, 0, domain.StatusPendingAdminApproval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, leave.DecideInitialStatus(tt.role, tt.duration, tt.approved))
		})
	}
}

func TestDecideInitialStatus_Total(t *testing.T) {
	roles := append(domain.AllRoles(), domain.Role("UNKNOWN"))
	for _, role := range roles {
		for d := 0; d <= 15; d++ {
			for n := 0; n <= 8; n++ {
				first := leave.DecideInitialStatus(role, d, n)
				assert.NotEmpty(t, first)
				assert.False(t, first.Terminal())
				assert.Equal(t, first, leave.DecideInitialStatus(role, d, n))
			}
		}
	}
}
