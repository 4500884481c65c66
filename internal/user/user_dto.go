package user

import "github.com/shopspring/decimal"

type CreateUserRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=6"`
	Role      string  `json:"role" binding:"required,role"`
	ManagerID *string `json:"manager_id" binding:"omitempty,uuid"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,role"`
}

type AssignManagerRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	ManagerID  string `json:"manager_id" binding:"required,uuid"`
}

type UpdateProfileRequest struct {
	Name     string `json:"name" binding:"omitempty,max=255"`
	Password string `json:"password"`
}

type UpdateBalancesRequest struct {
	LeaveBalancePaid *decimal.Decimal `json:"leave_balance_paid"`
	LeaveBalanceSick *decimal.Decimal `json:"leave_balance_sick"`
}

type ListUsersQuery struct {
	Role string `form:"role" binding:"omitempty,role"`
}

type UserResponse struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Email               string          `json:"email"`
	Role                string          `json:"role"`
	ManagerID           *string         `json:"manager_id,omitempty"`
	ManagerName         string          `json:"manager_name,omitempty"`
	LeaveBalancePaid    decimal.Decimal `json:"leave_balance_paid"`
	LeaveBalanceSick    decimal.Decimal `json:"leave_balance_sick"`
	LastLogin           *string         `json:"last_login,omitempty"`
	LastLeaveApprovedAt *string         `json:"last_leave_approved_at,omitempty"`
	LastLeaveRejectedAt *string         `json:"last_leave_rejected_at,omitempty"`
	CreatedAt           string          `json:"created_at"`
}
