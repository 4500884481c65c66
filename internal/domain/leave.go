package domain

import (
	"errors"
	"strings"
)

type LeaveStatus string

const (
	StatusPending                = LeaveStatus("PENDING")
	StatusPendingAdminApproval   = LeaveStatus("PENDING_ADMIN_APPROVAL")
	StatusPendingHRApproval      = LeaveStatus("PENDING_HR_APPROVAL")
	StatusPendingHRAdminApproval = LeaveStatus("PENDING_HR_ADMIN_APPROVAL")
	StatusApproved               = LeaveStatus("APPROVED")
	StatusRejected               = LeaveStatus("REJECTED")
)

var ErrUnknownLeaveStatus = errors.New("unknown leave status")

func ParseLeaveStatus(v string) (LeaveStatus, error) {
	s := LeaveStatus(strings.ToUpper(strings.TrimSpace(v)))
	switch s {
	case StatusPending, StatusPendingAdminApproval, StatusPendingHRApproval,
		StatusPendingHRAdminApproval, StatusApproved, StatusRejected:
		return s, nil
	}
	return "", ErrUnknownLeaveStatus
}

// Terminal reports whether no further decision can be made.
func (s LeaveStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type LeaveType string

const (
	LeaveTypeSick   = LeaveType("SICK")
	LeaveTypeCasual = LeaveType("CASUAL")
	LeaveTypeEarned = LeaveType("EARNED")
)

var ErrUnknownLeaveType = errors.New("unknown leave type")

func ParseLeaveType(v string) (LeaveType, error) {
	t := LeaveType(strings.ToUpper(strings.TrimSpace(v)))
	switch t {
	case LeaveTypeSick, LeaveTypeCasual, LeaveTypeEarned:
		return t, nil
	}
	return "", ErrUnknownLeaveType
}

// Actor is the authenticated caller as seen by the services.
type Actor struct {
	ID   string
	Role Role
}
