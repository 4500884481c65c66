package domain

import (
	"errors"
	"strings"
)

// Role is the closed set of actor roles. Anything else is rejected at the boundary.
type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleManager  Role = "MANAGER"
	RoleHR       Role = "HR"
	RoleAdmin    Role = "ADMIN"
)

var ErrUnknownRole = errors.New("unknown role")

var allRoles = []Role{RoleEmployee, RoleManager, RoleHR, RoleAdmin}

// AllRoles returns every role in a stable order.
func AllRoles() []Role {
	out := make([]Role, len(allRoles))
	copy(out, allRoles)
	return out
}

// ParseRole accepts the canonical names case-insensitively. "USER" is the legacy name for EMPLOYEE.
func ParseRole(v string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "EMPLOYEE", "USER":
		return RoleEmployee, nil
	case "MANAGER":
		return RoleManager, nil
	case "HR":
		return RoleHR, nil
	case "ADMIN":
		return RoleAdmin, nil
	default:
		return "", ErrUnknownRole
	}
}

func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleHR, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
