package usererrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrUserAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"User with the same email already exists",
		http.StatusConflict,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid role",
		http.StatusBadRequest,
	)

	ErrRoleNotAssignable = apperror.New(
		apperror.CodeInvalidInput,
		"Role must be one of EMPLOYEE, MANAGER or HR",
		http.StatusBadRequest,
	)

	ErrAdminRoleImmutable = apperror.New(
		apperror.CodeForbidden,
		"Cannot change the role of an admin",
		http.StatusForbidden,
	)

	ErrManagerOnlyForEmployee = apperror.New(
		apperror.CodeInvalidInput,
		"manager_id can only be set for employees",
		http.StatusBadRequest,
	)

	ErrInvalidManager = apperror.New(
		apperror.CodeInvalidInput,
		"Manager not found or user is not a manager",
		http.StatusBadRequest,
	)

	ErrNotAnEmployee = apperror.New(
		apperror.CodeInvalidInput,
		"Only employees can be assigned to a manager",
		http.StatusBadRequest,
	)

	ErrSelfManager = apperror.New(
		apperror.CodeInvalidInput,
		"A user cannot be their own manager",
		http.StatusBadRequest,
	)

	ErrInvalidBalance = apperror.New(
		apperror.CodeInvalidInput,
		"Leave balances cannot be negative",
		http.StatusBadRequest,
	)

	ErrInvalidPassword = apperror.New(
		apperror.CodeInvalidInput,
		"Password must be at least 6 characters",
		http.StatusBadRequest,
	)
)
