package leaveerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave id",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeValidation,
		"leave type must be one of SICK, CASUAL or EARNED",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeValidation,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeValidation,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrReasonRequired = apperror.New(
		apperror.CodeValidation,
		"reason is required",
		http.StatusBadRequest,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"leave already exists in overlapping period",
		http.StatusConflict,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave not found",
		http.StatusNotFound,
	)
	ErrNotLeaveOwner = apperror.New(
		apperror.CodeForbidden,
		"you can only manage your own leave requests",
		http.StatusForbidden,
	)
	ErrLeaveFinalized = apperror.New(
		apperror.CodeConflict,
		"leave has already been approved or rejected",
		http.StatusConflict,
	)

	// approval
	ErrInvalidDecision = apperror.New(
		apperror.CodeInvalidStatus,
		"status must be Approved or Rejected",
		http.StatusBadRequest,
	)
	ErrCommentRequired = apperror.New(
		apperror.CodeValidation,
		"comment is required",
		http.StatusBadRequest,
	)
	ErrAlreadyDecided = apperror.New(
		apperror.CodeInvalidState,
		"leave has already been approved or rejected",
		http.StatusConflict,
	)
	ErrNotAuthorizedToDecide = apperror.New(
		apperror.CodeForbidden,
		"you are not allowed to decide this leave",
		http.StatusForbidden,
	)
	ErrManagerMismatch = apperror.New(
		apperror.CodeForbidden,
		"manager id does not match the authenticated user",
		http.StatusForbidden,
	)
	ErrInvalidRoleFilter = apperror.New(
		apperror.CodeInvalidInput,
		"unknown role filter",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidStatus,
		"unknown leave status filter",
		http.StatusBadRequest,
	)
)
