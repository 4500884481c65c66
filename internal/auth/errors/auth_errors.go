package autherrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)
	ErrTokenMissing = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
)
