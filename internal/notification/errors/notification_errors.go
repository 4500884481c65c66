package notificationerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrInvalidNotificationID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid notification id",
		http.StatusBadRequest,
	)
	ErrNotificationNotFound = apperror.New(
		apperror.CodeNotFound,
		"notification not found",
		http.StatusNotFound,
	)
	ErrInvalidEvent = apperror.New(
		apperror.CodeValidation,
		"leave decided event is missing leave, owner or a final status",
		http.StatusBadRequest,
	)
)
