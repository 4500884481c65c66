package attendanceerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrInvalidDate = apperror.New(
		apperror.CodeValidation,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidRange = apperror.New(
		apperror.CodeValidation,
		"from must be on or before to",
		http.StatusBadRequest,
	)
	ErrIncompleteRange = apperror.New(
		apperror.CodeValidation,
		"from and to must be given together",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeValidation,
		"year is invalid",
		http.StatusBadRequest,
	)
	ErrNoPopulation = apperror.New(
		apperror.CodeForbidden,
		"role has no attendance view",
		http.StatusForbidden,
	)
	ErrNotAManager = apperror.New(
		apperror.CodeForbidden,
		"team dashboard is only available to managers",
		http.StatusForbidden,
	)
)
