package apperror

import (
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string // Error code (e.g., INVALID_INPUT)
	Message    string // User-facing message
	HTTPStatus int
	Details    any
	Err        error // Wrapped original error (optional)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches on code and status so wrapped copies of a sentinel still compare equal.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.HTTPStatus == t.HTTPStatus && e.Message == t.Message
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap creates an AppError that wraps an existing error
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// WithDetails returns a copy of e carrying details for the response body.
func (e *AppError) WithDetails(details any) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

func RequiredField(field string) *AppError {
	return New(CodeValidation, field+" is required", http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return New(CodeValidation, field+" is invalid", http.StatusBadRequest)
}
