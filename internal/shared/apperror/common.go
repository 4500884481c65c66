package apperror

import "net/http"

// Shared sentinels. Module specific errors live in each module's errors package.
var (
	ErrNotFound = New(CodeNotFound, "Resource not found", http.StatusNotFound)

	ErrForbidden = New(CodeForbidden, "You do not have permission to access this resource", http.StatusForbidden)

	ErrInternal = New(CodeInternalError, "An unexpected error occurred", http.StatusInternalServerError)

	ErrUnauthorized = New(CodeUnauthorized, "Authentication is required", http.StatusUnauthorized)

	ErrInvalidInput = New(CodeInvalidInput, "The provided input is invalid", http.StatusBadRequest)

	ErrTooManyRequests = New(CodeTooMany, "Too many requests", http.StatusTooManyRequests)

	// Idempotency-Key reused while the first request still holds the lock.
	ErrIdempotencyInFlight = New(
		CodeConflict,
		"A request with this Idempotency-Key is still being processed",
		http.StatusConflict,
	)
)
