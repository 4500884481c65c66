package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"go-leave/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type submitPayload struct {
	LeaveType string `json:"leave_type" validate:"required,leave_type"`
	Email     string `json:"email" validate:"omitempty,email"`
	Reason    string `json:"reason" validate:"omitempty,max=5"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	apperror.RegisterValidations(v)
	return v
}

func TestMapValidationError(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name        string
		payload     submitPayload
		wantMessage string
		wantField   string
	}{
		{
			name:        "required",
			payload:     submitPayload{},
			wantMessage: "Leave Type is required",
			wantField:   "leave_type",
		},
		{
			name:        "unknown leave type",
			payload:     submitPayload{LeaveType: "VACATION"},
			wantMessage: "Leave Type must be one of SICK, CASUAL, EARNED",
			wantField:   "leave_type",
		},
		{
			name:        "bad email",
			payload:     submitPayload{LeaveType: "sick", Email: "nope"},
			wantMessage: "Email must be a valid email address",
			wantField:   "email",
		},
		{
			name:        "too long",
			payload:     submitPayload{LeaveType: "SICK", Reason: "flu and fever"},
			wantMessage: "Reason must be at most 5 characters",
			wantField:   "reason",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := apperror.MapValidationError(v.Struct(tt.payload))

			var appErr *apperror.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
			assert.Equal(t, tt.wantMessage, appErr.Message)
			assert.Equal(t, tt.wantField, appErr.Details.(map[string]string)["field"])
		})
	}
}

func TestMapValidationError_NonValidatorError(t *testing.T) {
	err := apperror.MapValidationError(errors.New("unexpected EOF"))

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Invalid input", appErr.Message)
	assert.Nil(t, appErr.Details)
}
