package apperror

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP flattens any error into the shape written by response.Error.
// Unknown errors become a 500 without leaking their text.
func ToHTTP(err error) HTTPError {
	if err == nil {
		return HTTPError{Status: 200}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		err = MapValidationError(verrs)
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}
	}

	return HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}
}
