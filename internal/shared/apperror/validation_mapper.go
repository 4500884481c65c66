package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// leave_type -> Leave Type
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return cases.Title(language.English).String(s)
}

// MapValidationError reports the first failing field only. Details carry the
// json field name so clients can highlight it.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return New(CodeValidation, "Invalid input", http.StatusBadRequest)
	}

	e := errs[0]
	field := formatFieldName(e.Field())

	var appErr *AppError
	switch e.Tag() {
	case "required":
		appErr = RequiredField(field)
	case "role":
		appErr = New(CodeValidation, field+" must be one of EMPLOYEE, MANAGER, HR, ADMIN", http.StatusBadRequest)
	case "leave_type":
		appErr = New(CodeValidation, field+" must be one of SICK, CASUAL, EARNED", http.StatusBadRequest)
	case "email":
		appErr = New(CodeValidation, field+" must be a valid email address", http.StatusBadRequest)
	case "uuid":
		appErr = New(CodeValidation, field+" must be a valid id", http.StatusBadRequest)
	case "min":
		appErr = New(CodeValidation, field+" must be at least "+e.Param()+" characters", http.StatusBadRequest)
	case "max":
		appErr = New(CodeValidation, field+" must be at most "+e.Param()+" characters", http.StatusBadRequest)
	default:
		appErr = InvalidField(field)
	}
	return appErr.WithDetails(map[string]string{"field": e.Field(), "rule": e.Tag()})
}
