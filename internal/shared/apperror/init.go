package apperror

import (
	"reflect"
	"strings"

	"go-leave/internal/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func Init() {
	// Pakai nama dari tag json supaya pesan error cocok dengan payload
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidations(v)
	}
}

func RegisterValidations(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseRole(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("leave_type", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseLeaveType(fl.Field().String())
		return err == nil
	})
}
