package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/lumenworks/backoffice/internal/shared/errors"
)

var validate *validator.Validate

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonTagName)

	// gin binding errors should name fields the way clients send them
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonTagName)
	}
}

// ValidateStruct runs the shared validator and converts failures into a validation AppError.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			return errors.NewValidationError("invalid request", FormatValidationErrors(verrs))
		}
		return errors.NewValidationError("invalid request", err.Error())
	}
	return nil
}

// FormatValidationErrors renders field errors as "field: rule" pairs.
func FormatValidationErrors(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", field, fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", field, fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
