package validation

import (
	"github.com/go-playground/validator/v10"
	"github.com/hanyul/sleepwise/pkg/dateutil"
	"github.com/hanyul/sleepwise/pkg/problem"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom calendar-date validator
	validate.RegisterValidation("dateformat", func(fl validator.FieldLevel) bool {
		return dateutil.IsValid(fl.Field().String())
	})
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors []problem.FieldError
	for _, err := range err.(validator.ValidationErrors) {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   toSnakeCase(err.Field()),
			Message: getValidationMessage(err),
		})
	}
	return fieldErrors
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "required_without":
		return "is required when " + toSnakeCase(err.Param()) + " is absent"
	case "excluded_with":
		return "cannot be combined with " + toSnakeCase(err.Param())
	case "min":
		return "must be at least " + err.Param()
	case "max":
		return "must be at most " + err.Param()
	case "oneof":
		return "must be one of: " + err.Param()
	case "dateformat":
		return "must be a YYYY-MM-DD date"
	default:
		return "is invalid"
	}
}

func toSnakeCase(s string) string {
	var result []byte
	for i, c := range s {
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				result = append(result, '_')
			}
			result = append(result, byte(c+'a'-'A'))
		} else {
			result = append(result, byte(c))
		}
	}
	return string(result)
}
