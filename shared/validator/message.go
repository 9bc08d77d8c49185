package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var templates = map[string]string{
	"required": "{field} is required",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"gt":       "{field} must be greater than {param}",
	"min":      "{field} must be at least {param}",
	"max":      "{field} must be at most {param}",
	"oneof":    "{field} must be one of {param}",
	"email":    "{field} must be a valid email address",
	"uuid":     "{field} must be a valid UUID",
	"hhmm":     "{field} must be a time of day in HH:MM format",
	"date":     "{field} must be a date in YYYY-MM-DD format",
	"empty":    "{field} must not be set",
}

// message describes the first failed rule that has a template, falling back to
// the validator's own text.
func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	for _, fieldError := range fieldErrors {
		template, ok := templates[fieldError.Tag()]
		if !ok {
			continue
		}

		return strings.NewReplacer("{field}", fieldError.Field(), "{param}", fieldError.Param()).Replace(template)
	}

	return fieldErrors.Error()
}
