package validator

import (
	"errors"
	"fmt"
	"strings"
	"summitbooking/shared/constant"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"email":    "{field} must be a valid email address",
		"phone":    "{field} must be a valid phone number (10-13 digits)",
		"fullname": "{field} must contain a first and last name",
	}
)

func EmailError() string {
	return "Please enter a valid email address"
}

func PhoneError() string {
	return "Please enter a valid phone number (10-13 digits)"
}

func PasswordError() string {
	return fmt.Sprintf("Password must be at least %d characters", constant.MinPasswordLength)
}

func RequiredFieldError() string {
	return "This field is required"
}

func NameError() string {
	return "Please enter your full name (first and last name)"
}

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			errStr := ""
			field := valErr.Field()
			param := valErr.Param()

			errStr = messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", field)
				errStr = strings.ReplaceAll(errStr, "{param}", param)

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
