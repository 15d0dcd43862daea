package validator

import (
	"regexp"
	"strings"
	"summitbooking/shared/constant"
	"summitbooking/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

var (
	phoneRegex = regexp.MustCompile(constant.PhonePattern)
	emailRegex = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("phone", func(fl val.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("fullname", func(fl val.FieldLevel) bool {
		return IsValidFullName(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// IsValidEmail reports whether email is a well formed address.
func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}

	return emailRegex.MatchString(email)
}

// IsValidPhone accepts 10 to 13 digit phone numbers.
func IsValidPhone(phone string) bool {
	if phone == "" {
		return false
	}

	return phoneRegex.MatchString(phone)
}

func IsValidPassword(password string) bool {
	return len(password) >= constant.MinPasswordLength
}

func IsNotEmpty(text string) bool {
	return strings.TrimSpace(text) != ""
}

// IsValidFullName requires at least two words.
func IsValidFullName(name string) bool {
	trimmed := strings.TrimSpace(name)

	return trimmed != "" && len(strings.Split(trimmed, " ")) >= 2
}

// ValidateStruct performs validation on the struct using the validator
// package. If the struct is invalid according to the validation rules, an
// error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
