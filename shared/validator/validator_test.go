package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"summitbooking/shared/failure"
	"summitbooking/shared/validator"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "valid address", email: "clerk@summitcoaches.com", want: true},
		{name: "valid with plus", email: "john+booking@mail.co.ug", want: true},
		{name: "missing at", email: "clerksummitcoaches.com", want: false},
		{name: "missing tld", email: "clerk@summitcoaches", want: false},
		{name: "empty", email: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.IsValidEmail(tt.email))
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{name: "ten digits", phone: "0700000001", want: true},
		{name: "thirteen digits", phone: "2567000000012", want: true},
		{name: "too short", phone: "070000000", want: false},
		{name: "too long", phone: "25670000000123", want: false},
		{name: "non numeric", phone: "07000abc01", want: false},
		{name: "empty", phone: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.IsValidPhone(tt.phone))
		})
	}
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, validator.IsValidPassword("secret"))
	assert.False(t, validator.IsValidPassword("short"))
	assert.False(t, validator.IsValidPassword(""))
}

func TestIsValidFullName(t *testing.T) {
	assert.True(t, validator.IsValidFullName("John Doe"))
	assert.True(t, validator.IsValidFullName("  Mary Jane Watson "))
	assert.False(t, validator.IsValidFullName("John"))
	assert.False(t, validator.IsValidFullName("   "))
}

func TestIsNotEmpty(t *testing.T) {
	assert.True(t, validator.IsNotEmpty("x"))
	assert.False(t, validator.IsNotEmpty("  "))
}

func TestValidateStruct(t *testing.T) {
	type form struct {
		Name  string `validate:"required,fullname"`
		Phone string `validate:"required,phone"`
	}

	t.Run("valid struct passes", func(t *testing.T) {
		err := validator.ValidateStruct(&form{Name: "John Doe", Phone: "0700000001"})
		assert.NoError(t, err)
	})

	t.Run("invalid phone is a bad request", func(t *testing.T) {
		err := validator.ValidateStruct(&form{Name: "John Doe", Phone: "07"})
		assert.Error(t, err)
		assert.True(t, failure.IsBadRequest(err))
	})

	t.Run("missing field is a bad request", func(t *testing.T) {
		err := validator.ValidateStruct(&form{Phone: "0700000001"})
		assert.Error(t, err)
		assert.True(t, failure.IsBadRequest(err))
	})
}
