package validator

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.ValidateEmail("ada@example.com"))
	assert.Error(t, v.ValidateEmail("not-an-email"))
	assert.Error(t, v.ValidateEmail(""))
}

func TestValidatePasswordStrength(t *testing.T) {
	v := NewValidator()
	cases := map[string]bool{
		"Secret#123": true,
		"short1!A":   true,
		"Sh1!":       false,
		"alllower1!": false,
		"ALLUPPER1!": false,
		"NoDigits!!": false,
		"NoSymbol12": false,
	}
	for pw, ok := range cases {
		err := v.ValidatePasswordStrength(pw)
		if ok {
			assert.NoError(t, err, pw)
		} else {
			assert.Error(t, err, pw)
		}
	}
}

func TestValidatePasswordStrength_ListsAllMissingClasses(t *testing.T) {
	err := NewValidator().ValidatePasswordStrength("lowercaseonly")
	if assert.Error(t, err) {
		assert.Equal(t, "password must contain an uppercase letter, a digit, a symbol", err.Error())
	}
}

func TestValidatePasswordStrength_TooLong(t *testing.T) {
	pw := "Aa1!" + strings.Repeat("x", 69)
	assert.Error(t, NewValidator().ValidatePasswordStrength(pw))
}

func TestSlugSafe(t *testing.T) {
	type req struct {
		Title string `validate:"slugsafe"`
	}
	v := validator.New()
	require.NoError(t, v.RegisterValidation("slugsafe", slugSafeFL))
	assert.NoError(t, v.Struct(req{Title: "Night 1"}))
	assert.Error(t, v.Struct(req{Title: "!!! ???"}))
}
