package validator

import (
	"unicode"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// Custom validation tags
const (
	TagPassword     = "password"     // Password (min 8 chars, at least 1 letter and 1 number)
	TagNoWhitespace = "nowhitespace" // No whitespace characters
)

// registerCustomRules registers all custom validation rules.
func (v *Validator) registerCustomRules() {
	_ = v.validate.RegisterValidation(TagPassword, validatePassword)
	_ = v.validate.RegisterValidation(TagNoWhitespace, validateNoWhitespace)
}

// validatePassword validates basic password requirements.
// At least 8 characters, containing at least 1 letter and 1 number.
func validatePassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Let 'required' handle empty values
	}
	if len(value) < 8 {
		return false
	}

	var hasLetter, hasDigit bool
	for _, r := range value {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// validateNoWhitespace rejects values containing whitespace characters.
func validateNoWhitespace(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// registerCustomTranslations registers messages for the custom rules.
func (v *Validator) registerCustomTranslations() {
	registrations := []struct {
		tag     string
		message string
	}{
		{TagPassword, "{0} must be at least 8 characters and contain a letter and a number"},
		{TagNoWhitespace, "{0} must not contain whitespace"},
	}

	for _, r := range registrations {
		tag, message := r.tag, r.message
		_ = v.validate.RegisterTranslation(tag, v.trans,
			func(t ut.Translator) error {
				return t.Add(tag, message, true)
			},
			func(t ut.Translator, fe validator.FieldError) string {
				msg, _ := t.T(tag, fe.Field())
				return msg
			},
		)
	}
}
