package form

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// emailPattern accepts "local @ domain . suffix" with no embedded whitespace
// and a literal dot in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Check evaluates a single field's value against its rules and returns the
// error message for the first failing rule, or "" when the value passes.
// Rules are evaluated in fixed order: required, minLength, maxLength, email,
// match. Check is pure: it never mutates siblings and depends only on its
// arguments.
func Check(field Field, value string, rules FieldRules, siblings map[Field]string) string {
	if rules.Required && strings.TrimSpace(value) == "" {
		return fmt.Sprintf("%s is required", displayName(field))
	}

	if rules.MinLength > 0 && utf8.RuneCountInString(value) < rules.MinLength {
		return fmt.Sprintf("%s must be at least %d characters", displayName(field), rules.MinLength)
	}

	if rules.MaxLength > 0 && utf8.RuneCountInString(value) > rules.MaxLength {
		return fmt.Sprintf("%s must be no more than %d characters", displayName(field), rules.MaxLength)
	}

	if rules.Email && value != "" && !emailPattern.MatchString(value) {
		return "Please enter a valid email address"
	}

	if rules.Match != "" && value != siblings[rules.Match] {
		return "Passwords do not match"
	}

	return ""
}

// displayName renders a field identifier for error messages: the first
// character upper-cased, the rest untouched.
func displayName(f Field) string {
	s := string(f)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
