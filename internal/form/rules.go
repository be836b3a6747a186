// Package form implements the reusable form-validation engine shared by all
// screens. A screen declares a closed set of Field identifiers with their
// FieldRules, instantiates one Form per logical form, and drives it through
// change/blur/submit events. The engine is purely in-memory: it performs no
// network or storage side effects.
package form

// Field identifies one input of a form. Each form declares its own closed
// enumeration of Field constants rather than passing around bare strings.
type Field string

// Fields shared by the auth and profile forms.
const (
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
	FieldFirstName       Field = "firstName"
	FieldLastName        Field = "lastName"
	FieldNewPassword     Field = "newPassword"
)

// FieldRules is the declarative constraint set attached to one field.
// The zero value of each constraint disables it.
type FieldRules struct {
	// Required rejects values that are empty after trimming whitespace.
	Required bool

	// MinLength is the minimum length in characters of the raw value.
	MinLength int

	// MaxLength is the maximum length in characters of the raw value.
	MaxLength int

	// Email requires the value to look like an email address. Only checked
	// when the value is non-empty.
	Email bool

	// Match requires the value to equal the named sibling field's current
	// value. Used for password confirmation.
	Match Field
}

// Rules maps each rule-bearing field of a form to its constraints.
// Declared once per form shape and immutable for the form's lifetime.
type Rules map[Field]FieldRules
