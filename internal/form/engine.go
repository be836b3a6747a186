package form

// ClearPolicy decides what happens to a field's existing error message while
// the user is typing in that field.
type ClearPolicy int

const (
	// ClearOnChange optimistically dismisses the field's error as soon as the
	// user edits it, deferring correctness to the next blur or submit. This
	// is the default UX behavior.
	ClearOnChange ClearPolicy = iota

	// RevalidateOnChange re-runs the field's rules on every keystroke.
	RevalidateOnChange
)

// Form holds the state of one logical form: current values, validation
// errors, and the set of touched fields. One Form is created per screen form
// and discarded when the screen switches modes or closes.
//
// A field absent from the error map is not necessarily valid; it may simply
// not have been validated yet. Errors carry entries only for fields that went
// through blur or a submit attempt.
type Form struct {
	initial map[Field]string
	rules   Rules
	policy  ClearPolicy

	values  map[Field]string
	errors  map[Field]string
	touched map[Field]bool
}

// Option configures a Form.
type Option func(*Form)

// WithClearPolicy overrides the default error-clearing behavior on change.
func WithClearPolicy(p ClearPolicy) Option {
	return func(f *Form) { f.policy = p }
}

// New creates a Form with the given initial values and rules.
func New(initial map[Field]string, rules Rules, opts ...Option) *Form {
	f := &Form{
		initial: make(map[Field]string, len(initial)),
		rules:   rules,
		values:  make(map[Field]string, len(initial)),
		errors:  make(map[Field]string),
		touched: make(map[Field]bool),
	}
	for k, v := range initial {
		f.initial[k] = v
		f.values[k] = v
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// HandleChange records a keystroke: it stores the value exactly as given (no
// trimming) and applies the configured ClearPolicy to the field's error.
func (f *Form) HandleChange(field Field, value string) {
	f.values[field] = value

	switch f.policy {
	case RevalidateOnChange:
		f.errors[field] = Check(field, value, f.rules[field], f.values)
	default:
		if f.errors[field] != "" {
			f.errors[field] = ""
		}
	}
}

// HandleBlur marks the field touched and validates it against the current
// values, storing the result even when it is empty.
func (f *Form) HandleBlur(field Field) {
	f.touched[field] = true
	f.errors[field] = Check(field, f.values[field], f.rules[field], f.values)
}

// ValidateForm validates every rule-bearing field against the current values,
// replacing the error map wholesale. It returns true iff no field produced an
// error. It does not mark fields touched: showing submit-time errors for
// untouched fields is the hosting screen's responsibility.
func (f *Form) ValidateForm() bool {
	newErrors := make(map[Field]string)
	valid := true

	for field, rules := range f.rules {
		if msg := Check(field, f.values[field], rules, f.values); msg != "" {
			newErrors[field] = msg
			valid = false
		}
	}

	f.errors = newErrors
	return valid
}

// Reset restores the initial values and clears all errors and touched state.
func (f *Form) Reset() {
	f.values = make(map[Field]string, len(f.initial))
	for k, v := range f.initial {
		f.values[k] = v
	}
	f.errors = make(map[Field]string)
	f.touched = make(map[Field]bool)
}

// Value returns the current value of a field.
func (f *Form) Value(field Field) string {
	return f.values[field]
}

// Set stores a value without touching errors. Used when a screen pre-fills a
// form programmatically (e.g. a reset token from a link).
func (f *Form) Set(field Field, value string) {
	f.values[field] = value
}

// Err returns the current error message for a field ("" when none).
func (f *Form) Err(field Field) string {
	return f.errors[field]
}

// Touched reports whether the user has blurred the field at least once.
func (f *Form) Touched(field Field) bool {
	return f.touched[field]
}

// HasErrors reports whether any field currently carries a non-empty error.
func (f *Form) HasErrors() bool {
	for _, msg := range f.errors {
		if msg != "" {
			return true
		}
	}
	return false
}

// Values returns a copy of the current values map.
func (f *Form) Values() map[Field]string {
	out := make(map[Field]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}
