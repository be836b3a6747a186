package form

import "unicode"

// StrengthScore is the password-strength feedback shown next to the password
// input: a 0-4 meter level plus a user-facing label.
type StrengthScore struct {
	// Level drives the meter bars, 0 (weakest) through 4 (strongest).
	Level int

	// Label is the user-facing description: Weak, Fair, Good, or Strong.
	Label string
}

// Strength scores a password: one point each for length >= 8, length >= 12,
// a lowercase letter, an uppercase letter, a digit, and a special character.
// The label comes from the raw 0-6 score; the meter level is capped at 4.
func Strength(password string) StrengthScore {
	if password == "" {
		return StrengthScore{Level: 0, Label: "Weak"}
	}

	score := 0
	if len(password) >= 8 {
		score++
	}
	if len(password) >= 12 {
		score++
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if hasLower {
		score++
	}
	if hasUpper {
		score++
	}
	if hasDigit {
		score++
	}
	if hasSpecial {
		score++
	}

	var label string
	switch {
	case score < 2:
		label = "Weak"
	case score < 4:
		label = "Fair"
	case score < 5:
		label = "Good"
	default:
		label = "Strong"
	}

	level := score
	if level > 4 {
		level = 4
	}
	return StrengthScore{Level: level, Label: label}
}
