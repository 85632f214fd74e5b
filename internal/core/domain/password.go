package domain

import (
	"errors"
	"strings"
	"unicode"
)

const minPasswordLength = 8

// ValidatePassword checks the password acceptance policy. Every violated
// rule is reported, not just the first one, so the caller sees the full
// list in a single response.
func ValidatePassword(password string) error {
	var problems []string

	if len(password) < minPasswordLength {
		problems = append(problems, "password length should be at least 8 symbols")
	}

	var hasDigit, hasLower, hasUpper, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		default:
			hasSymbol = true
		}
	}

	if !hasDigit {
		problems = append(problems, "password should contain at least one digit")
	}
	if !hasLower {
		problems = append(problems, "password must contain at least 1 lowercase letter")
	}
	if !hasUpper {
		problems = append(problems, "password must contain at least 1 uppercase letter")
	}
	if !hasSymbol {
		problems = append(problems, "password must contain at least 1 special symbol")
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}
