package service

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// MinMasterPasswordLength is the minimum master password length accepted
// when a vault is created.
const MinMasterPasswordLength = 12

// ValidateMasterPassword checks a candidate master password against the
// vault policy: minimum length plus at least one uppercase letter, one
// lowercase letter, one digit and one symbol. All violations are collected
// into a single *WeakPasswordError. The policy applies only when the vault
// is created; unlocking an existing vault never re-validates.
func ValidateMasterPassword(password string) error {
	var reasons []string

	if utf8.RuneCountInString(password) < MinMasterPasswordLength {
		reasons = append(reasons, fmt.Sprintf("must be at least %d characters long", MinMasterPasswordLength))
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLetter(r):
			// Caseless letters count as letters, not symbols.
		default:
			hasSymbol = true
		}
	}

	if !hasUpper {
		reasons = append(reasons, "must contain an uppercase letter")
	}
	if !hasLower {
		reasons = append(reasons, "must contain a lowercase letter")
	}
	if !hasDigit {
		reasons = append(reasons, "must contain a digit")
	}
	if !hasSymbol {
		reasons = append(reasons, "must contain a symbol")
	}

	if len(reasons) > 0 {
		return &WeakPasswordError{Reasons: reasons}
	}
	return nil
}
