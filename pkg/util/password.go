package util

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// HashPassword hashes a plain text password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword checks if a plain text password matches a hashed password
func VerifyPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// PasswordStrengthErrors runs the five independent strength checks and
// reports every failing one. A password is acceptable only when the
// returned slice is empty. The character classes are ASCII: anything
// outside A-Z, a-z and 0-9 counts as a special character, including
// accented letters.
func PasswordStrengthErrors(password string) []string {
	errs := []string{}
	if len(password) < 8 {
		errs = append(errs, "Password must be at least 8 characters.")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		errs = append(errs, "Password needs one uppercase letter.")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		errs = append(errs, "Password needs one lowercase letter.")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		errs = append(errs, "Password needs one number.")
	}
	hasSymbol := strings.ContainsFunc(password, func(r rune) bool {
		return !(r >= 'A' && r <= 'Z') && !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})
	if !hasSymbol {
		errs = append(errs, "Password needs one special character.")
	}
	return errs
}
