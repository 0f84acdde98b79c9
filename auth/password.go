package auth

import (
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/user/remainders-go/apperror"
)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 8

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt hash.
func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// ValidatePassword enforces the password strength policy: at least
// minPasswordLength characters, with at least one lowercase letter, one
// uppercase letter and one digit. Purely lowercase, mixed-case-without-digit
// and all-digit passwords are all rejected.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return apperror.NewValidationError(
			fmt.Sprintf("password must be at least %d characters long", minPasswordLength), nil)
	}

	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasLower {
		return apperror.NewValidationError("password must contain at least one lowercase letter", nil)
	}
	if !hasUpper {
		return apperror.NewValidationError("password must contain at least one uppercase letter", nil)
	}
	if !hasDigit {
		return apperror.NewValidationError("password must contain at least one digit", nil)
	}
	return nil
}
