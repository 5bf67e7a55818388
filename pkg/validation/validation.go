// Package validation holds the account input rules shared by the auth
// service and its handlers.
package validation

import (
	"regexp"

	apperrors "github.com/medicino/medicino/pkg/errors"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	upperPattern    = regexp.MustCompile(`[A-Z]`)
	lowerPattern    = regexp.MustCompile(`[a-z]`)
	digitPattern    = regexp.MustCompile(`\d`)
)

// Email validates email format.
func Email(email string) error {
	if !emailPattern.MatchString(email) {
		return apperrors.NewValidationError("invalid email format")
	}
	return nil
}

// Username enforces length 3-20 and the allowed character set.
func Username(username string) error {
	if len(username) < 3 {
		return apperrors.NewValidationError("username must be at least 3 characters long")
	}
	if len(username) > 20 {
		return apperrors.NewValidationError("username must be no more than 20 characters long")
	}
	if !usernamePattern.MatchString(username) {
		return apperrors.NewValidationError("username can only contain letters, numbers, and underscores")
	}
	return nil
}

// Password enforces minimum length and character class requirements.
func Password(password string) error {
	if len(password) < 6 {
		return apperrors.NewValidationError("password must be at least 6 characters long")
	}
	if !upperPattern.MatchString(password) {
		return apperrors.NewValidationError("password must contain at least one uppercase letter")
	}
	if !lowerPattern.MatchString(password) {
		return apperrors.NewValidationError("password must contain at least one lowercase letter")
	}
	if !digitPattern.MatchString(password) {
		return apperrors.NewValidationError("password must contain at least one number")
	}
	return nil
}
