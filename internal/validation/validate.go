// Package validation holds the client-side checks run before any form
// payload goes over the wire.
package validation

import (
	"regexp"
	"strings"

	apperrors "rtoctl/internal/errors"
)

const MinPasswordLength = 6

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9]{10}$`)
)

// Required rejects empty or whitespace-only values.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &apperrors.ValidationError{Field: field, Message: field + " is required"}
	}
	return nil
}

// Email checks the rough user@host.tld shape.
func Email(field, value string) error {
	if !emailRe.MatchString(value) {
		return &apperrors.ValidationError{Field: field, Message: "Please enter a valid email address"}
	}
	return nil
}

// Password enforces the minimum length.
func Password(field, value string) error {
	if len(value) < MinPasswordLength {
		return &apperrors.ValidationError{Field: field, Message: "Password must be at least 6 characters"}
	}
	return nil
}

// PasswordsMatch checks the confirmation field against the password.
func PasswordsMatch(password, confirm string) error {
	if password != confirm {
		return &apperrors.ValidationError{Field: "confirmPassword", Message: "Passwords do not match"}
	}
	return nil
}

// Phone accepts exactly ten digits.
func Phone(field, value string) error {
	if !phoneRe.MatchString(value) {
		return &apperrors.ValidationError{Field: field, Message: "Please enter a valid 10-digit mobile number"}
	}
	return nil
}

// Login validates the login form.
func Login(email, password string) error {
	if err := Required("email", email); err != nil {
		return err
	}
	if err := Email("email", email); err != nil {
		return err
	}
	return Required("password", password)
}

// Register validates the registration form.
func Register(name, email, mobile, password, confirm string) error {
	if err := Required("name", name); err != nil {
		return err
	}
	if err := Required("email", email); err != nil {
		return err
	}
	if err := Email("email", email); err != nil {
		return err
	}
	if err := Phone("mobile", mobile); err != nil {
		return err
	}
	if err := Password("password", password); err != nil {
		return err
	}
	return PasswordsMatch(password, confirm)
}
