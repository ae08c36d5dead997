package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Validation errors
var (
	ErrInvalidLedgerName = errors.New("invalid ledger name")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrPasswordTooWeak   = errors.New("password does not meet requirements")
	ErrInvalidImageURL   = errors.New("invalid evidence image URL")
)

// Validation constants
const (
	MaxLedgerNameLength = 255
	MaxStoreInfoLength  = 255
	MaxDescriptionLen   = 1000
	MaxImageURLLength   = 2048
	MinPasswordLength   = 8
	MaxPasswordLength   = 128
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateLedgerName validates a ledger name.
func ValidateLedgerName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidLedgerName)
	}

	if len(name) > MaxLedgerNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidLedgerName, MaxLedgerNameLength)
	}

	return nil
}

// ValidateImageURL validates an evidence URL. The URL is otherwise opaque;
// only basic shape is checked, never reachability.
func ValidateImageURL(url string) error {
	url = strings.TrimSpace(url)

	if url == "" {
		return fmt.Errorf("%w: URL cannot be empty", ErrInvalidImageURL)
	}

	if len(url) > MaxImageURLLength {
		return fmt.Errorf("%w: URL exceeds %d characters", ErrInvalidImageURL, MaxImageURLLength)
	}

	return nil
}

// ValidateEmail validates email format
func ValidateEmail(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}

	return nil
}

// ValidatePassword validates password strength
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrPasswordTooWeak, MinPasswordLength)
	}

	if len(password) > MaxPasswordLength {
		return fmt.Errorf("%w: must not exceed %d characters", ErrPasswordTooWeak, MaxPasswordLength)
	}

	return nil
}
