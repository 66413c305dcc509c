// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Storage errors.
	ErrNotFound          = errors.New("not found")
	ErrDatabaseCorrupted = errors.New("database corrupted")

	// Inventory errors.
	ErrEmptyInventory = errors.New("inventory is empty")
	ErrInvalidRecord  = errors.New("invalid inventory record")

	// Serialization errors. A corrupted persisted result is a data-integrity
	// problem, not a business-as-usual empty result, so these propagate as
	// hard failures.
	ErrMalformedResult = errors.New("malformed result payload")
	ErrUnknownType     = errors.New("unknown result type")
	ErrMissingField    = errors.New("missing required field")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
