// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Input errors. Both are recovered by re-prompting.
var (
	// ErrParse is returned when text cannot be read as the number or menu index required.
	ErrParse = errors.New("not a number")
	// ErrRange is returned when a number is outside its permitted range.
	ErrRange = errors.New("out of range")
)

// Ledger errors.
var (
	ErrOutOfRange   = errors.New("position out of range")
	ErrInvalidEntry = errors.New("invalid entry")
)

// Session errors.
var (
	// ErrInputClosed is returned when the input source reaches end of file.
	ErrInputClosed = errors.New("input closed")
	// ErrInputCancelled is returned when a pending read is abandoned because its context ended.
	ErrInputCancelled = errors.New("input canceled")
)

// Configuration errors.
var (
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

// UserMessage returns the message meant for the user if err carries one,
// otherwise err's own text.
func UserMessage(err error) string {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}
	return err.Error()
}

// PositionError reports a 1-based position outside a collection of Size entries.
type PositionError struct {
	Collection string
	Position   int
	Size       int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%s position %d not in 1..%d", e.Collection, e.Position, e.Size)
}

func (e *PositionError) Unwrap() error {
	return ErrOutOfRange
}
