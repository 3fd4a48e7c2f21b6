package domain

import "fmt"

// InvalidInputError reports a missing, malformed, or out-of-range field.
// Surfaced as HTTP 400 and never retried.
type InvalidInputError struct {
	Msg string
}

func (e *InvalidInputError) Error() string { return e.Msg }

// InvalidInput builds an InvalidInputError with a formatted message.
func InvalidInput(format string, args ...any) error {
	return &InvalidInputError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a lookup by id with no matching row.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// NotFound builds a NotFoundError with a formatted message.
func NotFound(format string, args ...any) error {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

// ConflictError reports a uniqueness violation (duplicate college name,
// student email, or registration pair). Surfaced as HTTP 409.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// Conflict builds a ConflictError with a formatted message.
func Conflict(format string, args ...any) error {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}

// ForeignKeyError reports a reference to a non-existent parent row.
// Surfaced as HTTP 400; the caller must fix the reference.
type ForeignKeyError struct {
	Msg string
}

func (e *ForeignKeyError) Error() string { return e.Msg }

// ForeignKey builds a ForeignKeyError with a formatted message.
func ForeignKey(format string, args ...any) error {
	return &ForeignKeyError{Msg: fmt.Sprintf(format, args...)}
}

// AttendanceLockedError reports an attempt to change an attendance row
// already confirmed present. The stored row is never mutated.
type AttendanceLockedError struct {
	RegistrationID int64
}

func (e *AttendanceLockedError) Error() string {
	return "attendance cannot be revoked once marked as present"
}
