package util

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrCourseNotFound    = errors.New("course not found")
	ErrNoAccount         = errors.New("no account with this email")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrEmailRegistered   = errors.New("email already registered")
	ErrAlreadyEnrolled   = errors.New("already enrolled")
	ErrNotEnrolled       = errors.New("not enrolled in this course")
	ErrDuplicateFeedback = errors.New("feedback already submitted for this course")
)

// ValidationError carries the first failed rule's human-readable message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Invalid(message string) error {
	return &ValidationError{Message: message}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StorageError wraps a persistence failure. Operations report it and
// continue; nothing panics on a failed write.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrCourseNotFound) ||
		errors.Is(err, ErrNotEnrolled)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrEmailRegistered) ||
		errors.Is(err, ErrAlreadyEnrolled) ||
		errors.Is(err, ErrDuplicateFeedback)
}
