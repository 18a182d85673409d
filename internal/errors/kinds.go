package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

var (
	// ErrStorageUnavailable marks a persistence failure. In-memory state is kept and the
	// write can be retried.
	ErrStorageUnavailable = stderrors.New("storage unavailable")
	// ErrValidation marks rejected registration or baseline input.
	ErrValidation = stderrors.New("validation failed")
	// ErrRemoteCall marks a failed motivation or chat request.
	ErrRemoteCall = stderrors.New("remote call failed")
)

// StorageError reports a failed load or save of the profile.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v (your progress is kept in memory, try again)", e.Op, e.Err)
}

func (e *StorageError) Unwrap() []error {
	return []error{ErrStorageUnavailable, e.Err}
}

// NewStorageError wraps err as a recoverable storage failure for op.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every rejected field of a submission.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s %s", f.Field, f.Message))
	}
	return fmt.Sprintf("invalid input: %s", strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Field returns the message for the named field, or "" if the field passed.
func (e *ValidationError) Field(name string) string {
	for _, f := range e.Fields {
		if f.Field == name {
			return f.Message
		}
	}
	return ""
}

// RemoteCallFailure describes a failed call to one of the coach endpoints.
type RemoteCallFailure struct {
	Endpoint string
	Err      error
}

func (e *RemoteCallFailure) Error() string {
	return fmt.Sprintf("call to %s failed: %v", e.Endpoint, e.Err)
}

func (e *RemoteCallFailure) Unwrap() []error {
	return []error{ErrRemoteCall, e.Err}
}
