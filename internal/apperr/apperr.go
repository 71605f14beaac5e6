// Package apperr defines the error kinds returned by workspace operations.
// Every kind is recoverable: the caller corrects the input and resubmits.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a rejected operation.
type Kind string

const (
	KindValidation       Kind = "validation"
	KindPermissionDenied Kind = "permission_denied"
	KindNotFound         Kind = "not_found"
)

// Sentinels for errors.Is matching against an *Error of the same kind.
var (
	ErrValidation       = errors.New("validation error")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
)

// Error is a rejected operation. Op names the operation that rejected.
type Error struct {
	Kind    Kind
	Op      string
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Message)
}

// Is matches the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrPermissionDenied:
		return e.Kind == KindPermissionDenied
	case ErrNotFound:
		return e.Kind == KindNotFound
	}
	return false
}

func newError(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Validation reports malformed or missing input.
func Validation(op, format string, args ...any) *Error {
	return newError(KindValidation, op, format, args...)
}

// PermissionDenied reports a failed authorization check.
func PermissionDenied(op, format string, args ...any) *Error {
	return newError(KindPermissionDenied, op, format, args...)
}

// NotFound reports a reference to a missing entity.
func NotFound(op, format string, args ...any) *Error {
	return newError(KindNotFound, op, format, args...)
}

// KindOf returns the kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
