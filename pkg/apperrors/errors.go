package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error so the HTTP layer can map it to a status
// code and a stable error code.
type Kind int

const (
	// KindNotFound means a referenced project or asset does not exist.
	KindNotFound Kind = iota
	// KindForbidden means the caller identity does not match the
	// required owner for a mutating operation.
	KindForbidden
	// KindInvalidState means the requested transition is illegal from
	// the entity's current status.
	KindInvalidState
	// KindValidation means the request payload failed a business check.
	KindValidation
	// KindInternal means an invariant was violated mid-operation.
	KindInternal
)

// Error is the error type returned by all store and service operations.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound reports a missing record.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Forbidden reports an ownership check failure.
func Forbidden(format string, args ...interface{}) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

// InvalidState reports an illegal status transition. The message should
// include the offending current status for diagnosability.
func InvalidState(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

// Validation reports a rejected request payload.
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Internal reports an invariant violation detected mid-operation.
func Internal(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err is a missing-record error.
func IsNotFound(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == KindNotFound
}

// Code returns the stable caller-facing error code for err.
func Code(err error) string {
	switch KindOf(err) {
	case KindNotFound:
		return "NOT_FOUND"
	case KindForbidden:
		return "FORBIDDEN"
	case KindInvalidState:
		return "INVALID_STATE"
	case KindValidation:
		return "VALIDATION_ERROR"
	default:
		return "SERVER_ERROR"
	}
}

// HTTPStatus returns the HTTP status code for err.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindInvalidState:
		return http.StatusConflict
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
