// Package apperror defines the failure kinds surfaced by the engagement
// services and their HTTP mapping.
package apperror

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindInvalidArgument
	KindInvalidOperation
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindTransactionFailed
	KindRateLimited
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindInvalidOperation:
		return "InvalidOperation"
	case KindUnauthenticated:
		return "Unauthenticated"
	case KindForbidden:
		return "Forbidden"
	case KindNotFound:
		return "NotFound"
	case KindTransactionFailed:
		return "TransactionFailed"
	case KindRateLimited:
		return "RateLimited"
	default:
		return "Internal"
	}
}

// HTTPStatus maps a kind onto the response status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindInvalidArgument, KindInvalidOperation:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Error carries a client-safe Message; Err holds the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Message: msg}
}

func Wrap(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func InvalidArgument(msg string) error  { return New(KindInvalidArgument, msg) }
func InvalidOperation(msg string) error { return New(KindInvalidOperation, msg) }
func Unauthenticated(msg string) error  { return New(KindUnauthenticated, msg) }
func Forbidden(msg string) error        { return New(KindForbidden, msg) }
func NotFound(msg string) error         { return New(KindNotFound, msg) }

func TransactionFailed(msg string, err error) error {
	return Wrap(KindTransactionFailed, msg, err)
}

func Internal(msg string, err error) error {
	return Wrap(KindInternal, msg, err)
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// Message returns the client-facing text for err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}
