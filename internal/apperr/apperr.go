// file: internal/apperr/apperr.go
// version: 1.0.0
// guid: 3f1c9a2e-7b4d-4e8a-a0c6-5d2e8f9b1a47

// Package apperr defines the error taxonomy shared by the service layer and
// the HTTP boundary. Services return *Error values; handlers map the Kind to a
// status code.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application error.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindNotFound
	KindConflict
	KindService
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "BAD_REQUEST"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindNotFound:
		return "NOT_FOUND"
	case KindConflict:
		return "CONFLICT"
	case KindService:
		return "SERVICE_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// Sentinels usable with errors.Is.
var (
	ErrBadRequest   = &Error{Kind: KindBadRequest}
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrConflict     = &Error{Kind: KindConflict}
	ErrService      = &Error{Kind: KindService}
)

// Error is an application error carrying a Kind, the operation that failed,
// a client-safe message and an optional underlying cause.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
	case e.Op != "" && e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Msg)
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so errors.Is(err, ErrConflict) works
// regardless of Op and Msg.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Message returns the client-facing message.
func (e *Error) Message() string {
	if e.Msg != "" {
		return e.Msg
	}
	switch e.Kind {
	case KindService:
		return "service temporarily unavailable"
	case KindUnauthorized:
		return "unauthorized"
	}
	return e.Kind.String()
}

func BadRequest(op, msg string) error {
	return &Error{Kind: KindBadRequest, Op: op, Msg: msg}
}

func Unauthorized(op, msg string) error {
	return &Error{Kind: KindUnauthorized, Op: op, Msg: msg}
}

func NotFound(op, msg string) error {
	return &Error{Kind: KindNotFound, Op: op, Msg: msg}
}

func Conflict(op, msg string) error {
	return &Error{Kind: KindConflict, Op: op, Msg: msg}
}

// Service wraps a storage or downstream failure. Already-classified errors
// pass through unchanged.
func Service(op string, err error) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	return &Error{Kind: KindService, Op: op, Err: err}
}

// KindOf reports the Kind of err, KindInternal when err is not an *Error.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}
