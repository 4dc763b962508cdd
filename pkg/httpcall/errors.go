package httpcall

import (
	"errors"
	"fmt"
)

// Kind classifies a failure within the request pipeline.
type Kind int

const (
	// KindClientInit covers transport/TLS setup failures in NewClient.
	KindClientInit Kind = iota + 1
	// KindInvalidDescriptor covers structural problems in the input value.
	KindInvalidDescriptor
	// KindInvalidHeader covers header entries violating HTTP grammar.
	KindInvalidHeader
	// KindTransport covers URL parse, method resolution and send failures.
	KindTransport
	// KindDecode covers response bodies that cannot take the requested shape.
	KindDecode
)

// Sentinel targets for errors.Is against pipeline failures.
var (
	ErrClientInit        = &Error{kind: KindClientInit}
	ErrInvalidDescriptor = &Error{kind: KindInvalidDescriptor}
	ErrInvalidHeader     = &Error{kind: KindInvalidHeader}
	ErrTransport         = &Error{kind: KindTransport}
	ErrDecode            = &Error{kind: KindDecode}
)

// Error is the single error type returned by this package. Every failure
// carries a kind and a human-readable message; transport and decode failures
// additionally chain the underlying cause.
type Error struct {
	kind  Kind
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil && e.msg != "" {
		return e.msg + ": " + e.cause.Error()
	}
	if e.cause != nil {
		return e.cause.Error()
	}
	return e.msg
}

// Kind reports the failure classification.
func (e *Error) Kind() Kind { return e.kind }

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// Is matches any *Error of the same kind, so the sentinels above work as
// errors.Is targets.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.kind == t.kind
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

func wrapError(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...), cause: cause}
}
