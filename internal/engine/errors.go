package engine

import "fmt"

// Kind classifies an engine-level failure. HTTP handlers map these to
// status codes; they are not Go error types so the engine never forces a
// particular error-wrapping style on its callers.
type Kind string

// Recognized error kinds (spec §7).
const (
	KindInvalidArgument Kind = "invalid_argument"
	KindNotFound        Kind = "not_found"
	KindUpstreamFailure Kind = "upstream_failure"
	KindInternal        Kind = "internal"
)

// Error is the engine's error type. FilterElidesStart is deliberately NOT
// represented here: it is a successful Result with Found=false, not a
// failure (spec §7).
type Error struct {
	Kind Kind
	msg  string
	err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}

	return e.msg
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// invalidArgument constructs an InvalidArgument error.
func invalidArgument(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, msg: fmt.Sprintf(format, args...)}
}

// notFound constructs a NotFound error.
func notFound(msg string) *Error {
	return &Error{Kind: KindNotFound, msg: msg}
}

// upstreamFailure wraps a GraphSource read failure.
func upstreamFailure(msg string, err error) *Error {
	return &Error{Kind: KindUpstreamFailure, msg: msg, err: err}
}

// internalError wraps an unexpected invariant violation.
func internalError(msg string) *Error {
	return &Error{Kind: KindInternal, msg: msg}
}
