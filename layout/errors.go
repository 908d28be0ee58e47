package layout

import (
	"errors"
	"fmt"
)

//go:generate stringer -type=ErrKind -linecomment

// ErrKind classifies a decode or encode failure.
type ErrKind uint8

const (
	// ErrUnknown means the failure was not classified.
	ErrUnknown ErrKind = 0 // Unknown
	// ErrTruncated means fewer bytes were available than required.
	ErrTruncated ErrKind = 1 // Truncated
	// ErrConstantMismatch means observed or supplied bytes differ from a
	// fixed expected sequence.
	ErrConstantMismatch ErrKind = 2 // ConstantMismatch
	// ErrLengthMismatch means an encoded byte count differed from the
	// expected length.
	ErrLengthMismatch ErrKind = 3 // LengthMismatch
	// ErrCountMismatch means an array obtained fewer elements than
	// requested.
	ErrCountMismatch ErrKind = 4 // CountMismatch
	// ErrTooFewElements means a range stopped before reaching its minimum.
	ErrTooFewElements ErrKind = 5 // TooFewElements
	// ErrCountOutOfRange means a supplied list's length was outside a
	// range's bounds.
	ErrCountOutOfRange ErrKind = 6 // CountOutOfRange
	// ErrMissingKey means a Context read of a name that was never written.
	ErrMissingKey ErrKind = 7 // MissingKey
	// ErrMissingValue means an encode pass found no entry for a field in
	// the supplied mapping.
	ErrMissingValue ErrKind = 8 // MissingValue
	// ErrNoMatchingCase means a switch selector yielded no field for the
	// resolved discriminant.
	ErrNoMatchingCase ErrKind = 9 // NoMatchingCase
	// ErrValueOutOfRange means a supplied number does not fit the field's
	// width and signedness.
	ErrValueOutOfRange ErrKind = 10 // ValueOutOfRange
	// ErrTextEncoding means bytes could not be decoded under, or text could
	// not be encoded into, the field's character encoding.
	ErrTextEncoding ErrKind = 11 // TextEncoding
	// ErrBadParam means a length, count, tag or condition resolved to
	// something unusable.
	ErrBadParam ErrKind = 12 // BadParam
)

// Error is the failure type for all decode and encode operations. Every
// failure aborts the whole call; the only internal recovery anywhere is the
// range field rewinding the stream after a failed element attempt.
type Error struct {
	// Kind classifies the failure.
	Kind ErrKind
	// Field is the name of the field that failed. May be empty for
	// anonymous fields.
	Field string
	// Msg describes the failure.
	Msg string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements error.
func (e *Error) Error() string {
	s := e.Kind.String()
	if e.Field != "" {
		s += fmt.Sprintf(": field %q", e.Field)
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsKind reports whether any error in err's chain is an *Error of kind k.
func IsKind(err error, k ErrKind) bool {
	for err != nil {
		var le *Error
		if !errors.As(err, &le) {
			return false
		}
		if le.Kind == k {
			return true
		}
		err = le.Cause
	}
	return false
}

func errf(k ErrKind, field, format string, args ...any) *Error {
	return &Error{Kind: k, Field: field, Msg: fmt.Sprintf(format, args...)}
}

func errWrap(k ErrKind, field string, cause error, format string, args ...any) *Error {
	return &Error{Kind: k, Field: field, Msg: fmt.Sprintf(format, args...), Cause: cause}
}
