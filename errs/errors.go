// Package errs defines the error values shared across the pavo codec.
//
// Two error families cross the API boundary: format errors raised while
// decoding a stored blob, and reference errors raised while resolving a
// value against an enumerated value list. Both wrap exported sentinels so
// callers can match with errors.Is / errors.As.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for decode and resolve failures.
var (
	// ErrUnknownTypeTag indicates a stored type tag outside the closed tag table.
	ErrUnknownTypeTag = errors.New("unknown type tag")

	// ErrMalformedValue indicates a blob whose structure does not match its tag.
	ErrMalformedValue = errors.New("malformed value")

	// ErrBadTimestamp indicates an unparseable calendar timestamp string.
	ErrBadTimestamp = errors.New("invalid timestamp")

	// ErrBadDuration indicates an unparseable calendar duration string.
	ErrBadDuration = errors.New("invalid duration")

	// ErrNotInList indicates a candidate value absent from its value list.
	ErrNotInList = errors.New("value not in list")

	// ErrUnknownSchemaVersion indicates a legacy adapter request for a
	// schema version with no registered adapter.
	ErrUnknownSchemaVersion = errors.New("unknown schema version")

	// ErrLegacyShape indicates a historical payload shape no adapter recognizes.
	ErrLegacyShape = errors.New("unrecognized legacy shape")
)

// FormatError reports a decode failure together with the offending bytes
// and the tag the caller supplied. It wraps one of the sentinels above.
type FormatError struct {
	Tag  string // stored type tag, empty for untagged scalars
	Data []byte // offending blob, as read from the row
	Err  error  // underlying cause, wraps a sentinel
}

// NewFormatError builds a FormatError wrapping cause for the given blob and tag.
func NewFormatError(cause error, data []byte, tag string) *FormatError {
	return &FormatError{Tag: tag, Data: data, Err: cause}
}

func (e *FormatError) Error() string {
	tag := e.Tag
	if tag == "" {
		tag = "<none>"
	}

	data := e.Data
	if len(data) > 128 {
		data = data[:128]
	}

	return fmt.Sprintf("cannot decode value with tag %s: %v (data: %s)", tag, e.Err, data)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// ReferenceError reports a resolve failure: the candidate value was not
// found in the associated value list. Allowed holds the display form of
// every permitted value, in list order, so callers can present an
// actionable message.
type ReferenceError struct {
	Candidate string   // display form of the rejected value
	Allowed   []string // display forms of the permitted values, in list order
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s is not in the list of allowed values [%s]",
		e.Candidate, strings.Join(e.Allowed, ", "))
}

func (e *ReferenceError) Unwrap() error {
	return ErrNotInList
}
