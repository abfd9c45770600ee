package caf

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingHeader indicates the input is empty, so not even the
	// "CAF " magic is present. Non-empty input that does not begin with
	// the magic, however short, yields ErrInvalidHeader instead.
	ErrMissingHeader = errors.New("caf: missing header")

	// ErrInvalidHeader indicates the input does not begin with the "CAF "
	// magic.
	ErrInvalidHeader = errors.New("caf: invalid header")

	// ErrUnsupportedVersion indicates the archive's version byte is
	// higher than SupportedVersion. Per the format's own recommendation,
	// this package refuses such archives rather than attempting a
	// best-effort read.
	ErrUnsupportedVersion = errors.New("caf: unsupported version")

	// ErrCountMismatch indicates the index's file-entry count does not
	// match the number of file payloads actually present -- this should
	// never happen for an archive produced by Decode, and indicates a
	// caller-constructed Archive violating the format's own invariant.
	ErrCountMismatch = errors.New("caf: index file count does not match payload count")
)

// FramingError reports a malformed archive encountered while parsing: an
// expected keyword was missing, a required newline was absent, or a
// declared count didn't match what followed.
type FramingError struct {
	// Offset is the byte position in the input at which the mismatch was
	// detected.
	Offset int
	// Want describes what the parser expected to find there.
	Want string
	// Err, if non-nil, wraps a more specific underlying error.
	Err error
}

func (e *FramingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("caf: at offset %d: expected %s: %s", e.Offset, e.Want, e.Err)
	}
	return fmt.Sprintf("caf: at offset %d: expected %s", e.Offset, e.Want)
}

func (e *FramingError) Unwrap() error { return e.Err }
