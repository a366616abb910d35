package proc

import "errors"

// Registration and search errors. Everything here is a value-returned,
// recoverable condition; corrupted shared state is not (it panics).
var (
	// ErrUnknownProcess indicates a search referenced a name that was
	// never registered.
	ErrUnknownProcess = errors.New("unknown process")

	// ErrDuplicateProcess indicates a name collision at registration.
	ErrDuplicateProcess = errors.New("process already registered")

	// ErrNoStream indicates a stream was configured visible but its
	// reader is missing.
	ErrNoStream = errors.New("stream not available")

	// ErrTooManyPanes indicates registration would exceed the nine
	// focusable panes addressable by the digit keys 1-9.
	ErrTooManyPanes = errors.New("more than nine focusable streams")
)
