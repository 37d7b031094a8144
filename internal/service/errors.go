package service

import (
	"errors"
	"fmt"
)

// ErrInvalidInput matches every InvalidInputError via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError is returned when caller supplied data fails a
// precondition. It is always detected before any outbound call.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// TransportError means the outbound call never produced a response
// (connection refused, DNS failure, timeout).
type TransportError struct {
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UpstreamError means the speech API answered but either reported a failure
// or answered in a shape that cannot be interpreted. Whichever diagnostics are
// available are kept: Status and Text for raw responses, Details for a parsed
// error body, Raw for a parsed success body lacking an audio reference.
type UpstreamError struct {
	Message string
	Status  int
	Text    string
	Details any
	Raw     any
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}
