package masked

import (
	"errors"
	"fmt"
)

var (
	// ErrNumberTooBig is returned when a literal has more significant bits than the unit is wide.
	ErrNumberTooBig = errors.New("number is too big to fit into type")
	// ErrInvalidChar is returned for a digit that is not valid in the literal's radix.
	ErrInvalidChar = errors.New("invalid char")
	// ErrUnknownPrefix is returned when a literal does not start with 0b, 0o or 0x.
	ErrUnknownPrefix = errors.New("no or unknown prefix")
)

// ParseError records a failed literal and the reason.
type ParseError struct {
	Literal string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %q: %v", e.Literal, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
