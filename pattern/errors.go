package pattern

import (
	"errors"
	"fmt"
)

// ErrReplaceNotDefined is returned when a replacement pattern is longer than the
// data it is applied to and an overhanging unit has undefined bits.
var ErrReplaceNotDefined = errors.New("overhanging replace pattern is not fully defined")

// ErrEmptyResult is returned when rewriting a match leaves no unit to hand out.
// This needs both an empty match and an empty replacement pattern.
var ErrEmptyResult = errors.New("replace produced no units")

// IteratorError wraps an error produced by an upstream source.
type IteratorError struct {
	Err error
}

func (e *IteratorError) Error() string {
	return fmt.Sprintf("source: %v", e.Err)
}

func (e *IteratorError) Unwrap() error { return e.Err }
