package service

import (
	"errors"
	"fmt"
)

var ErrInvalidField = errors.New("invalid field")

// PlayerError points at the roster row and field that failed validation.
// Index is 1-based.
type PlayerError struct {
	Index int
	Field string
	Err   error
}

func (e *PlayerError) Error() string {
	return fmt.Sprintf("player %d: %s: %v", e.Index, e.Field, e.Err)
}

func (e *PlayerError) Unwrap() error {
	return e.Err
}
