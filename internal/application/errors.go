package application

import (
	"errors"
	"fmt"
)

// ErrInvalidEncoding reports a line that is not valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid UTF-8 in line")

// IOError records a filesystem failure and the operation that caused it.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
