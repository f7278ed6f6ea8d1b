package executor

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for empty or nil inputs and negative sizes.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrClosed is returned when the executor or its worker pool has been closed.
	ErrClosed = errors.New("executor closed")

	// ErrTaskPanic marks a slice task that panicked.
	ErrTaskPanic = errors.New("task panicked")
)

// TaskError reports which slice of the input failed.
//
// The underlying error can be accessed via errors.Unwrap.
type TaskError struct {
	Slice int // slice number
	From  int // first input index of the slice
	To    int // one past the last input index
	Err   error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("slice %d [%d, %d): %v", e.Slice, e.From, e.To, e.Err)
}

func (e *TaskError) Unwrap() error { return e.Err }
