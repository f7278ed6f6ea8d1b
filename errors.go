package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the root of all argument errors returned by this package.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNegativeIndex is returned by checked accessors and mutators for index < 0.
	ErrNegativeIndex = fmt.Errorf("%w: negative index", ErrInvalidArgument)

	// ErrNegativeSize is returned by constructors given a negative bit count.
	ErrNegativeSize = fmt.Errorf("%w: negative size", ErrInvalidArgument)

	// ErrNilOperand is returned when a binary operation receives a nil vector.
	ErrNilOperand = fmt.Errorf("%w: nil operand", ErrInvalidArgument)

	// ErrWordCount is returned when a declared in-use word count does not fit the word array.
	ErrWordCount = fmt.Errorf("%w: word count out of range", ErrInvalidArgument)
)

var (
	// ErrUnsupported is the root of unsupported-operation errors.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrImmutable is returned by every mutator of an Immutable vector.
	ErrImmutable = fmt.Errorf("%w: vector is immutable", ErrUnsupported)
)

// ErrOutOfRange is returned when a bit index cannot be represented by the
// target of a conversion (for example a 32-bit roaring bitmap).
var ErrOutOfRange = errors.New("index out of range")
