package sparseset

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is the sentinel wrapped by every OutOfRangeError.
	ErrOutOfRange = errors.New("sparseset: value out of range")

	// ErrInvalidMax is the panic value of New for a negative universe size.
	ErrInvalidMax = errors.New("sparseset: negative universe size")
)

// OutOfRangeError reports a value outside the universe [0, Max).
//
// Contains, Insert and Remove panic with it; FromBitmap returns it.
// errors.Is(err, ErrOutOfRange) holds for every OutOfRangeError.
type OutOfRangeError struct {
	Value int
	Max   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("sparseset: value %d out of range [0, %d)", e.Value, e.Max)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }
