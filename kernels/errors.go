package kernels

import (
	"errors"
	"fmt"
)

var (
	// ErrNotImplemented marks a declared entry point with no implementation.
	ErrNotImplemented = errors.New("kernels: operation not implemented")

	// ErrNilSink indicates New was given a nil io.Writer.
	ErrNilSink = errors.New("kernels: nil output sink")
)

// notImplemented returns ErrNotImplemented tagged with the operation name.
func notImplemented(op string) error {
	return fmt.Errorf("%s: %w", op, ErrNotImplemented)
}
