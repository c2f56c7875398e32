package kernel

import (
	"errors"
	"fmt"

	"github.com/example/lanedot/lane"
)

// Func is the entry point shared by all kernels: the dot product of a and b
// as a float64, or an error if the inputs violate the kernel's contract.
type Func func(a, b []float32) (float64, error)

var (
	// ErrLengthMismatch reports inputs of unequal length. No kernel
	// truncates to the shorter input; the whole call fails.
	ErrLengthMismatch = errors.New("input slices have different lengths")

	// ErrTooShort reports an input shorter than one block. Only the
	// blocked kernels have this requirement.
	ErrTooShort = errors.New("input shorter than one block")
)

// checkPair rejects unequal-length inputs before any accumulation.
func checkPair(a, b []float32) error {
	if len(a) != len(b) {
		return fmt.Errorf("dot: len(a)=%d, len(b)=%d: %w", len(a), len(b), ErrLengthMismatch)
	}
	return nil
}

// checkBlocked additionally requires at least one full block.
func checkBlocked(a, b []float32, w lane.Width) error {
	if err := checkPair(a, b); err != nil {
		return err
	}
	if len(a) < w.Lanes() {
		return fmt.Errorf("dot: %d elements, %s needs at least %d: %w", len(a), w, w.Lanes(), ErrTooShort)
	}
	return nil
}
