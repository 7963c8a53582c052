// Package reduce implements parallel reductions over small numeric buffers:
// a max-absolute-value matrix norm, a Frobenius norm and vector dot products
// with per-element and fixed-block partitionings.
//
// Every parallel operation follows the same shape: one goroutine per
// partition computes a local scalar over its disjoint slice of the input,
// then folds it into a shared accumulator under a mutex created for that
// call.  The caller joins all workers before reading the accumulator.  Each
// operation has a sequential reference used as a correctness oracle.
package reduce

import (
	"errors"
	"math"
)

// DefaultTolerance is the absolute tolerance applied when comparing a
// parallel result against its sequential reference.  It is applied uniformly
// to all operations, including the max norm where accumulation order cannot
// introduce rounding.
const DefaultTolerance = 1e-4

var (
	// ErrEmpty is returned when a reduction is asked for a zero-length buffer.
	ErrEmpty = errors.New("reduce: empty buffer")
	// ErrShapeMismatch is returned when dot product operands differ in length.
	ErrShapeMismatch = errors.New("reduce: operand length mismatch")
	// ErrInvalidPartition is returned when a block size is not positive or
	// does not divide the buffer length evenly.
	ErrInvalidPartition = errors.New("reduce: invalid partition")
)

// Close reports whether a and b are within tol of each other.
func Close(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}
