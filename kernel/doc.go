// Package kernel provides a family of dot-product implementations over
// float32 slices, from a reference scalar loop to blocked kernels that
// process 2, 4 or 8 lanes per iteration.
//
// # Kernels
//
//   - Scalar - reference accumulation loop, float64 accumulator
//   - Pairwise - lazy positional zip-multiply reduced by in-order summation
//   - Vectorized(w) - blocked kernel with one deferred horizontal reduction
//   - PerBlockReduce(w) - blocked kernel that reduces every block immediately
//
// All kernels return the same mathematical value, Σ a[i]*b[i] as a float64,
// but differ in summation order and therefore in rounding. Results agree
// within a small relative tolerance; Scalar is the reference the others are
// validated against.
//
// # Algorithm
//
// The blocked kernels accumulate W products per iteration in a lane.Block:
//
//  1. Initialize a zero block accumulator of width W.
//  2. Load W elements from each input, multiply element-wise, add into the
//     accumulator, advance by W.
//  3. Cover the remaining len%W elements with a masked load so each element
//     is added exactly once.
//  4. Horizontally reduce the accumulator into one float64.
//
// Deferring the horizontal reduction to a single final step is what
// distinguishes Vectorized from PerBlockReduce: horizontal sums are the
// expensive operation in this family, and Vectorized performs exactly one.
//
// # Contract
//
// Inputs must have equal length (ErrLengthMismatch otherwise) and, for the
// blocked kernels, at least W elements (ErrTooShort otherwise). Violations
// are rejected before any accumulation starts. Kernels are pure: no state
// is carried between calls, and concurrent calls on disjoint inputs are
// safe.
//
// # Example
//
//	a := []float32{1, 2, 3, 4, 5, 6, 7, 8}
//	b := []float32{8, 7, 6, 5, 4, 3, 2, 1}
//	v, err := kernel.Vectorized(lane.W8)(a, b) // 120.0
package kernel
