package lane

import "math"

// This file provides the portable implementations of all block operations.
// They are plain Go loops over the lane slice; the compiler's bounds-check
// elimination and unrolling do the rest. Widths are fixed per Block, so no
// operation branches on the register width at runtime.

// Zero creates a block of width w with all lanes set to zero.
func Zero[T Floats](w Width) Block[T] {
	data := make([]T, w.Lanes())
	return Block[T]{data: data}
}

// Set creates a block of width w with all lanes set to the same value.
func Set[T Floats](w Width, value T) Block[T] {
	data := make([]T, w.Lanes())
	for i := range data {
		data[i] = value
	}
	return Block[T]{data: data}
}

// Load creates a block of width w by loading data from a slice.
// If the slice holds fewer than w elements, only those lanes are filled.
func Load[T Floats](src []T, w Width) Block[T] {
	n := min(len(src), w.Lanes())
	data := make([]T, n)
	copy(data, src[:n])
	return Block[T]{data: data}
}

// Store writes a block's lanes to a slice.
func Store[T Floats](b Block[T], dst []T) {
	b.Store(dst)
}

// Add performs element-wise addition.
func Add[T Floats](a, b Block[T]) Block[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] + b.data[i]
	}
	return Block[T]{data: result}
}

// Mul performs element-wise multiplication.
func Mul[T Floats](a, b Block[T]) Block[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] * b.data[i]
	}
	return Block[T]{data: result}
}

// FMA performs fused multiply-add: a*b + c per lane with a single rounding.
func FMA[T Floats](a, b, c Block[T]) Block[T] {
	n := min(len(a.data), min(len(b.data), len(c.data)))
	result := make([]T, n)
	for i := range n {
		result[i] = T(math.FMA(float64(a.data[i]), float64(b.data[i]), float64(c.data[i])))
	}
	return Block[T]{data: result}
}

// ReduceSum sums all lanes into a float64, lane 0 first.
// The widening keeps the final accumulation at double precision even for
// float32 blocks.
func ReduceSum[T Floats](b Block[T]) float64 {
	var sum float64
	for i := range b.data {
		sum += float64(b.data[i])
	}
	return sum
}

// TailMask creates a mask of width w with the first count lanes active.
// This is used to handle the remainder of an array whose size is not a
// multiple of the block width.
func TailMask[T Floats](w Width, count int) Mask[T] {
	lanes := w.Lanes()
	if count < 0 {
		count = 0
	}
	if count > lanes {
		count = lanes
	}

	bits := make([]bool, lanes)
	for i := range count {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// MaskLoad loads data from a slice only for lanes where the mask is true.
// Inactive lanes are left at zero, so a masked load feeds directly into an
// additive accumulator without affecting the other lanes.
func MaskLoad[T Floats](mask Mask[T], src []T) Block[T] {
	n := min(len(mask.bits), len(src))
	result := make([]T, len(mask.bits))
	for i := range n {
		if mask.bits[i] {
			result[i] = src[i]
		}
	}
	return Block[T]{data: result}
}
