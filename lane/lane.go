// Package lane provides fixed-width packed-lane values for blocked
// floating-point reductions.
//
// A Block groups W adjacent elements so that loops can load, multiply and
// accumulate W elements per iteration and defer the horizontal reduction
// to a single final step. The width is chosen at construction time and
// models a SIMD register: 2, 4 or 8 lanes of float32 correspond to 64-,
// 128- and 256-bit registers.
//
// Basic usage:
//
//	acc := lane.Zero[float32](lane.W8)
//	va := lane.Load(a, lane.W8)
//	vb := lane.Load(b, lane.W8)
//	acc = lane.Add(acc, lane.Mul(va, vb))
//	sum := lane.ReduceSum(acc)
package lane

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// Width is the number of lanes in a Block. It is fixed when a Block is
// constructed; there is no runtime re-dispatch between widths.
type Width int

const (
	// W2 packs 2 lanes (a 64-bit register of float32).
	W2 Width = 2

	// W4 packs 4 lanes (a 128-bit register of float32).
	W4 Width = 4

	// W8 packs 8 lanes (a 256-bit register of float32).
	W8 Width = 8
)

// Lanes returns the lane count as an int.
func (w Width) Lanes() int {
	return int(w)
}

// Bits returns the register width in bits for float32 lanes.
func (w Width) Bits() int {
	return int(w) * 32
}

// Valid reports whether w is one of the supported widths.
func (w Width) Valid() bool {
	switch w {
	case W2, W4, W8:
		return true
	default:
		return false
	}
}

// String returns a human-readable name for the width.
func (w Width) String() string {
	switch w {
	case W2:
		return "w2"
	case W4:
		return "w4"
	case W8:
		return "w8"
	default:
		return "unknown"
	}
}

// Block is a packed value of W lanes.
//
// Block instances should not be created directly; use Zero, Set or Load
// instead.
type Block[T Floats] struct {
	// data holds the lane elements.
	data []T
}

// NumLanes returns the number of lanes in this block.
func (b Block[T]) NumLanes() int {
	return len(b.data)
}

// Data returns the underlying slice representation of the block.
// This is primarily for testing and should not be used in
// performance-critical code.
func (b Block[T]) Data() []T {
	return b.data
}

// Store writes the block's lanes to a slice.
func (b Block[T]) Store(dst []T) {
	n := min(len(dst), len(b.data))
	copy(dst[:n], b.data[:n])
}

// Mask selects a subset of lanes for partial loads.
//
// Mask instances should not be created directly; use TailMask instead.
type Mask[T Floats] struct {
	// bits stores which lanes are active (true).
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}
