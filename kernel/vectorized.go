package kernel

import "github.com/example/lanedot/lane"

// Vectorized returns a blocked kernel of width w. Each iteration loads w
// contiguous elements from both inputs, multiplies them element-wise and
// adds the products into a w-lane accumulator; the horizontal reduction
// happens exactly once, after the last block.
//
// The len%w remainder is covered by a masked load, so every element enters
// the sum exactly once for any N >= w. An earlier formulation re-read the
// final w elements at a fixed offset instead, which double-counts the
// overlap whenever N is not a multiple of w; for a reduction that is a
// wrong answer rather than redundant work, so the masked tail is used.
func Vectorized(w lane.Width) Func {
	lanes := w.Lanes()

	return func(a, b []float32) (float64, error) {
		if err := checkBlocked(a, b, w); err != nil {
			return 0, err
		}

		acc := lane.Zero[float32](w)

		// bound is computed once; the loop advances a read position
		// against it rather than re-slicing the inputs.
		bound := len(a) - lanes
		i := 0
		for ; i <= bound; i += lanes {
			va := lane.Load(a[i:], w)
			vb := lane.Load(b[i:], w)
			acc = lane.Add(acc, lane.Mul(va, vb))
		}

		if rem := len(a) - i; rem > 0 {
			mask := lane.TailMask[float32](w, rem)
			va := lane.MaskLoad(mask, a[i:])
			vb := lane.MaskLoad(mask, b[i:])
			acc = lane.Add(acc, lane.Mul(va, vb))
		}

		return lane.ReduceSum(acc), nil
	}
}

// PerBlockReduce returns a blocked kernel of width w that horizontally
// reduces every block's products immediately into a running float64,
// instead of deferring one reduction to the end as Vectorized does. Each
// block costs an extra horizontal sum and the result sees more intermediate
// roundings, but every iteration leaves a plain scalar behind.
func PerBlockReduce(w lane.Width) Func {
	lanes := w.Lanes()

	return func(a, b []float32) (float64, error) {
		if err := checkBlocked(a, b, w); err != nil {
			return 0, err
		}

		var sum float64

		bound := len(a) - lanes
		i := 0
		for ; i <= bound; i += lanes {
			va := lane.Load(a[i:], w)
			vb := lane.Load(b[i:], w)
			sum += lane.ReduceSum(lane.Mul(va, vb))
		}

		if rem := len(a) - i; rem > 0 {
			mask := lane.TailMask[float32](w, rem)
			va := lane.MaskLoad(mask, a[i:])
			vb := lane.MaskLoad(mask, b[i:])
			sum += lane.ReduceSum(lane.Mul(va, vb))
		}

		return sum, nil
	}
}
