package kernel

import "iter"

// products returns a lazy sequence of the positional products of a and b.
// The sequence yields float64(a[i])*float64(b[i]) for i = 0..N-1 in order.
func products(a, b []float32) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for i := range a {
			if !yield(float64(a[i]) * float64(b[i])) {
				return
			}
		}
	}
}

// Pairwise computes the dot product by zipping a and b into a lazy product
// sequence and summing it. The summation order matches Scalar's index
// order, so the two kernels round identically; Pairwise exists to contrast
// an expression-oriented formulation against the explicit loop.
func Pairwise(a, b []float32) (float64, error) {
	if err := checkPair(a, b); err != nil {
		return 0, err
	}

	var sum float64
	for p := range products(a, b) {
		sum += p
	}
	return sum, nil
}
