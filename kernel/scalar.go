package kernel

// Scalar computes the dot product with a plain accumulation loop, visiting
// indices 0..N-1 in order. Each product is widened to float64 before it is
// added, so the accumulator carries double precision throughout.
//
// Scalar is the reference the other kernels are validated against.
func Scalar(a, b []float32) (float64, error) {
	if err := checkPair(a, b); err != nil {
		return 0, err
	}

	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum, nil
}
