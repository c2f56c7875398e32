package kernel

import "github.com/example/lanedot/lane"

// Kernel is a named dot-product implementation.
type Kernel struct {
	Name string
	Dot  Func
}

// registry holds every kernel/width combination in benchmark order.
// It is fixed at init; width selection is a build-time decision, not a
// runtime one.
var registry = []Kernel{
	{Name: "scalar", Dot: Scalar},
	{Name: "pairwise", Dot: Pairwise},
	{Name: "vec2", Dot: Vectorized(lane.W2)},
	{Name: "vec4", Dot: Vectorized(lane.W4)},
	{Name: "vec8", Dot: Vectorized(lane.W8)},
	{Name: "vec8-perblock", Dot: PerBlockReduce(lane.W8)},
}

// Kernels returns all registered kernels in a stable order.
func Kernels() []Kernel {
	return append([]Kernel(nil), registry...)
}

// ByName returns the kernel registered under name.
func ByName(name string) (Kernel, bool) {
	for _, k := range registry {
		if k.Name == name {
			return k, true
		}
	}
	return Kernel{}, false
}
