// Package bench provides the measurement harness for the lanedot bench
// command.
package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/example/lanedot/kernel"
)

// ---------------------------------------------------------------------------
// Input generation
// ---------------------------------------------------------------------------

// RandomPair generates two arrays of length n filled with values in
// [-1, 1). The generator is seeded, so the same seed reproduces the same
// inputs across runs and across kernels.
func RandomPair(n int, seed uint64) ([]float32, []float32) {
	rng := rand.New(rand.NewPCG(seed, uint64(n)))
	a := make([]float32, n)
	b := make([]float32, n)
	for i := range a {
		a[i] = float32(rng.Float64()*2 - 1)
		b[i] = float32(rng.Float64()*2 - 1)
	}
	return a, b
}

// ---------------------------------------------------------------------------
// Measurement
// ---------------------------------------------------------------------------

// Options controls how each kernel/size combination is measured.
type Options struct {
	// Runs is the number of timed rounds. Must be at least 1.
	Runs int
	// Warmup is the number of untimed rounds executed first.
	Warmup int
	// Iters is the number of kernel invocations per round.
	Iters int
}

// Result holds the timing for one kernel at one input size.
type Result struct {
	Kernel string
	Size   int
	Iters  int
	Rounds []time.Duration
	Stats  Stats
	// Value is the dot product returned by the kernel, recorded for
	// verification against the scalar reference.
	Value float64
	// NsPerOp is the mean duration of a single kernel invocation.
	NsPerOp float64
	// GFLOPS counts two floating-point operations (multiply and add) per
	// element pair, over the mean round duration.
	GFLOPS float64
}

// Stats holds aggregate timing statistics across rounds.
type Stats struct {
	Min  time.Duration
	Max  time.Duration
	Mean time.Duration
}

// ComputeStats calculates min, max and mean over a slice of durations.
func ComputeStats(durations []time.Duration) Stats {
	if len(durations) == 0 {
		return Stats{}
	}
	mn, mx := durations[0], durations[0]
	var sum time.Duration
	for _, d := range durations {
		if d < mn {
			mn = d
		}
		if d > mx {
			mx = d
		}
		sum += d
	}
	return Stats{
		Min:  mn,
		Max:  mx,
		Mean: sum / time.Duration(len(durations)),
	}
}

// Measure times one kernel over a and b. It runs opts.Warmup untimed
// rounds, then opts.Runs timed rounds of opts.Iters invocations each.
// A kernel error aborts the measurement immediately.
func Measure(k kernel.Kernel, a, b []float32, opts Options) (Result, error) {
	if opts.Runs < 1 {
		return Result{}, fmt.Errorf("bench: runs must be at least 1, got %d", opts.Runs)
	}
	if opts.Iters < 1 {
		return Result{}, fmt.Errorf("bench: iters must be at least 1, got %d", opts.Iters)
	}

	var value float64
	for range opts.Warmup {
		v, err := k.Dot(a, b)
		if err != nil {
			return Result{}, fmt.Errorf("bench: warmup %s: %w", k.Name, err)
		}
		value = v
	}

	rounds := make([]time.Duration, 0, opts.Runs)
	for range opts.Runs {
		start := time.Now()
		for range opts.Iters {
			v, err := k.Dot(a, b)
			if err != nil {
				return Result{}, fmt.Errorf("bench: %s: %w", k.Name, err)
			}
			value = v
		}
		rounds = append(rounds, time.Since(start))
	}

	stats := ComputeStats(rounds)
	nsPerOp := float64(stats.Mean.Nanoseconds()) / float64(opts.Iters)
	var gflops float64
	if stats.Mean > 0 {
		ops := 2 * float64(len(a)) * float64(opts.Iters)
		gflops = ops / stats.Mean.Seconds() / 1e9
	}

	return Result{
		Kernel:  k.Name,
		Size:    len(a),
		Iters:   opts.Iters,
		Rounds:  rounds,
		Stats:   stats,
		Value:   value,
		NsPerOp: nsPerOp,
		GFLOPS:  gflops,
	}, nil
}

// ---------------------------------------------------------------------------
// Verification gate
// ---------------------------------------------------------------------------

// CheckTolerance returns an error if got diverges from want by more than
// the given relative tolerance. A tolerance of 0 disables the gate.
func CheckTolerance(got, want, tolerance float64) error {
	if tolerance <= 0 {
		return nil
	}
	diff := math.Abs(got - want)
	if want != 0 {
		diff /= math.Abs(want)
	}
	if diff > tolerance {
		return fmt.Errorf("result %v diverges from reference %v by %.2e (tolerance %.2e)", got, want, diff, tolerance)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Output formatters
// ---------------------------------------------------------------------------

// FormatTable writes a human-readable ASCII table of bench results to w.
func FormatTable(results []Result, w io.Writer) {
	sb := &strings.Builder{}

	fmt.Fprintf(sb, "%-14s  %9s  %12s  %12s  %12s  %8s\n", "Kernel", "N", "Min(ns/op)", "Mean(ns/op)", "Max(ns/op)", "GFLOP/s")
	fmt.Fprintln(sb, strings.Repeat("-", 76))

	for _, r := range results {
		iters := float64(r.Iters)
		fmt.Fprintf(sb, "%-14s  %9d  %12.1f  %12.1f  %12.1f  %8.2f\n",
			r.Kernel,
			r.Size,
			float64(r.Stats.Min.Nanoseconds())/iters,
			float64(r.Stats.Mean.Nanoseconds())/iters,
			float64(r.Stats.Max.Nanoseconds())/iters,
			r.GFLOPS,
		)
	}

	fmt.Fprint(w, sb.String())
}

// jsonReport is the top-level JSON structure emitted by FormatJSON.
type jsonReport struct {
	Results []jsonResult `json:"results"`
}

type jsonResult struct {
	Kernel   string    `json:"kernel"`
	Size     int       `json:"size"`
	Iters    int       `json:"iters"`
	MinNsOp  float64   `json:"min_ns_op"`
	MeanNsOp float64   `json:"mean_ns_op"`
	MaxNsOp  float64   `json:"max_ns_op"`
	GFLOPS   float64   `json:"gflops"`
	Value    float64   `json:"value"`
	RoundsMS []float64 `json:"rounds_ms"`
}

// FormatJSON writes a JSON report of bench results to w.
func FormatJSON(results []Result, w io.Writer) {
	jr := jsonReport{Results: make([]jsonResult, len(results))}
	for i, r := range results {
		iters := float64(r.Iters)
		rounds := make([]float64, len(r.Rounds))
		for j, d := range r.Rounds {
			rounds[j] = float64(d.Nanoseconds()) / 1e6
		}
		jr.Results[i] = jsonResult{
			Kernel:   r.Kernel,
			Size:     r.Size,
			Iters:    r.Iters,
			MinNsOp:  float64(r.Stats.Min.Nanoseconds()) / iters,
			MeanNsOp: float64(r.Stats.Mean.Nanoseconds()) / iters,
			MaxNsOp:  float64(r.Stats.Max.Nanoseconds()) / iters,
			GFLOPS:   r.GFLOPS,
			Value:    r.Value,
			RoundsMS: rounds,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(jr)
}
