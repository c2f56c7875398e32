package bench_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/example/lanedot/internal/bench"
	"github.com/example/lanedot/kernel"
)

// ---------------------------------------------------------------------------
// Aggregation (min/max/mean)
// ---------------------------------------------------------------------------

func TestStats_MinMaxMean(t *testing.T) {
	durations := []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		300 * time.Millisecond,
	}
	s := bench.ComputeStats(durations)

	if s.Min != 100*time.Millisecond {
		t.Errorf("want min=100ms, got %v", s.Min)
	}

	if s.Max != 300*time.Millisecond {
		t.Errorf("want max=300ms, got %v", s.Max)
	}

	if s.Mean != 200*time.Millisecond {
		t.Errorf("want mean=200ms, got %v", s.Mean)
	}
}

func TestStats_SingleRound(t *testing.T) {
	s := bench.ComputeStats([]time.Duration{150 * time.Millisecond})
	if s.Min != s.Max || s.Min != s.Mean {
		t.Errorf("single round: min/max/mean should all be equal, got min=%v max=%v mean=%v", s.Min, s.Max, s.Mean)
	}
}

func TestStats_Empty(t *testing.T) {
	s := bench.ComputeStats(nil)
	if s.Min != 0 || s.Max != 0 || s.Mean != 0 {
		t.Errorf("empty input: want zero stats, got %+v", s)
	}
}

// ---------------------------------------------------------------------------
// Input generation
// ---------------------------------------------------------------------------

func TestRandomPair_Reproducible(t *testing.T) {
	a1, b1 := bench.RandomPair(64, 7)
	a2, b2 := bench.RandomPair(64, 7)

	for i := range a1 {
		if a1[i] != a2[i] || b1[i] != b2[i] {
			t.Fatalf("same seed produced different inputs at index %d", i)
		}
	}

	a3, _ := bench.RandomPair(64, 8)
	same := true
	for i := range a1 {
		if a1[i] != a3[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical inputs")
	}
}

func TestRandomPair_Bounded(t *testing.T) {
	a, b := bench.RandomPair(1000, 1)
	for i := range a {
		if a[i] < -1 || a[i] >= 1 || b[i] < -1 || b[i] >= 1 {
			t.Fatalf("value out of [-1, 1) at index %d: a=%v b=%v", i, a[i], b[i])
		}
	}
}

// ---------------------------------------------------------------------------
// Measurement
// ---------------------------------------------------------------------------

func TestMeasure(t *testing.T) {
	a, b := bench.RandomPair(128, 3)
	k, ok := kernel.ByName("vec8")
	if !ok {
		t.Fatal("vec8 kernel not registered")
	}

	r, err := bench.Measure(k, a, b, bench.Options{Runs: 3, Warmup: 1, Iters: 10})
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}

	if r.Kernel != "vec8" {
		t.Errorf("Kernel = %q, want vec8", r.Kernel)
	}
	if r.Size != 128 {
		t.Errorf("Size = %d, want 128", r.Size)
	}
	if len(r.Rounds) != 3 {
		t.Errorf("got %d rounds, want 3", len(r.Rounds))
	}
	if r.Stats.Min > r.Stats.Mean || r.Stats.Mean > r.Stats.Max {
		t.Errorf("stats out of order: %+v", r.Stats)
	}

	want, err := kernel.Scalar(a, b)
	if err != nil {
		t.Fatalf("Scalar: %v", err)
	}
	if err := bench.CheckTolerance(r.Value, want, 1e-5); err != nil {
		t.Errorf("recorded value diverges from reference: %v", err)
	}
}

func TestMeasure_KernelError(t *testing.T) {
	a, _ := bench.RandomPair(16, 1)
	short := make([]float32, 8)
	k, _ := kernel.ByName("scalar")

	if _, err := bench.Measure(k, a, short, bench.Options{Runs: 1, Warmup: 0, Iters: 1}); err == nil {
		t.Error("want error for mismatched inputs, got nil")
	}
}

func TestMeasure_InvalidOptions(t *testing.T) {
	a, b := bench.RandomPair(16, 1)
	k, _ := kernel.ByName("scalar")

	if _, err := bench.Measure(k, a, b, bench.Options{Runs: 0, Iters: 1}); err == nil {
		t.Error("want error for runs=0, got nil")
	}
	if _, err := bench.Measure(k, a, b, bench.Options{Runs: 1, Iters: 0}); err == nil {
		t.Error("want error for iters=0, got nil")
	}
}

// ---------------------------------------------------------------------------
// Tolerance gate
// ---------------------------------------------------------------------------

func TestCheckTolerance(t *testing.T) {
	if err := bench.CheckTolerance(1.000001, 1.0, 1e-5); err != nil {
		t.Errorf("within tolerance: got error %v", err)
	}
	if err := bench.CheckTolerance(1.1, 1.0, 1e-5); err == nil {
		t.Error("outside tolerance: want error, got nil")
	}
	if err := bench.CheckTolerance(1.1, 1.0, 0); err != nil {
		t.Errorf("disabled gate: got error %v", err)
	}
}

// ---------------------------------------------------------------------------
// Formatters
// ---------------------------------------------------------------------------

func sampleResults(t *testing.T) []bench.Result {
	t.Helper()
	a, b := bench.RandomPair(64, 5)
	var results []bench.Result
	for _, name := range []string{"scalar", "vec8"} {
		k, ok := kernel.ByName(name)
		if !ok {
			t.Fatalf("kernel %q not registered", name)
		}
		r, err := bench.Measure(k, a, b, bench.Options{Runs: 2, Warmup: 1, Iters: 5})
		if err != nil {
			t.Fatalf("Measure %s: %v", name, err)
		}
		results = append(results, r)
	}
	return results
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	bench.FormatTable(sampleResults(t), &buf)

	out := buf.String()
	for _, want := range []string{"Kernel", "GFLOP/s", "scalar", "vec8"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	bench.FormatJSON(sampleResults(t), &buf)

	var report struct {
		Results []struct {
			Kernel   string    `json:"kernel"`
			Size     int       `json:"size"`
			RoundsMS []float64 `json:"rounds_ms"`
		} `json:"results"`
	}
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(report.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(report.Results))
	}
	if report.Results[0].Kernel != "scalar" || report.Results[1].Kernel != "vec8" {
		t.Errorf("unexpected kernel order: %+v", report.Results)
	}
	if len(report.Results[0].RoundsMS) != 2 {
		t.Errorf("got %d rounds in JSON, want 2", len(report.Results[0].RoundsMS))
	}
}
