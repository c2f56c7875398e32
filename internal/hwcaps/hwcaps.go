// Package hwcaps reports the SIMD-related CPU capabilities of the host.
//
// The report is a one-shot environment query with no retained state. It
// exists for diagnostics only: the kernels never branch on it, since their
// block width is fixed at construction time.
package hwcaps

import (
	"fmt"
	"io"
	"runtime"
)

// PassMark and FailMark are the prefix symbols printed for each feature.
const (
	PassMark = "✓"
	FailMark = "✗"
)

// Feature describes one instruction-set capability of the host CPU.
type Feature struct {
	Name      string
	Supported bool
	// Note relates the feature to a block width where one applies.
	Note string
}

// Report describes the host environment.
type Report struct {
	GOOS     string
	GOARCH   string
	NumCPU   int
	Features []Feature
}

// Collect inspects the runtime and CPU once and returns the report.
func Collect() Report {
	return Report{
		GOOS:     runtime.GOOS,
		GOARCH:   runtime.GOARCH,
		NumCPU:   runtime.NumCPU(),
		Features: archFeatures(),
	}
}

// Format writes a human-readable report to w. Each feature line is
// prefixed with PassMark or FailMark.
func (r Report) Format(w io.Writer) {
	fmt.Fprintf(w, "GOOS: %s\n", r.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", r.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", r.NumCPU)

	if len(r.Features) == 0 {
		fmt.Fprintln(w, "no instruction-set features reported for this architecture")
		return
	}

	fmt.Fprintln(w)
	for _, f := range r.Features {
		mark := FailMark
		if f.Supported {
			mark = PassMark
		}
		if f.Note != "" {
			fmt.Fprintf(w, "%s %s (%s)\n", mark, f.Name, f.Note)
		} else {
			fmt.Fprintf(w, "%s %s\n", mark, f.Name)
		}
	}
}
