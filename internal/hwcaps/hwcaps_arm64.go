//go:build arm64

package hwcaps

import "golang.org/x/sys/cpu"

func archFeatures() []Feature {
	return []Feature{
		{Name: "fp", Supported: cpu.ARM64.HasFP},
		{Name: "asimd", Supported: cpu.ARM64.HasASIMD, Note: "NEON, 128-bit registers, w4 blocks"},
		{Name: "asimdfhm", Supported: cpu.ARM64.HasASIMDFHM},
		{Name: "sve", Supported: cpu.ARM64.HasSVE, Note: "scalable vector length"},
		{Name: "sve2", Supported: cpu.ARM64.HasSVE2},
	}
}
