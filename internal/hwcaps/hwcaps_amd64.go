//go:build amd64

package hwcaps

import "golang.org/x/sys/cpu"

func archFeatures() []Feature {
	return []Feature{
		{Name: "sse2", Supported: cpu.X86.HasSSE2, Note: "128-bit registers, w4 blocks"},
		{Name: "sse4.1", Supported: cpu.X86.HasSSE41},
		{Name: "avx", Supported: cpu.X86.HasAVX, Note: "256-bit registers, w8 blocks"},
		{Name: "avx2", Supported: cpu.X86.HasAVX2, Note: "256-bit integer and FMA-adjacent ops"},
		{Name: "fma", Supported: cpu.X86.HasFMA},
		{Name: "avx512f", Supported: cpu.X86.HasAVX512F, Note: "512-bit registers"},
	}
}
