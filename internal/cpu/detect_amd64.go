//go:build amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl reads CPUID through golang.org/x/sys/cpu.
// AVX-512 is reported only when the foundation and byte/word subsets are
// both present, since the 8/16-bit kernels rely on them.
func detectFeaturesImpl() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW,
		Architecture: runtime.GOARCH,
	}
}
