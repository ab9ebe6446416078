package cpu

import (
	"runtime"
	"testing"
)

func TestSIMDLevel_String(t *testing.T) {
	tests := []struct {
		level SIMDLevel
		want  string
	}{
		{SIMDNone, "None"},
		{SIMDSSE2, "SSE2"},
		{SIMDAVX, "AVX"},
		{SIMDAVX2, "AVX2"},
		{SIMDAVX512, "AVX-512"},
		{SIMDNEON, "NEON"},
		{SIMDSVELTE, "SVE"},
		{SIMDLevel(999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSIMDLevel_Width(t *testing.T) {
	tests := []struct {
		level SIMDLevel
		want  int
	}{
		{SIMDNone, 0},
		{SIMDSSE2, 16},
		{SIMDAVX, 32},
		{SIMDAVX2, 32},
		{SIMDAVX512, 64},
		{SIMDNEON, 16},
		{SIMDSVELTE, 0},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := tt.level.Width(); got != tt.want {
				t.Errorf("Width() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		level    SIMDLevel
		want     bool
	}{
		{"generic always supported", Features{}, SIMDNone, true},
		{"SSE2 supported when HasSSE2", Features{HasSSE2: true}, SIMDSSE2, true},
		{"SSE2 not supported without HasSSE2", Features{}, SIMDSSE2, false},
		{"AVX2 supported when HasAVX2", Features{HasAVX2: true}, SIMDAVX2, true},
		{"AVX-512 supported when HasAVX512", Features{HasAVX512: true}, SIMDAVX512, true},
		{"NEON supported when HasNEON", Features{HasNEON: true}, SIMDNEON, true},
		{"SVE never supported", Features{HasNEON: true}, SIMDSVELTE, false},
		{"ForceGeneric blocks all SIMD", Features{HasSSE2: true, HasAVX2: true, ForceGeneric: true}, SIMDAVX2, false},
		{"ForceGeneric allows generic", Features{ForceGeneric: true}, SIMDNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Supports(tt.features, tt.level); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBest(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		want     SIMDLevel
	}{
		{"none", Features{}, SIMDNone},
		{"sse2 only", Features{HasSSE2: true}, SIMDSSE2},
		{"avx2", Features{HasSSE2: true, HasAVX: true, HasAVX2: true}, SIMDAVX2},
		{"avx512", Features{HasSSE2: true, HasAVX2: true, HasAVX512: true}, SIMDAVX512},
		{"neon", Features{HasNEON: true}, SIMDNEON},
		{"forced generic", Features{HasAVX2: true, ForceGeneric: true}, SIMDNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Best(tt.features); got != tt.want {
				t.Errorf("Best() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestForcedFeatures(t *testing.T) {
	SetForcedFeatures(Features{HasNEON: true, Architecture: "arm64"})
	defer ResetDetection()

	f := DetectFeatures()
	if !f.HasNEON || f.Architecture != "arm64" {
		t.Fatalf("forced features not returned: %+v", f)
	}
}

func TestDetectFeatures_Architecture(t *testing.T) {
	ResetDetection()
	defer ResetDetection()

	if got := DetectFeatures().Architecture; got != runtime.GOARCH {
		t.Errorf("Architecture = %q, want %q", got, runtime.GOARCH)
	}
}

func TestNoSIMDEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"yes", true},
		{"0", false},
		{"false", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(NoSIMDEnv, tt.value)
			ResetDetection()
			defer ResetDetection()

			if got := DetectFeatures().ForceGeneric; got != tt.want {
				t.Errorf("ForceGeneric = %v, want %v", got, tt.want)
			}
		})
	}
}
