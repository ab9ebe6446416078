//go:build (!amd64 && !arm64) || purego

package kernels

// Only the pure Go fallback is available on this build.
import (
	_ "github.com/cwbudde/algo-arrayfunc/internal/kernels/arch/generic"
)
