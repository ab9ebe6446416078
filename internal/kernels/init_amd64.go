//go:build amd64 && !purego

package kernels

// Blank imports trigger the registering init functions.
import (
	_ "github.com/cwbudde/algo-arrayfunc/internal/kernels/arch/amd64"
	_ "github.com/cwbudde/algo-arrayfunc/internal/kernels/arch/generic"
)
