package ops

import (
	"log/slog"
	"sync/atomic"

	"github.com/cwbudde/algo-arrayfunc/internal/kernels"
	"github.com/cwbudde/algo-arrayfunc/internal/kernels/registry"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.DiscardHandler))
	kernels.OnSelect(func(e *registry.Entry) {
		Logger().Debug("kernel selected",
			"name", e.Name,
			"simd", e.SIMDLevel.String(),
			"width", e.Width,
		)
	})
}

// SetLogger installs the logger used by the package. nil discards output.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	return logger.Load()
}
