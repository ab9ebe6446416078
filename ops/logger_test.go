package ops

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-arrayfunc/array"
	"github.com/cwbudde/algo-arrayfunc/internal/kernels"
)

func TestKernelSelectionLogged(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() {
		SetLogger(nil)
		kernels.Refresh()
	})

	kernels.Refresh()
	_, err := ASum(array.Of[int32](1, 2, 3), Options{})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "kernel selected")
	assert.Contains(t, buf.String(), "name="+Active().Name)
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(nil)
	require.NotNil(t, Logger())
	Logger().Info("discarded")
}
