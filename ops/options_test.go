package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-arrayfunc/array"
)

func TestParseCompare(t *testing.T) {
	cases := map[string]Compare{
		"==": Eq, "eq": Eq,
		"!=": Ne, "NE": Ne,
		"<": Lt, "lt": Lt,
		"<=": Le, " le ": Le,
		">": Gt, "gt": Gt,
		">=": Ge, "ge": Ge,
	}
	for in, want := range cases {
		got, err := ParseCompare(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseCompare("=<")
	require.ErrorIs(t, err, ErrType)

	assert.Equal(t, "<=", Le.String())
	assert.Equal(t, "invalid", Compare(9).String())
}

func TestOptionsLength(t *testing.T) {
	assert.Equal(t, 5, Options{}.length(5, 7))
	assert.Equal(t, 3, Options{MaxLen: 3}.length(5, 7))
	assert.Equal(t, 5, Options{MaxLen: 30}.length(5, 7))
	assert.Equal(t, 0, Options{}.length())

	require.ErrorIs(t, Options{MaxLen: -1}.validate("asum"), ErrType)
	require.NoError(t, Options{MaxLen: 0}.validate("asum"))
}

func TestImplementations(t *testing.T) {
	active := Active()
	assert.NotEmpty(t, active.Name)
	for _, dt := range array.Types() {
		assert.Equal(t, 1, Lanes(dt, true))
		if active.Width > 0 {
			assert.Equal(t, active.Width/dt.Size(), Lanes(dt, false), dt.String())
		} else {
			assert.Equal(t, 1, Lanes(dt, false), dt.String())
		}
	}

	impls, supported := Implementations()
	require.Len(t, supported, len(impls))
	require.NotEmpty(t, impls)
	names := make([]string, len(impls))
	for i, impl := range impls {
		names[i] = impl.Name
	}
	assert.Contains(t, names, "generic")
	assert.Contains(t, names, active.Name)

	impl, runs, ok := LookupImplementation(active.Name)
	require.True(t, ok)
	assert.True(t, runs)
	assert.Equal(t, active, impl)
	for _, dt := range array.Types() {
		assert.Equal(t, Lanes(dt, false), impl.Lanes(dt), dt.String())
	}

	generic, _, ok := LookupImplementation("generic")
	require.True(t, ok)
	assert.Equal(t, 1, generic.Lanes(array.TypeInt8))

	_, _, ok = LookupImplementation("no-such-level")
	assert.False(t, ok)
}
