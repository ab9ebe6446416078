package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-arrayfunc/array"
)

func TestFindIndex(t *testing.T) {
	b := array.Of[int16](5, 7, 9, 2, 9)
	cases := []struct {
		c    Compare
		v    int
		o    Options
		want int
	}{
		{Eq, 9, Options{}, 2},
		{Gt, 8, Options{}, 2},
		{Lt, 5, Options{}, 3},
		{Lt, 5, Options{MaxLen: 3}, -1},
		{Ne, 5, Options{}, 1},
		{Ge, 100, Options{}, -1},
		{Le, 5, Options{NoSIMD: true}, 0},
	}
	for _, tc := range cases {
		got, err := FindIndex(tc.c, b, scalar(tc.v), tc.o)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s %d", tc.c, tc.v)
	}

	got, err := FindIndex(Eq, array.Array[float32]{}, scalar(1), Options{})
	require.NoError(t, err)
	assert.Equal(t, -1, got)
}

func TestAllAny(t *testing.T) {
	b := array.Of(1.0, 2, 3)

	all, err := AAll(Gt, b, scalar(0), Options{})
	require.NoError(t, err)
	assert.True(t, all)

	all, err = AAll(Lt, b, scalar(3), Options{})
	require.NoError(t, err)
	assert.False(t, all)

	all, err = AAll(Lt, b, scalar(3), Options{MaxLen: 2})
	require.NoError(t, err)
	assert.True(t, all)

	anyHit, err := AAny(Eq, b, scalar(2.0), Options{})
	require.NoError(t, err)
	assert.True(t, anyHit)

	empty := array.Array[uint8]{}
	all, err = AAll(Eq, empty, scalar(1), Options{})
	require.NoError(t, err)
	assert.True(t, all)
	anyHit, err = AAny(Eq, empty, scalar(1), Options{})
	require.NoError(t, err)
	assert.False(t, anyHit)
}

func TestFindIndexSet(t *testing.T) {
	b := array.Of[uint32](4, 1, 4, 4, 0, 4)
	set, err := FindIndexSet(Eq, b, scalar(4), Options{})
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 2, 3, 5}, set.ToArray())
	assert.Equal(t, uint64(4), set.GetCardinality())

	set, err = FindIndexSet(Eq, b, scalar(4), Options{MaxLen: 3})
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 2}, set.ToArray())

	set, err = FindIndexSet(Gt, b, scalar(10), Options{})
	require.NoError(t, err)
	assert.True(t, set.IsEmpty())
}

func TestFindIndices(t *testing.T) {
	b := array.Of[int8](1, -2, 3, -4, 5)
	out := array.Of[int64](9, 9, 9, 9, 9, 9)
	n, err := FindIndices(Lt, b, out, scalar(0), Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, array.Of[int64](1, 3, 9, 9, 9, 9), out)

	_, err = FindIndices(Lt, b, array.Of[int32](0, 0, 0, 0, 0), scalar(0), Options{})
	require.ErrorIs(t, err, ErrType)

	_, err = FindIndices(Lt, b, array.Of[int64](0, 0), scalar(0), Options{})
	require.ErrorIs(t, err, ErrLength)

	n, err = FindIndices(Lt, b, array.Of[int64](0, 0), scalar(0), Options{MaxLen: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestFilters(t *testing.T) {
	in := array.Of[int32](1, 2, 8, 3, 9, 1)

	out := array.Of[int32](0, 0, 0, 0, 0, 0)
	n, err := AFilter(Lt, in, out, scalar(5), Options{})
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, array.Of[int32](1, 2, 3, 1, 0, 0), out)

	out = array.Of[int32](0, 0, 0, 0, 0, 0)
	n, err = DropWhile(Lt, in, out, scalar(5), Options{})
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, array.Of[int32](8, 3, 9, 1, 0, 0), out)

	out = array.Of[int32](0, 0, 0, 0, 0, 0)
	n, err = TakeWhile(Lt, in, out, scalar(5), Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, array.Of[int32](1, 2, 0, 0, 0, 0), out)

	out = array.Of[int32](0, 0, 0)
	n, err = AFilter(Lt, in, out, scalar(5), Options{MaxLen: 3})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, array.Of[int32](1, 2, 0), out)
}

func TestFilterErrors(t *testing.T) {
	in := array.Of[int32](1, 2, 3)

	_, err := AFilter(Lt, in, array.Of[int64](0, 0, 0), scalar(5), Options{})
	require.ErrorIs(t, err, ErrType)

	_, err = AFilter(Lt, in, array.Of[int32](0), scalar(5), Options{})
	require.ErrorIs(t, err, ErrLength)

	_, err = TakeWhile(Compare(42), in, array.Of[int32](0, 0, 0), scalar(5), Options{})
	require.ErrorIs(t, err, ErrType)

	_, err = DropWhile(Lt, in, array.Of[int32](0, 0, 0), scalar(2.5), Options{})
	require.ErrorIs(t, err, ErrType)

	_, err = DropWhile(Lt, nil, array.Of[int32](0, 0, 0), scalar(2), Options{})
	require.ErrorIs(t, err, ErrType)
}

func TestSearchPathsAgree(t *testing.T) {
	for _, dt := range array.Types() {
		for _, n := range sizes {
			b := randomBuffer(dt, int64(n)*7, n)
			for _, c := range []Compare{Eq, Ne, Lt, Le, Gt, Ge} {
				o := Options{}
				so := Options{NoSIMD: true}

				vi, err := FindIndex(c, b, scalar(0), o)
				require.NoError(t, err)
				si, err := FindIndex(c, b, scalar(0), so)
				require.NoError(t, err)
				assert.Equal(t, si, vi)

				vs, err := FindIndexSet(c, b, scalar(0), o)
				require.NoError(t, err)
				ss, err := FindIndexSet(c, b, scalar(0), so)
				require.NoError(t, err)
				assert.True(t, vs.Equals(ss), "%s %s n=%d", dt, c, n)

				vo, _ := array.New(dt, n)
				so2, _ := array.New(dt, n)
				vn, err := AFilter(c, b, vo, scalar(0), o)
				require.NoError(t, err)
				sn, err := AFilter(c, b, so2, scalar(0), so)
				require.NoError(t, err)
				assert.Equal(t, sn, vn)
				assert.Equal(t, bitsOf(so2), bitsOf(vo))
			}
		}
	}
}
