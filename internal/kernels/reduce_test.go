package kernels

import (
	"math"
	"math/big"
	"testing"

	"github.com/cwbudde/algo-arrayfunc/internal/testutil"
)

func bigSum[T Number](x []T) *big.Int {
	s := new(big.Int)
	for _, v := range x {
		if IsSigned[T]() {
			s.Add(s, big.NewInt(int64(v)))
		} else {
			s.Add(s, new(big.Int).SetUint64(uint64(v)))
		}
	}
	return s
}

func TestSumSignedMatchesBigInt(t *testing.T) {
	for _, n := range testutil.Sizes {
		small := testutil.Small[int32](int64(n), n, 1000)
		wide := testutil.Random[int64](int64(n), n, 0)
		for _, p := range testPaths() {
			t.Run(sizeStr(n)+"/"+pathName(p), func(t *testing.T) {
				got, overflow := SumSigned(p, small)
				if want := bigSum(small); overflow || got != want.Int64() {
					t.Fatalf("SumSigned = %d (overflow %v), want %v", got, overflow, want)
				}

				got, overflow = SumSigned(p, wide)
				want := bigSum(wide)
				if overflow == want.IsInt64() {
					t.Fatalf("overflow = %v for exact sum %v", overflow, want)
				}
				mod := new(big.Int).And(want, new(big.Int).SetUint64(math.MaxUint64))
				if uint64(got) != mod.Uint64() {
					t.Fatalf("wrapped sum = %d, want low bits %v", got, mod)
				}
			})
		}
	}
}

func TestSumUnsignedOverflow(t *testing.T) {
	x := []uint64{math.MaxUint64, 1, 0, 0, 0, 0, 0, 0, 5}
	for _, p := range testPaths() {
		got, overflow := SumUnsigned(p, x)
		if !overflow || got != 5 {
			t.Fatalf("%s: SumUnsigned = %d, %v", pathName(p), got, overflow)
		}
	}

	// an overflowing prefix that comes back into range is not an overflow
	y := []int8{100, 100, 100, -100, -100, -100, 127}
	for _, p := range testPaths() {
		got, overflow := SumSigned(p, y)
		if overflow || got != 127 {
			t.Fatalf("%s: SumSigned = %d, %v", pathName(p), got, overflow)
		}
	}
}

func TestSumFloatPathsIdentical(t *testing.T) {
	for _, n := range testutil.Sizes {
		x := testutil.Random[float32](7, n, 1e6)
		want, fault := SumFloat(Scalar, x, true)
		if fault != nil {
			t.Fatalf("n=%d: unexpected fault %v", n, fault)
		}
		for _, p := range testPaths() {
			got, fault := SumFloat(p, x, true)
			if fault != nil || math.Float64bits(got) != math.Float64bits(want) {
				t.Fatalf("n=%d %s: SumFloat = %v, %v, want %v", n, pathName(p), got, fault, want)
			}
		}
	}
}

func TestSumFloatNonFinite(t *testing.T) {
	x := testutil.Arith[float64](0, 1, 40)
	x[21] = math.NaN()
	x[30] = math.Inf(1)
	for _, p := range testPaths() {
		_, fault := SumFloat(p, x, true)
		if fault == nil || fault.Kind != FaultNonFinite || fault.Index != 21 {
			t.Fatalf("%s: fault = %v, want non-finite at 21", pathName(p), fault)
		}
		got, fault := SumFloat(p, x, false)
		if fault != nil || !math.IsNaN(got) {
			t.Fatalf("%s: unchecked sum = %v, %v, want NaN", pathName(p), got, fault)
		}
	}

	huge := []float64{math.MaxFloat64, math.MaxFloat64}
	if _, fault := SumFloat(Scalar, huge, true); fault == nil || fault.Index != -1 {
		t.Fatalf("overflowing total fault = %v, want index -1", fault)
	}
}

func TestMaxMinInteger(t *testing.T) {
	for _, n := range testutil.Sizes[1:] {
		x := testutil.Random[int16](int64(n), n, 0)
		wantMax, wantMin := x[0], x[0]
		for _, v := range x {
			wantMax = max(wantMax, v)
			wantMin = min(wantMin, v)
		}
		for _, p := range testPaths() {
			if got := MaxInteger(p, x); got != wantMax {
				t.Fatalf("n=%d %s: MaxInteger = %d, want %d", n, pathName(p), got, wantMax)
			}
			if got := MinInteger(p, x); got != wantMin {
				t.Fatalf("n=%d %s: MinInteger = %d, want %d", n, pathName(p), got, wantMin)
			}
		}
	}
}

func TestMaxMinFloatSignedZero(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	x := testutil.Tile([]float32{negZero, 0, negZero}, 37)
	for _, p := range testPaths() {
		got, fault := MaxFloat(p, x, true)
		if fault != nil || math.Signbit(float64(got)) {
			t.Fatalf("%s: MaxFloat = %v, %v, want +0", pathName(p), got, fault)
		}
		got, fault = MinFloat(p, x, true)
		if fault != nil || !math.Signbit(float64(got)) {
			t.Fatalf("%s: MinFloat = %v, %v, want -0", pathName(p), got, fault)
		}
	}
}

func TestMaxFloatNaN(t *testing.T) {
	for _, pos := range []int{0, 1, 17, 38} {
		x := testutil.Arith[float64](0, 1, 39)
		x[pos] = math.NaN()
		for _, p := range testPaths() {
			_, fault := MaxFloat(p, x, true)
			if fault == nil || fault.Index != pos {
				t.Fatalf("pos=%d %s: fault = %v", pos, pathName(p), fault)
			}
			got, fault := MinFloat(p, x, false)
			if fault != nil || !math.IsNaN(got) {
				t.Fatalf("pos=%d %s: unchecked MinFloat = %v", pos, pathName(p), got)
			}
		}
	}
}

func TestCount(t *testing.T) {
	for _, n := range testutil.Sizes {
		x := testutil.Small[uint8](int64(n), n, 3)
		want := 0
		for _, v := range x {
			if v == 2 {
				want++
			}
		}
		for _, p := range testPaths() {
			if got := Count(p, x, 2); got != want {
				t.Fatalf("n=%d %s: Count = %d, want %d", n, pathName(p), got, want)
			}
		}
	}
}
