package kernels

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-arrayfunc/internal/testutil"
)

func negChecked(x int8) (int8, FaultKind) {
	v, o := NegSigned(x)
	if o {
		return v, FaultOverflow
	}
	return v, FaultNone
}

func TestUnaryProbeLeavesOutputUntouched(t *testing.T) {
	for _, n := range []int{1, 7, 16, 33, 64, 65} {
		for _, pos := range []int{0, n / 2, n - 1} {
			src := testutil.Arith[int8](1, 1, n)
			src[pos] = math.MinInt8
			for _, p := range testPaths() {
				dst := testutil.Tile([]int8{42}, n)
				fault := Unary(p, dst, src, negChecked, true)
				if fault == nil || fault.Kind != FaultOverflow || fault.Index != pos {
					t.Fatalf("n=%d pos=%d %s: fault = %v", n, pos, pathName(p), fault)
				}
				testutil.RequireBitsEqual(t, dst, testutil.Tile([]int8{42}, n))
			}
		}
	}
}

func TestUnaryUncheckedWraps(t *testing.T) {
	src := testutil.Boundary[int8]()
	want := make([]int8, len(src))
	for i, v := range src {
		want[i] = -v
	}
	for _, p := range testPaths() {
		dst := make([]int8, len(src))
		if fault := Unary(p, dst, src, negChecked, false); fault != nil {
			t.Fatalf("%s: unexpected fault %v", pathName(p), fault)
		}
		testutil.RequireBitsEqual(t, dst, want)
	}
}

func TestUnaryInPlace(t *testing.T) {
	x := testutil.Arith[int8](-10, 1, 21)
	for _, p := range testPaths() {
		y := append([]int8(nil), x...)
		if fault := Unary(p, y, y, negChecked, true); fault != nil {
			t.Fatalf("%s: fault %v", pathName(p), fault)
		}
		for i := range y {
			if y[i] != -x[i] {
				t.Fatalf("%s: y[%d] = %d, want %d", pathName(p), i, y[i], -x[i])
			}
		}
	}
}

func TestBinaryBroadcastAndFault(t *testing.T) {
	div := func(a, b int32) (int32, FaultKind) {
		if b == 0 {
			return 0, FaultZeroDivision
		}
		return a / b, FaultNone
	}
	for _, n := range []int{0, 1, 9, 16, 40} {
		a := testutil.Arith[int32](0, 3, n)
		b := testutil.Tile([]int32{1, 2, 3}, n)
		for _, p := range testPaths() {
			dst := make([]int32, n)
			if fault := Binary(p, dst, Vec(a), Broadcast[int32](2), div, true); fault != nil {
				t.Fatalf("%s: fault %v", pathName(p), fault)
			}
			for i := range dst {
				if dst[i] != a[i]/2 {
					t.Fatalf("%s: dst[%d] = %d", pathName(p), i, dst[i])
				}
			}

			if n < 9 {
				continue
			}
			b[7] = 0
			before := append([]int32(nil), dst...)
			fault := Binary(p, dst, Broadcast[int32](100), Vec(b), div, true)
			if fault == nil || fault.Index != 7 || fault.Kind != FaultZeroDivision {
				t.Fatalf("%s: fault = %v, want zero division at 7", pathName(p), fault)
			}
			testutil.RequireBitsEqual(t, dst, before)
			b[7] = 2
		}
	}
}

func TestFloat64BlockKernels(t *testing.T) {
	for _, n := range testutil.Sizes {
		a := testutil.Random[float64](1, n, 100)
		b := testutil.Random[float64](2, n, 100)
		wantAdd := make([]float64, n)
		wantMul := make([]float64, n)
		wantScale := make([]float64, n)
		for i := range a {
			wantAdd[i] = a[i] + b[i]
			wantMul[i] = a[i] * b[i]
			wantScale[i] = a[i] * 3.5
		}

		for _, p := range append(testPaths(), Select(8, false)) {
			dst := make([]float64, n)
			AddFloat64(p, dst, a, b)
			testutil.RequireBitsEqual(t, dst, wantAdd)

			// destination aliasing either operand
			x := append([]float64(nil), b...)
			AddFloat64(p, x, a, x)
			testutil.RequireBitsEqual(t, x, wantAdd)
			y := append([]float64(nil), a...)
			AddFloat64(p, y, y, b)
			testutil.RequireBitsEqual(t, y, wantAdd)

			MulFloat64(p, dst, a, b)
			testutil.RequireBitsEqual(t, dst, wantMul)

			ScaleFloat64(p, dst, a, 3.5)
			testutil.RequireBitsEqual(t, dst, wantScale)
		}
	}
}
