package ops

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-arrayfunc/array"
	"github.com/cwbudde/algo-arrayfunc/internal/kernels"
)

func TestErrorHierarchy(t *testing.T) {
	assert.ErrorIs(t, ErrOverflow, ErrArithmetic)
	assert.ErrorIs(t, ErrZeroDivision, ErrArithmetic)
	assert.NotErrorIs(t, ErrType, ErrArithmetic)
	assert.NotErrorIs(t, ErrOverflow, ErrZeroDivision)
}

func TestErrorMessage(t *testing.T) {
	err := translateError("neg", array.TypeInt8, &kernels.Fault{Kind: kernels.FaultOverflow, Index: 4})
	assert.Equal(t, "neg: arithmetic error: overflow (int8, index 4)", err.Error())

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "neg", e.Op)
	assert.Equal(t, "int8", e.Type)
	assert.Equal(t, 4, e.Index)

	err = translateError("log", array.TypeFloat32, &kernels.Fault{Kind: kernels.FaultNonFinite, Index: -1})
	assert.Equal(t, "log: arithmetic error: non-finite value (float32)", err.Error())

	err = newError("call", ErrArgumentCount, "want %d", 1)
	assert.Equal(t, "call: invalid argument count: want 1", err.Error())
}

func TestTranslateError(t *testing.T) {
	cases := []struct {
		kind kernels.FaultKind
		want error
	}{
		{kernels.FaultOverflow, ErrOverflow},
		{kernels.FaultNegativeFactorial, ErrOverflow},
		{kernels.FaultZeroDivision, ErrZeroDivision},
		{kernels.FaultNonFinite, ErrArithmetic},
		{kernels.FaultNegativeExponent, ErrArithmetic},
		{kernels.FaultNegativeShift, ErrArithmetic},
	}
	for _, tc := range cases {
		err := translateError("op", array.TypeInt32, &kernels.Fault{Kind: tc.kind, Index: 0})
		assert.ErrorIs(t, err, tc.want, tc.kind.String())
	}

	_, convErr := array.Convert[int8](array.ScalarOf(1.5))
	assert.ErrorIs(t, translateError("op", array.TypeInt8, convErr), ErrType)
	_, convErr = array.Convert[int8](array.ScalarOf(int64(300)))
	assert.ErrorIs(t, translateError("op", array.TypeInt8, convErr), ErrOverflow)

	assert.NoError(t, translateError("op", array.TypeInt8, nil))
	assert.NoError(t, faultErr("op", array.TypeInt8, nil))
}
