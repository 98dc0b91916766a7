package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfClassification(t *testing.T) {
	tests := []struct {
		in   any
		kind int
		str  string
	}{
		{in: 42, kind: kindInt, str: "42"},
		{in: int64(-7), kind: kindInt, str: "-7"},
		{in: uint64(18446744073709551615), kind: kindInt, str: "18446744073709551615"},
		{in: "123", kind: kindInt, str: "123"},
		{in: "-123", kind: kindInt, str: "-123"},
		{in: "1.5", kind: kindDecimal, str: "1.5"},
		{in: "1e3", kind: kindDecimal, str: "1000"},
		{in: "2.5e-3", kind: kindDecimal, str: "0.0025"},
		{in: "1/2", kind: kindRational, str: "1/2"},
		{in: "-3/4", kind: kindRational, str: "-3/4"},
		{in: 0.5, kind: kindDecimal, str: "0.5"},
		{in: NewInt(9), kind: kindInt, str: "9"},
		{in: NewDecimal(15, 1), kind: kindDecimal, str: "1.5"},
	}
	for _, tc := range tests {
		n, err := Of(tc.in)
		require.NoError(t, err, "Of(%v)", tc.in)
		assert.Equal(t, tc.kind, kindOf(n), "Of(%v) kind", tc.in)
		assert.Equal(t, tc.str, n.String(), "Of(%v)", tc.in)
	}
}

func TestOfErrors(t *testing.T) {
	for _, in := range []any{"", "abc", "1/2/3", "1/0", "1.2.3", struct{}{}, nil} {
		_, err := Of(in)
		assert.Error(t, err, "Of(%v)", in)
	}
}

func TestOfNarrowing(t *testing.T) {
	i, err := OfInt("5.00")
	require.NoError(t, err)
	assert.Equal(t, "5", i.String())

	_, err = OfInt("1/2")
	assert.ErrorIs(t, err, ErrRoundingNecessary)

	d, err := OfDecimal("1/8")
	require.NoError(t, err)
	assert.Equal(t, "0.125", d.String())

	_, err = OfDecimal("1/3")
	assert.ErrorIs(t, err, ErrRoundingNecessary)

	r, err := OfRational("1.5")
	require.NoError(t, err)
	assert.Equal(t, "15/10", r.String())

	r, err = OfRational(7)
	require.NoError(t, err)
	assert.Equal(t, "7", r.String())
}

func TestWiden(t *testing.T) {
	ns, err := Widen(1, "1/2")
	require.NoError(t, err)
	require.Len(t, ns, 2)
	for _, n := range ns {
		_, ok := n.(Rational)
		assert.True(t, ok, "widened %s to %T", n, n)
	}
	assert.Equal(t, "1", ns[0].String())
	assert.Equal(t, "1/2", ns[1].String())

	// All-Int input stays Int.
	ns, err = Widen(1, 2, 3)
	require.NoError(t, err)
	for _, n := range ns {
		_, ok := n.(Int)
		assert.True(t, ok)
	}

	// Int and Decimal widen to Decimal.
	ns, err = Widen(1, "1.5")
	require.NoError(t, err)
	for _, n := range ns {
		_, ok := n.(Decimal)
		assert.True(t, ok)
	}

	_, err = Widen()
	assert.ErrorIs(t, err, ErrNoOperands)
}

func TestMinOfMaxOf(t *testing.T) {
	min, err := MinOf(1, "1.5", "1/4")
	require.NoError(t, err)
	r, ok := min.(Rational)
	require.True(t, ok, "MinOf returned %T", min)
	assert.Equal(t, 0, r.Cmp(Rational{num: NewInt(1), den: NewInt(4)}))

	max, err := MaxOf(1, "1.5", "1/4")
	require.NoError(t, err)
	r, ok = max.(Rational)
	require.True(t, ok, "MaxOf returned %T", max)
	assert.Equal(t, 0, r.Cmp(Rational{num: NewInt(3), den: NewInt(2)}))

	_, err = MinOf()
	assert.ErrorIs(t, err, ErrNoOperands)
}

func TestMinMaxNarrowToFirst(t *testing.T) {
	// The first operand is an Int, so every operand must narrow to Int.
	min, err := Min(3, "2.00", "8/4")
	require.NoError(t, err)
	_, ok := min.(Int)
	require.True(t, ok, "Min returned %T", min)
	assert.Equal(t, "2", min.String())

	max, err := Max(3, "2.00", "8/4")
	require.NoError(t, err)
	assert.Equal(t, "3", max.String())

	// A lossy narrowing is an error, not a silent rounding.
	_, err = Min(1, "1/2")
	assert.ErrorIs(t, err, ErrRoundingNecessary)

	// With a Decimal first operand the same inputs are fine.
	min, err = Min("1.0", "1/2")
	require.NoError(t, err)
	_, ok = min.(Decimal)
	require.True(t, ok, "Min returned %T", min)
	assert.Equal(t, "0.5", min.String())
}

func TestSum(t *testing.T) {
	n, err := Sum(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, "6", n.String())
	_, ok := n.(Int)
	assert.True(t, ok)

	n, err = Sum(1, "0.5")
	require.NoError(t, err)
	assert.Equal(t, "1.5", n.String())

	n, err = Sum("1/2", "1/3", 1)
	require.NoError(t, err)
	r, ok := n.(Rational)
	require.True(t, ok, "Sum returned %T", n)
	assert.Equal(t, 0, r.Cmp(Rational{num: NewInt(11), den: NewInt(6)}))

	_, err = Sum()
	assert.ErrorIs(t, err, ErrNoOperands)
}
