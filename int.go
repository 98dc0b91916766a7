package math

import (
	"strconv"

	"github.com/pkg/errors"
)

// An Int is an immutable arbitrary-precision signed integer. It owns one
// canonical digit string: an optional leading minus, no leading zeros, and
// "0" never signed. Every operation returns a new value; an Int is never
// mutated, so instances may be shared freely between goroutines.
//
// The zero value is 0 and ready to use.
type Int struct {
	value string
}

// Small well-known constants, memoized.
var (
	intZero = Int{}
	intOne  = Int{value: "1"}
	intTwo  = Int{value: "2"}
	intTen  = Int{value: "10"}
)

// NewInt returns an Int with value i.
func NewInt(i int64) Int {
	return Int{value: strconv.FormatInt(i, 10)}
}

// NewUint returns an Int with value u.
func NewUint(u uint64) Int {
	return Int{value: strconv.FormatUint(u, 10)}
}

// IntFromString parses a base-10 integer with an optional leading sign.
func IntFromString(s string) (Int, error) {
	if s == "" {
		return Int{}, ErrEmptyInput
	}
	digits := s
	neg := false
	switch s[0] {
	case '+':
		digits = s[1:]
	case '-':
		neg = true
		digits = s[1:]
	}
	if digits == "" {
		return Int{}, errors.Wrapf(ErrInvalidNumber, "%q", s)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Int{}, errors.Wrapf(ErrInvalidNumber, "%q", s)
		}
	}
	return Int{value: withSign(neg, digits)}, nil
}

// intFromVal wraps a canonical digit string produced by a Calculator.
func intFromVal(v string) Int {
	if v == "" {
		return Int{}
	}
	return Int{value: v}
}

// val returns the canonical digit string, normalizing the zero value.
func (x Int) val() string {
	if x.value == "" {
		return "0"
	}
	return x.value
}

// String returns the canonical base-10 representation.
func (x Int) String() string { return x.val() }

// Sign returns -1, 0 or +1.
func (x Int) Sign() int { return signOf(x.val()) }

// IsZero reports whether x is 0.
func (x Int) IsZero() bool { return x.val() == "0" }

// IsOdd reports whether x is odd.
func (x Int) IsOdd() bool {
	v := x.val()
	return (v[len(v)-1]-'0')%2 == 1
}

// IsEven reports whether x is even.
func (x Int) IsEven() bool { return !x.IsOdd() }

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x Int) Cmp(y Int) int { return cmpVals(x.val(), y.val()) }

// Equal reports whether x == y.
func (x Int) Equal(y Int) bool { return x.val() == y.val() }

// Abs returns |x|.
func (x Int) Abs() Int { return intFromVal(absVal(x.val())) }

// Neg returns -x.
func (x Int) Neg() Int { return intFromVal(negVal(x.val())) }

// Add returns x + y.
func (x Int) Add(y Int) Int { return intFromVal(cal().Add(x.val(), y.val())) }

// Sub returns x - y.
func (x Int) Sub(y Int) Int { return intFromVal(cal().Sub(x.val(), y.val())) }

// Mul returns x * y.
func (x Int) Mul(y Int) Int { return intFromVal(cal().Mul(x.val(), y.val())) }

// Quo returns the quotient x / y truncated toward zero.
func (x Int) Quo(y Int) (Int, error) {
	if y.IsZero() {
		return Int{}, errors.Wrap(ErrDivisionByZero, "Quo")
	}
	return intFromVal(divQ(cal(), x.val(), y.val())), nil
}

// Rem returns the remainder of the truncated division x / y. Its sign
// matches the dividend's.
func (x Int) Rem(y Int) (Int, error) {
	if y.IsZero() {
		return Int{}, errors.Wrap(ErrDivisionByZero, "Rem")
	}
	return intFromVal(divR(cal(), x.val(), y.val())), nil
}

// QuoRem returns both the truncated quotient and the remainder, satisfying
// q*y + r == x with sign(r) == sign(x) or r == 0.
func (x Int) QuoRem(y Int) (Int, Int, error) {
	if y.IsZero() {
		return Int{}, Int{}, errors.Wrap(ErrDivisionByZero, "QuoRem")
	}
	q, r := cal().DivQR(x.val(), y.val())
	return intFromVal(q), intFromVal(r), nil
}

// FloorDiv returns the quotient x / y rounded toward negative infinity.
func (x Int) FloorDiv(y Int) (Int, error) {
	if y.IsZero() {
		return Int{}, errors.Wrap(ErrDivisionByZero, "FloorDiv")
	}
	q, _ := floorQR(cal(), x.val(), y.val())
	return intFromVal(q), nil
}

// Mod returns x mod y with the result's sign matching the divisor, as for
// floored division.
func (x Int) Mod(y Int) (Int, error) {
	if y.IsZero() {
		return Int{}, errors.Wrap(ErrDivisionByZero, "Mod")
	}
	_, r := floorQR(cal(), x.val(), y.val())
	return intFromVal(r), nil
}

// DivRound returns x / y rounded according to mode. RoundUnnecessary fails
// unless the division is exact.
func (x Int) DivRound(y Int, mode RoundingMode) (Int, error) {
	if y.IsZero() {
		return Int{}, errors.Wrap(ErrDivisionByZero, "DivRound")
	}
	c := cal()
	q, r := c.DivQR(x.val(), y.val())
	v, err := roundQuotient(c, q, r, y.val(), mode)
	if err != nil {
		return Int{}, errors.Wrapf(err, "%s / %s", x, y)
	}
	return intFromVal(v), nil
}

// Clamp limits x to [min, max]. min must not exceed max.
func (x Int) Clamp(min, max Int) (Int, error) {
	if min.Cmp(max) > 0 {
		return Int{}, errors.Wrapf(ErrMinGreaterThanMax, "clamp to [%s, %s]", min, max)
	}
	if x.Cmp(min) < 0 {
		return min, nil
	}
	if x.Cmp(max) > 0 {
		return max, nil
	}
	return x, nil
}

// Pow returns x**e for 0 <= e <= MaxPowExponent.
func (x Int) Pow(e int) (Int, error) {
	if e < 0 || e > MaxPowExponent {
		return Int{}, errors.Wrapf(ErrExponentOutOfRange, "exponent %d", e)
	}
	return intFromVal(cal().Pow(x.val(), e)), nil
}

// Int64 returns x as an int64, or ErrIntegerOverflow if it does not fit.
func (x Int) Int64() (int64, error) {
	v, err := strconv.ParseInt(x.val(), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrIntegerOverflow, "%s", x)
	}
	return v, nil
}

// Uint64 returns x as a uint64, or ErrIntegerOverflow if it does not fit.
func (x Int) Uint64() (uint64, error) {
	v, err := strconv.ParseUint(x.val(), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrIntegerOverflow, "%s", x)
	}
	return v, nil
}
