package math

import (
	"strings"

	"github.com/pkg/errors"
)

// A Rational is an immutable exact fraction of two Ints. The denominator is
// always positive; the sign lives in the numerator. Fractions are not
// reduced automatically, so NewInt-based arithmetic stays cheap and
// Simplified makes reduction an explicit step.
//
// The zero value is 0/1 and ready to use.
type Rational struct {
	num Int
	den Int
}

// NewRational returns num/den. A zero denominator fails with
// ErrDivisionByZero; a negative one moves its sign to the numerator.
func NewRational(num, den Int) (Rational, error) {
	if den.IsZero() {
		return Rational{}, errors.Wrap(ErrDivisionByZero, "zero denominator")
	}
	if den.Sign() < 0 {
		num, den = num.Neg(), den.Neg()
	}
	return Rational{num: num, den: den}, nil
}

// RationalFromInt returns i as the fraction i/1.
func RationalFromInt(i Int) Rational {
	return Rational{num: i, den: intOne}
}

// RationalFromString parses "p/q" or a plain integer "p".
func RationalFromString(s string) (Rational, error) {
	if s == "" {
		return Rational{}, ErrEmptyInput
	}
	numPart, denPart, found := strings.Cut(s, "/")
	num, err := IntFromString(numPart)
	if err != nil {
		return Rational{}, err
	}
	if !found {
		return RationalFromInt(num), nil
	}
	den, err := IntFromString(denPart)
	if err != nil {
		return Rational{}, err
	}
	return NewRational(num, den)
}

// denom returns the denominator, mapping the zero value's zero to 1.
func (r Rational) denom() Int {
	if r.den.IsZero() {
		return intOne
	}
	return r.den
}

// Numerator returns the numerator, including the sign.
func (r Rational) Numerator() Int { return intFromVal(r.num.val()) }

// Denominator returns the positive denominator.
func (r Rational) Denominator() Int { return r.denom() }

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int { return r.num.Sign() }

// IsZero reports whether r is numerically zero.
func (r Rational) IsZero() bool { return r.num.IsZero() }

// Abs returns |r|.
func (r Rational) Abs() Rational { return Rational{num: r.num.Abs(), den: r.denom()} }

// Neg returns -r.
func (r Rational) Neg() Rational { return Rational{num: r.num.Neg(), den: r.denom()} }

// Cmp compares r and s numerically by cross-multiplying, so 1/2 and 2/4
// compare equal without reduction.
func (r Rational) Cmp(s Rational) int {
	return r.num.Mul(s.denom()).Cmp(s.num.Mul(r.denom()))
}

// Equal reports whether r and s are numerically equal.
func (r Rational) Equal(s Rational) bool { return r.Cmp(s) == 0 }

// Add returns r + s over the product of the denominators, unreduced.
func (r Rational) Add(s Rational) Rational {
	rd, sd := r.denom(), s.denom()
	return Rational{
		num: r.num.Mul(sd).Add(s.num.Mul(rd)),
		den: rd.Mul(sd),
	}
}

// Sub returns r - s over the product of the denominators, unreduced.
func (r Rational) Sub(s Rational) Rational {
	rd, sd := r.denom(), s.denom()
	return Rational{
		num: r.num.Mul(sd).Sub(s.num.Mul(rd)),
		den: rd.Mul(sd),
	}
}

// Mul returns r * s, unreduced.
func (r Rational) Mul(s Rational) Rational {
	return Rational{num: r.num.Mul(s.num), den: r.denom().Mul(s.denom())}
}

// Div returns r / s by multiplying with the reciprocal. Dividing by zero
// fails with ErrDivisionByZero.
func (r Rational) Div(s Rational) (Rational, error) {
	if s.IsZero() {
		return Rational{}, errors.Wrap(ErrDivisionByZero, "Div")
	}
	num := r.num.Mul(s.denom())
	den := r.denom().Mul(s.num)
	if den.Sign() < 0 {
		num, den = num.Neg(), den.Neg()
	}
	return Rational{num: num, den: den}, nil
}

// Pow returns r**e for 0 <= e <= MaxPowExponent.
func (r Rational) Pow(e int) (Rational, error) {
	num, err := r.num.Pow(e)
	if err != nil {
		return Rational{}, err
	}
	den, err := r.denom().Pow(e)
	if err != nil {
		return Rational{}, err
	}
	return Rational{num: num, den: den}, nil
}

// Simplified returns r reduced to lowest terms. Zero normalizes to 0/1.
func (r Rational) Simplified() Rational {
	if r.num.IsZero() {
		return Rational{}
	}
	g := r.num.Gcd(r.denom())
	num, _ := r.num.Quo(g)
	den, _ := r.denom().Quo(g)
	return Rational{num: num, den: den}
}

// ToInt narrows r to an Int, failing with ErrRoundingNecessary when the
// denominator does not divide the numerator.
func (r Rational) ToInt() (Int, error) {
	q, rem, err := r.num.QuoRem(r.denom())
	if err != nil {
		return Int{}, err
	}
	if !rem.IsZero() {
		return Int{}, errors.Wrapf(ErrRoundingNecessary, "%s is not an integer", r)
	}
	return q, nil
}

// ToDecimal narrows r to a Decimal at its minimal exact scale, failing
// with ErrRoundingNecessary when r has no terminating decimal expansion.
func (r Rational) ToDecimal() (Decimal, error) {
	return DecimalFromInt(r.num).DivExact(DecimalFromInt(r.denom()))
}

// String formats r as "p/q", or just "p" when the denominator is 1.
func (r Rational) String() string {
	den := r.denom()
	if den.Equal(intOne) {
		return r.num.String()
	}
	return r.num.String() + "/" + den.String()
}
