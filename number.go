package math

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Number is the closed set of numeric kinds: Int, Decimal and Rational.
// Cross-type operations widen under the total order Int < Decimal <
// Rational, the order in which each kind can represent every value of the
// previous one without loss.
type Number interface {
	fmt.Stringer
	Sign() int

	number()
}

func (Int) number()      {}
func (Decimal) number()  {}
func (Rational) number() {}

var (
	rationalRx = regexp.MustCompile(`^[+-]?[0-9]+/[0-9]+$`)
	decimalRx  = regexp.MustCompile(`^([+-]?)([0-9]*)(?:\.([0-9]*))?(?:[eE]([+-]?[0-9]+))?$`)
)

const (
	kindInt = iota
	kindDecimal
	kindRational
)

func kindOf(n Number) int {
	switch n.(type) {
	case Int:
		return kindInt
	case Decimal:
		return kindDecimal
	default:
		return kindRational
	}
}

// Of classifies v into one of the three numeric kinds. Existing Number
// values pass through; native integers become Ints; floats and numeric
// strings are parsed, with "/" selecting Rational and a decimal point or
// exponent marker selecting Decimal.
func Of(v any) (Number, error) {
	switch v := v.(type) {
	case Int:
		return v, nil
	case Decimal:
		return v, nil
	case Rational:
		return v, nil
	case int:
		return NewInt(int64(v)), nil
	case int32:
		return NewInt(int64(v)), nil
	case int64:
		return NewInt(v), nil
	case uint:
		return NewUint(uint64(v)), nil
	case uint64:
		return NewUint(v), nil
	case float32:
		return DecimalFromString(strconv.FormatFloat(float64(v), 'f', -1, 32))
	case float64:
		return DecimalFromString(strconv.FormatFloat(v, 'f', -1, 64))
	case string:
		return ofString(v)
	default:
		return nil, errors.Wrapf(ErrInvalidNumber, "unsupported type %T", v)
	}
}

func ofString(s string) (Number, error) {
	switch {
	case s == "":
		return nil, ErrEmptyInput
	case strings.ContainsRune(s, '/'):
		if !rationalRx.MatchString(s) {
			return nil, errors.Wrapf(ErrInvalidNumber, "%q", s)
		}
		return RationalFromString(s)
	case strings.ContainsAny(s, ".eE"):
		return DecimalFromString(s)
	default:
		return IntFromString(s)
	}
}

// OfInt parses v and narrows it to an Int, failing with
// ErrRoundingNecessary when the value has a fractional part.
func OfInt(v any) (Int, error) {
	n, err := Of(v)
	if err != nil {
		return Int{}, err
	}
	switch n := n.(type) {
	case Int:
		return n, nil
	case Decimal:
		return n.ToInt()
	default:
		return n.(Rational).ToInt()
	}
}

// OfDecimal parses v and narrows it to a Decimal, failing with
// ErrRoundingNecessary when a rational has no terminating expansion.
func OfDecimal(v any) (Decimal, error) {
	n, err := Of(v)
	if err != nil {
		return Decimal{}, err
	}
	switch n := n.(type) {
	case Int:
		return DecimalFromInt(n), nil
	case Decimal:
		return n, nil
	default:
		return n.(Rational).ToDecimal()
	}
}

// OfRational parses v and converts it to a Rational. Every kind widens to
// Rational exactly.
func OfRational(v any) (Rational, error) {
	n, err := Of(v)
	if err != nil {
		return Rational{}, err
	}
	return toRational(n), nil
}

func toRational(n Number) Rational {
	switch n := n.(type) {
	case Int:
		return RationalFromInt(n)
	case Decimal:
		den := intFromVal(scaleUpVal("1", n.Scale()))
		return Rational{num: n.UnscaledValue(), den: den}
	default:
		return n.(Rational)
	}
}

// widenTo promotes n to the given kind. Widening is always exact;
// narrowing requests are a caller bug and handled by narrowTo instead.
func widenTo(n Number, kind int) Number {
	switch kind {
	case kindInt:
		return n
	case kindDecimal:
		if i, ok := n.(Int); ok {
			return DecimalFromInt(i)
		}
		return n
	default:
		return toRational(n)
	}
}

// narrowTo converts n to the given kind, failing with
// ErrRoundingNecessary when the conversion is lossy.
func narrowTo(n Number, kind int) (Number, error) {
	switch kind {
	case kindInt:
		return OfInt(n)
	case kindDecimal:
		return OfDecimal(n)
	default:
		return toRational(n), nil
	}
}

func cmpSameKind(a, b Number) int {
	switch a := a.(type) {
	case Int:
		return a.Cmp(b.(Int))
	case Decimal:
		return a.Cmp(b.(Decimal))
	default:
		return a.(Rational).Cmp(b.(Rational))
	}
}

func addSameKind(a, b Number) Number {
	switch a := a.(type) {
	case Int:
		return a.Add(b.(Int))
	case Decimal:
		return a.Add(b.(Decimal))
	default:
		return a.(Rational).Add(b.(Rational))
	}
}

// parseAll classifies every operand. An empty list fails with
// ErrNoOperands.
func parseAll(vs []any) ([]Number, error) {
	if len(vs) == 0 {
		return nil, ErrNoOperands
	}
	ns := make([]Number, len(vs))
	for i, v := range vs {
		n, err := Of(v)
		if err != nil {
			return nil, errors.Wrapf(err, "operand %d", i)
		}
		ns[i] = n
	}
	return ns, nil
}

func widestKind(ns []Number) int {
	kind := kindInt
	for _, n := range ns {
		if k := kindOf(n); k > kind {
			kind = k
		}
	}
	return kind
}

// Min returns the smallest operand narrowed to the first operand's kind.
// Operands that cannot be represented in that kind fail with
// ErrRoundingNecessary; MinOf widens instead of narrowing.
func Min(vs ...any) (Number, error) {
	return extremum(vs, false, -1)
}

// Max returns the largest operand narrowed to the first operand's kind.
func Max(vs ...any) (Number, error) {
	return extremum(vs, false, +1)
}

// MinOf returns the smallest operand, widened to the widest kind present.
func MinOf(vs ...any) (Number, error) {
	return extremum(vs, true, -1)
}

// MaxOf returns the largest operand, widened to the widest kind present.
func MaxOf(vs ...any) (Number, error) {
	return extremum(vs, true, +1)
}

func extremum(vs []any, widen bool, dir int) (Number, error) {
	ns, err := parseAll(vs)
	if err != nil {
		return nil, err
	}
	kind := kindOf(ns[0])
	if widen {
		kind = widestKind(ns)
	}
	var best Number
	for i, n := range ns {
		if widen {
			n = widenTo(n, kind)
		} else if n, err = narrowTo(n, kind); err != nil {
			return nil, errors.Wrapf(err, "operand %d", i)
		}
		if best == nil || dir*cmpSameKind(n, best) > 0 {
			best = n
		}
	}
	return best, nil
}

// Widen parses every operand and promotes all of them to the widest kind
// present, so mixed inputs can be combined without precision loss.
func Widen(vs ...any) ([]Number, error) {
	ns, err := parseAll(vs)
	if err != nil {
		return nil, err
	}
	kind := widestKind(ns)
	for i, n := range ns {
		ns[i] = widenTo(n, kind)
	}
	return ns, nil
}

// Sum adds all operands at the widest kind present.
func Sum(vs ...any) (Number, error) {
	ns, err := Widen(vs...)
	if err != nil {
		return nil, err
	}
	acc := ns[0]
	for _, n := range ns[1:] {
		acc = addSameKind(acc, n)
	}
	return acc, nil
}
