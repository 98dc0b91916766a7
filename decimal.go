package math

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A Decimal is an immutable arbitrary-precision scaled decimal. Its value is
//
//	unscaled * 10^-scale
//
// where unscaled is a canonical digit string and scale is never negative; a
// negative scale passed at construction is normalized away by padding the
// unscaled value with zeros. Two decimals with different scales can be
// numerically equal ("1.0" and "1.00"); comparisons and arithmetic treat
// them as equal, while String and Scale expose the representation.
//
// The zero value is 0 with scale 0 and ready to use.
type Decimal struct {
	unscaled string
	scale    int
}

// NewDecimal returns unscaled * 10^-scale.
func NewDecimal(unscaled int64, scale int) Decimal {
	return decFromVal(strconv.FormatInt(unscaled, 10), scale)
}

// DecimalFromUnscaled returns unscaled * 10^-scale.
func DecimalFromUnscaled(unscaled Int, scale int) Decimal {
	return decFromVal(unscaled.val(), scale)
}

// DecimalFromInt returns i as a Decimal with scale 0.
func DecimalFromInt(i Int) Decimal {
	return Decimal{unscaled: i.val()}
}

// DecimalFromString parses a decimal number with an optional sign, decimal
// point, and exponent ("-1.23e-4"). A negative exponent increases the
// scale; a positive one decreases it, padding with zeros once the
// fractional digits are consumed.
func DecimalFromString(s string) (Decimal, error) {
	u, scale, err := parseDecimal(s)
	if err != nil {
		return Decimal{}, err
	}
	return decFromVal(u, scale), nil
}

// decFromVal normalizes a canonical unscaled string and a possibly negative
// scale into the invariant representation.
func decFromVal(u string, scale int) Decimal {
	if scale < 0 {
		u = scaleUpVal(u, -scale)
		scale = 0
	}
	if u == "0" && scale == 0 {
		return Decimal{}
	}
	return Decimal{unscaled: u, scale: scale}
}

// scaleUpVal multiplies a canonical value by 10^k by appending zeros.
func scaleUpVal(u string, k int) string {
	if u == "0" || k == 0 {
		return u
	}
	return u + strings.Repeat("0", k)
}

func (d Decimal) uval() string {
	if d.unscaled == "" {
		return "0"
	}
	return d.unscaled
}

// UnscaledValue returns the digits of d reinterpreted as a plain integer,
// ignoring the decimal point.
func (d Decimal) UnscaledValue() Int { return intFromVal(d.uval()) }

// Scale returns the number of digits after the decimal point.
func (d Decimal) Scale() int { return d.scale }

// Sign returns -1, 0 or +1.
func (d Decimal) Sign() int { return signOf(d.uval()) }

// IsZero reports whether d is numerically zero.
func (d Decimal) IsZero() bool { return d.uval() == "0" }

// Abs returns |d| at the same scale.
func (d Decimal) Abs() Decimal { return Decimal{unscaled: absVal(d.uval()), scale: d.scale} }

// Neg returns -d at the same scale.
func (d Decimal) Neg() Decimal { return Decimal{unscaled: negVal(d.uval()), scale: d.scale} }

// upscalePair aligns two decimals to their maximum scale.
func upscalePair(a, b Decimal) (ua, ub string, scale int) {
	ua, ub, scale = a.uval(), b.uval(), a.scale
	if b.scale > scale {
		scale = b.scale
	}
	ua = scaleUpVal(ua, scale-a.scale)
	ub = scaleUpVal(ub, scale-b.scale)
	return ua, ub, scale
}

// Cmp compares d and e numerically, ignoring representation scale.
func (d Decimal) Cmp(e Decimal) int {
	ua, ub, _ := upscalePair(d, e)
	return cmpVals(ua, ub)
}

// Equal reports whether d and e are numerically equal. "1.0" equals "1.00".
func (d Decimal) Equal(e Decimal) bool { return d.Cmp(e) == 0 }

// Add returns d + e at the greater of the two scales.
func (d Decimal) Add(e Decimal) Decimal {
	ua, ub, scale := upscalePair(d, e)
	return Decimal{unscaled: cal().Add(ua, ub), scale: scale}
}

// Sub returns d - e at the greater of the two scales.
func (d Decimal) Sub(e Decimal) Decimal {
	ua, ub, scale := upscalePair(d, e)
	return Decimal{unscaled: cal().Sub(ua, ub), scale: scale}
}

// Mul returns d * e at the sum of the two scales.
func (d Decimal) Mul(e Decimal) Decimal {
	return Decimal{unscaled: cal().Mul(d.uval(), e.uval()), scale: d.scale + e.scale}
}

// Div returns d / e at the requested scale, rounded according to mode.
func (d Decimal) Div(e Decimal, scale int, mode RoundingMode) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, errors.Wrap(ErrDivisionByZero, "Div")
	}
	if scale < 0 {
		return Decimal{}, errors.Wrapf(ErrNegativeOperand, "scale %d", scale)
	}
	c := cal()
	num, den := d.uval(), e.uval()
	// Shift so the truncated quotient lands at the target scale.
	if k := scale - d.scale + e.scale; k >= 0 {
		num = scaleUpVal(num, k)
	} else {
		den = scaleUpVal(den, -k)
	}
	q, r := c.DivQR(num, den)
	v, err := roundQuotient(c, q, r, den, mode)
	if err != nil {
		return Decimal{}, errors.Wrapf(err, "%s / %s at scale %d", d, e, scale)
	}
	return Decimal{unscaled: v, scale: scale}, nil
}

// DivExact returns d / e at the minimal scale that represents the quotient
// exactly. The scale comes from the factors of 2 and 5 left in the reduced
// denominator; any other factor means the quotient has no finite decimal
// expansion and the division fails with ErrRoundingNecessary.
func (d Decimal) DivExact(e Decimal) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, errors.Wrap(ErrDivisionByZero, "DivExact")
	}
	c := cal()
	// d/e equals num/den as a plain integer fraction.
	num := scaleUpVal(d.uval(), e.scale)
	den := scaleUpVal(e.uval(), d.scale)
	if signOf(den) < 0 {
		num, den = negVal(num), negVal(den)
	}
	g := c.Gcd(num, den)
	num = divQ(c, num, g)
	den = divQ(c, den, g)
	f2 := stripFactor(c, &den, "2")
	f5 := stripFactor(c, &den, "5")
	if den != "1" {
		return Decimal{}, errors.Wrapf(ErrRoundingNecessary, "%s / %s has no exact decimal", d, e)
	}
	scale := f2
	if f5 > scale {
		scale = f5
	}
	// 10^scale is divisible by 2^f2 * 5^f5, so this division is exact.
	u := divQ(c, scaleUpVal(num, scale), c.Mul(c.Pow("2", f2), c.Pow("5", f5)))
	return Decimal{unscaled: u, scale: scale}, nil
}

// stripFactor divides v by p while it divides evenly, returning the count.
func stripFactor(c Calculator, v *string, p string) int {
	n := 0
	for {
		q, r := c.DivQR(*v, p)
		if r != "0" {
			return n
		}
		*v = q
		n++
	}
}

// Rescale returns d at the given scale, rounding according to mode when
// digits are dropped. Increasing the scale is always exact.
func (d Decimal) Rescale(scale int, mode RoundingMode) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, errors.Wrapf(ErrNegativeOperand, "scale %d", scale)
	}
	if scale >= d.scale {
		return Decimal{unscaled: scaleUpVal(d.uval(), scale-d.scale), scale: scale}, nil
	}
	c := cal()
	den := scaleUpVal("1", d.scale-scale)
	q, r := c.DivQR(d.uval(), den)
	v, err := roundQuotient(c, q, r, den, mode)
	if err != nil {
		return Decimal{}, errors.Wrapf(err, "rescale %s to %d", d, scale)
	}
	return Decimal{unscaled: v, scale: scale}, nil
}

// PowInt returns d**e for 0 <= e <= MaxPowExponent. The result scale is
// d's scale times the exponent.
func (d Decimal) PowInt(e int) (Decimal, error) {
	if e < 0 || e > MaxPowExponent {
		return Decimal{}, errors.Wrapf(ErrExponentOutOfRange, "exponent %d", e)
	}
	return Decimal{unscaled: cal().Pow(d.uval(), e), scale: d.scale * e}, nil
}

// Quotient returns the integer part of d / e, always at scale 0.
func (d Decimal) Quotient(e Decimal) (Decimal, error) {
	q, _, err := d.QuoRem(e)
	return q, err
}

// Remainder returns the remainder of the integer division d / e, at the
// greater of the two scales.
func (d Decimal) Remainder(e Decimal) (Decimal, error) {
	_, r, err := d.QuoRem(e)
	return r, err
}

// QuoRem returns the integer quotient (scale 0) and remainder (max scale)
// of d / e, satisfying q*e + r == d.
func (d Decimal) QuoRem(e Decimal) (Decimal, Decimal, error) {
	if e.IsZero() {
		return Decimal{}, Decimal{}, errors.Wrap(ErrDivisionByZero, "QuoRem")
	}
	ua, ub, scale := upscalePair(d, e)
	q, r := cal().DivQR(ua, ub)
	return Decimal{unscaled: q}, Decimal{unscaled: r, scale: scale}, nil
}

// Sqrt returns the square root of d at the requested scale. The root is
// computed with one extra digit of precision by shifting the decimal point,
// then rounded away from that digit; squaring back detects the case where
// no rounding is needed at all.
func (d Decimal) Sqrt(scale int, mode RoundingMode) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, errors.Wrapf(ErrNegativeOperand, "scale %d", scale)
	}
	if d.Sign() < 0 {
		return Decimal{}, errors.Wrapf(ErrNegativeRoot, "sqrt of %s", d)
	}
	if d.IsZero() {
		return Decimal{scale: scale}, nil
	}
	c := cal()
	// sqrt(u * 10^-k) to scale+1 digits is the integer root of
	// u * 10^(2*(scale+1)-k).
	n := d.uval()
	exact := true
	if m := 2*(scale+1) - d.scale; m >= 0 {
		n = scaleUpVal(n, m)
	} else {
		var rem string
		n, rem = c.DivQR(n, scaleUpVal("1", -m))
		exact = rem == "0"
	}
	root := c.Sqrt(n)
	if exact {
		exact = c.Mul(root, root) == n
	}
	q, dig := c.DivQR(root, "10")
	digit := int(dig[len(dig)-1] - '0')
	if exact && digit == 0 {
		return Decimal{unscaled: q, scale: scale}, nil
	}
	if mode == RoundUnnecessary {
		return Decimal{}, errors.Wrapf(ErrRoundingNecessary, "sqrt of %s at scale %d", d, scale)
	}
	// An inexact root is strictly above its truncated digits, so a
	// dropped 5 already sits past the midpoint.
	half := 0
	switch {
	case digit > 5:
		half = 1
	case digit < 5:
		half = -1
	case !exact:
		half = 1
	}
	v, err := applyRounding(c, q, true, half, mode)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{unscaled: v, scale: scale}, nil
}

// StripTrailingZeros removes trailing zero digits from the fractional part,
// reducing the scale accordingly. Zero always normalizes to scale 0.
func (d Decimal) StripTrailingZeros() Decimal {
	if d.uval() == "0" {
		return Decimal{}
	}
	u, scale := d.uval(), d.scale
	for scale > 0 && u[len(u)-1] == '0' {
		u = u[:len(u)-1]
		scale--
	}
	return Decimal{unscaled: u, scale: scale}
}

// IntegralPart returns the digits before the decimal point, truncated
// toward zero.
func (d Decimal) IntegralPart() Int {
	if d.scale == 0 {
		return intFromVal(d.uval())
	}
	mag := absVal(d.uval())
	if len(mag) <= d.scale {
		return Int{}
	}
	return intFromVal(withSign(d.Sign() < 0, mag[:len(mag)-d.scale]))
}

// FractionalPart returns the digits after the decimal point at d's scale,
// keeping d's sign.
func (d Decimal) FractionalPart() Decimal {
	if d.scale == 0 {
		return Decimal{}
	}
	mag := absVal(d.uval())
	start := len(mag) - d.scale
	if start < 0 {
		start = 0
	}
	frac := trimLeadingZeros(mag[start:])
	if frac == "" {
		frac = "0"
	}
	return Decimal{unscaled: withSign(d.Sign() < 0 && frac != "0", frac), scale: d.scale}
}

// Precision returns the number of significant digits in the unscaled
// value. Zero has precision 1.
func (d Decimal) Precision() int {
	return len(absVal(d.uval()))
}

// ToInt narrows d to an Int, failing with ErrRoundingNecessary when d has
// a non-zero fractional part.
func (d Decimal) ToInt() (Int, error) {
	r, err := d.Rescale(0, RoundUnnecessary)
	if err != nil {
		return Int{}, err
	}
	return intFromVal(r.uval()), nil
}

// String formats d with an explicit decimal point when the scale is
// positive: NewDecimal(150, 2).String() == "1.50".
func (d Decimal) String() string {
	u := d.uval()
	if d.scale == 0 {
		return u
	}
	neg := u[0] == '-'
	mag := absVal(u)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	if len(mag) <= d.scale {
		b.WriteString("0.")
		for i := len(mag); i < d.scale; i++ {
			b.WriteByte('0')
		}
		b.WriteString(mag)
	} else {
		b.WriteString(mag[:len(mag)-d.scale])
		b.WriteByte('.')
		b.WriteString(mag[len(mag)-d.scale:])
	}
	return b.String()
}

// parseDecimal splits a decimal literal into an unscaled canonical string
// and a scale. The scale can come back negative; decFromVal normalizes it.
func parseDecimal(s string) (string, int, error) {
	if s == "" {
		return "", 0, ErrEmptyInput
	}
	m := decimalRx.FindStringSubmatch(s)
	if m == nil {
		return "", 0, errors.Wrapf(ErrInvalidNumber, "%q", s)
	}
	sign, intPart, fracPart, expPart := m[1], m[2], m[3], m[4]
	if intPart == "" && fracPart == "" {
		return "", 0, errors.Wrapf(ErrInvalidNumber, "%q", s)
	}
	exp := 0
	if expPart != "" {
		var err error
		exp, err = strconv.Atoi(expPart)
		if err != nil {
			return "", 0, errors.Wrapf(ErrExponentOutOfRange, "%q", s)
		}
	}
	u := trimLeadingZeros(intPart + fracPart)
	if u == "" {
		u = "0"
	}
	return withSign(sign == "-" && u != "0", u), len(fracPart) - exp, nil
}
