package math

import "github.com/pkg/errors"

// Gcd returns the greatest common divisor of x and y. The result is never
// negative; Gcd(0, 0) is 0.
func (x Int) Gcd(y Int) Int {
	return intFromVal(cal().Gcd(x.val(), y.val()))
}

// Lcm returns the least common multiple of x and y. It is 0 when either
// operand is 0.
func (x Int) Lcm(y Int) Int {
	if x.IsZero() || y.IsZero() {
		return Int{}
	}
	c := cal()
	g := c.Gcd(x.val(), y.val())
	return intFromVal(absVal(c.Mul(divQ(c, x.val(), g), y.val())))
}

// ModPow returns x**e mod m. The exponent must be non-negative and the
// modulus positive.
func (x Int) ModPow(e, m Int) (Int, error) {
	if m.IsZero() {
		return Int{}, errors.Wrap(ErrDivisionByZero, "ModPow")
	}
	if m.Sign() < 0 {
		return Int{}, errors.Wrap(ErrNegativeOperand, "ModPow modulus")
	}
	if e.Sign() < 0 {
		return Int{}, errors.Wrap(ErrNegativeOperand, "ModPow exponent")
	}
	c := cal()
	base := x.val()
	if signOf(base) < 0 {
		// Reduce into [0, m) so the engine sees a non-negative base.
		_, base = floorQR(c, base, m.val())
	}
	return intFromVal(c.ModPow(base, e.val(), m.val())), nil
}

// ModInverse returns x**-1 mod m in [0, m). It fails with ErrNoInverse when
// x and m are not coprime, and rejects a zero or negative modulus.
func (x Int) ModInverse(m Int) (Int, error) {
	if m.IsZero() {
		return Int{}, errors.Wrap(ErrDivisionByZero, "ModInverse")
	}
	if m.Sign() < 0 {
		return Int{}, errors.Wrap(ErrNegativeOperand, "ModInverse modulus")
	}
	inv, ok := cal().ModInverse(x.val(), m.val())
	if !ok {
		return Int{}, errors.Wrapf(ErrNoInverse, "%s mod %s", x, m)
	}
	return intFromVal(inv), nil
}

// Factorial returns x!.
func (x Int) Factorial() (Int, error) {
	if x.Sign() < 0 {
		return Int{}, errors.Wrap(ErrNegativeOperand, "Factorial")
	}
	c := cal()
	result := "1"
	for i := "2"; cmpVals(i, x.val()) <= 0; i = c.Add(i, "1") {
		result = c.Mul(result, i)
	}
	return intFromVal(result), nil
}

// DoubleFactorial returns x!!, the product of the integers from x down to 1
// or 2 with the same parity as x. By convention (-1)!! = 0!! = 1; smaller
// negatives are rejected.
func (x Int) DoubleFactorial() (Int, error) {
	if cmpVals(x.val(), "-1") < 0 {
		return Int{}, errors.Wrap(ErrNegativeOperand, "DoubleFactorial")
	}
	c := cal()
	result := "1"
	for i := x.val(); signOf(i) > 0; i = c.Sub(i, "2") {
		result = c.Mul(result, i)
	}
	return intFromVal(result), nil
}

// Permutations returns P(x, k), the number of ordered arrangements of k out
// of x items: x * (x-1) * ... * (x-k+1). Out-of-domain k yields 0.
func (x Int) Permutations(k Int) (Int, error) {
	if x.Sign() < 0 {
		return Int{}, errors.Wrap(ErrNegativeOperand, "Permutations")
	}
	if k.Sign() < 0 || k.Cmp(x) > 0 {
		return Int{}, nil
	}
	c := cal()
	result := "1"
	term := x.val()
	stop := c.Sub(x.val(), k.val())
	for cmpVals(term, stop) > 0 {
		result = c.Mul(result, term)
		term = c.Sub(term, "1")
	}
	return intFromVal(result), nil
}

// Binomial returns C(x, k), the binomial coefficient. Out-of-domain k yields
// 0. The multiplicative formula keeps intermediates exact: after the i'th
// step the running product is C(x, i), so each division is exact.
func (x Int) Binomial(k Int) (Int, error) {
	if x.Sign() < 0 {
		return Int{}, errors.Wrap(ErrNegativeOperand, "Binomial")
	}
	if k.Sign() < 0 || k.Cmp(x) > 0 {
		return Int{}, nil
	}
	// C(x, k) == C(x, x-k); iterate over the smaller of the two.
	c := cal()
	kk := k.val()
	if other := c.Sub(x.val(), kk); cmpVals(other, kk) < 0 {
		kk = other
	}
	result := "1"
	for i := "1"; cmpVals(i, kk) <= 0; i = c.Add(i, "1") {
		result = c.Mul(result, c.Sub(c.Add(x.val(), "1"), i))
		result = divQ(c, result, i)
	}
	return intFromVal(result), nil
}

// Jacobi returns the Jacobi symbol (x / m) for odd positive m.
func (x Int) Jacobi(m Int) (int, error) {
	if m.Sign() <= 0 || m.IsEven() {
		return 0, errors.Wrapf(ErrInvalidNumber, "Jacobi modulus %s must be odd and positive", m)
	}
	c := cal()
	_, a := floorQR(c, x.val(), m.val())
	n := m.val()
	result := 1
	for a != "0" {
		// Pull out factors of two, flipping by the second supplement
		// when n is 3 or 5 mod 8.
		for lastDigitEven(a) {
			a = divQ(c, a, "2")
			switch nMod8(n) {
			case 3, 5:
				result = -result
			}
		}
		// Quadratic reciprocity.
		a, n = n, a
		if mod4Is3(a) && mod4Is3(n) {
			result = -result
		}
		_, a = c.DivQR(a, n)
	}
	if n == "1" {
		return result, nil
	}
	return 0, nil
}

// Legendre is the Legendre symbol (x / p). It is an alias for Jacobi and
// does not verify that p is prime.
func (x Int) Legendre(p Int) (int, error) {
	return x.Jacobi(p)
}

func lastDigitEven(v string) bool {
	return (v[len(v)-1]-'0')%2 == 0
}

// nMod8 returns n mod 8 for a non-negative canonical string. Only the last
// three decimal digits matter: 1000 is divisible by 8.
func nMod8(n string) int {
	start := len(n) - 3
	if start < 0 {
		start = 0
	}
	return int(valToUint(n[start:]) % 8)
}

func mod4Is3(v string) bool {
	start := len(v) - 2
	if start < 0 {
		start = 0
	}
	return valToUint(v[start:])%4 == 3
}
