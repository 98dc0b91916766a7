package math

import "math/big"

// BigCalculator is the default engine. It delegates every operation to
// math/big.
type BigCalculator struct{}

func defaultCalculator() Calculator { return BigCalculator{} }

// Name implements Calculator.
func (BigCalculator) Name() string { return "big" }

func bigVal(s string) *big.Int {
	// Inputs are canonical by contract, so SetString cannot fail.
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("math: non-canonical digit string: " + s)
	}
	return v
}

// Add implements Calculator.
func (BigCalculator) Add(a, b string) string {
	return new(big.Int).Add(bigVal(a), bigVal(b)).String()
}

// Sub implements Calculator.
func (BigCalculator) Sub(a, b string) string {
	return new(big.Int).Sub(bigVal(a), bigVal(b)).String()
}

// Mul implements Calculator.
func (BigCalculator) Mul(a, b string) string {
	return new(big.Int).Mul(bigVal(a), bigVal(b)).String()
}

// DivQR implements Calculator.
func (BigCalculator) DivQR(a, b string) (string, string) {
	q, r := new(big.Int).QuoRem(bigVal(a), bigVal(b), new(big.Int))
	return q.String(), r.String()
}

// Pow implements Calculator.
func (BigCalculator) Pow(a string, e int) string {
	return new(big.Int).Exp(bigVal(a), big.NewInt(int64(e)), nil).String()
}

// ModPow implements Calculator.
func (BigCalculator) ModPow(base, exp, mod string) string {
	return new(big.Int).Exp(bigVal(base), bigVal(exp), bigVal(mod)).String()
}

// Gcd implements Calculator.
func (BigCalculator) Gcd(a, b string) string {
	x, y := bigVal(a), bigVal(b)
	x.Abs(x)
	y.Abs(y)
	if x.Sign() == 0 {
		return y.String()
	}
	if y.Sign() == 0 {
		return x.String()
	}
	return new(big.Int).GCD(nil, nil, x, y).String()
}

// ModInverse implements Calculator.
func (BigCalculator) ModInverse(x, m string) (string, bool) {
	inv := new(big.Int).ModInverse(bigVal(x), bigVal(m))
	if inv == nil {
		return "", false
	}
	return inv.String(), true
}

// Sqrt implements Calculator.
func (BigCalculator) Sqrt(n string) string {
	return new(big.Int).Sqrt(bigVal(n)).String()
}
