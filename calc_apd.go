package math

import "github.com/cockroachdb/apd/v3"

// ApdCalculator delegates to the arbitrary-precision integers of
// cockroachdb/apd. It exists as an independently developed library backend to
// cross-check the default engine against, and for callers already carrying
// apd values.
type ApdCalculator struct{}

// Name implements Calculator.
func (ApdCalculator) Name() string { return "apd" }

func apdVal(s string) *apd.BigInt {
	v, ok := new(apd.BigInt).SetString(s, 10)
	if !ok {
		panic("math: non-canonical digit string: " + s)
	}
	return v
}

// Add implements Calculator.
func (ApdCalculator) Add(a, b string) string {
	return new(apd.BigInt).Add(apdVal(a), apdVal(b)).String()
}

// Sub implements Calculator.
func (ApdCalculator) Sub(a, b string) string {
	return new(apd.BigInt).Sub(apdVal(a), apdVal(b)).String()
}

// Mul implements Calculator.
func (ApdCalculator) Mul(a, b string) string {
	return new(apd.BigInt).Mul(apdVal(a), apdVal(b)).String()
}

// DivQR implements Calculator.
func (ApdCalculator) DivQR(a, b string) (string, string) {
	q, r := new(apd.BigInt).QuoRem(apdVal(a), apdVal(b), new(apd.BigInt))
	return q.String(), r.String()
}

// Pow implements Calculator.
func (ApdCalculator) Pow(a string, e int) string {
	return new(apd.BigInt).Exp(apdVal(a), apd.NewBigInt(int64(e)), nil).String()
}

// ModPow implements Calculator.
func (ApdCalculator) ModPow(base, exp, mod string) string {
	return new(apd.BigInt).Exp(apdVal(base), apdVal(exp), apdVal(mod)).String()
}

// Gcd implements Calculator.
func (ApdCalculator) Gcd(a, b string) string {
	x, y := apdVal(a), apdVal(b)
	x.Abs(x)
	y.Abs(y)
	if x.Sign() == 0 {
		return y.String()
	}
	if y.Sign() == 0 {
		return x.String()
	}
	return new(apd.BigInt).GCD(nil, nil, x, y).String()
}

// ModInverse implements Calculator.
func (ApdCalculator) ModInverse(x, m string) (string, bool) {
	inv := new(apd.BigInt).ModInverse(apdVal(x), apdVal(m))
	if inv == nil {
		return "", false
	}
	return inv.String(), true
}

// Sqrt implements Calculator.
func (ApdCalculator) Sqrt(n string) string {
	return new(apd.BigInt).Sqrt(apdVal(n)).String()
}
