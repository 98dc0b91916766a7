//go:build gmp

package math

import "github.com/ncw/gmp"

// GmpCalculator delegates to libgmp through github.com/ncw/gmp. It is opt-in
// behind the "gmp" build tag so default builds stay free of cgo and of the
// system libgmp requirement:
//
//	go build -tags=gmp
//
// Install it with SetCalculator(GmpCalculator{}) before first use.
type GmpCalculator struct{}

// Name implements Calculator.
func (GmpCalculator) Name() string { return "gmp" }

func gmpVal(s string) *gmp.Int {
	v, ok := new(gmp.Int).SetString(s, 10)
	if !ok {
		panic("math: non-canonical digit string: " + s)
	}
	return v
}

// Add implements Calculator.
func (GmpCalculator) Add(a, b string) string {
	return new(gmp.Int).Add(gmpVal(a), gmpVal(b)).String()
}

// Sub implements Calculator.
func (GmpCalculator) Sub(a, b string) string {
	return new(gmp.Int).Sub(gmpVal(a), gmpVal(b)).String()
}

// Mul implements Calculator.
func (GmpCalculator) Mul(a, b string) string {
	return new(gmp.Int).Mul(gmpVal(a), gmpVal(b)).String()
}

// DivQR implements Calculator.
func (GmpCalculator) DivQR(a, b string) (string, string) {
	q, r := new(gmp.Int).QuoRem(gmpVal(a), gmpVal(b), new(gmp.Int))
	return q.String(), r.String()
}

// Pow implements Calculator.
func (GmpCalculator) Pow(a string, e int) string {
	return new(gmp.Int).Exp(gmpVal(a), gmp.NewInt(int64(e)), nil).String()
}

// ModPow implements Calculator.
func (GmpCalculator) ModPow(base, exp, mod string) string {
	return new(gmp.Int).Exp(gmpVal(base), gmpVal(exp), gmpVal(mod)).String()
}

// Gcd implements Calculator.
func (GmpCalculator) Gcd(a, b string) string {
	x, y := gmpVal(a), gmpVal(b)
	x.Abs(x)
	y.Abs(y)
	if x.Sign() == 0 {
		return y.String()
	}
	if y.Sign() == 0 {
		return x.String()
	}
	return new(gmp.Int).GCD(nil, nil, x, y).String()
}

// ModInverse implements Calculator.
func (GmpCalculator) ModInverse(x, m string) (string, bool) {
	inv := new(gmp.Int).ModInverse(gmpVal(x), gmpVal(m))
	if inv == nil || inv.Sign() == 0 && m != "1" {
		// gmp reports "no inverse" as 0.
		if m == "1" {
			return "0", true
		}
		return "", false
	}
	return inv.String(), true
}

// Sqrt implements Calculator.
func (GmpCalculator) Sqrt(n string) string {
	return new(gmp.Int).Sqrt(gmpVal(n)).String()
}
