package math

import "github.com/pkg/errors"

// Sqrt returns the integer square root of x: the largest s with s*s <= x.
func (x Int) Sqrt() (Int, error) {
	if x.Sign() < 0 {
		return Int{}, errors.Wrapf(ErrNegativeRoot, "sqrt of %s", x)
	}
	return intFromVal(cal().Sqrt(x.val())), nil
}

// Root returns the integer n-th root of x, truncated toward zero. Odd
// degrees accept negative input, flipping the sign of the result; even
// degrees on negative input fail.
func (x Int) Root(n int) (Int, error) {
	if n < 1 {
		return Int{}, errors.Wrapf(ErrInvalidRootDegree, "degree %d", n)
	}
	if n == 1 {
		return x, nil
	}
	neg := x.Sign() < 0
	if neg && n%2 == 0 {
		return Int{}, errors.Wrapf(ErrNegativeRoot, "%d-th root of %s", n, x)
	}
	var root string
	if n == 2 {
		root = cal().Sqrt(absVal(x.val()))
	} else {
		root = nthRootMag(cal(), absVal(x.val()), n)
	}
	return intFromVal(withSign(neg, root)), nil
}

// nthRootMag computes the n-th root of a non-negative magnitude with
// Newton's method, n >= 3. The seed 2^ceil(bitLength/n) is at or above the
// true root; the iteration
//
//	x' = ((n-1)*x + a/x^(n-1)) / n
//
// uses truncating division, so near convergence it can overshoot by one and
// oscillate. It stops when x' stops changing, or when x' increases after
// having decreased, which is exactly that oscillation.
func nthRootMag(c Calculator, a string, n int) string {
	if a == "0" || a == "1" {
		return a
	}
	bits := len(magToDigits(c, a, 2))
	seed := (bits + n - 1) / n
	x := c.Pow("2", seed)
	nVal := uintToVal(uint64(n))
	n1Val := uintToVal(uint64(n - 1))
	decreased := false
	for {
		y := divQ(c, c.Add(c.Mul(n1Val, x), divQ(c, a, c.Pow(x, n-1))), nVal)
		cmp := cmpMag(y, x)
		if cmp == 0 || cmp > 0 && decreased {
			break
		}
		if cmp < 0 {
			decreased = true
		}
		x = y
	}
	// The oscillation stop can leave x one above the floor root.
	for cmpMag(c.Pow(x, n), a) > 0 {
		x = c.Sub(x, "1")
	}
	return x
}
