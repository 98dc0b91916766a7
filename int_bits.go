package math

import "github.com/pkg/errors"

// Bitwise operations use two's-complement semantics even though values are
// stored in sign-magnitude form: the result is negative exactly when the
// two's-complement combination of the operand signs dictates.

// And returns x & y. The result is negative only if both operands are.
func (x Int) And(y Int) Int {
	return intFromVal(bitwiseOp(cal(), '&', x.val(), y.val()))
}

// Or returns x | y. The result is negative if either operand is.
func (x Int) Or(y Int) Int {
	return intFromVal(bitwiseOp(cal(), '|', x.val(), y.val()))
}

// Xor returns x ^ y. The result is negative if exactly one operand is.
func (x Int) Xor(y Int) Int {
	return intFromVal(bitwiseOp(cal(), '^', x.val(), y.val()))
}

// Not returns ^x, which in two's complement is -(x+1).
func (x Int) Not() Int {
	return intFromVal(negVal(cal().Add(x.val(), "1")))
}

// ShiftedLeft returns x << n. A negative distance shifts right.
func (x Int) ShiftedLeft(n int) Int {
	if n < 0 {
		return x.ShiftedRight(-n)
	}
	c := cal()
	return intFromVal(c.Mul(x.val(), c.Pow("2", n)))
}

// ShiftedRight returns x >> n, an arithmetic shift: the quotient is floored,
// so negative values keep their sign bit. A negative distance shifts left.
func (x Int) ShiftedRight(n int) Int {
	if n < 0 {
		return x.ShiftedLeft(-n)
	}
	c := cal()
	q, _ := floorQR(c, x.val(), c.Pow("2", n))
	return intFromVal(q)
}

// BitLength returns the number of bits needed to represent x, excluding the
// sign: ceil(log2(x < 0 ? -x : x+1)).
func (x Int) BitLength() int {
	if x.IsZero() {
		return 0
	}
	bits := magToDigits(cal(), absVal(x.val()), 2)
	n := len(bits)
	if x.Sign() < 0 && isPowerOfTwoBits(bits) {
		// -2^k fits in k bits.
		n--
	}
	return n
}

// BitCount returns the number of set bits in the magnitude of x. For
// negative values this is deliberately the popcount of the absolute value,
// not the (infinite) two's-complement bit count.
func (x Int) BitCount() int {
	if x.IsZero() {
		return 0
	}
	bits := magToDigits(cal(), absVal(x.val()), 2)
	n := 0
	for _, b := range bits {
		if b == 1 {
			n++
		}
	}
	return n
}

// isPowerOfTwoBits reports whether little-endian binary digits encode a
// power of two: a single 1 in the highest position.
func isPowerOfTwoBits(bits []uint64) bool {
	for _, b := range bits[:len(bits)-1] {
		if b != 0 {
			return false
		}
	}
	return true
}

// TestBit reports whether bit i of x is set, in two's-complement terms.
func (x Int) TestBit(i int) (bool, error) {
	if i < 0 {
		return false, errors.Wrapf(ErrNegativeOperand, "bit index %d", i)
	}
	c := cal()
	q, _ := floorQR(c, x.val(), c.Pow("2", i))
	return (q[len(q)-1]-'0')%2 == 1, nil
}

// SetBit returns x with bit i set.
func (x Int) SetBit(i int) (Int, error) {
	set, err := x.TestBit(i)
	if err != nil {
		return Int{}, err
	}
	if set {
		return x, nil
	}
	c := cal()
	return intFromVal(c.Add(x.val(), c.Pow("2", i))), nil
}

// ClearBit returns x with bit i cleared.
func (x Int) ClearBit(i int) (Int, error) {
	set, err := x.TestBit(i)
	if err != nil {
		return Int{}, err
	}
	if !set {
		return x, nil
	}
	c := cal()
	return intFromVal(c.Sub(x.val(), c.Pow("2", i))), nil
}

// FlipBit returns x with bit i inverted.
func (x Int) FlipBit(i int) (Int, error) {
	set, err := x.TestBit(i)
	if err != nil {
		return Int{}, err
	}
	if set {
		return x.ClearBit(i)
	}
	return x.SetBit(i)
}
