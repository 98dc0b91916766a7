package math

import (
	"strconv"
	"strings"
)

// NativeCalculator performs long arithmetic directly on digit strings, using
// native machine words for block arithmetic. It is the reference engine: it
// has no dependencies and every other engine must agree with it bit for bit.
//
// Operands are split into aligned blocks of addBlockDigits decimal digits,
// held least significant first in machine words. One digit of headroom is
// reserved so a block sum with carry, or the running remainder of the native
// division fast path, still fits the word; multiplication uses half-sized
// blocks so a block product plus carry stays in range as well.
type NativeCalculator struct{}

var (
	addBlockDigits = blockSizes()[0]
	mulBlockDigits = blockSizes()[1]

	addBlockBase = pow10(addBlockDigits)
	mulBlockBase = pow10(mulBlockDigits)
)

func blockSizes() [2]int {
	if strconv.IntSize >= 64 {
		return [2]int{18, 9}
	}
	return [2]int{9, 4}
}

// Name implements Calculator.
func (NativeCalculator) Name() string { return "native" }

// Add implements Calculator.
func (c NativeCalculator) Add(a, b string) string {
	sa, sb := signOf(a), signOf(b)
	if sa == 0 {
		return b
	}
	if sb == 0 {
		return a
	}
	ma, mb := absVal(a), absVal(b)
	if sa == sb {
		return withSign(sa < 0, addMag(ma, mb))
	}
	switch cmpMag(ma, mb) {
	case 0:
		return "0"
	case 1:
		return withSign(sa < 0, subMag(ma, mb))
	default:
		return withSign(sb < 0, subMag(mb, ma))
	}
}

// Sub implements Calculator.
func (c NativeCalculator) Sub(a, b string) string {
	return c.Add(a, negVal(b))
}

// Mul implements Calculator.
func (c NativeCalculator) Mul(a, b string) string {
	sa, sb := signOf(a), signOf(b)
	if sa == 0 || sb == 0 {
		return "0"
	}
	return withSign(sa != sb, mulMag(absVal(a), absVal(b)))
}

// DivQR implements Calculator.
func (c NativeCalculator) DivQR(a, b string) (string, string) {
	if signOf(b) == 0 {
		panic("math: division by zero")
	}
	sa, sb := signOf(a), signOf(b)
	if sa == 0 {
		return "0", "0"
	}
	q, r := divMag(absVal(a), absVal(b))
	return withSign(sa != sb, q), withSign(sa < 0, r)
}

// Pow implements Calculator. Exponentiation by squaring.
func (c NativeCalculator) Pow(a string, e int) string {
	result := "1"
	base := a
	for e > 0 {
		if e&1 == 1 {
			result = c.Mul(result, base)
		}
		e >>= 1
		if e > 0 {
			base = c.Mul(base, base)
		}
	}
	return result
}

// ModPow implements Calculator. Right-to-left binary exponentiation. The
// generic loop mishandles a modulus of 1 (its running product starts at 1,
// not 0), so that case is answered up front; it also covers 0^0 mod 1.
func (c NativeCalculator) ModPow(base, exp, mod string) string {
	if mod == "1" {
		return "0"
	}
	if exp == "0" {
		return "1"
	}
	result := "1"
	b := divR(c, base, mod)
	e := exp
	for e != "0" {
		var bit string
		e, bit = c.DivQR(e, "2")
		if bit == "1" {
			result = divR(c, c.Mul(result, b), mod)
		}
		b = divR(c, c.Mul(b, b), mod)
	}
	return result
}

// Gcd implements Calculator. Euclid's algorithm on magnitudes.
func (c NativeCalculator) Gcd(a, b string) string {
	x, y := absVal(a), absVal(b)
	for y != "0" {
		x, y = y, divR(c, x, y)
	}
	return x
}

// ModInverse implements Calculator. Iterative extended Euclid.
func (c NativeCalculator) ModInverse(x, m string) (string, bool) {
	r0, r1 := m, divR(c, x, m)
	if signOf(r1) < 0 {
		r1 = c.Add(r1, m)
	}
	t0, t1 := "0", "1"
	for r1 != "0" {
		q := divQ(c, r0, r1)
		r0, r1 = r1, c.Sub(r0, c.Mul(q, r1))
		t0, t1 = t1, c.Sub(t0, c.Mul(q, t1))
	}
	if r0 != "1" {
		return "", false
	}
	if signOf(t0) < 0 {
		t0 = c.Add(t0, m)
	}
	return t0, true
}

// Sqrt implements Calculator. Newton's method seeded from the decimal length
// of the input: 10^ceil(len/2) is always at or above the true root, and from
// above the iteration decreases monotonically until it oscillates by one at
// convergence, because the correction is truncated to an integer.
func (c NativeCalculator) Sqrt(n string) string {
	if n == "0" {
		return "0"
	}
	if len(n) <= addBlockDigits {
		return uintToVal(nativeSqrt(valToUint(n)))
	}
	x := "1" + strings.Repeat("0", (len(n)+1)/2)
	for {
		y := divQ(c, c.Add(x, divQ(c, n, x)), "2")
		if cmpMag(y, x) >= 0 {
			return x
		}
		x = y
	}
}

func nativeSqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// toBlocks splits an unsigned magnitude into base-10^width blocks, least
// significant first.
func toBlocks(s string, width int) []uint64 {
	n := (len(s) + width - 1) / width
	blocks := make([]uint64, n)
	end := len(s)
	for i := 0; i < n; i++ {
		start := end - width
		if start < 0 {
			start = 0
		}
		blocks[i] = parseBlock(s, start, end)
		end = start
	}
	return blocks
}

// blocksToMag formats base-10^width blocks back into a canonical magnitude.
func blocksToMag(blocks []uint64, width int) string {
	n := len(blocks)
	for n > 0 && blocks[n-1] == 0 {
		n--
	}
	if n == 0 {
		return "0"
	}
	var b strings.Builder
	b.Grow(n * width)
	b.WriteString(strconv.FormatUint(blocks[n-1], 10))
	for i := n - 2; i >= 0; i-- {
		s := strconv.FormatUint(blocks[i], 10)
		for p := len(s); p < width; p++ {
			b.WriteByte('0')
		}
		b.WriteString(s)
	}
	return b.String()
}

// addMag adds two unsigned magnitudes block by block with carry propagation.
func addMag(a, b string) string {
	x := toBlocks(a, addBlockDigits)
	y := toBlocks(b, addBlockDigits)
	if len(x) < len(y) {
		x, y = y, x
	}
	out := make([]uint64, len(x)+1)
	var carry uint64
	for i := range x {
		sum := x[i] + carry
		if i < len(y) {
			sum += y[i]
		}
		carry = 0
		if sum >= addBlockBase {
			sum -= addBlockBase
			carry = 1
		}
		out[i] = sum
	}
	out[len(x)] = carry
	return blocksToMag(out, addBlockDigits)
}

// subMag subtracts b from a block by block with borrow propagation.
// Requires a >= b.
func subMag(a, b string) string {
	x := toBlocks(a, addBlockDigits)
	y := toBlocks(b, addBlockDigits)
	var borrow uint64
	for i := range x {
		v := borrow
		if i < len(y) {
			v += y[i]
		}
		borrow = 0
		if x[i] < v {
			x[i] += addBlockBase
			borrow = 1
		}
		x[i] -= v
	}
	return blocksToMag(x, addBlockDigits)
}

// mulMag multiplies unsigned magnitudes with half-sized blocks: a block
// product plus the running carry and the accumulator slot fits the native
// word. Partial products are summed via block-shifted addition into out.
func mulMag(a, b string) string {
	x := toBlocks(a, mulBlockDigits)
	y := toBlocks(b, mulBlockDigits)
	out := make([]uint64, len(x)+len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var carry uint64
		for j, yj := range y {
			t := out[i+j] + xi*yj + carry
			out[i+j] = t % mulBlockBase
			carry = t / mulBlockBase
		}
		out[i+len(y)] += carry
	}
	return blocksToMag(out, mulBlockDigits)
}

// divMag divides unsigned magnitudes, returning quotient and remainder.
//
// Two paths: when the divisor fits a native block, a single left-to-right
// pass keeps the running remainder in a machine word. Otherwise schoolbook
// long division slides a focus window over the dividend: each step widens
// the window by one digit and finds the quotient digit by repeated
// subtraction of the divisor (at most nine times), leaving the window as the
// running remainder.
func divMag(a, b string) (string, string) {
	if cmpMag(a, b) < 0 {
		return "0", a
	}
	if len(b) <= addBlockDigits {
		return divMagByNative(a, valToUint(b))
	}
	quot := make([]byte, 0, len(a))
	focus := ""
	for i := 0; i < len(a); i++ {
		focus = trimLeadingZeros(focus + string(a[i]))
		var d byte = '0'
		for cmpMag(focus, b) >= 0 {
			focus = subMag(focus, b)
			d++
		}
		quot = append(quot, d)
	}
	return trimLeadingZeros(string(quot)), focus
}

// divMagByNative is the fast path for divisors within one block: the running
// remainder is always < b < 10^addBlockDigits, so remainder*10+digit needs
// exactly the one digit of headroom the block size reserves.
func divMagByNative(a string, b uint64) (string, string) {
	quot := make([]byte, len(a))
	var rem uint64
	for i := 0; i < len(a); i++ {
		acc := rem*10 + uint64(a[i]-'0')
		quot[i] = byte('0' + acc/b)
		rem = acc % b
	}
	return trimLeadingZeros(string(quot)), uintToVal(rem)
}

func parseBlock(s string, start, end int) uint64 {
	var v uint64
	for i := start; i < end; i++ {
		v = v*10 + uint64(s[i]-'0')
	}
	return v
}

func pow10(n int) uint64 {
	v := uint64(1)
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}
