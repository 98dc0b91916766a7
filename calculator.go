package math

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// MaxPowExponent bounds the exponent accepted by exponentiation operations.
// It keeps a single Pow call from consuming unbounded CPU and memory.
const MaxPowExponent = 1_000_000

// A Calculator performs integer arithmetic on canonical digit strings: ASCII
// digits with an optional leading minus, no leading zeros, and "0" never
// signed. Every method both requires and returns canonical form.
//
// Division by zero, a negative Sqrt input, or a non-positive ModPow modulus
// are caller contract violations; engines are free to panic on them. The
// numeric types in this package validate before calling down.
type Calculator interface {
	// Name identifies the engine.
	Name() string

	// Add returns a + b.
	Add(a, b string) string
	// Sub returns a - b.
	Sub(a, b string) string
	// Mul returns a * b.
	Mul(a, b string) string
	// DivQR returns the quotient truncated toward zero and the remainder,
	// whose sign matches the dividend. b must be non-zero.
	DivQR(a, b string) (q, r string)
	// Pow returns a**e for 0 <= e <= MaxPowExponent.
	Pow(a string, e int) string
	// ModPow returns base**exp mod mod for base, exp >= 0 and mod > 0.
	ModPow(base, exp, mod string) string
	// Gcd returns the non-negative greatest common divisor; Gcd(0, 0) = 0.
	Gcd(a, b string) string
	// ModInverse returns x^-1 mod m in [0, m) for m > 0. The second return
	// is false when x and m are not coprime.
	ModInverse(x, m string) (string, bool)
	// Sqrt returns the largest s with s*s <= n, for n >= 0.
	Sqrt(n string) string
}

// The process-wide engine. Resolved at most once; SetCalculator before first
// use overrides the default.
var (
	calcOnce sync.Once
	calcMu   sync.Mutex
	calc     Calculator
)

// SetCalculator installs c as the engine used by all numeric types.
func SetCalculator(c Calculator) {
	calcMu.Lock()
	defer calcMu.Unlock()
	calc = c
}

// GetCalculator returns the active engine, resolving the default on first
// use.
func GetCalculator() Calculator {
	calcOnce.Do(func() {
		calcMu.Lock()
		defer calcMu.Unlock()
		if calc == nil {
			calc = defaultCalculator()
		}
	})
	calcMu.Lock()
	defer calcMu.Unlock()
	return calc
}

func cal() Calculator { return GetCalculator() }

// Canonical-form helpers shared by every engine and the numeric types.

// signOf returns -1, 0 or +1 for a canonical digit string.
func signOf(s string) int {
	switch {
	case s == "0":
		return 0
	case s[0] == '-':
		return -1
	default:
		return 1
	}
}

// absVal strips the sign.
func absVal(s string) string {
	if s[0] == '-' {
		return s[1:]
	}
	return s
}

// negVal flips the sign; "0" stays unsigned.
func negVal(s string) string {
	if s == "0" {
		return s
	}
	if s[0] == '-' {
		return s[1:]
	}
	return "-" + s
}

// cmpMag compares two unsigned digit strings. Same-length magnitudes compare
// lexicographically; otherwise the longer one is larger.
func cmpMag(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// cmpVals compares two canonical signed digit strings.
func cmpVals(a, b string) int {
	sa, sb := signOf(a), signOf(b)
	if sa != sb {
		if sa < sb {
			return -1
		}
		return 1
	}
	c := cmpMag(absVal(a), absVal(b))
	if sa < 0 {
		return -c
	}
	return c
}

// trimLeadingZeros normalizes an unsigned digit string.
func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}

// withSign attaches sign to magnitude mag, keeping zero unsigned.
func withSign(neg bool, mag string) string {
	mag = trimLeadingZeros(mag)
	if neg && mag != "0" {
		return "-" + mag
	}
	return mag
}

// divQ returns the quotient truncated toward zero.
func divQ(c Calculator, a, b string) string {
	q, _ := c.DivQR(a, b)
	return q
}

// divR returns the remainder with the dividend's sign.
func divR(c Calculator, a, b string) string {
	_, r := c.DivQR(a, b)
	return r
}

// floorQR returns the floored quotient and a remainder whose sign matches the
// divisor.
func floorQR(c Calculator, a, b string) (string, string) {
	q, r := c.DivQR(a, b)
	if r != "0" && signOf(r) != signOf(b) {
		q = c.Sub(q, "1")
		r = c.Add(r, b)
	}
	return q, r
}

const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// fromBase parses s as a base-b number, case-insensitive, with an optional
// leading sign. It is engine-generic: digits are folded in with Mul and Add.
func fromBase(c Calculator, s string, base int) (string, error) {
	if base < 2 || base > 36 {
		return "", errors.Wrapf(ErrBaseOutOfRange, "base %d", base)
	}
	if s == "" {
		return "", ErrEmptyInput
	}
	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}
	if s == "" {
		return "", ErrEmptyInput
	}
	radix := uintToVal(uint64(base))
	v := "0"
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= 'A' && ch <= 'Z':
			ch += 'a' - 'A'
		}
		d := strings.IndexByte(digitAlphabet, ch)
		if d < 0 || d >= base {
			return "", errors.Wrapf(ErrInvalidCharacter, "%q in base %d", s[i], base)
		}
		v = c.Add(c.Mul(v, radix), uintToVal(uint64(d)))
	}
	if neg {
		v = negVal(v)
	}
	return v, nil
}

// toBase formats n in base b using lowercase digits.
func toBase(c Calculator, n string, base int) (string, error) {
	if base < 2 || base > 36 {
		return "", errors.Wrapf(ErrBaseOutOfRange, "base %d", base)
	}
	neg := signOf(n) < 0
	digits := magToDigits(c, absVal(n), uint64(base))
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteByte(digitAlphabet[digits[i]])
	}
	return b.String(), nil
}

// fromAlphabet parses s using a custom digit alphabet. No sign support.
func fromAlphabet(c Calculator, s, alphabet string) (string, error) {
	if err := checkAlphabet(alphabet); err != nil {
		return "", err
	}
	if s == "" {
		return "", ErrEmptyInput
	}
	radix := uintToVal(uint64(len(alphabet)))
	v := "0"
	for i := 0; i < len(s); i++ {
		d := strings.IndexByte(alphabet, s[i])
		if d < 0 {
			return "", errors.Wrapf(ErrInvalidCharacter, "%q not in alphabet", s[i])
		}
		v = c.Add(c.Mul(v, radix), uintToVal(uint64(d)))
	}
	return v, nil
}

// toAlphabet formats a non-negative n using a custom digit alphabet.
func toAlphabet(c Calculator, n, alphabet string) (string, error) {
	if err := checkAlphabet(alphabet); err != nil {
		return "", err
	}
	if signOf(n) < 0 {
		return "", errors.Wrap(ErrNegativeOperand, "arbitrary-base encode")
	}
	digits := magToDigits(c, n, uint64(len(alphabet)))
	b := make([]byte, len(digits))
	for i, d := range digits {
		b[len(digits)-1-i] = alphabet[d]
	}
	return string(b), nil
}

func checkAlphabet(alphabet string) error {
	if len(alphabet) < 2 {
		return errors.Wrap(ErrBaseOutOfRange, "alphabet needs at least 2 characters")
	}
	seen := [256]bool{}
	for i := 0; i < len(alphabet); i++ {
		if seen[alphabet[i]] {
			return errors.Wrapf(ErrInvalidCharacter, "duplicate %q in alphabet", alphabet[i])
		}
		seen[alphabet[i]] = true
	}
	return nil
}

// magToDigits decomposes an unsigned magnitude into base-radix digits, least
// significant first.
func magToDigits(c Calculator, mag string, radix uint64) []uint64 {
	if mag == "0" {
		return []uint64{0}
	}
	r := uintToVal(radix)
	var digits []uint64
	for mag != "0" {
		var rem string
		mag, rem = c.DivQR(mag, r)
		digits = append(digits, valToUint(rem))
	}
	return digits
}

// magToBytes returns the big-endian byte magnitude of an unsigned value.
// The result is empty for "0".
func magToBytes(c Calculator, mag string) []byte {
	if mag == "0" {
		return nil
	}
	digits := magToDigits(c, mag, 256)
	b := make([]byte, len(digits))
	for i, d := range digits {
		b[len(digits)-1-i] = byte(d)
	}
	return b
}

// bytesToMag folds big-endian bytes into an unsigned magnitude.
func bytesToMag(c Calculator, b []byte) string {
	v := "0"
	for _, by := range b {
		v = c.Add(c.Mul(v, "256"), uintToVal(uint64(by)))
	}
	return v
}

// Bitwise AND/OR/XOR with two's-complement semantics over sign-magnitude
// strings. Operands are widened to a common byte length with one spare sign
// byte, negatives are converted to two's complement, the bytes are combined,
// and a negative combined sign converts back.
func bitwiseOp(c Calculator, op byte, a, b string) string {
	negA, negB := signOf(a) < 0, signOf(b) < 0
	ba := magToBytes(c, absVal(a))
	bb := magToBytes(c, absVal(b))
	n := len(ba)
	if len(bb) > n {
		n = len(bb)
	}
	n++ // spare byte so the sign bit is well defined
	ba = leftPad(ba, n)
	bb = leftPad(bb, n)
	if negA {
		twosComplement(ba)
	}
	if negB {
		twosComplement(bb)
	}
	var negOut bool
	out := make([]byte, n)
	switch op {
	case '&':
		negOut = negA && negB
		for i := range out {
			out[i] = ba[i] & bb[i]
		}
	case '|':
		negOut = negA || negB
		for i := range out {
			out[i] = ba[i] | bb[i]
		}
	case '^':
		negOut = negA != negB
		for i := range out {
			out[i] = ba[i] ^ bb[i]
		}
	}
	if negOut {
		twosComplement(out)
		return negVal(bytesToMag(c, out))
	}
	return bytesToMag(c, out)
}

func leftPad(b []byte, n int) []byte {
	if len(b) >= n {
		return b
	}
	p := make([]byte, n)
	copy(p[n-len(b):], b)
	return p
}

// twosComplement negates a big-endian byte string in place.
func twosComplement(b []byte) {
	for i := range b {
		b[i] = ^b[i]
	}
	for i := len(b) - 1; i >= 0; i-- {
		b[i]++
		if b[i] != 0 {
			break
		}
	}
}

// uintToVal and valToUint convert between native words and small canonical
// strings without going through an engine.
func uintToVal(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

func valToUint(s string) uint64 {
	var v uint64
	for i := 0; i < len(s); i++ {
		v = v*10 + uint64(s[i]-'0')
	}
	return v
}
