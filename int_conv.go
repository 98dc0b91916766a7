package math

import "github.com/pkg/errors"

// IntFromBase parses s as a base-b integer, b in [2, 36]. Digits beyond 9
// are letters and case-insensitive; an optional leading sign is accepted.
func IntFromBase(s string, base int) (Int, error) {
	v, err := fromBase(cal(), s, base)
	if err != nil {
		return Int{}, err
	}
	return intFromVal(v), nil
}

// ToBase formats x in base b, b in [2, 36], using lowercase digits.
func (x Int) ToBase(base int) (string, error) {
	return toBase(cal(), x.val(), base)
}

// IntFromAlphabet parses s using a custom digit alphabet whose length is the
// base. The alphabet needs at least 2 distinct characters; signs are not
// supported.
func IntFromAlphabet(s, alphabet string) (Int, error) {
	v, err := fromAlphabet(cal(), s, alphabet)
	if err != nil {
		return Int{}, err
	}
	return intFromVal(v), nil
}

// ToAlphabet formats a non-negative x using a custom digit alphabet.
func (x Int) ToAlphabet(alphabet string) (string, error) {
	return toAlphabet(cal(), x.val(), alphabet)
}

// IntFromBytes decodes a big-endian byte string. In signed mode the bytes
// are two's complement and the leading bit is the sign; in unsigned mode
// they are a plain magnitude. The input must not be empty.
func IntFromBytes(b []byte, signed bool) (Int, error) {
	if len(b) == 0 {
		return Int{}, errors.Wrap(ErrEmptyInput, "bytes")
	}
	c := cal()
	if signed && b[0]&0x80 != 0 {
		tc := make([]byte, len(b))
		copy(tc, b)
		twosComplement(tc)
		return intFromVal(negVal(bytesToMag(c, tc))), nil
	}
	return intFromVal(bytesToMag(c, b)), nil
}

// Bytes encodes x big-endian. In signed mode the result is the minimal
// two's-complement form whose leading bit is the sign; in unsigned mode it
// is the minimal plain magnitude, and negative values are rejected.
func (x Int) Bytes(signed bool) ([]byte, error) {
	c := cal()
	if !signed {
		if x.Sign() < 0 {
			return nil, errors.Wrap(ErrNegativeOperand, "unsigned byte encode")
		}
		b := magToBytes(c, x.val())
		if len(b) == 0 {
			b = []byte{0}
		}
		return b, nil
	}
	switch x.Sign() {
	case 0:
		return []byte{0}, nil
	case 1:
		b := magToBytes(c, x.val())
		if b[0]&0x80 != 0 {
			b = append([]byte{0}, b...)
		}
		return b, nil
	default:
		b := magToBytes(c, absVal(x.val()))
		// -m fits k bytes iff m <= 2^(8k-1): the top byte must stay
		// below 0x80 unless it is exactly 0x80 with nothing below it.
		fits := b[0] < 0x80 || b[0] == 0x80 && allZero(b[1:])
		if !fits {
			b = append([]byte{0}, b...)
		}
		twosComplement(b)
		return b, nil
	}
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
