package math

import (
	"crypto/rand"
	"io"

	"github.com/pkg/errors"
)

// Random generation consumes an injected byte source. The default is the
// process's cryptographic source; tests substitute a deterministic reader.
// This is the only side-effecting dependency in the package.

// RandomBits returns a uniformly random non-negative Int of at most bits
// bits, read from crypto/rand.
func RandomBits(bits int) (Int, error) {
	return RandomBitsFrom(rand.Reader, bits)
}

// RandomBitsFrom is RandomBits reading from src.
func RandomBitsFrom(src io.Reader, bits int) (Int, error) {
	if bits < 1 {
		return Int{}, errors.Wrapf(ErrNegativeOperand, "bit count %d", bits)
	}
	b := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(src, b); err != nil {
		return Int{}, errors.Wrap(err, "random source")
	}
	// Mask excess high bits so the value stays below 2^bits.
	if extra := len(b)*8 - bits; extra > 0 {
		b[0] &= 0xff >> extra
	}
	return intFromVal(bytesToMag(cal(), b)), nil
}

// RandomRange returns a uniformly random Int in [min, max], read from
// crypto/rand.
func RandomRange(min, max Int) (Int, error) {
	return RandomRangeFrom(rand.Reader, min, max)
}

// RandomRangeFrom is RandomRange reading from src. Uniformity comes from
// rejection sampling: candidates of the span's bit length are drawn until
// one falls inside the span.
func RandomRangeFrom(src io.Reader, min, max Int) (Int, error) {
	cmp := min.Cmp(max)
	if cmp > 0 {
		return Int{}, errors.Wrapf(ErrMinGreaterThanMax, "[%s, %s]", min, max)
	}
	if cmp == 0 {
		return min, nil
	}
	span := max.Sub(min)
	bits := span.BitLength()
	for {
		v, err := RandomBitsFrom(src, bits)
		if err != nil {
			return Int{}, err
		}
		if v.Cmp(span) <= 0 {
			return min.Add(v), nil
		}
	}
}

// RandomPrime returns a random probable prime of exactly bits bits, read
// from crypto/rand.
func RandomPrime(bits int) (Int, error) {
	return RandomPrimeFrom(rand.Reader, bits)
}

// RandomPrimeFrom is RandomPrime reading from src. Candidates that fail the
// primality test are silently regenerated; that loop is expected behavior,
// not an error path.
func RandomPrimeFrom(src io.Reader, bits int) (Int, error) {
	if bits < 2 {
		return Int{}, errors.Wrapf(ErrNegativeOperand, "bit count %d", bits)
	}
	for {
		v, err := RandomBitsFrom(src, bits)
		if err != nil {
			return Int{}, err
		}
		// Force the top bit, for exact width, and the low bit: even
		// candidates above 2 can never be prime.
		v, err = v.SetBit(bits - 1)
		if err != nil {
			return Int{}, err
		}
		v, err = v.SetBit(0)
		if err != nil {
			return Int{}, err
		}
		ok, err := v.isProbablyPrime(src, defaultPrimeRounds)
		if err != nil {
			return Int{}, err
		}
		if ok {
			return v, nil
		}
	}
}
