package math

import (
	"crypto/rand"
	"io"

	"github.com/pkg/errors"
)

const defaultPrimeRounds = 20

// Trial-division primes: a cheap composite filter before Miller-Rabin.
var smallPrimes = []uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67,
	71, 73, 79, 83, 89, 97,
}

// The fixed witness set proving primality deterministically for every number
// below 318,665,857,834,031,151,167,461, which covers everything with a bit
// length of at most 64.
var deterministicWitnesses = []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// IsProbablyPrime reports whether x is prime with an error probability of at
// most 4^-rounds, using Miller-Rabin. For inputs of at most 64 bits the
// answer is exact regardless of rounds. Witnesses are drawn from
// crypto/rand; rounds must be at least 1.
func (x Int) IsProbablyPrime(rounds int) (bool, error) {
	return x.isProbablyPrime(rand.Reader, rounds)
}

// IsProbablyPrimeFrom is IsProbablyPrime drawing witnesses from src.
func (x Int) IsProbablyPrimeFrom(src io.Reader, rounds int) (bool, error) {
	return x.isProbablyPrime(src, rounds)
}

func (x Int) isProbablyPrime(src io.Reader, rounds int) (bool, error) {
	if rounds < 1 {
		return false, errors.Wrapf(ErrTooFewRounds, "%d rounds", rounds)
	}
	n := x.val()
	if cmpVals(n, "2") < 0 {
		return false, nil
	}
	if n == "2" || n == "3" {
		return true, nil
	}
	if lastDigitEven(n) {
		return false, nil
	}
	c := cal()
	for _, p := range smallPrimes {
		pv := uintToVal(p)
		if n == pv {
			return true, nil
		}
		if divR(c, n, pv) == "0" {
			return false, nil
		}
	}

	// Factor n-1 = 2^s * d with d odd.
	nm1 := c.Sub(n, "1")
	s := 0
	d := nm1
	for lastDigitEven(d) {
		d = divQ(c, d, "2")
		s++
	}

	if x.BitLength() <= 64 {
		for _, w := range deterministicWitnesses {
			if !millerRabinWitness(c, n, nm1, d, s, uintToVal(w)) {
				return false, nil
			}
		}
		return true, nil
	}

	// Random witnesses in [2, n-2].
	lo, hi := intTwo, intFromVal(c.Sub(nm1, "1"))
	for i := 0; i < rounds; i++ {
		w, err := RandomRangeFrom(src, lo, hi)
		if err != nil {
			return false, err
		}
		if !millerRabinWitness(c, n, nm1, d, s, w.val()) {
			return false, nil
		}
	}
	return true, nil
}

// millerRabinWitness runs one Miller-Rabin round. It returns false when the
// witness a certifies that n is composite. n-1 = 2^s * d with d odd.
func millerRabinWitness(c Calculator, n, nm1, d string, s int, a string) bool {
	if cmpVals(a, nm1) >= 0 {
		// a == n-1 (or larger, for tiny n) carries no information.
		return true
	}
	x := c.ModPow(a, d, n)
	if x == "1" || x == nm1 {
		return true
	}
	for i := 0; i < s-1; i++ {
		x = c.ModPow(x, "2", n)
		if x == nm1 {
			return true
		}
		if x == "1" {
			// A non-trivial square root of 1: definitively composite.
			return false
		}
	}
	return false
}

// NextProbablePrime returns the smallest probable prime greater than x.
// x must not be negative.
func (x Int) NextProbablePrime() (Int, error) {
	return x.NextProbablePrimeFrom(rand.Reader)
}

// NextProbablePrimeFrom is NextProbablePrime drawing Miller-Rabin witnesses
// from src.
func (x Int) NextProbablePrimeFrom(src io.Reader) (Int, error) {
	if x.Sign() < 0 {
		return Int{}, errors.Wrap(ErrNegativeOperand, "NextProbablePrime")
	}
	c := cal()
	n := x.val()
	if cmpVals(n, "2") < 0 {
		return intTwo, nil
	}
	// Step onto the next odd number and walk by two.
	if lastDigitEven(n) {
		n = c.Add(n, "1")
	} else {
		n = c.Add(n, "2")
	}
	for {
		candidate := intFromVal(n)
		ok, err := candidate.isProbablyPrime(src, defaultPrimeRounds)
		if err != nil {
			return Int{}, err
		}
		if ok {
			return candidate, nil
		}
		n = c.Add(n, "2")
	}
}
