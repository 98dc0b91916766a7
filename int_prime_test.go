package math

import (
	"testing"

	"github.com/pkg/errors"
)

func TestIntIsProbablyPrime(t *testing.T) {
	primes := []string{"2", "3", "5", "7", "11", "97", "7919", "2147483647", "170141183460469231731687303715884105727"}
	// 561 is a Carmichael number; Fermat-only tests pass it, Miller-Rabin
	// must not.
	composites := []string{"1", "0", "-7", "9", "15", "561", "2147483649", "170141183460469231731687303715884105725"}

	for _, p := range primes {
		got, err := mustInt(t, p).IsProbablyPrime(defaultPrimeRounds)
		if err != nil {
			t.Fatalf("IsProbablyPrime(%s): %v", p, err)
		}
		if !got {
			t.Errorf("IsProbablyPrime(%s) = false, want true", p)
		}
	}
	for _, c := range composites {
		got, err := mustInt(t, c).IsProbablyPrime(defaultPrimeRounds)
		if err != nil {
			t.Fatalf("IsProbablyPrime(%s): %v", c, err)
		}
		if got {
			t.Errorf("IsProbablyPrime(%s) = true, want false", c)
		}
	}

	if _, err := NewInt(7).IsProbablyPrime(0); !errors.Is(err, ErrTooFewRounds) {
		t.Errorf("zero rounds: err = %v", err)
	}
}

func TestIntNextProbablePrime(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"0", "2"},
		{"1", "2"},
		{"2", "3"},
		{"3", "5"},
		{"7", "11"},
		{"7900", "7901"},
		{"100", "101"},
	}
	for _, tc := range tests {
		got, err := mustInt(t, tc.in).NextProbablePrime()
		if err != nil {
			t.Fatalf("NextProbablePrime(%s): %v", tc.in, err)
		}
		if got.String() != tc.want {
			t.Errorf("NextProbablePrime(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
	if _, err := NewInt(-5).NextProbablePrime(); !errors.Is(err, ErrNegativeOperand) {
		t.Errorf("negative start: err = %v", err)
	}
}
