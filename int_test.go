package math

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
)

func mustInt(t *testing.T, s string) Int {
	t.Helper()
	x, err := IntFromString(s)
	if err != nil {
		t.Fatalf("IntFromString(%q): %v", s, err)
	}
	return x
}

func TestIntFromString(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  error
	}{
		{in: "0", want: "0"},
		{in: "-0", want: "0"},
		{in: "+7", want: "7"},
		{in: "007", want: "7"},
		{in: "-007", want: "-7"},
		{in: "123456789012345678901234567890", want: "123456789012345678901234567890"},
		{in: "", err: ErrEmptyInput},
		{in: "-", err: ErrInvalidNumber},
		{in: "1.5", err: ErrInvalidNumber},
		{in: "12a", err: ErrInvalidNumber},
	}
	for _, tc := range tests {
		got, err := IntFromString(tc.in)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("IntFromString(%q): err = %v, want %v", tc.in, err, tc.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("IntFromString(%q): %v", tc.in, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("IntFromString(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestIntZeroValue(t *testing.T) {
	var x Int
	if got := x.String(); got != "0" {
		t.Fatalf("zero value String() = %q, want \"0\"", got)
	}
	if got := x.Add(NewInt(5)); got.String() != "5" {
		t.Fatalf("0 + 5 = %s", got)
	}
	if !x.IsZero() || x.Sign() != 0 {
		t.Fatal("zero value is not zero")
	}
}

func TestIntSignParity(t *testing.T) {
	tests := []struct {
		in   string
		sign int
		odd  bool
	}{
		{"0", 0, false},
		{"1", 1, true},
		{"-1", -1, true},
		{"2", 1, false},
		{"-123456789012345678901", -1, true},
	}
	for _, tc := range tests {
		x := mustInt(t, tc.in)
		if x.Sign() != tc.sign {
			t.Errorf("Sign(%s) = %d, want %d", tc.in, x.Sign(), tc.sign)
		}
		if x.IsOdd() != tc.odd {
			t.Errorf("IsOdd(%s) = %v, want %v", tc.in, x.IsOdd(), tc.odd)
		}
		if x.IsEven() == tc.odd {
			t.Errorf("IsEven(%s) = %v, want %v", tc.in, x.IsEven(), !tc.odd)
		}
	}
}

func TestIntCmp(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"0", "0", 0},
		{"1", "2", -1},
		{"2", "1", 1},
		{"-1", "1", -1},
		{"-2", "-1", -1},
		{"10", "9", 1},
		{"100000000000000000000", "99999999999999999999", 1},
	}
	for _, tc := range tests {
		if got := mustInt(t, tc.a).Cmp(mustInt(t, tc.b)); got != tc.want {
			t.Errorf("Cmp(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestIntQuoRem(t *testing.T) {
	tests := []struct {
		a, b, q, r string
	}{
		{"7", "2", "3", "1"},
		{"-7", "2", "-3", "-1"},
		{"7", "-2", "-3", "1"},
		{"-7", "-2", "3", "-1"},
	}
	for _, tc := range tests {
		q, r, err := mustInt(t, tc.a).QuoRem(mustInt(t, tc.b))
		if err != nil {
			t.Fatalf("QuoRem(%s, %s): %v", tc.a, tc.b, err)
		}
		if q.String() != tc.q || r.String() != tc.r {
			t.Errorf("QuoRem(%s, %s) = (%s, %s), want (%s, %s)", tc.a, tc.b, q, r, tc.q, tc.r)
		}
	}
	if _, _, err := NewInt(1).QuoRem(NewInt(0)); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("QuoRem by zero: err = %v", err)
	}
}

func TestIntFloorDivMod(t *testing.T) {
	// Floored quotient; remainder takes the divisor's sign.
	tests := []struct {
		a, b, q, m string
	}{
		{"7", "2", "3", "1"},
		{"-7", "2", "-4", "1"},
		{"7", "-2", "-4", "-1"},
		{"-7", "-2", "3", "-1"},
		{"6", "3", "2", "0"},
		{"-6", "3", "-2", "0"},
	}
	for _, tc := range tests {
		q, err := mustInt(t, tc.a).FloorDiv(mustInt(t, tc.b))
		if err != nil {
			t.Fatalf("FloorDiv(%s, %s): %v", tc.a, tc.b, err)
		}
		m, err := mustInt(t, tc.a).Mod(mustInt(t, tc.b))
		if err != nil {
			t.Fatalf("Mod(%s, %s): %v", tc.a, tc.b, err)
		}
		if q.String() != tc.q || m.String() != tc.m {
			t.Errorf("FloorDiv/Mod(%s, %s) = (%s, %s), want (%s, %s)", tc.a, tc.b, q, m, tc.q, tc.m)
		}
	}
}

func TestIntDivRound(t *testing.T) {
	tests := []struct {
		a, b string
		mode RoundingMode
		want string
	}{
		{"7", "2", RoundHalfUp, "4"},
		{"7", "2", RoundHalfDown, "3"},
		{"5", "2", RoundHalfEven, "2"},
		{"-5", "2", RoundHalfEven, "-2"},
		{"7", "2", RoundDown, "3"},
		{"7", "2", RoundUp, "4"},
		{"-7", "2", RoundFloor, "-4"},
		{"-7", "2", RoundCeiling, "-3"},
	}
	for _, tc := range tests {
		got, err := mustInt(t, tc.a).DivRound(mustInt(t, tc.b), tc.mode)
		if err != nil {
			t.Fatalf("DivRound(%s, %s, %s): %v", tc.a, tc.b, tc.mode, err)
		}
		if got.String() != tc.want {
			t.Errorf("DivRound(%s, %s, %s) = %s, want %s", tc.a, tc.b, tc.mode, got, tc.want)
		}
	}
	if _, err := NewInt(7).DivRound(NewInt(2), RoundUnnecessary); !errors.Is(err, ErrRoundingNecessary) {
		t.Errorf("DivRound unnecessary: err = %v", err)
	}
}

func TestIntClamp(t *testing.T) {
	tests := []struct {
		x, min, max, want string
	}{
		{"5", "1", "10", "5"},
		{"0", "1", "10", "1"},
		{"11", "1", "10", "10"},
		{"-5", "-3", "3", "-3"},
	}
	for _, tc := range tests {
		got, err := mustInt(t, tc.x).Clamp(mustInt(t, tc.min), mustInt(t, tc.max))
		if err != nil {
			t.Fatalf("Clamp(%s, %s, %s): %v", tc.x, tc.min, tc.max, err)
		}
		if got.String() != tc.want {
			t.Errorf("Clamp(%s, %s, %s) = %s, want %s", tc.x, tc.min, tc.max, got, tc.want)
		}
	}
	if _, err := NewInt(5).Clamp(NewInt(10), NewInt(1)); !errors.Is(err, ErrMinGreaterThanMax) {
		t.Errorf("Clamp inverted bounds: err = %v", err)
	}
}

func TestIntPow(t *testing.T) {
	got, err := NewInt(2).Pow(64)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "18446744073709551616" {
		t.Fatalf("2^64 = %s", got)
	}
	if _, err := NewInt(2).Pow(-1); !errors.Is(err, ErrExponentOutOfRange) {
		t.Errorf("Pow(-1): err = %v", err)
	}
	if _, err := NewInt(2).Pow(MaxPowExponent + 1); !errors.Is(err, ErrExponentOutOfRange) {
		t.Errorf("Pow(max+1): err = %v", err)
	}
}

func TestIntInt64(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		err  error
	}{
		{in: "0", want: 0},
		{in: "-9223372036854775808", want: -9223372036854775808},
		{in: "9223372036854775807", want: 9223372036854775807},
		{in: "9223372036854775808", err: ErrIntegerOverflow},
		{in: "-9223372036854775809", err: ErrIntegerOverflow},
	}
	for _, tc := range tests {
		got, err := mustInt(t, tc.in).Int64()
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("Int64(%s): err = %v, want %v", tc.in, err, tc.err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("Int64(%s) = (%d, %v), want %d", tc.in, got, err, tc.want)
		}
	}
	if _, err := mustInt(t, "-1").Uint64(); !errors.Is(err, ErrIntegerOverflow) {
		t.Errorf("Uint64(-1): err = %v", err)
	}
	if got, err := mustInt(t, "18446744073709551615").Uint64(); err != nil || got != 18446744073709551615 {
		t.Errorf("Uint64(max) = (%d, %v)", got, err)
	}
}

func TestIntGcdLcm(t *testing.T) {
	tests := []struct {
		a, b, gcd, lcm string
	}{
		{"0", "0", "0", "0"},
		{"0", "5", "5", "0"},
		{"12", "18", "6", "36"},
		{"4", "6", "2", "12"},
		{"-4", "6", "2", "12"},
		{"17", "31", "1", "527"},
	}
	for _, tc := range tests {
		a, b := mustInt(t, tc.a), mustInt(t, tc.b)
		if got := a.Gcd(b); got.String() != tc.gcd {
			t.Errorf("Gcd(%s, %s) = %s, want %s", tc.a, tc.b, got, tc.gcd)
		}
		if got := a.Lcm(b); got.String() != tc.lcm {
			t.Errorf("Lcm(%s, %s) = %s, want %s", tc.a, tc.b, got, tc.lcm)
		}
	}
}

func TestIntModPow(t *testing.T) {
	got, err := NewInt(4).ModPow(NewInt(13), NewInt(497))
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "445" {
		t.Fatalf("4^13 mod 497 = %s, want 445", got)
	}

	// A negative base reduces into [0, m) first.
	got, err = NewInt(-4).ModPow(NewInt(13), NewInt(497))
	if err != nil {
		t.Fatal(err)
	}
	want, err := NewInt(493).ModPow(NewInt(13), NewInt(497))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Fatalf("(-4)^13 mod 497 = %s, want %s", got, want)
	}

	if _, err := NewInt(4).ModPow(NewInt(13), NewInt(0)); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("zero modulus: err = %v", err)
	}
	if _, err := NewInt(4).ModPow(NewInt(-1), NewInt(7)); !errors.Is(err, ErrNegativeOperand) {
		t.Errorf("negative exponent: err = %v", err)
	}
}

func TestIntModInverse(t *testing.T) {
	got, err := NewInt(3).ModInverse(NewInt(11))
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "4" {
		t.Fatalf("3^-1 mod 11 = %s, want 4", got)
	}
	if _, err := NewInt(2).ModInverse(NewInt(4)); !errors.Is(err, ErrNoInverse) {
		t.Errorf("no inverse: err = %v", err)
	}
}

func TestIntFactorial(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"0", "1"},
		{"1", "1"},
		{"5", "120"},
		{"20", "2432902008176640000"},
		{"25", "15511210043330985984000000"},
	}
	for _, tc := range tests {
		got, err := mustInt(t, tc.in).Factorial()
		if err != nil {
			t.Fatalf("Factorial(%s): %v", tc.in, err)
		}
		if got.String() != tc.want {
			t.Errorf("Factorial(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
	if _, err := NewInt(-1).Factorial(); !errors.Is(err, ErrNegativeOperand) {
		t.Errorf("Factorial(-1): err = %v", err)
	}
}

func TestIntDoubleFactorial(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"-1", "1"},
		{"0", "1"},
		{"1", "1"},
		{"5", "15"},
		{"6", "48"},
		{"9", "945"},
	}
	for _, tc := range tests {
		got, err := mustInt(t, tc.in).DoubleFactorial()
		if err != nil {
			t.Fatalf("DoubleFactorial(%s): %v", tc.in, err)
		}
		if got.String() != tc.want {
			t.Errorf("DoubleFactorial(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
	if _, err := NewInt(-2).DoubleFactorial(); !errors.Is(err, ErrNegativeOperand) {
		t.Errorf("DoubleFactorial(-2): err = %v", err)
	}
}

func TestIntBinomial(t *testing.T) {
	tests := []struct {
		n, k, want string
	}{
		{"5", "2", "10"},
		{"5", "0", "1"},
		{"5", "5", "1"},
		{"5", "6", "0"},
		{"5", "-1", "0"},
		{"50", "25", "126410606437752"},
		{"100", "3", "161700"},
	}
	for _, tc := range tests {
		got, err := mustInt(t, tc.n).Binomial(mustInt(t, tc.k))
		if err != nil {
			t.Fatalf("Binomial(%s, %s): %v", tc.n, tc.k, err)
		}
		if got.String() != tc.want {
			t.Errorf("Binomial(%s, %s) = %s, want %s", tc.n, tc.k, got, tc.want)
		}
	}
}

func TestIntPermutations(t *testing.T) {
	tests := []struct {
		n, k, want string
	}{
		{"5", "2", "20"},
		{"5", "0", "1"},
		{"5", "5", "120"},
		{"5", "6", "0"},
		{"10", "3", "720"},
	}
	for _, tc := range tests {
		got, err := mustInt(t, tc.n).Permutations(mustInt(t, tc.k))
		if err != nil {
			t.Fatalf("Permutations(%s, %s): %v", tc.n, tc.k, err)
		}
		if got.String() != tc.want {
			t.Errorf("Permutations(%s, %s) = %s, want %s", tc.n, tc.k, got, tc.want)
		}
	}
}

func TestIntJacobi(t *testing.T) {
	tests := []struct {
		a, m string
		want int
	}{
		{"1", "3", 1},
		{"2", "3", -1},
		{"2", "15", 1},
		{"7", "15", -1},
		{"0", "3", 0},
		{"1001", "9907", -1},
		{"19", "45", 1},
	}
	for _, tc := range tests {
		got, err := mustInt(t, tc.a).Jacobi(mustInt(t, tc.m))
		if err != nil {
			t.Fatalf("Jacobi(%s, %s): %v", tc.a, tc.m, err)
		}
		if got != tc.want {
			t.Errorf("Jacobi(%s, %s) = %d, want %d", tc.a, tc.m, got, tc.want)
		}
	}
	if _, err := NewInt(3).Jacobi(NewInt(4)); err == nil {
		t.Error("Jacobi with even modulus did not error")
	}
}

// Using N values from M goroutines must match sequential results; all
// values are immutable and the engine is resolved once.
func TestIntConcurrency(t *testing.T) {
	const workers = 8
	const iters = 200

	base := mustInt(t, "123456789012345678901234567890")
	want := base.Mul(base).Add(NewInt(1)).String()

	var wg sync.WaitGroup
	results := make([][]string, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			out := make([]string, iters)
			for i := 0; i < iters; i++ {
				out[i] = base.Mul(base).Add(NewInt(1)).String()
			}
			results[w] = out
		}(w)
	}
	wg.Wait()
	for w, out := range results {
		for i, got := range out {
			if got != want {
				t.Fatalf("worker %d iter %d: %s, want %s", w, i, got, want)
			}
		}
	}
}
