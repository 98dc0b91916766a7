package math

import "github.com/pkg/errors"

// RoundingMode selects how a discarded fractional remainder maps onto the
// kept digits. It is a closed enumeration; the decision is a pure function of
// the sign of the exact quotient, the comparison of twice the remainder
// magnitude against the divisor magnitude, and (for RoundHalfEven) the parity
// of the candidate last digit.
type RoundingMode int

const (
	// RoundUnnecessary asserts the operation is exact and fails with
	// ErrRoundingNecessary otherwise. It is the default everywhere a mode
	// is implied rather than passed.
	RoundUnnecessary RoundingMode = iota
	// RoundUp rounds away from zero.
	RoundUp
	// RoundDown rounds toward zero; truncate.
	RoundDown
	// RoundCeiling rounds toward positive infinity.
	RoundCeiling
	// RoundFloor rounds toward negative infinity.
	RoundFloor
	// RoundHalfUp rounds to nearest, ties away from zero.
	RoundHalfUp
	// RoundHalfDown rounds to nearest, ties toward zero.
	RoundHalfDown
	// RoundHalfCeiling rounds to nearest, ties toward positive infinity.
	RoundHalfCeiling
	// RoundHalfFloor rounds to nearest, ties toward negative infinity.
	RoundHalfFloor
	// RoundHalfEven rounds to nearest, ties to the even neighbor
	// (banker's rounding).
	RoundHalfEven
)

func (m RoundingMode) String() string {
	switch m {
	case RoundUnnecessary:
		return "UNNECESSARY"
	case RoundUp:
		return "UP"
	case RoundDown:
		return "DOWN"
	case RoundCeiling:
		return "CEILING"
	case RoundFloor:
		return "FLOOR"
	case RoundHalfUp:
		return "HALF_UP"
	case RoundHalfDown:
		return "HALF_DOWN"
	case RoundHalfCeiling:
		return "HALF_CEILING"
	case RoundHalfFloor:
		return "HALF_FLOOR"
	case RoundHalfEven:
		return "HALF_EVEN"
	default:
		return "UNKNOWN"
	}
}

// roundQuotient applies mode to a truncated quotient q with remainder r over
// divisor b (all canonical strings, r carrying the dividend's sign). It is
// the single rounding decision point shared by every division-like operation:
// decimal division, integer division with rounding, rescaling, and square
// roots all funnel through here.
func roundQuotient(c Calculator, q, r, b string, mode RoundingMode) (string, error) {
	if r == "0" {
		return q, nil
	}
	if mode == RoundUnnecessary {
		return "", ErrRoundingNecessary
	}
	// The exact quotient's sign: the remainder carries the dividend's sign.
	positive := signOf(r) == signOf(b)
	// Compare 2|r| against |b|: -1 below the midpoint, 0 at it, +1 above.
	rr := absVal(r)
	half := cmpMag(c.Add(rr, rr), absVal(b))
	return applyRounding(c, q, positive, half, mode)
}

// applyRounding resolves the increment decision. half is the 2|r| vs |b|
// comparison; increment means stepping |q| away from zero, which for a
// truncated quotient always moves toward the exact value.
func applyRounding(c Calculator, q string, positive bool, half int, mode RoundingMode) (string, error) {
	var increment bool
	switch mode {
	case RoundUp:
		increment = true
	case RoundDown:
		increment = false
	case RoundCeiling:
		increment = positive
	case RoundFloor:
		increment = !positive
	case RoundHalfUp:
		increment = half >= 0
	case RoundHalfDown:
		increment = half > 0
	case RoundHalfCeiling:
		if positive {
			increment = half >= 0
		} else {
			increment = half > 0
		}
	case RoundHalfFloor:
		if positive {
			increment = half > 0
		} else {
			increment = half >= 0
		}
	case RoundHalfEven:
		increment = half > 0 || half == 0 && lastDigitOdd(q)
	case RoundUnnecessary:
		return "", ErrRoundingNecessary
	default:
		return "", errors.Errorf("unknown rounding mode %d", int(mode))
	}
	if !increment {
		return q, nil
	}
	if positive {
		return c.Add(q, "1"), nil
	}
	return c.Sub(q, "1"), nil
}

func lastDigitOdd(q string) bool {
	return (q[len(q)-1]-'0')%2 == 1
}
