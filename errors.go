package math

import "github.com/pkg/errors"

// Every public operation either returns a value satisfying its invariants or
// exactly one of the error kinds below. Callers match kinds with errors.Is or
// errors.Cause; call sites attach context with errors.Wrap.
var (
	// ErrDivisionByZero is returned on division or modulus by zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidNumber is returned when an input string is not a valid
	// number in the expected format.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrEmptyInput is returned when a number or byte string was required
	// but the input is empty.
	ErrEmptyInput = errors.New("empty input")

	// ErrBaseOutOfRange is returned when a base is outside [2, 36] or an
	// alphabet has fewer than 2 distinct characters.
	ErrBaseOutOfRange = errors.New("base out of range")

	// ErrInvalidCharacter is returned when a digit is not valid for the
	// requested base or alphabet.
	ErrInvalidCharacter = errors.New("invalid character for base")

	// ErrNegativeOperand is returned when an operation is only defined for
	// non-negative or positive operands.
	ErrNegativeOperand = errors.New("operand must not be negative")

	// ErrNegativeRoot is returned for the square root, or any even root,
	// of a negative number.
	ErrNegativeRoot = errors.New("even root of negative number")

	// ErrInvalidRootDegree is returned for root degrees < 1.
	ErrInvalidRootDegree = errors.New("root degree must be positive")

	// ErrExponentOutOfRange is returned when an exponent is negative or
	// exceeds MaxPowExponent.
	ErrExponentOutOfRange = errors.New("exponent out of range")

	// ErrRoundingNecessary is returned when a result cannot be represented
	// exactly and the rounding mode is RoundUnnecessary.
	ErrRoundingNecessary = errors.New("rounding necessary")

	// ErrNoInverse is returned when no modular inverse exists because the
	// operand and the modulus are not coprime.
	ErrNoInverse = errors.New("no modular inverse")

	// ErrIntegerOverflow is returned when a value does not fit the
	// requested fixed-width integer type.
	ErrIntegerOverflow = errors.New("value out of fixed-width integer range")

	// ErrNoOperands is returned by variadic aggregates called with zero
	// arguments.
	ErrNoOperands = errors.New("no operands")

	// ErrMinGreaterThanMax is returned by ranged random generation when
	// min > max.
	ErrMinGreaterThanMax = errors.New("min is greater than max")

	// ErrTooFewRounds is returned when a probabilistic primality test is
	// requested with fewer than one round.
	ErrTooFewRounds = errors.New("at least one round is required")
)
