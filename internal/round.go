package internal

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Tie selects which of the two candidate multiples wins when a value sits
// exactly halfway between them.
type Tie int

const (
	TieUp Tie = iota
	TieDown
	TieTowardZero
	TieAwayFromZero
	TieTowardEven
	TieTowardOdd
)

func (t Tie) String() string {
	switch t {
	case TieUp:
		return "Up"
	case TieDown:
		return "Down"
	case TieTowardZero:
		return "TowardZero"
	case TieAwayFromZero:
		return "AwayFromZero"
	case TieTowardEven:
		return "TowardEven"
	case TieTowardOdd:
		return "TowardOdd"
	}
	return fmt.Sprintf("Tie(%d)", int(t))
}

// RoundInteger rounds value to the nearest multiple of factor using exact
// integer arithmetic. The second return is false when the rounded value does
// not fit in T. factor must be positive; the public layer enforces it.
func RoundInteger[T constraints.Integer](value, factor T, tie Tie) (T, bool) {
	remainder := value % factor

	// remainder takes the sign of value, so base is always closer to zero
	// than value and can never overflow or switch signs.
	base := value - remainder

	// Only evaluated when an exact midpoint is hit. Exact equality is safe
	// here since integer remainder arithmetic is exact.
	useSmaller := func() bool {
		switch tie {
		case TieUp:
			return false
		case TieDown:
			return true
		case TieTowardZero:
			return value > 0
		case TieAwayFromZero:
			return value < 0
		case TieTowardEven:
			return ((base/factor)%2 == 0) != (value < 0)
		case TieTowardOdd:
			return ((base/factor)%2 != 0) != (value < 0)
		}
		panic(fmt.Sprintf("roundto: unknown tie behavior %d", int(tie)))
	}

	if value > 0 {
		// factor%2 keeps odd factors from truncating the midpoint down.
		if remainder < factor/2+factor%2 || (remainder == factor/2 && useSmaller()) {
			return base, true
		}
		rounded := base + factor
		if rounded < base {
			return 0, false
		}
		return rounded, true
	}

	// value <= 0, so 0 <= -remainder < factor.
	if remainder+factor < factor/2+factor%2 || (remainder+factor/2+factor%2 == 0 && useSmaller()) {
		rounded := base - factor
		if rounded > base {
			return 0, false
		}
		return rounded, true
	}
	return base, true
}

// RoundFloat rounds value to the nearest multiple of factor. Floating point
// remainder arithmetic is not exact, so midpoints are detected within the
// type's machine epsilon rather than by exact equality. The result always
// fits in T, saturating at the type's extremes. factor must be positive; the
// public layer enforces it.
func RoundFloat[T constraints.Float](value, factor T, tie Tie) T {
	// Unlike the integer convention above, math.Mod yields a negative
	// remainder for negative values.
	remainder := T(math.Mod(float64(value), float64(factor)))
	base := value - remainder
	eps := machineEpsilon[T]()

	useSmaller := func() bool {
		switch tie {
		case TieUp:
			return false
		case TieDown:
			return true
		case TieTowardZero:
			return value > 0
		case TieAwayFromZero:
			return value < 0
		case TieTowardEven:
			return (abs(T(math.Mod(float64(base/factor), 2))) < eps) != (value < 0)
		case TieTowardOdd:
			return (abs(T(math.Mod(float64(base/factor), 2))) >= eps) != (value < 0)
		}
		panic(fmt.Sprintf("roundto: unknown tie behavior %d", int(tie)))
	}

	if value > 0 {
		if remainder-factor/2 < -eps || (abs(remainder-factor/2) < eps && useSmaller()) {
			return base
		}
		return base + factor
	}

	// value <= 0, so remainder is in (-factor, 0].
	if remainder-factor/2+factor < -eps || (abs(remainder+factor/2) < eps && useSmaller()) {
		return base - factor
	}
	return base
}

const (
	epsilon32 = 1.0 / (1 << 23)
	epsilon64 = 1.0 / (1 << 52)
)

// machineEpsilon returns the difference between 1 and the next representable
// value of T. Adding epsilon64 to 1 only survives rounding in a 64-bit
// float, which tells the two widths apart without reflection.
func machineEpsilon[T constraints.Float]() T {
	if T(1)+T(epsilon64) > 1 {
		return T(epsilon64)
	}
	return T(epsilon32)
}

func abs[T constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
