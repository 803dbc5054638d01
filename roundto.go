// Package roundto rounds numbers and durations to the nearest multiple of an
// arbitrary factor, with a selectable tie-breaking behavior.
//
// Every operation is a pure function of its inputs and is safe to call from
// any number of goroutines without coordination.
package roundto

import (
	"golang.org/x/exp/constraints"

	"github.com/heyvito/roundto/errors"
	"github.com/heyvito/roundto/internal"
)

// Integer is the set of integer types that can be rounded.
type Integer interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr
}

// Float is the set of floating point types that can be rounded.
type Float interface {
	float32 | float64
}

// Number is the set of all types that can be rounded.
type Number interface {
	Integer | Float
}

// TryRoundTo rounds value to the nearest multiple of factor, using tie to
// break exact midpoints. Returns an errors.Overflow in case the rounded
// value does not fit in T; this can only happen for integer types, as
// floating point results saturate at the type's extremes.
//
// Panics if factor is not strictly positive. A non-positive factor is a
// programming error, not a runtime condition to recover from.
func TryRoundTo[T Number](value, factor T, tie Tie) (T, error) {
	// Written as a negated comparison so a NaN factor also trips the guard.
	if !(factor > 0) {
		panic("roundto: factor must be positive")
	}

	var rounded T
	ok := true
	switch v := any(value).(type) {
	case float32:
		rounded = asFloat(v, factor, tie)
	case float64:
		rounded = asFloat(v, factor, tie)
	case int:
		rounded, ok = asInteger(v, factor, tie)
	case int8:
		rounded, ok = asInteger(v, factor, tie)
	case int16:
		rounded, ok = asInteger(v, factor, tie)
	case int32:
		rounded, ok = asInteger(v, factor, tie)
	case int64:
		rounded, ok = asInteger(v, factor, tie)
	case uint:
		rounded, ok = asInteger(v, factor, tie)
	case uint8:
		rounded, ok = asInteger(v, factor, tie)
	case uint16:
		rounded, ok = asInteger(v, factor, tie)
	case uint32:
		rounded, ok = asInteger(v, factor, tie)
	case uint64:
		rounded, ok = asInteger(v, factor, tie)
	case uintptr:
		rounded, ok = asInteger(v, factor, tie)
	}
	if !ok {
		return 0, errors.Overflow{Value: value, Factor: factor}
	}
	return rounded, nil
}

// RoundTo rounds value to the nearest multiple of factor, using tie to break
// exact midpoints. Panics in case the rounded value does not fit in T, or if
// factor is not strictly positive. Use TryRoundTo to handle overflow as a
// recoverable condition.
func RoundTo[T Number](value, factor T, tie Tie) T {
	rounded, err := TryRoundTo(value, factor, tie)
	if err != nil {
		panic(err)
	}
	return rounded
}

// Round rounds value to the nearest multiple of factor, breaking midpoints
// toward the numerically larger multiple. It is shorthand for
// RoundTo(value, factor, Up).
func Round[T Number](value, factor T) T {
	return RoundTo(value, factor, Up)
}

// asInteger runs the integer engine in the concrete width U, then converts
// back to the caller's type parameter. U always matches T's dynamic type, so
// the conversions are lossless.
func asInteger[U constraints.Integer, T Number](value U, factor T, tie Tie) (T, bool) {
	rounded, ok := internal.RoundInteger(value, U(factor), tie)
	return T(rounded), ok
}

func asFloat[U constraints.Float, T Number](value U, factor T, tie Tie) T {
	return T(internal.RoundFloat(value, U(factor), tie))
}
