package roundto

import (
	"math"
	"time"

	"github.com/heyvito/roundto/errors"
)

// Ready-made factors for rounding durations to common subdivisions.
const (
	Microsecond = time.Microsecond
	Millisecond = time.Millisecond
	Second      = time.Second
	Minute      = time.Minute
	Hour        = time.Hour
)

// TryRoundDurationTo rounds d to the nearest multiple of factor, using tie
// to break exact midpoints. A Duration is a single nanosecond count, so this
// delegates to the integer engine directly. Returns an errors.Overflow in
// case the rounded duration does not fit in a Duration.
//
// Panics if factor is not a strictly positive duration.
func TryRoundDurationTo(d, factor time.Duration, tie Tie) (time.Duration, error) {
	rounded, err := TryRoundTo(int64(d), int64(factor), tie)
	if err != nil {
		// Report the durations the caller passed, not their raw
		// nanosecond counts.
		return 0, errors.Overflow{Value: d, Factor: factor}
	}
	return time.Duration(rounded), nil
}

// RoundDurationTo rounds d to the nearest multiple of factor, using tie to
// break exact midpoints. Panics in case the rounded duration does not fit in
// a Duration, or if factor is not strictly positive.
func RoundDurationTo(d, factor time.Duration, tie Tie) time.Duration {
	rounded, err := TryRoundDurationTo(d, factor, tie)
	if err != nil {
		panic(err)
	}
	return rounded
}

// RoundDuration rounds d to the nearest multiple of factor, breaking
// midpoints toward the larger duration. It is shorthand for
// RoundDurationTo(d, factor, Up).
func RoundDuration(d, factor time.Duration) time.Duration {
	return RoundDurationTo(d, factor, Up)
}

const nanosPerSecond = 1_000_000_000

// MakeDuration builds a Duration from a whole-second count and a sub-second
// nanosecond fraction in [0, 1e9). It is the general-purpose counterpart of
// time.Duration arithmetic that refuses to wrap: it panics when the combined
// nanosecond count does not fit in a Duration.
//
// MakeDuration(int64(d)/1e9, int64(d)%1e9) never panics for a non-negative
// Duration d, and rounding alone can never produce a Duration that fails to
// lower; the check exists for callers constructing durations from raw parts.
func MakeDuration(seconds, nanos int64) time.Duration {
	if nanos < 0 || nanos >= nanosPerSecond {
		panic("roundto: sub-second nanos out of range")
	}
	if seconds > (math.MaxInt64-nanos)/nanosPerSecond || seconds < math.MinInt64/nanosPerSecond {
		panic("roundto: duration overflows the representable range")
	}
	return time.Duration(seconds)*time.Second + time.Duration(nanos)
}
