package roundto

import "github.com/heyvito/roundto/internal"

// Tie describes how to resolve a value that sits exactly halfway between two
// multiples of the rounding factor.
type Tie = internal.Tie

const (
	// Up breaks ties toward the numerically larger multiple, regardless of
	// sign. This is the traditional "round half up" behavior.
	Up = internal.TieUp

	// Down breaks ties toward the numerically smaller multiple, regardless
	// of sign.
	Down = internal.TieDown

	// TowardZero breaks ties toward the multiple closer to zero.
	TowardZero = internal.TieTowardZero

	// AwayFromZero breaks ties toward the multiple farther from zero.
	AwayFromZero = internal.TieAwayFromZero

	// TowardEven breaks ties toward the candidate n*factor where n is even.
	// Rounding -15 to the nearest 10 yields -20, consistently with the
	// positive case.
	TowardEven = internal.TieTowardEven

	// TowardOdd breaks ties toward the candidate n*factor where n is odd.
	TowardOdd = internal.TieTowardOdd
)
