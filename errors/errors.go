package errors

import "fmt"

// Overflow indicates that the rounded value does not fit within the
// representable range of its type. The original value and the rounding
// factor are present in the Value and Factor fields of this error.
type Overflow struct {
	Value  any
	Factor any
}

func (o Overflow) Error() string {
	return fmt.Sprintf("rounding %v to the nearest multiple of %v overflows its type", o.Value, o.Factor)
}
