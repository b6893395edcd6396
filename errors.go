package bezier

import "errors"

var (
	// ErrNotBaked is returned by arc-length lookups on a [BakedCurve] that
	// wasn't produced by [Bake].
	ErrNotBaked = errors.New("bezier: curve has not been baked")

	// ErrDegenerateVector is returned when normalizing a zero-length vector.
	ErrDegenerateVector = errors.New("bezier: cannot normalize zero-length vector")

	// ErrDivideByZero is returned when dividing a point by zero.
	ErrDivideByZero = errors.New("bezier: division by zero")

	// ErrInvalidSteps is returned when baking with fewer than one step.
	ErrInvalidSteps = errors.New("bezier: bake steps must be at least 1")
)
