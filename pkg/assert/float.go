package assert

import "math"

// FloatCmpAbs asserts that two floating point numbers are equal
// within an absolute tolerance.
func (e *Engine) FloatCmpAbs(
	x, y, tolerance float64, format string, args ...any,
) bool {
	return e.AssertEx(
		math.Abs(x-y) <= tolerance, e.store.Context(), Here(1),
		format, args...,
	)
}

// FloatCmpRel asserts that two floating point numbers are equal
// within a relative tolerance. The ratio is computed against x, so
// a zero x produces an infinite or NaN ratio and the case fails.
func (e *Engine) FloatCmpRel(
	x, y, ratio float64, format string, args ...any,
) bool {
	return e.AssertEx(
		math.Abs(x-y)/x <= ratio, e.store.Context(), Here(1),
		format, args...,
	)
}
