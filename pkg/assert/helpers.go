package assert

import (
	"reflect"
	"strconv"
)

// The helpers in this file are the convenience assertion surface
// built on the engine core. Every helper captures its own call
// site, records exactly one case, and returns the boolean outcome
// for inline use.

// True records a formatted test case under the ambient default
// context. A true expression passes the case.
func (e *Engine) True(
	expr bool, format string, args ...any,
) bool {
	return e.AssertEx(
		expr, e.store.Context(), Here(1), format, args...,
	)
}

// Bool is an alias of True for call sites asserting a raw boolean
// condition.
func (e *Engine) Bool(
	expr bool, format string, args ...any,
) bool {
	return e.AssertEx(
		expr, e.store.Context(), Here(1), format, args...,
	)
}

// Simple records a test case using the description as the entire
// message.
func (e *Engine) Simple(expr bool, description string) bool {
	return e.Assert(expr, description, Here(1))
}

// Failed records an unconditional test failure.
func (e *Engine) Failed(format string, args ...any) bool {
	return e.AssertEx(
		false, e.store.Context(), Here(1), format, args...,
	)
}

// NotApplicable records a case that is not applicable in the
// current configuration. The case is counted under its own
// classification, not as a failure.
func (e *Engine) NotApplicable(
	format string, args ...any,
) bool {
	return e.AssertEx(
		false, CaseNotApplicable, Here(1), format, args...,
	)
}

// ManualInspection records a case whose outcome requires manual
// inspection of the output (MIR).
func (e *Engine) ManualInspection(
	format string, args ...any,
) bool {
	return e.AssertEx(
		false, CaseManualInspection, Here(1), format, args...,
	)
}

// Warning records a case that was unable to run, e.g. because an
// initial condition was wrong.
func (e *Engine) Warning(format string, args ...any) bool {
	return e.AssertEx(
		false, CaseWarn, Here(1), format, args...,
	)
}

// VoidCall invokes a function with no checkable result and records
// a passing case, so the invocation itself appears in the output
// log.
func (e *Engine) VoidCall(name string, fn func()) bool {
	fn()
	return e.Assert(true, name, Here(1))
}

// BoolTrue asserts that the expression evaluates logically true.
func (e *Engine) BoolTrue(name string, expr bool) bool {
	return e.CompareUnsigned(
		boolValue(expr), CompareEQ, 1, RadixDecimal,
		Here(1), "", name, "true",
	)
}

// BoolFalse asserts that the expression evaluates logically false.
func (e *Engine) BoolFalse(name string, expr bool) bool {
	return e.CompareUnsigned(
		boolValue(expr), CompareEQ, 0, RadixDecimal,
		Here(1), "", name, "false",
	)
}

// Int32Eq asserts actual == ref in an int32 context.
func (e *Engine) Int32Eq(name string, actual, ref int32) bool {
	return e.int32Compare(name, actual, CompareEQ, ref)
}

// Int32Neq asserts actual != ref in an int32 context.
func (e *Engine) Int32Neq(name string, actual, ref int32) bool {
	return e.int32Compare(name, actual, CompareNEQ, ref)
}

// Int32Lt asserts actual < ref in an int32 context.
func (e *Engine) Int32Lt(name string, actual, ref int32) bool {
	return e.int32Compare(name, actual, CompareLT, ref)
}

// Int32Gt asserts actual > ref in an int32 context.
func (e *Engine) Int32Gt(name string, actual, ref int32) bool {
	return e.int32Compare(name, actual, CompareGT, ref)
}

// Int32Lteq asserts actual <= ref in an int32 context.
func (e *Engine) Int32Lteq(name string, actual, ref int32) bool {
	return e.int32Compare(name, actual, CompareLTEQ, ref)
}

// Int32Gteq asserts actual >= ref in an int32 context.
func (e *Engine) Int32Gteq(name string, actual, ref int32) bool {
	return e.int32Compare(name, actual, CompareGTEQ, ref)
}

func (e *Engine) int32Compare(
	name string, actual int32, kind CompareKind, ref int32,
) bool {
	return e.CompareSigned(
		int64(actual), kind, int64(ref), RadixDecimal,
		Here(2), "", name, strconv.FormatInt(int64(ref), 10),
	)
}

// Uint32Eq asserts actual == ref in a uint32 context.
func (e *Engine) Uint32Eq(name string, actual, ref uint32) bool {
	return e.uint32Compare(name, actual, CompareEQ, ref)
}

// Uint32Neq asserts actual != ref in a uint32 context.
func (e *Engine) Uint32Neq(name string, actual, ref uint32) bool {
	return e.uint32Compare(name, actual, CompareNEQ, ref)
}

// Uint32Lt asserts actual < ref in a uint32 context.
func (e *Engine) Uint32Lt(name string, actual, ref uint32) bool {
	return e.uint32Compare(name, actual, CompareLT, ref)
}

// Uint32Gt asserts actual > ref in a uint32 context.
func (e *Engine) Uint32Gt(name string, actual, ref uint32) bool {
	return e.uint32Compare(name, actual, CompareGT, ref)
}

// Uint32Lteq asserts actual <= ref in a uint32 context.
func (e *Engine) Uint32Lteq(name string, actual, ref uint32) bool {
	return e.uint32Compare(name, actual, CompareLTEQ, ref)
}

// Uint32Gteq asserts actual >= ref in a uint32 context.
func (e *Engine) Uint32Gteq(name string, actual, ref uint32) bool {
	return e.uint32Compare(name, actual, CompareGTEQ, ref)
}

func (e *Engine) uint32Compare(
	name string, actual uint32, kind CompareKind, ref uint32,
) bool {
	return e.CompareUnsigned(
		uint64(actual), kind, uint64(ref), RadixDecimal,
		Here(2), "", name, strconv.FormatUint(uint64(ref), 10),
	)
}

// Zero asserts that an integer value is zero.
func (e *Engine) Zero(name string, actual int64) bool {
	return e.CompareSigned(
		actual, CompareEQ, 0, RadixDecimal,
		Here(1), "", name, "ZERO",
	)
}

// Nonzero asserts that an integer value is nonzero.
func (e *Engine) Nonzero(name string, actual int64) bool {
	return e.CompareSigned(
		actual, CompareNEQ, 0, RadixDecimal,
		Here(1), "", name, "ZERO",
	)
}

// MaskSet asserts that every bit of mask is set in actual.
func (e *Engine) MaskSet(name string, actual, mask uint32) bool {
	return e.CompareUnsigned(
		uint64(actual), CompareBitmaskSet, uint64(mask),
		RadixHex, Here(1), "", name,
		"0x"+strconv.FormatUint(uint64(mask), 16),
	)
}

// MaskUnset asserts that no bit of mask is set in actual.
func (e *Engine) MaskUnset(name string, actual, mask uint32) bool {
	return e.CompareUnsigned(
		uint64(actual), CompareBitmaskUnset, uint64(mask),
		RadixHex, Here(1), "", name,
		"0x"+strconv.FormatUint(uint64(mask), 16),
	)
}

// Nil asserts that a pointer-like value is nil. The value is
// rendered as a hexadecimal address.
func (e *Engine) Nil(name string, p any) bool {
	return e.CompareUnsigned(
		pointerValue(p), CompareEQ, 0, RadixHex,
		Here(1), "", name, "NULL",
	)
}

// NotNil asserts that a pointer-like value is not nil.
func (e *Engine) NotNil(name string, p any) bool {
	return e.CompareUnsigned(
		pointerValue(p), CompareNEQ, 0, RadixHex,
		Here(1), "", name, "NULL",
	)
}

// AddressEq asserts that two pointer-like values refer to the same
// address.
func (e *Engine) AddressEq(
	actualName string, actual any,
	expectName string, expect any,
) bool {
	return e.CompareUnsigned(
		pointerValue(actual), CompareEQ, pointerValue(expect),
		RadixHex, Here(1), "", actualName, expectName,
	)
}

// StrCmp asserts that two strings are equal.
func (e *Engine) StrCmp(
	s1, s2 string, format string, args ...any,
) bool {
	return e.AssertEx(
		s1 == s2, e.store.Context(), Here(1), format, args...,
	)
}

// StrnCmp asserts that the first n characters of two strings are
// equal. Strings shorter than n are compared in full; a negative n
// compares empty prefixes.
func (e *Engine) StrnCmp(
	s1, s2 string, n int, format string, args ...any,
) bool {
	if n < 0 {
		n = 0
	}
	if len(s1) > n {
		s1 = s1[:n]
	}
	if len(s2) > n {
		s2 = s2[:n]
	}
	return e.AssertEx(
		s1 == s2, e.store.Context(), Here(1), format, args...,
	)
}

// StringBufEq asserts that the string contents of two bounded
// buffers are equal. See CompareStringBuffers for the length and
// display semantics.
func (e *Engine) StringBufEq(
	buf1 []byte, max1 int,
	buf2 []byte, max2 int,
) bool {
	return e.CompareStringBuffers(
		buf1, max1, buf2, max2, CompareEQ, Here(1),
	)
}

// IntCmpAbs asserts that two integers are equal within an absolute
// tolerance.
func (e *Engine) IntCmpAbs(
	x, y, tolerance int64, format string, args ...any,
) bool {
	diff := x - y
	if diff < 0 {
		diff = -diff
	}
	return e.AssertEx(
		diff <= tolerance, e.store.Context(), Here(1),
		format, args...,
	)
}

// boolValue maps a bool onto the integer value the comparison
// engine operates on.
func boolValue(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// pointerValue extracts the address carried by a pointer-like
// value. A nil interface, a typed nil, or a non-pointer value all
// yield zero; the helper never panics.
func pointerValue(p any) uint64 {
	if p == nil {
		return 0
	}
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map,
		reflect.Chan, reflect.Func, reflect.Slice:
		return uint64(v.Pointer())
	default:
		return 0
	}
}
