package assert

// CompareKind selects the comparison performed by the generic
// value asserts.
type CompareKind int

const (
	// CompareNone is the invalid/unused sentinel; it always
	// evaluates false.
	CompareNone CompareKind = iota
	// CompareEQ checks actual equals reference.
	CompareEQ
	// CompareNEQ checks actual does not equal reference.
	CompareNEQ
	// CompareLT checks actual is less than reference (exclusive).
	CompareLT
	// CompareGT checks actual is greater than reference
	// (exclusive).
	CompareGT
	// CompareLTEQ checks actual is less than or equal to
	// reference (inclusive).
	CompareLTEQ
	// CompareGTEQ checks actual is greater than or equal to
	// reference (inclusive).
	CompareGTEQ
	// CompareBitmaskSet checks all reference bits are set in
	// actual.
	CompareBitmaskSet
	// CompareBitmaskUnset checks no reference bits are set in
	// actual.
	CompareBitmaskUnset
)

// OpText returns the symbolic operator token for k. Unknown kinds
// return "??", never an empty string, so the result can be embedded
// directly into a formatted message.
func (k CompareKind) OpText() string {
	switch k {
	case CompareEQ:
		return "=="
	case CompareNEQ:
		return "!="
	case CompareLT:
		return "<"
	case CompareGT:
		return ">"
	case CompareLTEQ:
		return "<="
	case CompareGTEQ:
		return ">="
	case CompareBitmaskSet:
		return "&"
	case CompareBitmaskUnset:
		return "&~"
	default:
		return "??"
	}
}

// Radix selects the numeric base/style used when rendering a value
// in diagnostic text.
type Radix int

const (
	// RadixDefault means no preference: unsigned or signed
	// decimal depending on the comparison context.
	RadixDefault Radix = 0
	// RadixOctal logs integers as octal, base 8.
	RadixOctal Radix = 8
	// RadixDecimal logs integers as decimal, base 10.
	RadixDecimal Radix = 10
	// RadixHex logs integers as hexadecimal, base 16.
	RadixHex Radix = 16
	// RadixBoolean logs nonzero as "true" and zero as "false".
	RadixBoolean Radix = 2
)

// compareValues evaluates one comparison over two 64-bit values.
// Both operands are carried as uint64 bit patterns; when unsigned
// is false they are reinterpreted as int64 and compared with signed
// semantics. Signed and unsigned semantics are never mixed within a
// single call. Unknown kinds evaluate false: a caller bug degrades
// to a failed comparison rather than a crash.
func compareValues(
	actual, ref uint64,
	kind CompareKind,
	unsigned bool,
) bool {
	if unsigned {
		switch kind {
		case CompareEQ:
			return actual == ref
		case CompareNEQ:
			return actual != ref
		case CompareLT:
			return actual < ref
		case CompareGT:
			return actual > ref
		case CompareLTEQ:
			return actual <= ref
		case CompareGTEQ:
			return actual >= ref
		case CompareBitmaskSet:
			return actual&ref == ref
		case CompareBitmaskUnset:
			return actual&ref == 0
		default:
			return false
		}
	}

	a := int64(actual)
	r := int64(ref)
	switch kind {
	case CompareEQ:
		return a == r
	case CompareNEQ:
		return a != r
	case CompareLT:
		return a < r
	case CompareGT:
		return a > r
	case CompareLTEQ:
		return a <= r
	case CompareGTEQ:
		return a >= r
	case CompareBitmaskSet:
		return a&r == r
	case CompareBitmaskUnset:
		return a&r == 0
	default:
		return false
	}
}
