package assert

import "strings"

// utassertPrefix is stripped from operand source-text labels before
// display, keeping generated messages readable when wrapper code
// forwards stringified framework expressions.
const utassertPrefix = "UTASSERT_"

// tagMax bounds the displayed type tag.
const tagMax = 29

// CompareUnsigned compares two values in an unsigned context and
// records the outcome as one test case. typeTag, actualText and
// refText are display labels for the generated message; radix
// selects how the operand values are rendered.
func (e *Engine) CompareUnsigned(
	actual uint64,
	kind CompareKind,
	ref uint64,
	radix Radix,
	loc Location,
	typeTag, actualText, refText string,
) bool {
	return e.genericCompare(
		true, actual, kind, ref, radix, loc,
		typeTag, actualText, refText,
	)
}

// CompareSigned compares two values in a signed context and records
// the outcome as one test case.
func (e *Engine) CompareSigned(
	actual int64,
	kind CompareKind,
	ref int64,
	radix Radix,
	loc Location,
	typeTag, actualText, refText string,
) bool {
	return e.genericCompare(
		false, uint64(actual), kind, uint64(ref), radix, loc,
		typeTag, actualText, refText,
	)
}

// genericCompare is the shared typed-compare implementation. The
// signedness flag selects the comparison and rendering semantics
// for both operands; the two entry points above never mix contexts.
// The outcome is always recorded with the failure classification
// when false, regardless of the ambient default context.
func (e *Engine) genericCompare(
	unsigned bool,
	actual uint64,
	kind CompareKind,
	ref uint64,
	radix Radix,
	loc Location,
	typeTag, actualText, refText string,
) bool {
	tag := buildTag(typeTag)

	// If no radix was requested and the type tag looks like a
	// pointer type, render in hex. Matching on the asterisk is
	// not foolproof with typedefs involved, but catches the
	// common cases.
	if tag != "" && radix == RadixDefault &&
		strings.ContainsRune(typeTag, '*') {
		radix = RadixHex
	}

	actualText = strings.TrimPrefix(actualText, utassertPrefix)
	refText = strings.TrimPrefix(refText, utassertPrefix)

	return e.AssertEx(
		compareValues(actual, ref, kind, unsigned),
		CaseFailure, loc,
		"%s%s (%s) %s %s (%s)",
		tag, actualText,
		formatValue(actual, unsigned, radix),
		kind.OpText(), refText,
		formatValue(ref, unsigned, radix),
	)
}

// buildTag renders a type tag as a bounded "Tag: " message prefix.
// Trailing whitespace and colons are trimmed first; an empty tag
// yields no prefix.
func buildTag(typeTag string) string {
	if len(typeTag) > tagMax {
		typeTag = typeTag[:tagMax]
	}
	typeTag = strings.TrimRight(typeTag, " \t\r\n\v\f:")
	if typeTag == "" {
		return ""
	}
	return typeTag + ": "
}
