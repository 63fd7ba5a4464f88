package assert

import "bytes"

// NullTerm may be passed as a string buffer bound to indicate the
// buffer is NUL-terminated and/or its maximum size is not known;
// the natural string length is used instead of a fixed bound.
const NullTerm = -1

// scrubMax bounds the displayed copy of each compared string.
const scrubMax = 255

// CompareStringBuffers compares the string contents of two byte
// buffers and records the outcome as one test case. Each buffer's
// comparison length is the distance to its first NUL byte within
// the given bound (NullTerm means scan the whole buffer); a nil
// buffer is treated as absent. Two zero-length strings compare
// equal; when one string is a prefix of the other, the longer
// string is the greater. Only the ordering comparison kinds are
// meaningful; bitmask kinds evaluate false.
//
// The displayed strings are truncated at their first embedded
// newline to keep the log parseable; this affects only the message
// text, never the comparison result.
func (e *Engine) CompareStringBuffers(
	buf1 []byte, max1 int,
	buf2 []byte, max2 int,
	kind CompareKind,
	loc Location,
) bool {
	s1 := stringBufContents(buf1, max1)
	s2 := stringBufContents(buf2, max2)

	var compare int
	if len(s1) > 0 || len(s2) > 0 {
		if len(s1) < len(s2) {
			compare = bytes.Compare(s1, s2[:len(s1)])
		} else {
			compare = bytes.Compare(s1[:len(s2)], s2)
		}
		if compare == 0 {
			// Initial content matches; the longer string wins.
			switch {
			case len(s1) > len(s2):
				compare = 1
			case len(s1) < len(s2):
				compare = -1
			}
		}
	}

	var result bool
	switch kind {
	case CompareEQ:
		result = compare == 0
	case CompareNEQ:
		result = compare != 0
	case CompareLT:
		result = compare < 0
	case CompareGT:
		result = compare > 0
	case CompareLTEQ:
		result = compare <= 0
	case CompareGTEQ:
		result = compare >= 0
	default:
		result = false
	}

	return e.AssertEx(
		result, CaseFailure, loc,
		"String: '%s' == '%s'",
		scrubString(s1), scrubString(s2),
	)
}

// stringBufContents resolves the compared portion of a string
// buffer: up to the first NUL within the bound, else the bound
// itself, never past the end of the slice. Any negative bound is
// treated as NullTerm.
func stringBufContents(buf []byte, max int) []byte {
	if buf == nil {
		return nil
	}

	bound := len(buf)
	if max >= 0 && max < bound {
		bound = max
	}

	if idx := bytes.IndexByte(buf[:bound], 0); idx >= 0 {
		bound = idx
	}

	return buf[:bound]
}

// scrubString produces the display copy of a compared string:
// truncated at the first newline and capped at the scratch buffer
// size.
func scrubString(s []byte) string {
	if idx := bytes.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	if len(s) > scrubMax {
		s = s[:scrubMax]
	}
	return string(s)
}
