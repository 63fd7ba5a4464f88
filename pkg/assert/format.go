package assert

import "strconv"

// formatValue renders a 64-bit value as diagnostic text. Octal and
// hex are always rendered unsigned with the conventional "0"/"0x"
// prefix; the boolean radix renders nonzero as "true" and zero as
// "false"; otherwise the value is rendered as unsigned or signed
// decimal depending on the comparison context.
func formatValue(value uint64, unsigned bool, radix Radix) string {
	switch radix {
	case RadixBoolean:
		if value != 0 {
			return "true"
		}
		return "false"
	case RadixOctal:
		return "0" + strconv.FormatUint(value, 8)
	case RadixHex:
		return "0x" + strconv.FormatUint(value, 16)
	}

	if unsigned {
		return strconv.FormatUint(value, 10)
	}
	return strconv.FormatInt(int64(value), 10)
}
