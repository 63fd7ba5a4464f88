package assert

import (
	"bytes"
	"os"
)

// MemCmp asserts that two regions of memory are equal.
func (e *Engine) MemCmp(
	mem1, mem2 []byte, format string, args ...any,
) bool {
	return e.AssertEx(
		bytes.Equal(mem1, mem2), e.store.Context(), Here(1),
		format, args...,
	)
}

// MemCmpValue asserts that every byte of a region of memory equals
// a static fill value.
func (e *Engine) MemCmpValue(
	mem []byte, value byte, format string, args ...any,
) bool {
	ok := true
	for _, b := range mem {
		if b != value {
			ok = false
			break
		}
	}
	return e.AssertEx(
		ok, e.store.Context(), Here(1), format, args...,
	)
}

// MemCmpCount asserts that a region of memory holds the byte count
// pattern: each byte equals its offset modulo 256.
func (e *Engine) MemCmpCount(
	mem []byte, format string, args ...any,
) bool {
	ok := true
	for i, b := range mem {
		if b != byte(i) {
			ok = false
			break
		}
	}
	return e.AssertEx(
		ok, e.store.Context(), Here(1), format, args...,
	)
}

// Mem2BinFileCmp asserts that a region of memory equals the
// contents of a binary file. An unreadable file fails the case.
func (e *Engine) Mem2BinFileCmp(
	mem []byte, filename string, format string, args ...any,
) bool {
	data, err := os.ReadFile(filename)
	ok := err == nil && bytes.Equal(mem, data)
	return e.AssertEx(
		ok, e.store.Context(), Here(1), format, args...,
	)
}
