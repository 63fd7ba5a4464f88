package assert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocation_Basename(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		expected string
	}{
		{"unix path", "/a/b/c/test.go", "test.go"},
		{"windows path", `C:\a\b\test.go`, "test.go"},
		{"mixed path", `/a\b/test.go`, "test.go"},
		{"bare name", "test.go", "test.go"},
		{"empty", "", ""},
		{"trailing separator", "/a/b/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := Location{File: tt.file}
			assert.Equal(t, tt.expected, loc.Basename())
		})
	}
}

func TestHere_CapturesCaller(t *testing.T) {
	loc := Here(0)
	assert.Equal(t, "location_test.go", loc.Basename())
	assert.Greater(t, loc.Line, 0)
}

func TestHere_BadSkip(t *testing.T) {
	loc := Here(1 << 20)
	assert.Equal(t, "", loc.File)
	assert.Equal(t, "", loc.Basename())
}
