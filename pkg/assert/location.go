package assert

import "runtime"

// Location identifies the call site of an assertion. The original
// C framework captured this with __FILE__/__LINE__ macros; callers
// here either let the convenience helpers capture it automatically
// or pass an explicit value to the *At variants.
type Location struct {
	File string
	Line int
}

// Here captures the location skip frames above the caller of Here
// itself. Here(0) is the caller's own location. If the stack cannot
// be resolved the location is left empty; reporting degrades to an
// empty basename rather than failing.
func Here(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	return Location{File: file, Line: line}
}

// Basename returns the file name portion of the location path,
// stripping any directory prefix up to the last path separator.
// Both '/' and '\\' are treated as separators regardless of host
// platform, matching the log output of the original framework.
func (l Location) Basename() string {
	file := l.File
	for i := len(file) - 1; i >= 0; i-- {
		if file[i] == '/' || file[i] == '\\' {
			return file[i+1:]
		}
	}
	return file
}
