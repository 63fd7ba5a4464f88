// Package bsp provides board-support implementations of the
// assertion engine's output collaborator: a colored console sink
// with severity filtering, an in-memory capture sink for tests, and
// a YAML-loadable sink configuration.
package bsp

import (
	"fmt"
	"io"
	"os"
	"sync"

	"digital.vasic.flighttest/pkg/assert"
)

// ANSI color codes.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

// Console writes tagged report lines to a terminal or log stream.
// It embeds the mutual-exclusion primitive guarding the counter
// store, so a single Console value serves as both the engine's
// output collaborator and the store's injected locker.
type Console struct {
	sync.Mutex

	out      io.Writer
	color    bool
	maxShown assert.CaseType
}

// NewConsole creates a console sink writing to stdout, configured
// by cfg.
func NewConsole(cfg Config) *Console {
	return &Console{
		out:      os.Stdout,
		color:    cfg.Color,
		maxShown: cfg.maxShown(),
	}
}

// NewConsoleWriter creates a console sink writing to w.
func NewConsoleWriter(w io.Writer, cfg Config) *Console {
	c := NewConsole(cfg)
	c.out = w
	return c
}

// WriteText appends one line tagged with the classification
// abbreviation. Classifications less severe than the configured
// threshold are dropped, except the segment bookkeeping tags
// (BEGIN/END), which are always shown.
func (c *Console) WriteText(
	class assert.CaseType, text string,
) {
	if class > c.maxShown &&
		class != assert.CaseBegin && class != assert.CaseEnd {
		return
	}

	c.Lock()
	defer c.Unlock()

	if c.color {
		fmt.Fprintf(
			c.out, "[%s%5s%s] %s\n",
			classColor(class), class.Abbrev(), colorReset, text,
		)
		return
	}
	fmt.Fprintf(c.out, "[%5s] %s\n", class.Abbrev(), text)
}

// StartSegment prints the segment banner.
func (c *Console) StartSegment(ordinal uint32, name string) {
	c.WriteText(
		assert.CaseBegin, fmt.Sprintf("%02d %s", ordinal, name),
	)
}

// classColor maps a classification onto its display color.
func classColor(class assert.CaseType) string {
	switch class {
	case assert.CaseAbort, assert.CaseFailure,
		assert.CaseSetupFailure, assert.CaseTeardownFailure:
		return colorRed
	case assert.CaseWarn, assert.CaseManualInspection:
		return colorYellow
	case assert.CasePass:
		return colorGreen
	case assert.CaseBegin, assert.CaseEnd, assert.CaseInfo:
		return colorBlue
	default:
		return colorGray
	}
}

// NewEngine wires a Console, a counter store guarded by it, and an
// assertion engine into a ready process-lifetime instance. Hosts
// create one per process at the integration boundary.
func NewEngine(
	cfg Config, opts ...assert.Option,
) *assert.Engine {
	console := NewConsole(cfg)
	store := assert.NewStore(console)
	return assert.New(store, console, opts...)
}
