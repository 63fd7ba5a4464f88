package bsp

import (
	"sync"

	"digital.vasic.flighttest/pkg/assert"
)

// Line is one captured output line with its classification.
type Line struct {
	Class assert.CaseType
	Text  string
}

// SegmentStart is one captured segment-start notification.
type SegmentStart struct {
	Ordinal uint32
	Name    string
}

// Capture is an in-memory output sink for tests and embedding
// hosts that post-process report lines. Like Console it doubles as
// the counter store locker; the engine only writes after releasing
// the store lock, so sharing the mutex cannot deadlock.
type Capture struct {
	sync.Mutex

	lines    []Line
	segments []SegmentStart
}

// NewCapture creates an empty capture sink.
func NewCapture() *Capture {
	return &Capture{}
}

// WriteText records one line.
func (c *Capture) WriteText(
	class assert.CaseType, text string,
) {
	c.Lock()
	defer c.Unlock()
	c.lines = append(c.lines, Line{Class: class, Text: text})
}

// StartSegment records one segment-start notification.
func (c *Capture) StartSegment(ordinal uint32, name string) {
	c.Lock()
	defer c.Unlock()
	c.segments = append(
		c.segments, SegmentStart{Ordinal: ordinal, Name: name},
	)
}

// Lines returns a copy of all captured lines.
func (c *Capture) Lines() []Line {
	c.Lock()
	defer c.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Segments returns a copy of all captured segment starts.
func (c *Capture) Segments() []SegmentStart {
	c.Lock()
	defer c.Unlock()
	out := make([]SegmentStart, len(c.segments))
	copy(out, c.segments)
	return out
}

// Reset discards all captured lines and segment starts.
func (c *Capture) Reset() {
	c.Lock()
	defer c.Unlock()
	c.lines = nil
	c.segments = nil
}
