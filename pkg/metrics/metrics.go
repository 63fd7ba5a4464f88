// Package metrics provides recorder implementations pluggable
// into the assertion engine for case and segment accounting beyond
// the built-in counters.
package metrics

import (
	"sync"

	"digital.vasic.flighttest/pkg/assert"
)

// Noop is a no-op recorder, useful when metrics collection is
// disabled.
type Noop struct{}

func (Noop) RecordCase(_ string, _ assert.CaseType, _ bool) {}
func (Noop) RecordSegment(_ string, _ assert.Counters)      {}

// InMemory records case and segment events in memory. It is safe
// for concurrent use.
type InMemory struct {
	mu       sync.Mutex
	cases    map[string]int
	segments map[string]assert.Counters
}

// NewInMemory creates an empty in-memory recorder.
func NewInMemory() *InMemory {
	return &InMemory{
		cases:    make(map[string]int),
		segments: make(map[string]assert.Counters),
	}
}

// RecordCase counts one resolved case under a
// segment:classification key.
func (m *InMemory) RecordCase(
	segment string, class assert.CaseType, passed bool,
) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cases[segment+":"+class.Abbrev()]++
}

// RecordSegment stores the final counters of a completed segment.
func (m *InMemory) RecordSegment(
	name string, counters assert.Counters,
) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.segments[name] = counters
}

// CaseCount returns the number of cases recorded for a
// segment+classification combination.
func (m *InMemory) CaseCount(
	segment string, class assert.CaseType,
) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cases[segment+":"+class.Abbrev()]
}

// Segment returns the recorded counters for a completed segment.
func (m *InMemory) Segment(
	name string,
) (assert.Counters, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.segments[name]
	return c, ok
}
