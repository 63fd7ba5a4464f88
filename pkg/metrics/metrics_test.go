package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	asrt "digital.vasic.flighttest/pkg/assert"
)

func TestNoop_Implements(t *testing.T) {
	var r asrt.Recorder = Noop{}
	r.RecordCase("seg", asrt.CasePass, true)
	r.RecordSegment("seg", asrt.Counters{})
}

func TestInMemory_RecordCase(t *testing.T) {
	m := NewInMemory()

	m.RecordCase("seg", asrt.CasePass, true)
	m.RecordCase("seg", asrt.CasePass, true)
	m.RecordCase("seg", asrt.CaseFailure, false)
	m.RecordCase("other", asrt.CasePass, true)

	assert.Equal(t, 2, m.CaseCount("seg", asrt.CasePass))
	assert.Equal(t, 1, m.CaseCount("seg", asrt.CaseFailure))
	assert.Equal(t, 1, m.CaseCount("other", asrt.CasePass))
	assert.Zero(t, m.CaseCount("seg", asrt.CaseWarn))
}

func TestInMemory_RecordSegment(t *testing.T) {
	m := NewInMemory()

	var c asrt.Counters
	c.TotalCases = 4
	c.CaseCount[asrt.CasePass] = 4
	m.RecordSegment("seg", c)

	got, ok := m.Segment("seg")
	require.True(t, ok)
	assert.Equal(t, uint32(4), got.TotalCases)

	_, ok = m.Segment("missing")
	assert.False(t, ok)
}

func TestInMemory_WithEngine(t *testing.T) {
	m := NewInMemory()
	out := discardOutput{}
	store := asrt.NewStore(nil)
	engine := asrt.New(store, out, asrt.WithRecorder(m))

	engine.BeginTest("seg")
	engine.True(true, "ok")
	engine.True(false, "bad")
	engine.EndTest()

	assert.Equal(t, 1, m.CaseCount("seg", asrt.CasePass))
	assert.Equal(t, 1, m.CaseCount("seg", asrt.CaseFailure))

	counters, ok := m.Segment("seg")
	require.True(t, ok)
	assert.Equal(t, uint32(2), counters.TotalCases)
}

type discardOutput struct{}

func (discardOutput) WriteText(_ asrt.CaseType, _ string) {}
func (discardOutput) StartSegment(_ uint32, _ string)     {}
