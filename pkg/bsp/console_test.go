package bsp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	asrt "digital.vasic.flighttest/pkg/assert"
)

func plainConfig() Config {
	return Config{Color: false}
}

func TestConsole_WriteText_Plain(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf, plainConfig())

	c.WriteText(asrt.CaseFailure, "something broke")

	assert.Equal(
		t, "[ FAIL] something broke\n", buf.String(),
	)
}

func TestConsole_WriteText_Color(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf, Config{Color: true})

	c.WriteText(asrt.CasePass, "fine")

	out := buf.String()
	assert.Contains(t, out, colorGreen)
	assert.Contains(t, out, colorReset)
	assert.Contains(t, out, " PASS")
	assert.Contains(t, out, "fine")
}

func TestConsole_WriteText_FiltersBelowThreshold(
	t *testing.T,
) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf, plainConfig())

	// Default threshold shows up to PASS; FLOW and DEBUG are
	// dropped.
	c.WriteText(asrt.CaseFlow, "flow line")
	c.WriteText(asrt.CaseDebug, "debug line")
	assert.Empty(t, buf.String())

	c.WriteText(asrt.CasePass, "pass line")
	c.WriteText(asrt.CaseFailure, "fail line")
	assert.Contains(t, buf.String(), "pass line")
	assert.Contains(t, buf.String(), "fail line")
}

func TestConsole_WriteText_Verbose(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf, Config{Verbose: true})

	c.WriteText(asrt.CaseDebug, "debug line")
	assert.Contains(t, buf.String(), "debug line")
}

func TestConsole_WriteText_BookkeepingAlwaysShown(
	t *testing.T,
) {
	var buf bytes.Buffer
	c := NewConsoleWriter(
		&buf, Config{Filter: "FAIL"},
	)

	c.WriteText(asrt.CasePass, "pass line")
	assert.Empty(t, buf.String())

	c.WriteText(asrt.CaseBegin, "segment banner")
	c.WriteText(asrt.CaseEnd, "segment summary")
	assert.Contains(t, buf.String(), "segment banner")
	assert.Contains(t, buf.String(), "segment summary")
}

func TestConsole_StartSegment(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf, plainConfig())

	c.StartSegment(3, "widgets")

	assert.Equal(t, "[BEGIN] 03 widgets\n", buf.String())
}

func TestNewEngine_EndToEnd(t *testing.T) {
	// Console output goes to stdout here, so wire the pieces
	// manually around a buffer instead.
	var buf bytes.Buffer
	console := NewConsoleWriter(&buf, plainConfig())
	store := asrt.NewStore(console)
	engine := asrt.New(store, console)

	engine.BeginTest("smoke")
	engine.True(true, "works")
	engine.True(false, "fails")
	engine.EndTest()

	out := buf.String()
	assert.Contains(t, out, "[BEGIN] 01 smoke")
	assert.Contains(t, out, "01.001")
	assert.Contains(t, out, "01.002")
	assert.Contains(t, out, "TOTAL::2")
	assert.Contains(t, out, "PASS::1")
	assert.Contains(t, out, "FAIL::1")

	require.Equal(t, uint32(1), store.PassCount())
	require.Equal(t, uint32(1), store.FailCount())
}

func TestNewEngine_Wiring(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	require.NotNil(t, engine)
	assert.NotNil(t, engine.Store())
}

func TestCapture_RecordsLinesAndSegments(t *testing.T) {
	sink := NewCapture()
	store := asrt.NewStore(sink)
	engine := asrt.New(store, sink)

	engine.BeginTest("captured")
	engine.True(true, "ok")
	engine.EndTest()

	segments := sink.Segments()
	require.Len(t, segments, 1)
	assert.Equal(t, uint32(1), segments[0].Ordinal)
	assert.Equal(t, "captured", segments[0].Name)

	lines := sink.Lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, asrt.CasePass, lines[0].Class)
	assert.True(
		t, strings.HasPrefix(lines[0].Text, "01.001 "),
	)

	sink.Reset()
	assert.Empty(t, sink.Lines())
	assert.Empty(t, sink.Segments())
}
