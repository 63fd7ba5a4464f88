package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	asrt "digital.vasic.flighttest/pkg/assert"
)

func sampleSnapshots() []asrt.SegmentSnapshot {
	var a, b asrt.Counters

	a.SegmentCount = 1
	a.TotalCases = 3
	a.CaseCount[asrt.CasePass] = 2
	a.CaseCount[asrt.CaseFailure] = 1

	b.SegmentCount = 2
	b.TotalCases = 2
	b.CaseCount[asrt.CasePass] = 1
	b.CaseCount[asrt.CaseWarn] = 1

	return []asrt.SegmentSnapshot{
		{Name: "alpha", Counters: a},
		{Name: "beta", Counters: b},
	}
}

func TestBuildRunSummary(t *testing.T) {
	summary := BuildRunSummary(sampleSnapshots())

	assert.Equal(t, 2, summary.TotalSegments)
	assert.Equal(t, uint32(5), summary.TotalCases)
	assert.Equal(t, uint32(3), summary.TotalPassed)
	assert.Equal(t, uint32(1), summary.TotalFailed)
	assert.InDelta(t, 0.6, summary.PassRate, 1e-9)

	require.Len(t, summary.Segments, 2)
	assert.Equal(t, "alpha", summary.Segments[0].Name)
	assert.Equal(t, uint32(1), summary.Segments[0].Ordinal)
	assert.Equal(t, uint32(1), summary.Segments[1].Warnings)
}

func TestBuildRunSummary_TotalsEqualSegmentSums(t *testing.T) {
	summary := BuildRunSummary(sampleSnapshots())

	var cases, passed, failed uint32
	for _, s := range summary.Segments {
		cases += s.TotalCases
		passed += s.Passed
		failed += s.Failed
	}
	assert.Equal(t, summary.TotalCases, cases)
	assert.Equal(t, summary.TotalPassed, passed)
	assert.Equal(t, summary.TotalFailed, failed)
}

// quietOutput discards engine text for report tests.
type quietOutput struct{}

func (quietOutput) WriteText(asrt.CaseType, string) {}
func (quietOutput) StartSegment(uint32, string)     {}

func TestBuildRunSummary_FromEngineSnapshots(t *testing.T) {
	engine := asrt.New(asrt.NewStore(nil), quietOutput{})
	loc := asrt.Location{File: "a.go", Line: 1}

	var snaps []asrt.SegmentSnapshot
	run := func(name string, outcomes ...bool) {
		engine.BeginTest(name)
		for _, ok := range outcomes {
			engine.AssertEx(ok, asrt.CaseFailure, loc, "case")
		}
		if snap, valid := engine.EndTest(); valid {
			snaps = append(snaps, snap)
		}
	}

	run("alpha", true, true, false)
	run("empty")
	run("beta", true)

	summary := BuildRunSummary(snaps)
	require.Len(t, summary.Segments, 2)
	assert.Equal(t, uint32(4), summary.TotalCases)
	assert.Equal(t, uint32(3), summary.TotalPassed)
	assert.Equal(t, uint32(1), summary.TotalFailed)
	assert.Equal(t, "beta", summary.Segments[1].Name)
}

func TestBuildRunSummary_Empty(t *testing.T) {
	summary := BuildRunSummary(nil)

	assert.Zero(t, summary.TotalSegments)
	assert.Zero(t, summary.TotalCases)
	assert.Zero(t, summary.PassRate)
	assert.NotEmpty(t, summary.ID)
}

func TestSaveRunSummary(t *testing.T) {
	dir := t.TempDir()
	summary := BuildRunSummary(sampleSnapshots())

	require.NoError(t, SaveRunSummary(summary, dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var haveJSON, haveMD bool
	for _, entry := range entries {
		switch filepath.Ext(entry.Name()) {
		case ".json":
			haveJSON = true
		case ".md":
			haveMD = true
		}
	}
	assert.True(t, haveJSON)
	assert.True(t, haveMD)

	data, err := os.ReadFile(
		filepath.Join(dir, "latest_summary.json"),
	)
	require.NoError(t, err)

	var loaded RunSummary
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, summary.TotalCases, loaded.TotalCases)
	assert.Len(t, loaded.Segments, 2)
}

func TestGenerateSummaryMarkdown(t *testing.T) {
	summary := BuildRunSummary(sampleSnapshots())
	md := generateSummaryMarkdown(summary)

	assert.Contains(t, md, "# Test Run Summary")
	assert.Contains(t, md, "| 01 alpha | 3 | 2 | 1 ")
	assert.Contains(t, md, "| 02 beta | 2 | 1 | 0 ")
	assert.Contains(t, md, "| Segments | 2 |")
	assert.Contains(t, md, "| Pass Rate | 60% |")
}
