// Package report builds run-level summaries from segment counter
// snapshots and exports them as JSON and Markdown.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"digital.vasic.flighttest/pkg/assert"
)

// RunSummary aggregates the outcome of all completed test segments
// in one run.
type RunSummary struct {
	ID            string           `json:"id"`
	GeneratedAt   time.Time        `json:"generated_at"`
	Segments      []SegmentSummary `json:"segments"`
	TotalSegments int              `json:"total_segments"`
	TotalCases    uint32           `json:"total_cases"`
	TotalPassed   uint32           `json:"total_passed"`
	TotalFailed   uint32           `json:"total_failed"`
	PassRate      float64          `json:"pass_rate"`
}

// SegmentSummary summarizes one completed test segment.
type SegmentSummary struct {
	Name             string `json:"name"`
	Ordinal          uint32 `json:"ordinal"`
	TotalCases       uint32 `json:"total_cases"`
	Passed           uint32 `json:"passed"`
	Failed           uint32 `json:"failed"`
	SetupFailures    uint32 `json:"setup_failures"`
	TeardownFailures uint32 `json:"teardown_failures"`
	ManualInspection uint32 `json:"manual_inspection"`
	Warnings         uint32 `json:"warnings"`
	NotApplicable    uint32 `json:"not_applicable"`
}

// BuildRunSummary creates a run summary from the segment snapshots
// collected over a test run.
func BuildRunSummary(
	snaps []assert.SegmentSnapshot,
) *RunSummary {
	summary := &RunSummary{
		ID: fmt.Sprintf(
			"run_%s",
			time.Now().Format("20060102_150405"),
		),
		GeneratedAt: time.Now(),
		Segments: make(
			[]SegmentSummary, 0, len(snaps),
		),
	}

	for _, snap := range snaps {
		c := snap.Counters
		ss := SegmentSummary{
			Name:             snap.Name,
			Ordinal:          c.SegmentCount,
			TotalCases:       c.TotalCases,
			Passed:           c.CaseCount[assert.CasePass],
			Failed:           c.CaseCount[assert.CaseFailure],
			SetupFailures:    c.CaseCount[assert.CaseSetupFailure],
			TeardownFailures: c.CaseCount[assert.CaseTeardownFailure],
			ManualInspection: c.CaseCount[assert.CaseManualInspection],
			Warnings:         c.CaseCount[assert.CaseWarn],
			NotApplicable:    c.CaseCount[assert.CaseNotApplicable],
		}

		summary.Segments = append(summary.Segments, ss)
		summary.TotalSegments++
		summary.TotalCases += ss.TotalCases
		summary.TotalPassed += ss.Passed
		summary.TotalFailed += ss.Failed
	}

	if summary.TotalCases > 0 {
		summary.PassRate =
			float64(summary.TotalPassed) /
				float64(summary.TotalCases)
	}

	return summary
}

// SaveRunSummary saves the run summary to both JSON and Markdown
// files in the given output directory, updating "latest" symlinks.
func SaveRunSummary(
	summary *RunSummary,
	outputDir string,
) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf(
			"failed to create output directory: %w", err,
		)
	}

	ts := summary.GeneratedAt.Format("20060102_150405")

	jsonPath := filepath.Join(
		outputDir,
		fmt.Sprintf("run_summary_%s.json", ts),
	)
	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf(
			"failed to marshal summary: %w", err,
		)
	}
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return fmt.Errorf(
			"failed to write JSON summary: %w", err,
		)
	}

	mdPath := filepath.Join(
		outputDir,
		fmt.Sprintf("run_summary_%s.md", ts),
	)
	mdContent := generateSummaryMarkdown(summary)
	if err := os.WriteFile(
		mdPath, []byte(mdContent), 0644,
	); err != nil {
		return fmt.Errorf(
			"failed to write Markdown summary: %w", err,
		)
	}

	latestJSON := filepath.Join(outputDir, "latest_summary.json")
	latestMD := filepath.Join(outputDir, "latest_summary.md")

	_ = os.Remove(latestJSON)
	_ = os.Remove(latestMD)
	_ = os.Symlink(filepath.Base(jsonPath), latestJSON)
	_ = os.Symlink(filepath.Base(mdPath), latestMD)

	return nil
}

// generateSummaryMarkdown creates markdown from a run summary.
func generateSummaryMarkdown(summary *RunSummary) string {
	var sb strings.Builder

	sb.WriteString("# Test Run Summary\n\n")
	sb.WriteString(
		fmt.Sprintf("**Run ID:** %s\n\n", summary.ID),
	)
	sb.WriteString(
		fmt.Sprintf(
			"**Generated:** %s\n\n",
			summary.GeneratedAt.Format(time.RFC3339),
		),
	)

	sb.WriteString("## Segments\n\n")
	sb.WriteString(
		"| Segment | Cases | Pass | Fail " +
			"| MIR | TSF | TTF | WARN | N/A |\n",
	)
	sb.WriteString(
		"|---------|-------|------|------" +
			"|-----|-----|-----|------|-----|\n",
	)

	for _, s := range summary.Segments {
		sb.WriteString(
			fmt.Sprintf(
				"| %02d %s | %d | %d | %d "+
					"| %d | %d | %d | %d | %d |\n",
				s.Ordinal, s.Name, s.TotalCases,
				s.Passed, s.Failed,
				s.ManualInspection, s.SetupFailures,
				s.TeardownFailures, s.Warnings,
				s.NotApplicable,
			),
		)
	}

	sb.WriteString("\n## Totals\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(
		fmt.Sprintf(
			"| Segments | %d |\n", summary.TotalSegments,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Cases | %d |\n", summary.TotalCases,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Passed | %d |\n", summary.TotalPassed,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Failed | %d |\n", summary.TotalFailed,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Pass Rate | %.0f%% |\n",
			summary.PassRate*100,
		),
	)

	return sb.String()
}
