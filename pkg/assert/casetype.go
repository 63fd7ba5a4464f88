// Package assert implements the core assertion and
// test-result-aggregation library for flight-software style unit
// tests: a unified assertion entry point recording outcomes into
// hierarchical counters, typed comparison helpers with consistent
// diagnostic messages, and per-segment plus cumulative counter
// aggregation with reporting delegated to a board-support
// collaborator.
package assert

// CaseType classifies a single recorded test event. The order is
// significant: output sinks may filter by position in this list,
// which runs from most to least severe.
type CaseType int

const (
	// CaseNone is a reserved value; no events use it.
	CaseNone CaseType = iota
	// CaseAbort is a test sequence abort (major failure, cannot
	// continue).
	CaseAbort
	// CaseFailure is a normal test case failure.
	CaseFailure
	// CaseSetupFailure (TSF) is a failure during test setup.
	CaseSetupFailure
	// CaseTeardownFailure (TTF) is a failure during test teardown.
	CaseTeardownFailure
	// CaseManualInspection (MIR) marks a case requiring manual
	// inspection of the output.
	CaseManualInspection
	// CaseWarn marks a test that was unable to run, e.g. because
	// an initial condition was wrong.
	CaseWarn
	// CaseNotApplicable (N/A) marks a test not applicable in the
	// current configuration.
	CaseNotApplicable
	// CaseBegin tags beginning-of-segment status messages.
	CaseBegin
	// CaseEnd tags end-of-segment status messages.
	CaseEnd
	// CaseInfo tags informational status messages.
	CaseInfo
	// CasePass is a passed test case.
	CasePass
	// CaseFlow tags messages that record test flow but are not
	// assertions.
	CaseFlow
	// CaseDebug tags debugging messages.
	CaseDebug

	// numCaseTypes bounds the dense per-classification counter
	// array. No events use it.
	numCaseTypes
)

// IsValid reports whether c is a usable classification, i.e. one
// that may be counted.
func (c CaseType) IsValid() bool {
	return c > CaseNone && c < numCaseTypes
}

// Abbrev returns the short tag used for labelling output lines.
// The result is at most 5 characters and never empty, so it can be
// embedded directly into formatted messages.
func (c CaseType) Abbrev() string {
	switch c {
	case CaseAbort:
		return "ABORT"
	case CaseFailure:
		return "FAIL"
	case CaseSetupFailure:
		return "TSF"
	case CaseTeardownFailure:
		return "TTF"
	case CaseManualInspection:
		return "MIR"
	case CaseWarn:
		return "WARN"
	case CaseNotApplicable:
		return "N/A"
	case CaseBegin:
		return "BEGIN"
	case CaseEnd:
		return "END"
	case CaseInfo:
		return "INFO"
	case CasePass:
		return "PASS"
	case CaseFlow:
		return "FLOW"
	case CaseDebug:
		return "DEBUG"
	default:
		return "OTHER"
	}
}
