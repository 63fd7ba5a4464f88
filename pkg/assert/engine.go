package assert

import "fmt"

// Bounded buffer sizes carried over from the original flight
// framework. Overlong text is silently truncated; truncation is not
// an error.
const (
	messageMax = 255
	reportMax  = 319
)

// Output is the board-support collaborator that receives every line
// of text the engine produces. Implementations append one line per
// call to the active sink (console, log file, or hardware
// indicator) tagged with its classification. The engine never calls
// Output while holding the counter lock.
type Output interface {
	// WriteText appends one line of text tagged with a
	// classification.
	WriteText(class CaseType, text string)

	// StartSegment is invoked once per segment begin, outside the
	// counter lock.
	StartSegment(ordinal uint32, name string)
}

// Recorder receives case and segment events for optional metrics
// collection. Implementations must not block.
type Recorder interface {
	// RecordCase records one resolved case classification.
	RecordCase(segment string, class CaseType, passed bool)

	// RecordSegment records a completed non-empty segment.
	RecordSegment(name string, counters Counters)
}

// Engine is the central assertion recorder. It composes a counter
// Store with an Output collaborator; all pass/fail accounting flows
// through it. None of its methods fail: invalid classifications,
// unknown comparison kinds, and message truncation all degrade
// silently, because an assertion helper must never itself crash the
// test process.
type Engine struct {
	store    *Store
	out      Output
	recorder Recorder
}

// Option configures an Engine.
type Option func(*Engine)

// WithRecorder attaches a metrics recorder to the engine.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// New creates an Engine recording into store and reporting through
// out.
func New(store *Store, out Output, opts ...Option) *Engine {
	e := &Engine{store: store, out: out}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Store returns the counter store backing this engine, for direct
// counter queries and default-context control.
func (e *Engine) Store() *Store {
	return e.store
}

// BeginTest starts a test segment: the segment aggregate is cleared
// and the output collaborator is notified of the new segment
// ordinal and name.
func (e *Engine) BeginTest(name string) {
	ordinal := e.store.BeginSegment(name)
	e.out.StartSegment(ordinal, name)
}

// EndTest completes a test segment. A segment with at least one
// recorded case folds into the cumulative totals and its summary is
// reported; an empty segment reports "No test cases" and does not
// advance the cumulative segment counter. The returned snapshot is
// valid only for a non-empty segment; hosts collect the snapshots to
// build a run summary.
func (e *Engine) EndTest() (SegmentSnapshot, bool) {
	snap, valid := e.store.EndSegment()
	if !valid {
		e.out.WriteText(CaseEnd, "No test cases")
		return SegmentSnapshot{}, false
	}

	e.writeSegmentReport(snap)
	if e.recorder != nil {
		e.recorder.RecordSegment(snap.Name, snap.Counters)
	}
	return snap, true
}

// writeSegmentReport emits the fixed two-line segment summary.
func (e *Engine) writeSegmentReport(snap SegmentSnapshot) {
	c := &snap.Counters

	e.out.WriteText(CaseInfo, fmt.Sprintf(
		"%-22s ABORT::%-4d  WARN::%-4d  FLOW::%-4d  DEBUG::%-4d  N/A::%-4d",
		"",
		c.CaseCount[CaseAbort],
		c.CaseCount[CaseWarn],
		c.CaseCount[CaseFlow],
		c.CaseCount[CaseDebug],
		c.CaseCount[CaseNotApplicable],
	))

	e.out.WriteText(CaseEnd, fmt.Sprintf(
		"%02d %-20s TOTAL::%-4d  PASS::%-4d  FAIL::%-4d  MIR::%-4d  TSF::%-4d  TTF::%-4d",
		c.SegmentCount,
		snap.Name,
		c.TotalCases,
		c.CaseCount[CasePass],
		c.CaseCount[CaseFailure],
		c.CaseCount[CaseManualInspection],
		c.CaseCount[CaseSetupFailure],
		c.CaseCount[CaseTeardownFailure],
	))
}

// AssertEx records one test case with an explicit classification
// and call site. The classification is resolved to CasePass when
// the expression is true; the report line carries the zero-padded
// segment ordinal and in-segment sequence, the basename of the
// source file, the line number, and the formatted message. Returns
// the expression unchanged so the call can be used inline.
func (e *Engine) AssertEx(
	expr bool,
	class CaseType,
	loc Location,
	format string,
	args ...any,
) bool {
	msg := truncate(fmt.Sprintf(format, args...), messageMax)

	resolved, segment, seq := e.store.RecordCase(class, expr)

	line := truncate(fmt.Sprintf(
		"%02d.%03d %s:%d - %s",
		segment, seq, loc.Basename(), loc.Line, msg,
	), reportMax)

	e.out.WriteText(resolved, line)

	if e.recorder != nil {
		e.recorder.RecordCase(e.store.SegmentName(), resolved, expr)
	}

	return expr
}

// Assert records one test case using the raw description as the
// entire message and the ambient default context as the
// classification.
func (e *Engine) Assert(
	expr bool,
	description string,
	loc Location,
) bool {
	return e.AssertEx(
		expr, e.store.Context(), loc, "%s", description,
	)
}

// Message writes a free-form diagnostic line tagged with the given
// classification. It never touches the counters: the text goes
// straight to the output collaborator with a "basename:line:"
// prefix when a location is supplied.
func (e *Engine) Message(
	class CaseType,
	loc Location,
	format string,
	args ...any,
) {
	var prefix string
	if loc.File != "" {
		prefix = fmt.Sprintf("%s:%d:", loc.Basename(), loc.Line)
	}
	text := truncate(
		prefix+fmt.Sprintf(format, args...), messageMax,
	)
	e.out.WriteText(class, text)
}

// Printf logs an informational message at the caller's location.
func (e *Engine) Printf(format string, args ...any) {
	e.Message(CaseInfo, Here(1), format, args...)
}

// Debugf logs a debugging message at the caller's location.
func (e *Engine) Debugf(format string, args ...any) {
	e.Message(CaseDebug, Here(1), format, args...)
}

// Abort reports an unrecoverable setup problem. It only emits a
// report line with the abort classification; terminating the
// process is left to the caller.
func (e *Engine) Abort(message string) {
	e.out.WriteText(CaseAbort, message)
}

// truncate bounds s to max bytes.
func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
