package assert

import "sync"

// segmentNameMax bounds the stored segment name. Longer names are
// silently truncated.
const segmentNameMax = 63

// Counters summarizes recorded cases: the segment sequence number,
// the total case count, and one occurrence count per classification.
type Counters struct {
	// SegmentCount is the segment ordinal. On the cumulative
	// aggregate it is the number of completed non-empty segments.
	SegmentCount uint32

	// TotalCases is the number of recorded cases. It always
	// equals the sum of CaseCount.
	TotalCases uint32

	// CaseCount holds per-classification occurrence counts,
	// densely indexed by CaseType.
	CaseCount [numCaseTypes]uint32
}

// SegmentSnapshot is the finalized state of one completed segment,
// taken under the lock for reporting outside it.
type SegmentSnapshot struct {
	Name     string
	Counters Counters
}

// Store holds the process-wide hierarchical test counters: a
// segment aggregate reset at each segment boundary and a cumulative
// aggregate spanning the process lifetime. The mutual-exclusion
// primitive is injected so the host environment controls how the
// critical section is guarded; one Store instance is shared per
// process by convention at the integration boundary.
//
// Store methods never perform I/O. Every method computes counter
// updates and snapshots reporting data while holding the lock, then
// returns, so callers report only after the lock is released.
type Store struct {
	locker sync.Locker

	segment     Counters
	total       Counters
	segmentName string

	// context is the advisory default classification. It is
	// intentionally not lock-protected: read/write races are
	// tolerated because it is best-effort labelling only, never a
	// correctness-critical counter.
	context CaseType
}

// NewStore creates a Store guarded by the given locker. A nil
// locker falls back to an internal mutex.
func NewStore(locker sync.Locker) *Store {
	if locker == nil {
		locker = &sync.Mutex{}
	}
	return &Store{
		locker:  locker,
		context: CaseFailure,
	}
}

// BeginSegment clears the segment aggregate, stores the bounded
// segment name, and returns the ordinal the segment will carry
// (cumulative segment count + 1). The caller notifies the output
// collaborator with the returned ordinal after this returns, so the
// notification happens outside the lock.
func (s *Store) BeginSegment(name string) uint32 {
	if len(name) > segmentNameMax {
		name = name[:segmentNameMax]
	}

	s.locker.Lock()
	s.segment = Counters{}
	s.segmentName = name
	ordinal := 1 + s.total.SegmentCount
	s.locker.Unlock()

	return ordinal
}

// RecordCase counts one recorded case. A true expression forces the
// classification to CasePass regardless of what the caller
// supplied; invalid classifications still count toward the segment
// total but increment no per-classification slot. The returned
// ordinal pair (segment ordinal, in-segment sequence) is computed
// while holding the lock so concurrent callers receive monotonic,
// collision-free sequence numbers.
func (s *Store) RecordCase(
	class CaseType,
	passed bool,
) (resolved CaseType, segment, seq uint32) {
	if passed {
		class = CasePass
	}

	s.locker.Lock()
	s.segment.TotalCases++
	if class.IsValid() {
		s.segment.CaseCount[class]++
	}
	segment = 1 + s.total.SegmentCount
	seq = s.segment.TotalCases
	s.locker.Unlock()

	return class, segment, seq
}

// EndSegment finalizes the current segment. If at least one case
// was recorded the cumulative segment counter advances, the segment
// counts fold into the cumulative aggregate, and a snapshot of the
// segment is returned for reporting; an empty segment returns
// valid=false and does not advance the cumulative segment counter.
// The segment aggregate is always cleared before the lock is
// released.
func (s *Store) EndSegment() (snap SegmentSnapshot, valid bool) {
	s.locker.Lock()

	valid = s.segment.TotalCases > 0
	if valid {
		s.total.SegmentCount++
		s.segment.SegmentCount = s.total.SegmentCount
		s.total.TotalCases += s.segment.TotalCases
		for ct := range s.total.CaseCount {
			s.total.CaseCount[ct] += s.segment.CaseCount[ct]
		}
		snap = SegmentSnapshot{
			Name:     s.segmentName,
			Counters: s.segment,
		}
	}

	s.segment = Counters{}
	s.locker.Unlock()

	return snap, valid
}

// SegmentName returns the name set by the most recent BeginSegment.
// The value is only meaningful until the next segment transition.
func (s *Store) SegmentName() string {
	s.locker.Lock()
	name := s.segmentName
	s.locker.Unlock()
	return name
}

// Totals returns a snapshot of the cumulative counters.
func (s *Store) Totals() Counters {
	s.locker.Lock()
	totals := s.total
	s.locker.Unlock()
	return totals
}

// PassCount returns the cumulative number of passed cases.
func (s *Store) PassCount() uint32 {
	return s.Totals().CaseCount[CasePass]
}

// FailCount returns the cumulative number of failed cases.
func (s *Store) FailCount() uint32 {
	return s.Totals().CaseCount[CaseFailure]
}

// SetContext sets the default classification inherited by asserts
// that do not specify one. The test driver typically sets
// CaseSetupFailure during setup and CaseTeardownFailure during
// teardown. The slot is advisory and unsynchronized.
func (s *Store) SetContext(class CaseType) {
	s.context = class
}

// Context returns the classification last set via SetContext.
func (s *Store) Context() CaseType {
	return s.context
}
