package models

import "time"

// Verdict is the outcome recorded for a requirement.
type Verdict string

const (
	VerdictPassed  Verdict = "passed"
	VerdictFailed  Verdict = "failed"
	VerdictSkipped Verdict = "skipped"
)

// Requirement identifies a protocol requirement checked by the suite, e.g.
// MS-ASCMD R1234.
type Requirement struct {
	Protocol    string
	ID          string
	Description string
}

// Capture is one recorded verdict of a run.
type Capture struct {
	RunID         string
	RunLabel      string
	Protocol      string
	RequirementID string
	Description   string
	Verdict       Verdict
	Detail        string
	CapturedAt    time.Time
}

// CaptureSummary counts the verdicts of a run.
type CaptureSummary struct {
	RunID   string
	Passed  int
	Failed  int
	Skipped int
}

// Total returns the number of captures.
func (s CaptureSummary) Total() int {
	return s.Passed + s.Failed + s.Skipped
}

// Add counts one verdict.
func (s *CaptureSummary) Add(v Verdict, n int) {
	switch v {
	case VerdictPassed:
		s.Passed += n
	case VerdictFailed:
		s.Failed += n
	case VerdictSkipped:
		s.Skipped += n
	}
}
