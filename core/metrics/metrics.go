package metrics

import "time"

// AssignmentRecord represents one assigned date to be recorded.
type AssignmentRecord struct {
	RunID    string
	Strategy string
	Date     string
	MemberID string
	Score    float64
	Time     time.Time
}

// AssignmentSink records schedule results for observability purposes.
type AssignmentSink interface {
	RecordAssignments(recs []AssignmentRecord) error
}

// SkipRecorder optionally records dates that could not be assigned.
type SkipRecorder interface {
	RecordSkippedDates(runID string, dates []string) error
}

// NopSink discards all records.
type NopSink struct{}

// RecordAssignments implements AssignmentSink.
func (NopSink) RecordAssignments([]AssignmentRecord) error { return nil }
