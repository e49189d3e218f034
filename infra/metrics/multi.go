package metrics

import coremetrics "github.com/maelisc/stableroster/core/metrics"

// MultiSink fans schedule records out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.AssignmentSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.AssignmentSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordAssignments forwards the records to all sinks, returning the
// first error encountered.
func (m *MultiSink) RecordAssignments(recs []coremetrics.AssignmentRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordAssignments(recs); err != nil {
			return err
		}
	}
	return nil
}

// RecordSkippedDates forwards skipped dates to sinks that record them.
func (m *MultiSink) RecordSkippedDates(runID string, dates []string) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.SkipRecorder); ok {
			if err := rec.RecordSkippedDates(runID, dates); err != nil {
				return err
			}
		}
	}
	return nil
}
