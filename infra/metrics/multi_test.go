package metrics

import (
	"errors"
	"testing"

	coremetrics "github.com/maelisc/stableroster/core/metrics"
)

type countSink struct {
	recs int
	err  error
}

func (c *countSink) RecordAssignments(recs []coremetrics.AssignmentRecord) error {
	c.recs += len(recs)
	return c.err
}

func TestMultiSinkFansOut(t *testing.T) {
	a, b := &countSink{}, &countSink{}
	m := NewMultiSink(a, b)
	err := m.RecordAssignments([]coremetrics.AssignmentRecord{
		{Date: "2025-01-06", MemberID: "x"},
		{Date: "2025-01-07", MemberID: "y"},
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if a.recs != 2 || b.recs != 2 {
		t.Fatalf("expected both sinks fed, got %d and %d", a.recs, b.recs)
	}
}

func TestMultiSinkReturnsFirstError(t *testing.T) {
	boom := errors.New("sink down")
	m := NewMultiSink(&countSink{err: boom}, &countSink{})
	err := m.RecordAssignments([]coremetrics.AssignmentRecord{{Date: "2025-01-06"}})
	if !errors.Is(err, boom) {
		t.Fatalf("expected first error propagated, got %v", err)
	}
}

func TestMultiSinkSkipsNonSkipRecorders(t *testing.T) {
	m := NewMultiSink(&countSink{})
	if err := m.RecordSkippedDates("run", []string{"2025-01-06"}); err != nil {
		t.Fatalf("sinks without skip support must be ignored: %v", err)
	}
}
