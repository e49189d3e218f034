package roster

import (
	"context"
	"testing"
	"time"

	"github.com/maelisc/stableroster/core/events"
	coremetrics "github.com/maelisc/stableroster/core/metrics"
	"github.com/maelisc/stableroster/core/model"
	"github.com/maelisc/stableroster/internal/eventbus"
)

type captureSink struct {
	recs    []coremetrics.AssignmentRecord
	skipped []string
}

func (c *captureSink) RecordAssignments(recs []coremetrics.AssignmentRecord) error {
	c.recs = append(c.recs, recs...)
	return nil
}

func (c *captureSink) RecordSkippedDates(_ string, dates []string) error {
	c.skipped = append(c.skipped, dates...)
	return nil
}

func newTestManager(t *testing.T, sink coremetrics.AssignmentSink, bus eventbus.EventBus) *Manager {
	t.Helper()
	orc, err := NewOrchestrator(nil, nopLogger{})
	if err != nil {
		t.Fatalf("orchestrator: %v", err)
	}
	m, err := NewManager(orc, sink, bus, nopLogger{})
	if err != nil {
		t.Fatalf("manager: %v", err)
	}
	return m
}

func TestManagerSchedule(t *testing.T) {
	sink := &captureSink{}
	bus := eventbus.New()
	sub := bus.Subscribe()
	mgr := newTestManager(t, sink, bus)

	monday := day(2025, time.January, 6)
	res, err := mgr.Schedule(context.Background(), ScheduleRequest{
		Dates:       []time.Time{monday},
		Members:     []model.Member{{ID: "a", HistoricalPoints: 3}},
		StartTime:   "07:00",
		PointsValue: 10,
	})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if res.RunID == "" {
		t.Fatalf("expected a run id")
	}
	if res.Strategy != "greedy" {
		t.Fatalf("expected greedy strategy got %s", res.Strategy)
	}
	if res.Assignments["2025-01-06"] != "a" {
		t.Fatalf("unexpected assignments: %v", res.Assignments)
	}
	if len(res.Skipped) != 0 {
		t.Fatalf("nothing should be skipped: %v", res.Skipped)
	}
	if len(sink.recs) != 1 || sink.recs[0].MemberID != "a" || sink.recs[0].RunID != res.RunID {
		t.Fatalf("sink not fed: %+v", sink.recs)
	}

	ev := <-sub
	se, ok := ev.(events.ScheduleEvent)
	if !ok {
		t.Fatalf("expected ScheduleEvent first, got %T", ev)
	}
	if se.RunID != res.RunID || se.Dates != 1 || se.Members != 1 {
		t.Fatalf("unexpected schedule event: %+v", se)
	}
	ev = <-sub
	if ae, ok := ev.(events.AssignmentEvent); !ok || ae.MemberID != "a" {
		t.Fatalf("expected AssignmentEvent for a, got %#v", ev)
	}
}

func TestManagerReportsSkippedDates(t *testing.T) {
	sink := &captureSink{}
	mgr := newTestManager(t, sink, nil)

	monday := day(2025, time.January, 6)
	tuesday := day(2025, time.January, 7)
	res, err := mgr.Schedule(context.Background(), ScheduleRequest{
		Dates: []time.Time{monday, tuesday},
		Members: []model.Member{{ID: "a", Availability: model.Availability{
			Never: []model.WeekdayRule{{Weekday: 1, Slots: []model.TimeSlot{{Start: "00:00", End: "23:59"}}}},
		}}},
		StartTime:   "07:00",
		PointsValue: 10,
	})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if len(res.Skipped) != 1 || res.Skipped[0] != "2025-01-06" {
		t.Fatalf("expected Monday skipped, got %v", res.Skipped)
	}
	if len(sink.skipped) != 1 || sink.skipped[0] != "2025-01-06" {
		t.Fatalf("skip recorder not fed: %v", sink.skipped)
	}
}

func TestManagerRejectsInvalidRoster(t *testing.T) {
	mgr := newTestManager(t, nil, nil)
	_, err := mgr.Schedule(context.Background(), ScheduleRequest{
		Dates:       []time.Time{day(2025, time.January, 6)},
		Members:     []model.Member{{ID: ""}},
		StartTime:   "07:00",
		PointsValue: 10,
	})
	if err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestManagerRejectsInvalidStartTime(t *testing.T) {
	mgr := newTestManager(t, nil, nil)
	_, err := mgr.Schedule(context.Background(), ScheduleRequest{
		Dates:       []time.Time{day(2025, time.January, 6)},
		Members:     []model.Member{{ID: "a"}},
		StartTime:   "25:00",
		PointsValue: 10,
	})
	if err == nil {
		t.Fatalf("expected start time error")
	}
}
