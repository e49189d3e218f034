package roster

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/maelisc/stableroster/core/calendar"
	"github.com/maelisc/stableroster/core/events"
	"github.com/maelisc/stableroster/core/logger"
	coremetrics "github.com/maelisc/stableroster/core/metrics"
	"github.com/maelisc/stableroster/internal/eventbus"
)

// Manager runs scheduling requests end to end: roster validation,
// strategy resolution, event publication and metrics recording.
type Manager struct {
	orchestrator *Orchestrator
	sink         coremetrics.AssignmentSink
	bus          eventbus.EventBus
	log          logger.Logger
}

// NewManager creates a manager. The sink and bus are optional.
func NewManager(orc *Orchestrator, sink coremetrics.AssignmentSink, bus eventbus.EventBus, log logger.Logger) (*Manager, error) {
	if orc == nil || log == nil {
		return nil, fmt.Errorf("roster: nil parameter provided to NewManager")
	}
	if sink == nil {
		sink = coremetrics.NopSink{}
	}
	return &Manager{orchestrator: orc, sink: sink, bus: bus, log: log}, nil
}

// Close releases resources held by the manager.
func (m *Manager) Close() error {
	if m.bus != nil {
		m.bus.Close()
	}
	return nil
}

// Schedule validates the request, runs the resolved strategy and
// records the outcome. A result with fewer entries than requested
// dates is a normal outcome; only invalid rosters and provider
// failures produce errors.
func (m *Manager) Schedule(ctx context.Context, req ScheduleRequest) (ScheduleResult, error) {
	for _, mem := range req.Members {
		if err := mem.Validate(); err != nil {
			return ScheduleResult{}, fmt.Errorf("invalid roster: %w", err)
		}
	}
	if _, err := calendar.MinuteOfDay(req.StartTime); err != nil {
		return ScheduleResult{}, fmt.Errorf("invalid start time: %w", err)
	}

	strat, err := m.orchestrator.Resolve(req)
	if err != nil {
		return ScheduleResult{}, err
	}

	runID := uuid.NewString()
	if m.bus != nil {
		m.bus.Publish(events.ScheduleEvent{
			RunID:    runID,
			Strategy: strat.Name(),
			Dates:    len(req.Dates),
			Members:  len(req.Members),
		})
	}
	m.log.Infof("scheduling %d dates for %d members via %s", len(req.Dates), len(req.Members), strat.Name())

	assignments, err := strat.Assign(ctx, req.Dates, req.Members)
	if err != nil {
		return ScheduleResult{}, err
	}
	schedulesRun.WithLabelValues(strat.Name()).Inc()

	result := ScheduleResult{
		RunID:       runID,
		Strategy:    strat.Name(),
		Assignments: assignments,
		Scores:      make(map[string]float64),
	}
	if ss, ok := strat.(ScoringStrategy); ok {
		for d, s := range ss.Scores() {
			result.Scores[d] = s
		}
	}
	for _, date := range req.Dates {
		key := calendar.FormatDate(date)
		if _, ok := assignments[key]; !ok {
			result.Skipped = append(result.Skipped, key)
		}
	}

	m.publishOutcome(result)
	m.recordMetrics(result)
	if len(result.Skipped) > 0 {
		m.log.Warnf("%d of %d dates left unassigned", len(result.Skipped), len(req.Dates))
	}
	return result, nil
}

// publishOutcome emits per-date events on the bus.
func (m *Manager) publishOutcome(res ScheduleResult) {
	if m.bus == nil {
		return
	}
	for date, id := range res.Assignments {
		m.bus.Publish(events.AssignmentEvent{
			RunID:    res.RunID,
			Date:     date,
			MemberID: id,
			Score:    res.Scores[date],
		})
	}
	for _, date := range res.Skipped {
		m.bus.Publish(events.SkipEvent{RunID: res.RunID, Date: date})
	}
}

// recordMetrics persists the run in the configured sink and updates
// the package counters.
func (m *Manager) recordMetrics(res ScheduleResult) {
	datesAssigned.WithLabelValues(res.Strategy).Add(float64(len(res.Assignments)))
	datesSkipped.WithLabelValues(res.Strategy).Add(float64(len(res.Skipped)))

	recs := make([]coremetrics.AssignmentRecord, 0, len(res.Assignments))
	now := time.Now()
	for date, id := range res.Assignments {
		recs = append(recs, coremetrics.AssignmentRecord{
			RunID:    res.RunID,
			Strategy: res.Strategy,
			Date:     date,
			MemberID: id,
			Score:    res.Scores[date],
			Time:     now,
		})
	}
	if err := m.sink.RecordAssignments(recs); err != nil {
		m.log.Errorf("metrics error: %v", err)
	}
	if sr, ok := m.sink.(coremetrics.SkipRecorder); ok && len(res.Skipped) > 0 {
		if err := sr.RecordSkippedDates(res.RunID, res.Skipped); err != nil {
			m.log.Errorf("skip metrics error: %v", err)
		}
	}
}
