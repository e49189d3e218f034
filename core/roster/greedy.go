package roster

import (
	"context"
	"sort"
	"time"

	"github.com/maelisc/stableroster/core/calendar"
	"github.com/maelisc/stableroster/core/model"
)

// GreedyScheduler assigns each date to the eligible member with the
// lowest fairness score. It walks the dates in order, resets weekly and
// monthly counters when the civil calendar crosses a boundary, filters
// candidates by availability and caps, and charges PointsValue to the
// winner. Dates with no eligible candidate are skipped; that is a
// normal outcome, not an error. The scheduler never looks ahead and
// never backtracks.
type GreedyScheduler struct {
	StartTime       string
	PointsValue     float64
	PreferenceBonus float64

	scores map[string]float64
}

// NewGreedyScheduler returns a scheduler with the default preference
// bonus.
func NewGreedyScheduler(startTime string, pointsValue float64) *GreedyScheduler {
	return &GreedyScheduler{
		StartTime:       startTime,
		PointsValue:     pointsValue,
		PreferenceBonus: DefaultPreferenceBonus,
	}
}

func (g *GreedyScheduler) Name() string { return "greedy" }

// Assign implements Strategy. The input roster is never mutated; ties
// are broken deterministically by sorting a copy of the roster by ID.
func (g *GreedyScheduler) Assign(_ context.Context, dates []time.Time, members []model.Member) (Assignments, error) {
	assignments := make(Assignments, len(dates))
	g.scores = make(map[string]float64, len(dates))
	if len(members) == 0 {
		return assignments, nil
	}

	pool := make([]model.Member, len(members))
	copy(pool, members)
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].ID < pool[j].ID })

	tracking := newTracking(pool)
	var prev time.Time

	for _, date := range dates {
		if !prev.IsZero() {
			if !calendar.SameISOWeek(prev, date) {
				resetWeek(tracking)
			}
			if !calendar.SameMonth(prev, date) {
				resetMonth(tracking)
			}
		}
		prev = date

		var best *model.Member
		bestScore := 0.0
		for i := range pool {
			m := pool[i]
			st := tracking[m.ID]
			if atLimit(m, st) || !availableOn(m, date, g.StartTime) {
				continue
			}
			s := score(m, st, date, g.StartTime, g.PreferenceBonus)
			// Strictly-less keeps the first candidate on ties.
			if best == nil || s < bestScore {
				best = &pool[i]
				bestScore = s
			}
		}
		if best == nil {
			continue
		}

		key := calendar.FormatDate(date)
		assignments[key] = best.ID
		g.scores[key] = bestScore

		st := tracking[best.ID]
		st.sessionPoints += g.PointsValue
		st.shiftsThisWeek++
		st.shiftsThisMonth++
		st.lastAssigned = date
	}
	return assignments, nil
}

// Scores implements ScoringStrategy with the winning score per date of
// the last run.
func (g *GreedyScheduler) Scores() map[string]float64 {
	cp := make(map[string]float64, len(g.scores))
	for k, v := range g.scores {
		cp[k] = v
	}
	return cp
}
