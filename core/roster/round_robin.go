package roster

import (
	"context"
	"time"

	"github.com/maelisc/stableroster/core/calendar"
	"github.com/maelisc/stableroster/core/model"
)

// RankedStrategy distributes dates cyclically over an externally
// computed turn order. All fairness logic is deferred to the provider:
// the distribution deliberately does not re-check availability rules
// or per-period caps, which is a known asymmetry with the greedy path.
type RankedStrategy struct {
	Provider TurnOrderProvider
	Config   RankedRoundRobin
}

func (r *RankedStrategy) Name() string { return "ranked-round-robin" }

// Assign implements Strategy. Provider failures propagate untouched so
// callers never receive silently degraded fairness semantics.
func (r *RankedStrategy) Assign(ctx context.Context, dates []time.Time, members []model.Member) (Assignments, error) {
	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}
	start, end := r.Config.Window.StartDate, r.Config.Window.EndDate
	if start == "" && len(dates) > 0 {
		start = calendar.FormatDate(dates[0])
	}
	if end == "" && len(dates) > 0 {
		end = calendar.FormatDate(dates[len(dates)-1])
	}

	turns, err := r.Provider.ComputeTurnOrder(ctx, TurnOrderRequest{
		StableID:           r.Config.StableID,
		OrganizationID:     r.Config.OrganizationID,
		Algorithm:          r.Config.Algorithm,
		MemberIDs:          ids,
		SelectionStartDate: start,
		SelectionEndDate:   end,
	})
	if err != nil {
		return nil, err
	}

	order := make([]string, 0, len(turns))
	for _, t := range turns {
		if t.MemberID != "" {
			order = append(order, t.MemberID)
		}
	}
	return Distribute(order, dates), nil
}

// Distribute assigns dates[i] to order[i mod len(order)]. An empty
// order or date list yields an empty map; neither is an error.
func Distribute(order []string, dates []time.Time) Assignments {
	assignments := make(Assignments, len(dates))
	if len(order) == 0 {
		return assignments
	}
	for i, date := range dates {
		assignments[calendar.FormatDate(date)] = order[i%len(order)]
	}
	return assignments
}
