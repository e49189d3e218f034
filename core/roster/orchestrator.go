package roster

import (
	"context"
	"fmt"

	"github.com/maelisc/stableroster/core/logger"
)

// Orchestrator resolves a schedule request into one of the two
// strategies and runs it.
type Orchestrator struct {
	provider TurnOrderProvider
	log      logger.Logger
}

// NewOrchestrator creates an orchestrator. The provider may be nil
// when only the legacy path is used.
func NewOrchestrator(provider TurnOrderProvider, log logger.Logger) (*Orchestrator, error) {
	if log == nil {
		return nil, fmt.Errorf("roster: nil logger provided to NewOrchestrator")
	}
	return &Orchestrator{provider: provider, log: log}, nil
}

// Resolve picks the strategy for the request. Ranked round-robin is
// chosen only when the algorithm, stable and organization identifiers
// are all configured; everything else runs the greedy scorer.
func (o *Orchestrator) Resolve(req ScheduleRequest) (Strategy, error) {
	legacy, ranked, useRanked := req.Config.Mode()
	if useRanked {
		if o.provider == nil {
			return nil, fmt.Errorf("roster: ranked path configured but no turn order provider")
		}
		o.log.Debugf("using ranked round-robin (algorithm=%s)", ranked.Algorithm)
		return &RankedStrategy{Provider: o.provider, Config: ranked}, nil
	}
	o.log.Debugf("using greedy fairness scoring (bonus=%.1f)", legacy.PreferenceBonus)
	g := NewGreedyScheduler(req.StartTime, req.PointsValue)
	g.PreferenceBonus = legacy.PreferenceBonus
	return g, nil
}

// Assign resolves the strategy and produces the date assignments.
// Provider errors from the ranked path propagate to the caller.
func (o *Orchestrator) Assign(ctx context.Context, req ScheduleRequest) (Assignments, error) {
	strat, err := o.Resolve(req)
	if err != nil {
		return nil, err
	}
	return strat.Assign(ctx, req.Dates, req.Members)
}
