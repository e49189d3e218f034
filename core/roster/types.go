package roster

import (
	"context"
	"time"

	"github.com/maelisc/stableroster/core/model"
)

// Assignments maps a YYYY-MM-DD date to the ID of the member on duty.
// Dates with no eligible member are absent, never present with an
// empty value.
type Assignments map[string]string

// Strategy produces assignments for a chronological list of dates.
type Strategy interface {
	Name() string
	Assign(ctx context.Context, dates []time.Time, members []model.Member) (Assignments, error)
}

// ScoringStrategy optionally exposes the winning score per assigned
// date after a run.
type ScoringStrategy interface {
	Scores() map[string]float64
}

// Turn is one entry of an externally computed priority ranking.
// Turns may come back without a member attached; those are dropped
// before distribution.
type Turn struct {
	MemberID string `json:"member_id,omitempty"`
}

// TurnOrderRequest is the payload sent to the external ranking
// service. Dates travel as YYYY-MM-DD strings.
type TurnOrderRequest struct {
	StableID           string   `json:"stable_id"`
	OrganizationID     string   `json:"organization_id"`
	Algorithm          string   `json:"algorithm"`
	MemberIDs          []string `json:"member_ids"`
	SelectionStartDate string   `json:"selection_start_date"`
	SelectionEndDate   string   `json:"selection_end_date"`
}

// TurnOrderProvider computes a deterministic member ranking for the
// ranked round-robin path. ComputeTurnOrder performs I/O and must
// honour the context. Errors propagate to the caller unchanged; the
// engine never falls back to greedy scoring on provider failure.
type TurnOrderProvider interface {
	ComputeTurnOrder(ctx context.Context, req TurnOrderRequest) ([]Turn, error)
}

// ScheduleRequest carries everything one scheduling run needs.
type ScheduleRequest struct {
	// Dates must be in chronological order; boundary detection and
	// greedy selection depend on it.
	Dates   []time.Time
	Members []model.Member
	// StartTime is the HH:MM clock time duties begin at.
	StartTime string
	// PointsValue is the fairness cost of one assigned duty.
	PointsValue float64
	Config      Config
}

// ScheduleResult is the outcome of one run.
type ScheduleResult struct {
	RunID       string
	Strategy    string
	Assignments Assignments
	// Skipped lists the requested dates no member was eligible for,
	// in request order. Consumers treat these as needing manual
	// assignment.
	Skipped []string
	// Scores holds the winning fairness score per assigned date when
	// the strategy exposes them.
	Scores map[string]float64
}
