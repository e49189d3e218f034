package model

import (
	"fmt"

	"github.com/maelisc/stableroster/core/calendar"
)

// Member represents a candidate eligible for duty assignment.
// The roster is read-only input: the engine never mutates members,
// all per-run bookkeeping lives in session tracking state.
type Member struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`

	// HistoricalPoints is the fairness score carried over from prior
	// scheduling periods. Lower means the member is owed more duty.
	// It is set externally before each run.
	HistoricalPoints float64 `json:"historical_points"`

	Availability Availability `json:"availability"`
	Limits       Limits       `json:"limits"`
}

// Availability holds per-weekday time-slot rules for a member.
type Availability struct {
	// Never lists slots during which the member can never be assigned.
	Never []WeekdayRule `json:"never,omitempty"`
	// Preferred lists slots the member favours. Preference is only a
	// scoring bonus, never a hard constraint.
	Preferred []WeekdayRule `json:"preferred,omitempty"`
}

// WeekdayRule binds one ISO weekday (Monday=1 .. Sunday=7) to a set of
// time slots.
type WeekdayRule struct {
	Weekday int        `json:"weekday"`
	Slots   []TimeSlot `json:"slots"`
}

// TimeSlot is a clock-time range in HH:MM notation. The start is
// inclusive and the end exclusive.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Limits caps how often a member can be assigned per period.
// A nil field means unlimited for that period.
type Limits struct {
	MaxShiftsPerWeek  *int `json:"max_shifts_per_week,omitempty"`
	MaxShiftsPerMonth *int `json:"max_shifts_per_month,omitempty"`
}

// Validate checks that the member configuration is sound.
func (m Member) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("member id must not be empty")
	}
	for _, r := range append(append([]WeekdayRule{}, m.Availability.Never...), m.Availability.Preferred...) {
		if r.Weekday < 1 || r.Weekday > 7 {
			return fmt.Errorf("member %s: weekday %d out of range", m.ID, r.Weekday)
		}
		// A slot that does not parse would otherwise never match and
		// silently drop the rule it belongs to.
		for _, s := range r.Slots {
			if _, err := calendar.MinuteOfDay(s.Start); err != nil {
				return fmt.Errorf("member %s: %w", m.ID, err)
			}
			if _, err := calendar.MinuteOfDay(s.End); err != nil {
				return fmt.Errorf("member %s: %w", m.ID, err)
			}
		}
	}
	if m.Limits.MaxShiftsPerWeek != nil && *m.Limits.MaxShiftsPerWeek < 0 {
		return fmt.Errorf("member %s: negative weekly limit", m.ID)
	}
	if m.Limits.MaxShiftsPerMonth != nil && *m.Limits.MaxShiftsPerMonth < 0 {
		return fmt.Errorf("member %s: negative monthly limit", m.ID)
	}
	return nil
}

// Unrestricted returns true when the member has no hard availability
// rules. This is the common case and lets filters short-circuit.
func (m Member) Unrestricted() bool {
	return len(m.Availability.Never) == 0
}
