package roster

import (
	"fmt"

	"github.com/maelisc/stableroster/core/calendar"
)

// Config defines scheduling settings loaded from configuration. The
// ranked path activates only when Algorithm, StableID and
// OrganizationID are all present; any partial combination falls back
// to legacy greedy scoring rather than erroring.
type Config struct {
	StartTime       string   `json:"start_time"`
	PointsValue     *float64 `json:"points_value"`
	PreferenceBonus *float64 `json:"preference_bonus"`

	Algorithm      string `json:"algorithm"`
	StableID       string `json:"stable_id"`
	OrganizationID string `json:"organization_id"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
}

// Window is an explicit selection date range for the ranking provider,
// as YYYY-MM-DD strings. Empty fields are derived from the first and
// last requested dates.
type Window struct {
	StartDate string
	EndDate   string
}

// LegacyScoring selects the greedy fairness path.
type LegacyScoring struct {
	PreferenceBonus float64
}

// RankedRoundRobin selects the provider-backed round-robin path.
type RankedRoundRobin struct {
	Algorithm      string
	StableID       string
	OrganizationID string
	Window         Window
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.StartTime == "" {
		c.StartTime = "07:00"
	}
	// nil means unset; an explicit zero must survive.
	if c.PointsValue == nil {
		v := 10.0
		c.PointsValue = &v
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if _, err := calendar.MinuteOfDay(c.StartTime); err != nil {
		return fmt.Errorf("start_time: %w", err)
	}
	if c.StartDate != "" {
		if _, err := calendar.ParseDate(c.StartDate); err != nil {
			return err
		}
	}
	if c.EndDate != "" {
		if _, err := calendar.ParseDate(c.EndDate); err != nil {
			return err
		}
	}
	return nil
}

// Mode resolves the configuration into one of the two fairness models.
// The conjunctive check is deliberate: every identifier must be set for
// the ranked path.
func (c Config) Mode() (LegacyScoring, RankedRoundRobin, bool) {
	if c.Algorithm != "" && c.StableID != "" && c.OrganizationID != "" {
		return LegacyScoring{}, RankedRoundRobin{
			Algorithm:      c.Algorithm,
			StableID:       c.StableID,
			OrganizationID: c.OrganizationID,
			Window:         Window{StartDate: c.StartDate, EndDate: c.EndDate},
		}, true
	}
	bonus := DefaultPreferenceBonus
	if c.PreferenceBonus != nil {
		bonus = *c.PreferenceBonus
	}
	return LegacyScoring{PreferenceBonus: bonus}, RankedRoundRobin{}, false
}
