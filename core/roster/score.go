package roster

import (
	"time"

	"github.com/maelisc/stableroster/core/calendar"
	"github.com/maelisc/stableroster/core/model"
)

// DefaultPreferenceBonus is applied when a duty falls inside one of a
// member's preferred slots. Negative, because lower scores win.
const DefaultPreferenceBonus = -2.0

// score computes the fairness score of a member for one date. Lower
// wins. Pure: historical points carried in from prior periods, plus
// points accumulated this run, plus the preference bonus when the duty
// start falls in a preferred slot.
func score(m model.Member, st *memberState, date time.Time, startTime string, bonus float64) float64 {
	s := m.HistoricalPoints + st.sessionPoints
	if prefersAt(m, date, startTime) {
		s += bonus
	}
	return s
}

func prefersAt(m model.Member, date time.Time, startTime string) bool {
	wd := calendar.ISOWeekday(date)
	for _, rule := range m.Availability.Preferred {
		if rule.Weekday != wd {
			continue
		}
		for _, slot := range rule.Slots {
			if ok, err := calendar.SlotContains(slot.Start, slot.End, startTime); err == nil && ok {
				return true
			}
		}
	}
	return false
}
