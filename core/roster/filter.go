package roster

import (
	"time"

	"github.com/maelisc/stableroster/core/calendar"
	"github.com/maelisc/stableroster/core/model"
)

// availableOn reports whether the member may take a duty on date
// starting at the HH:MM clock time. Members without hard rules are
// always available; rules with malformed slots never match (roster
// validation catches those before a run).
func availableOn(m model.Member, date time.Time, startTime string) bool {
	if m.Unrestricted() {
		return true
	}
	wd := calendar.ISOWeekday(date)
	for _, rule := range m.Availability.Never {
		if rule.Weekday != wd {
			continue
		}
		for _, slot := range rule.Slots {
			if ok, err := calendar.SlotContains(slot.Start, slot.End, startTime); err == nil && ok {
				return false
			}
		}
	}
	return true
}

// atLimit reports whether the member has exhausted a weekly or monthly
// cap. A nil cap means unlimited for that period; either cap being
// reached disqualifies the member.
func atLimit(m model.Member, st *memberState) bool {
	if w := m.Limits.MaxShiftsPerWeek; w != nil && st.shiftsThisWeek >= *w {
		return true
	}
	if mo := m.Limits.MaxShiftsPerMonth; mo != nil && st.shiftsThisMonth >= *mo {
		return true
	}
	return false
}
