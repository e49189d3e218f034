package roster

import (
	"testing"
	"time"

	"github.com/maelisc/stableroster/core/model"
)

func intp(v int) *int { return &v }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAvailableOn(t *testing.T) {
	monday := day(2025, time.January, 6)
	tuesday := day(2025, time.January, 7)

	m := model.Member{ID: "b", Availability: model.Availability{
		Never: []model.WeekdayRule{{Weekday: 1, Slots: []model.TimeSlot{{Start: "06:00", End: "09:00"}}}},
	}}

	if availableOn(m, monday, "07:00") {
		t.Fatalf("member should be unavailable Monday 07:00")
	}
	if !availableOn(m, monday, "10:00") {
		t.Fatalf("restriction should not apply outside its slot")
	}
	if !availableOn(m, tuesday, "07:00") {
		t.Fatalf("restriction should not apply on other weekdays")
	}

	free := model.Member{ID: "a"}
	if !availableOn(free, monday, "07:00") {
		t.Fatalf("unrestricted member should always be available")
	}
}

func TestAtLimit(t *testing.T) {
	unlimited := model.Member{ID: "a"}
	if atLimit(unlimited, &memberState{shiftsThisWeek: 99, shiftsThisMonth: 99}) {
		t.Fatalf("nil caps mean unlimited")
	}

	weekly := model.Member{ID: "b", Limits: model.Limits{MaxShiftsPerWeek: intp(2)}}
	if atLimit(weekly, &memberState{shiftsThisWeek: 1}) {
		t.Fatalf("below weekly cap should not be limited")
	}
	if !atLimit(weekly, &memberState{shiftsThisWeek: 2}) {
		t.Fatalf("reaching the weekly cap should disqualify")
	}

	monthly := model.Member{ID: "c", Limits: model.Limits{MaxShiftsPerMonth: intp(3)}}
	if !atLimit(monthly, &memberState{shiftsThisMonth: 3}) {
		t.Fatalf("reaching the monthly cap should disqualify")
	}

	both := model.Member{ID: "d", Limits: model.Limits{MaxShiftsPerWeek: intp(5), MaxShiftsPerMonth: intp(3)}}
	if !atLimit(both, &memberState{shiftsThisWeek: 0, shiftsThisMonth: 3}) {
		t.Fatalf("either cap being reached should disqualify")
	}
}
