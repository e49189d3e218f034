package roster

import (
	"time"

	"github.com/maelisc/stableroster/core/model"
)

// memberState is the per-run bookkeeping for one member. A fresh map
// is built for every invocation so concurrent runs never share state.
type memberState struct {
	// sessionPoints only ever grows within a run.
	sessionPoints   float64
	shiftsThisWeek  int
	shiftsThisMonth int
	// lastAssigned is kept for diagnostics; scoring does not read it.
	lastAssigned time.Time
}

func newTracking(members []model.Member) map[string]*memberState {
	st := make(map[string]*memberState, len(members))
	for _, m := range members {
		st[m.ID] = &memberState{}
	}
	return st
}

// resetWeek clears the weekly counter for every tracked member. Boundary
// resets apply uniformly, not just to the member last assigned.
func resetWeek(st map[string]*memberState) {
	for _, s := range st {
		s.shiftsThisWeek = 0
	}
}

func resetMonth(st map[string]*memberState) {
	for _, s := range st {
		s.shiftsThisMonth = 0
	}
}
