package roster

import (
	"gonum.org/v1/gonum/stat"

	"github.com/maelisc/stableroster/core/model"
)

// BalanceReport summarises how evenly duties landed across the roster.
type BalanceReport struct {
	// Counts is the number of assigned dates per member, including
	// members who received none.
	Counts map[string]int
	Mean   float64
	StdDev float64
	// Score is a 0-100 percentage: 100 means a perfectly even spread.
	Score float64
}

// Balance computes a distribution report for one run. An empty roster
// or a run with no assignments scores 100: nothing was distributed
// unevenly.
func Balance(members []model.Member, assignments Assignments) BalanceReport {
	counts := make(map[string]int, len(members))
	for _, m := range members {
		counts[m.ID] = 0
	}
	for _, id := range assignments {
		counts[id]++
	}
	rep := BalanceReport{Counts: counts, Score: 100}
	if len(members) == 0 {
		return rep
	}

	loads := make([]float64, 0, len(members))
	for _, m := range members {
		loads = append(loads, float64(counts[m.ID]))
	}
	rep.Mean = stat.Mean(loads, nil)
	if rep.Mean == 0 {
		return rep
	}
	rep.StdDev = stat.PopStdDev(loads, nil)

	score := (1 - rep.StdDev/rep.Mean) * 100
	if score < 0 {
		score = 0
	}
	rep.Score = score
	return rep
}
