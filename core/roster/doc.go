// Package roster implements the fairness-based assignment engine that
// allocates recurring duties to a pool of members over a sequence of
// calendar dates.
//
// Two strategies coexist. The greedy fairness scorer walks dates in
// chronological order and gives each one to the eligible member with
// the lowest combined historical and session score, honouring hard
// availability rules and per-week/per-month caps. The ranked
// round-robin path defers fairness to an external turn-order provider
// and distributes dates cyclically without re-checking availability or
// caps.
//
// All per-run state is local to one invocation, so concurrent runs
// need no coordination.
package roster
