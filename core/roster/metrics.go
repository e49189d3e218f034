package roster

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	datesAssigned *prometheus.CounterVec
	datesSkipped  *prometheus.CounterVec
	schedulesRun  *prometheus.CounterVec
)

// newCollectors creates new metric collectors.
func newCollectors() (*prometheus.CounterVec, *prometheus.CounterVec, *prometheus.CounterVec) {
	assigned := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roster_dates_assigned_total",
			Help: "Number of dates assigned to a member",
		},
		[]string{"strategy"},
	)
	skipped := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roster_dates_skipped_total",
			Help: "Number of dates left without an eligible member",
		},
		[]string{"strategy"},
	)
	runs := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roster_schedules_total",
			Help: "Number of scheduling runs",
		},
		[]string{"strategy"},
	)
	return assigned, skipped, runs
}

func init() {
	datesAssigned, datesSkipped, schedulesRun = newCollectors()
	MustRegisterMetrics(nil)
}

// MustRegisterMetrics registers roster metrics on the provided registry.
// If reg is nil, prometheus.DefaultRegisterer is used.
func MustRegisterMetrics(reg prometheus.Registerer) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(datesAssigned, datesSkipped, schedulesRun)
}

// ResetMetrics reinitializes metric collectors for testing purposes and
// registers them on the provided registry if not nil.
func ResetMetrics(reg prometheus.Registerer) {
	datesAssigned, datesSkipped, schedulesRun = newCollectors()
	if reg != nil {
		MustRegisterMetrics(reg)
	}
}
