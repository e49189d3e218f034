package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/maelisc/stableroster/core/metrics"
)

// PromSink records schedule outcomes in Prometheus metrics.
type PromSink struct {
	assignments *prometheus.CounterVec
	skipped     prometheus.Counter
}

// NewPromSink registers roster metrics on the default Prometheus
// registerer. The Prometheus server should be started separately using
// cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (coremetrics.AssignmentSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(_ coremetrics.Config, reg prometheus.Registerer) (coremetrics.AssignmentSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	assignments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roster_member_assignments_total",
		Help: "Total number of duty assignments per member and strategy",
	}, []string{"member_id", "strategy"})
	skipped := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "roster_unassigned_dates_total",
		Help: "Total number of dates that needed manual assignment",
	})

	if err := reg.Register(assignments); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			assignments = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(skipped); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			skipped = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	return &PromSink{assignments: assignments, skipped: skipped}, nil
}

// RecordAssignments increments the counter for each assigned date.
func (s *PromSink) RecordAssignments(recs []coremetrics.AssignmentRecord) error {
	for _, r := range recs {
		s.assignments.WithLabelValues(r.MemberID, r.Strategy).Inc()
	}
	return nil
}

// RecordSkippedDates counts dates left unassigned.
func (s *PromSink) RecordSkippedDates(_ string, dates []string) error {
	s.skipped.Add(float64(len(dates)))
	return nil
}
