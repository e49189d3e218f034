package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/maelisc/stableroster/config"
	"github.com/maelisc/stableroster/core/calendar"
	coremetrics "github.com/maelisc/stableroster/core/metrics"
	"github.com/maelisc/stableroster/core/model"
	"github.com/maelisc/stableroster/core/roster"
	"github.com/maelisc/stableroster/infra/logger"
	"github.com/maelisc/stableroster/infra/metrics"
	"github.com/maelisc/stableroster/internal/eventbus"
)

// Service wires the scheduling manager together from configuration.
type Service struct {
	Manager *roster.Manager
	cfg     *config.Config
	bus     eventbus.EventBus
	log     logger.Logger
}

// New creates a Service. The turn order provider is optional; without
// one only the greedy path is available.
func New(cfg *config.Config, provider roster.TurnOrderProvider) (*Service, error) {
	log := logger.New("service")

	var sinks []coremetrics.AssignmentSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.AssignmentSink
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	bus := eventbus.New()
	orc, err := roster.NewOrchestrator(provider, log)
	if err != nil {
		return nil, err
	}
	manager, err := roster.NewManager(orc, sink, bus, log)
	if err != nil {
		return nil, fmt.Errorf("roster manager: %w", err)
	}
	return &Service{Manager: manager, cfg: cfg, bus: bus, log: log}, nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	return s.Manager.Close()
}

// ServeMetrics exposes the Prometheus endpoint until the context is
// canceled. It returns immediately when Prometheus is disabled.
func (s *Service) ServeMetrics(ctx context.Context) error {
	if !s.cfg.Metrics.PrometheusEnabled || s.cfg.Metrics.PrometheusPort == "" {
		return nil
	}
	return metrics.StartPromServer(ctx, ":"+s.cfg.Metrics.PrometheusPort)
}

// RosterFile is the on-disk scheduling request. Dates may be listed
// explicitly or given as an inclusive start/end range.
type RosterFile struct {
	Members   []model.Member `json:"members"`
	Dates     []string       `json:"dates,omitempty"`
	StartDate string         `json:"start_date,omitempty"`
	EndDate   string         `json:"end_date,omitempty"`
}

// ScheduleFile runs one scheduling pass over the request stored at
// path and reports the outcome together with a distribution balance
// report.
func (s *Service) ScheduleFile(ctx context.Context, path string) (roster.ScheduleResult, roster.BalanceReport, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return roster.ScheduleResult{}, roster.BalanceReport{}, fmt.Errorf("read roster: %w", err)
	}
	var rf RosterFile
	if err := json.Unmarshal(raw, &rf); err != nil {
		return roster.ScheduleResult{}, roster.BalanceReport{}, fmt.Errorf("decode roster: %w", err)
	}

	dates, err := resolveDates(rf)
	if err != nil {
		return roster.ScheduleResult{}, roster.BalanceReport{}, err
	}

	points := 10.0
	if s.cfg.Scheduling.PointsValue != nil {
		points = *s.cfg.Scheduling.PointsValue
	}
	res, err := s.Manager.Schedule(ctx, roster.ScheduleRequest{
		Dates:       dates,
		Members:     rf.Members,
		StartTime:   s.cfg.Scheduling.StartTime,
		PointsValue: points,
		Config:      s.cfg.Scheduling,
	})
	if err != nil {
		return roster.ScheduleResult{}, roster.BalanceReport{}, err
	}
	return res, roster.Balance(rf.Members, res.Assignments), nil
}

// resolveDates turns the request into a chronological date list.
func resolveDates(rf RosterFile) ([]time.Time, error) {
	if len(rf.Dates) > 0 {
		dates := make([]time.Time, 0, len(rf.Dates))
		for _, d := range rf.Dates {
			t, err := calendar.ParseDate(d)
			if err != nil {
				return nil, err
			}
			dates = append(dates, t)
		}
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
		return dates, nil
	}
	if rf.StartDate == "" || rf.EndDate == "" {
		return nil, fmt.Errorf("roster file needs either dates or a start/end range")
	}
	start, err := calendar.ParseDate(rf.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := calendar.ParseDate(rf.EndDate)
	if err != nil {
		return nil, err
	}
	return calendar.DatesBetween(start, end), nil
}
