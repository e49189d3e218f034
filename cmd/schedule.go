package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/maelisc/stableroster/app"
	"github.com/maelisc/stableroster/config"
	"github.com/maelisc/stableroster/infra/logger"
)

var rosterPath string

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run one scheduling pass over a roster file",
	RunE:  runSchedule,
}

func init() {
	scheduleCmd.Flags().StringVarP(&rosterPath, "roster", "r", "roster.json", "roster request file")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	go func() {
		if err := svc.ServeMetrics(ctx); err != nil {
			logger.New("main").Errorf("prom server: %v", err)
		}
	}()

	result, report, err := svc.ScheduleFile(ctx, rosterPath)
	if err != nil {
		return err
	}

	out := struct {
		RunID       string             `json:"run_id"`
		Strategy    string             `json:"strategy"`
		Assignments map[string]string  `json:"assignments"`
		Skipped     []string           `json:"skipped,omitempty"`
		Balance     map[string]int     `json:"balance"`
		Score       float64            `json:"balance_score"`
		Scores      map[string]float64 `json:"scores,omitempty"`
	}{
		RunID:       result.RunID,
		Strategy:    result.Strategy,
		Assignments: result.Assignments,
		Skipped:     result.Skipped,
		Balance:     report.Counts,
		Score:       report.Score,
		Scores:      result.Scores,
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
