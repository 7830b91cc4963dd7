package scheduler

import (
	"context"
	"log/slog"
	"time"

	"recurring_finance/internal/domain/entities"

	"github.com/robfig/cron/v3"
)

// DueRunner executes every due item across spaces.
type DueRunner interface {
	ExecuteAllDue(ctx context.Context) (entities.ExecutionReport, error)
}

// Scheduler runs the daily due scan.
type Scheduler struct {
	cron     *cron.Cron
	runner   DueRunner
	logger   *slog.Logger
	schedule string
	timeout  time.Duration
}

// NewScheduler wires the cron runtime. Jobs recover from panics and a scan
// still running when the next tick fires is skipped rather than overlapped.
func NewScheduler(runner DueRunner, logger *slog.Logger, schedule string, timeout time.Duration, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	logger = logger.With("component", "due_scan_scheduler")
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	return &Scheduler{
		cron:     c,
		runner:   runner,
		logger:   logger,
		schedule: schedule,
		timeout:  timeout,
	}
}

// Start registers the due scan and starts the cron scheduler.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.RunDueScan); err != nil {
		s.logger.Error("failed to schedule due scan job", "error", err)
		return err
	}
	s.logger.Info("scheduled due scan job", "schedule", s.schedule)
	s.cron.Start()
	return nil
}

// Stop gracefully stops the cron scheduler. The returned context is done
// once a running scan has finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// RunDueScan is the job body, bounded by the configured timeout.
func (s *Scheduler) RunDueScan() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	report, err := s.runner.ExecuteAllDue(ctx)
	if err != nil {
		s.logger.Error("due scan failed", "error", err, "duration", time.Since(start))
		return
	}
	for _, f := range report.Failed {
		s.logger.Warn("due item not executed", "owner_space_id", f.OwnerSpaceID, "item_id", f.ItemID, "reason", f.Reason)
	}
	s.logger.Info("due scan completed",
		"reference_date", report.ReferenceDate.String(),
		"executed", len(report.Executed),
		"failed", len(report.Failed),
		"duration", time.Since(start),
	)
}
