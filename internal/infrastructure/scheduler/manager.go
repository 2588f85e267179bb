// Package scheduler provides unified scheduler management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"opsportal/internal/application/compliance/dto"
	"opsportal/internal/shared/biztime"
	"opsportal/internal/shared/logger"
)

// DeadlineRun processes overdue tasks and issues blue pages.
type DeadlineRun interface {
	Execute(ctx context.Context) (*dto.ProcessDeadlinesResult, error)
}

// ResponsivenessRun checks for unanswered admin comments and sends warnings.
type ResponsivenessRun interface {
	Execute(ctx context.Context) (*dto.CheckResponsivenessResult, error)
}

// SchedulerManager manages all scheduled compliance jobs through a single
// gocron instance.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a new SchedulerManager instance.
// It initializes gocron with the business timezone for cron expressions.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterComplianceJobs registers the two compliance scans:
// - Deadline scan: issues blue pages for overdue unflagged tasks
// - Responsiveness scan: warns agents with unanswered admin comments
// Intervals come from configuration. Both jobs guard against overlapping
// runs twice: singleton mode within this process and a redis run lock
// across processes.
func (m *SchedulerManager) RegisterComplianceJobs(
	deadlineRun DeadlineRun,
	responsivenessRun ResponsivenessRun,
	deadlineInterval time.Duration,
	responsivenessInterval time.Duration,
) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(deadlineInterval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			m.runDeadlineScan(ctx, deadlineRun)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("compliance", "blue-page"),
		gocron.WithName("compliance-deadline-scan"),
	)
	if err != nil {
		return err
	}

	_, err = m.scheduler.NewJob(
		gocron.DurationJob(responsivenessInterval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			m.runResponsivenessScan(ctx, responsivenessRun)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("compliance", "responsiveness"),
		gocron.WithName("compliance-responsiveness-scan"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered compliance jobs",
		"deadline_interval", deadlineInterval,
		"responsiveness_interval", responsivenessInterval,
	)
	return nil
}

func (m *SchedulerManager) runDeadlineScan(ctx context.Context, run DeadlineRun) {
	m.logger.Debugw("deadline scan started")

	startTime := biztime.NowUTC()

	result, err := run.Execute(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("deadline scan failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if result.Skipped {
		m.logger.Debugw("deadline scan skipped, another run holds the lock")
		return
	}

	if len(result.Processed) > 0 {
		m.logger.Infow("deadline scan completed",
			"processed", len(result.Processed),
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("deadline scan completed, no overdue tasks",
			"duration", time.Since(startTime),
		)
	}
}

func (m *SchedulerManager) runResponsivenessScan(ctx context.Context, run ResponsivenessRun) {
	m.logger.Debugw("responsiveness scan started")

	startTime := biztime.NowUTC()

	result, err := run.Execute(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("responsiveness scan failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if result.Skipped {
		m.logger.Debugw("responsiveness scan skipped, another run holds the lock")
		return
	}

	if len(result.Flagged) > 0 {
		m.logger.Infow("responsiveness scan completed",
			"flagged", len(result.Flagged),
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("responsiveness scan completed, nothing to flag",
			"duration", time.Since(startTime),
		)
	}
}

// Start starts the scheduler and all registered jobs.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop gracefully stops the scheduler.
// It waits for all running jobs to complete before returning.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

// IsStarted returns whether the scheduler is running.
func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

// Jobs returns all registered jobs for inspection.
func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
