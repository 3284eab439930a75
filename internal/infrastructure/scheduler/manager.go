// Package scheduler runs background jobs on gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/logger"
)

// BatchJob processes one batch per Execute call and returns how many items
// it handled.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// BatchJobFunc adapts a function to BatchJob.
type BatchJobFunc func(ctx context.Context) (int, error)

func (f BatchJobFunc) Execute(ctx context.Context) (int, error) { return f(ctx) }

// SchedulerManager owns the single gocron scheduler of the process.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a scheduler in the business timezone.
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

// RegisterReminderJob runs the expiry reminder job every interval, starting
// immediately. Runs never overlap.
func (m *SchedulerManager) RegisterReminderJob(job BatchJob, interval time.Duration) error {
	timeout := interval
	if timeout > 10*time.Minute {
		timeout = 10 * time.Minute
	}

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			m.processReminders(ctx, job)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("reminder", "email"),
		gocron.WithName("expiry-reminders"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered reminder job", "interval", interval.String())
	return nil
}

func (m *SchedulerManager) processReminders(ctx context.Context, job BatchJob) {
	m.logger.Debugw("processing expiry reminders started")
	startTime := time.Now()

	sent, err := job.Execute(ctx)
	if err != nil {
		// Don't log error if context was cancelled (graceful shutdown)
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("failed to process expiry reminders",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if sent > 0 {
		m.logger.Infow("expiry reminders sent",
			"count", sent,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("no expiry reminders to send", "duration", time.Since(startTime))
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

// Stop waits for running jobs to complete before returning.
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
