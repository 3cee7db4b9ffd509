package watch

import (
	"log/slog"

	"github.com/go-co-op/gocron/v2"

	ferrors "git.home.luguber.info/inful/seogen/internal/foundation/errors"
)

// Scheduler wraps a gocron scheduler for periodic regeneration.
type Scheduler struct {
	scheduler gocron.Scheduler
}

// NewScheduler creates a scheduler; call Start to begin running jobs.
func NewScheduler() (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, ferrors.RuntimeError("failed to create scheduler").WithCause(err).Build()
	}
	return &Scheduler{scheduler: s}, nil
}

// ScheduleCron runs task on a 5-field crontab expression. Overlapping
// executions are skipped rather than queued.
func (s *Scheduler) ScheduleCron(name, expr string, task func()) (string, error) {
	job, err := s.scheduler.NewJob(
		gocron.CronJob(expr, false),
		gocron.NewTask(task),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return "", ferrors.ConfigError("invalid schedule").
			WithCause(err).
			WithContext("job", name).
			WithContext("schedule", expr).
			Build()
	}
	return job.ID().String(), nil
}

// Start begins running scheduled jobs.
func (s *Scheduler) Start() {
	slog.Info("Starting scheduler")
	s.scheduler.Start()
}

// Stop shuts the scheduler down and waits for running jobs.
func (s *Scheduler) Stop() error {
	slog.Info("Stopping scheduler")
	return s.scheduler.Shutdown()
}
