package watch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"git.home.luguber.info/inful/seogen/internal/logfields"
)

// Options configures a watch session.
type Options struct {
	Files    []string      // files whose changes trigger regeneration
	Schedule string        // crontab expression; empty disables scheduled runs
	Debounce time.Duration // quiet period after a file change
}

// Regenerate performs one generation pass. Trigger names why it ran.
type Regenerate func(ctx context.Context, trigger string) error

// Runner serializes regenerations requested by file changes and the scheduler.
type Runner struct {
	opts  Options
	regen Regenerate
	mu    sync.Mutex
}

// NewRunner returns a runner for opts.
func NewRunner(opts Options, regen Regenerate) *Runner {
	return &Runner{opts: opts, regen: regen}
}

// Run starts watching, regenerates once, then keeps regenerating on file
// changes and on the schedule until ctx is canceled. The watcher is live
// before the startup pass, so edits made during that pass trigger another.
// Failed regenerations are logged and the session continues; only setup
// failures are returned.
func (r *Runner) Run(ctx context.Context) error {
	fw, err := NewFileWatcher(r.opts.Files, r.opts.Debounce, func() { r.trigger(ctx, "file_change") })
	if err != nil {
		return err
	}
	fw.Start(ctx)
	defer func() { _ = fw.Close() }()

	if r.opts.Schedule != "" {
		sched, err := NewScheduler()
		if err != nil {
			return err
		}
		if _, err := sched.ScheduleCron("seogen-regenerate", r.opts.Schedule, func() { r.trigger(ctx, "schedule") }); err != nil {
			_ = sched.Stop()
			return err
		}
		sched.Start()
		defer func() { _ = sched.Stop() }()
	}

	slog.Info("Watching for changes", slog.Int("files", len(r.opts.Files)), slog.String("schedule", r.opts.Schedule))
	r.trigger(ctx, "startup")
	<-ctx.Done()
	slog.Info("Watch stopped")
	return nil
}

func (r *Runner) trigger(ctx context.Context, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ctx.Err() != nil {
		return
	}
	slog.Info("Regenerating", slog.String("trigger", reason))
	if err := r.regen(ctx, reason); err != nil {
		slog.Error("Regeneration failed", slog.String("trigger", reason), logfields.Error(err))
	}
}
