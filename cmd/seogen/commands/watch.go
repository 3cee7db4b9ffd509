package commands

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/seogen/internal/generator"
	"git.home.luguber.info/inful/seogen/internal/logfields"
	"git.home.luguber.info/inful/seogen/internal/metrics"
	"git.home.luguber.info/inful/seogen/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Overrides `embed:""`
	Schedule  string `help:"Crontab expression for periodic regeneration (overrides watch.schedule)"`
}

func (w *WatchCmd) Run(global *Global, root *CLI) error {
	cfg, err := loadConfig(root, w.Overrides)
	if err != nil {
		return err
	}
	if w.Schedule != "" {
		cfg.Watch.Schedule = w.Schedule
	}

	files := []string{root.Config}
	if cfg.Dimensions.File != "" {
		files = append(files, cfg.Dimensions.File)
	}

	runner := watch.NewRunner(watch.Options{
		Files:    files,
		Schedule: cfg.Watch.Schedule,
		Debounce: cfg.Watch.DebounceDuration(),
	}, w.regenerator(root, metrics.NewPrometheusRecorder(nil)))
	return runner.Run(global.Ctx)
}

// regenerator returns the pass run on every trigger. Each pass reloads the
// configuration and tables so edits take effect; the recorder is shared so
// exported counters accumulate over the whole session.
func (w *WatchCmd) regenerator(root *CLI, rec *metrics.PrometheusRecorder) watch.Regenerate {
	return func(ctx context.Context, trigger string) error {
		cfg, err := loadConfig(root, w.Overrides)
		if err != nil {
			return err
		}
		s, err := openSession(cfg, useLedger|useNotify, generator.WithRecorder(rec))
		if err != nil {
			return err
		}
		defer s.Close()
		report, err := s.gen.Run(ctx)
		if err != nil {
			return err
		}
		slog.Info("Regenerated", slog.String("trigger", trigger), logfields.RunID(report.RunID), logfields.Pages(report.Total))
		return nil
	}
}
