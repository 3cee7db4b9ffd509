// Package commands implements the seogen CLI subcommands.
package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/seogen/internal/config"
	"git.home.luguber.info/inful/seogen/internal/dimensions"
	"git.home.luguber.info/inful/seogen/internal/generator"
	"git.home.luguber.info/inful/seogen/internal/ledger"
	"git.home.luguber.info/inful/seogen/internal/logfields"
	"git.home.luguber.info/inful/seogen/internal/metrics"
	"git.home.luguber.info/inful/seogen/internal/notify"
)

// Global carries process-wide state into every command.
type Global struct {
	Ctx    context.Context
	Stdout io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config      string           `short:"c" help:"Configuration file path (built-in defaults when the default file is absent)" default:"seogen.yaml"`
	Verbose     bool             `short:"v" help:"Enable verbose logging"`
	ShowVersion kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate every page and the sitemap (default command)"`
	Validate ValidateCmd `cmd:"" help:"Validate the dimension tables and plan every page without writing"`
	Plan     PlanCmd     `cmd:"" help:"Print the planned URL and output path of every page"`
	Stale    StaleCmd    `cmd:"" help:"List pages from the previous run that are no longer planned"`
	Watch    WatchCmd    `cmd:"" help:"Regenerate on configuration changes and on a schedule"`
	Init     InitCmd     `cmd:"" help:"Write an example configuration file"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	setupLogging(c.Verbose, config.LogLevelInfo, config.LogFormatText)
	return nil
}

func setupLogging(verbose bool, level config.LogLevel, format config.LogFormat) {
	lvl := level.Slog()
	if verbose {
		lvl = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if format == config.LogFormatJSON {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
}

// Overrides are the flags that take precedence over the configuration file.
type Overrides struct {
	Output      string `short:"o" help:"Output root (overrides output.directory)"`
	BaseURL     string `name:"base-url" help:"Public base URL (overrides site.base_url)"`
	RunDate     string `name:"run-date" help:"Pin the run date as YYYY-MM-DD (overrides generation.run_date)"`
	Concurrency int    `help:"Parallel page writes (overrides generation.concurrency)"`
}

// loadConfig loads the configuration file, applies flag overrides and
// reconfigures logging from the result.
func loadConfig(root *CLI, o Overrides) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}
	if o.Output != "" {
		cfg.Output.Directory = o.Output
	}
	if o.BaseURL != "" {
		cfg.Site.BaseURL = o.BaseURL
	}
	if o.RunDate != "" {
		cfg.Generation.RunDate = o.RunDate
	}
	if o.Concurrency != 0 {
		cfg.Generation.Concurrency = o.Concurrency
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	setupLogging(root.Verbose, cfg.Logging.Level, cfg.Logging.Format)
	return cfg, nil
}

func loadRegistry(cfg *config.Config) (*dimensions.Registry, error) {
	if cfg.Dimensions.File == "" {
		return dimensions.Default()
	}
	return dimensions.LoadFile(cfg.Dimensions.File)
}

// session owns the generator and the collaborators it was built with.
type session struct {
	gen     *generator.Generator
	closers []func() error
}

func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			slog.Warn("Failed to close resource", logfields.Error(err))
		}
	}
}

// collaborators selects which optional collaborators a session wires.
type collaborators uint8

const (
	useMetrics collaborators = 1 << iota
	useLedger
	useNotify

	useAll = useMetrics | useLedger | useNotify
)

// openSession loads the dimension tables and builds a generator with the
// collaborators in use that cfg configures. Extra options are applied last.
func openSession(cfg *config.Config, use collaborators, extra ...generator.Option) (*session, error) {
	reg, err := loadRegistry(cfg)
	if err != nil {
		return nil, err
	}
	s := &session{}
	var opts []generator.Option

	if use&useMetrics != 0 && cfg.Metrics.Textfile != "" {
		opts = append(opts, generator.WithRecorder(metrics.NewPrometheusRecorder(nil)))
	}
	if use&useLedger != 0 && cfg.Ledger.Path != "" {
		store, err := ledger.NewSQLiteStore(cfg.Ledger.Path)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, store.Close)
		opts = append(opts, generator.WithLedger(store))
	}
	if use&useNotify != 0 && cfg.Notify.NATSURL != "" {
		pub, err := notify.NewNATSPublisher(cfg.Notify.NATSURL, cfg.Notify.Subject, cfg.Notify.RetryPolicy())
		if err != nil {
			slog.Warn("Completion notifications disabled", logfields.URL(cfg.Notify.NATSURL), logfields.Error(err))
		} else {
			s.closers = append(s.closers, pub.Close)
			opts = append(opts, generator.WithPublisher(pub))
		}
	}

	gen, err := generator.New(cfg, reg, append(opts, extra...)...)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.gen = gen
	return s, nil
}
