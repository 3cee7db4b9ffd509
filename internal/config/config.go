// Package config loads and validates the seogen configuration file.
package config

import (
	"time"

	foundationerrors "git.home.luguber.info/inful/seogen/internal/foundation/errors"
	"git.home.luguber.info/inful/seogen/internal/retry"
)

// CurrentVersion is the only configuration format version understood by Load.
const CurrentVersion = "1.0"

// DefaultPath is the configuration file consulted when no path is given.
const DefaultPath = "seogen.yaml"

// RunDateLayout is the layout of generation.run_date.
const RunDateLayout = "2006-01-02"

// Config is the root configuration passed explicitly to every component.
type Config struct {
	Version    string           `yaml:"version"`
	Site       SiteConfig       `yaml:"site"`
	Output     OutputConfig     `yaml:"output"`
	Generation GenerationConfig `yaml:"generation"`
	Dimensions DimensionsConfig `yaml:"dimensions,omitempty"`
	Logging    LoggingConfig    `yaml:"logging"`
	Metrics    MetricsConfig    `yaml:"metrics,omitempty"`
	Ledger     LedgerConfig     `yaml:"ledger,omitempty"`
	Notify     NotifyConfig     `yaml:"notify,omitempty"`
	Watch      WatchConfig      `yaml:"watch,omitempty"`
}

// SiteConfig describes the public site the pages are published under.
type SiteConfig struct {
	BaseURL string `yaml:"base_url"` // absolute http(s) origin, no trailing slash required
	Product string `yaml:"product"`  // product name interpolated into page copy
}

// OutputConfig controls where generated files are written.
type OutputConfig struct {
	Directory   string `yaml:"directory"`
	SitemapFile string `yaml:"sitemap_file"`
}

// GenerationConfig tunes a generation run.
type GenerationConfig struct {
	Concurrency int    `yaml:"concurrency"`        // max parallel page writes; 1 writes sequentially
	RunDate     string `yaml:"run_date,omitempty"` // pins lastmod and the copy year (YYYY-MM-DD)
}

// DimensionsConfig points at an optional dimension table override.
type DimensionsConfig struct {
	File string `yaml:"file,omitempty"` // empty uses the built-in tables
}

// LoggingConfig configures the slog handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MetricsConfig enables Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// LedgerConfig enables the SQLite run ledger used for stale page reports.
type LedgerConfig struct {
	Path string `yaml:"path,omitempty"`
}

// NotifyConfig enables completion notifications over NATS.
type NotifyConfig struct {
	NATSURL           string `yaml:"nats_url,omitempty"`
	Subject           string `yaml:"subject,omitempty"`
	MaxRetries        *int   `yaml:"max_retries,omitempty"`         // publish retries after the first failure
	RetryBackoff      string `yaml:"retry_backoff,omitempty"`       // fixed|linear|exponential
	RetryInitialDelay string `yaml:"retry_initial_delay,omitempty"` // e.g. "1s"
	RetryMaxDelay     string `yaml:"retry_max_delay,omitempty"`     // cap for backoff growth
}

// WatchConfig configures `seogen watch`.
type WatchConfig struct {
	Schedule string `yaml:"schedule,omitempty"` // cron expression for periodic regeneration
	Debounce string `yaml:"debounce,omitempty"` // quiet period after a file change
}

// ResolveRunDate returns the pinned run date, or the UTC calendar date of now.
func (g GenerationConfig) ResolveRunDate(now time.Time) (time.Time, error) {
	if g.RunDate == "" {
		y, m, d := now.UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(RunDateLayout, g.RunDate)
	if err != nil {
		return time.Time{}, foundationerrors.ConfigError("invalid generation.run_date").
			WithCause(err).
			WithContext("value", g.RunDate).
			Build()
	}
	return t, nil
}

// RetryPolicy builds the publish retry policy; callers run after Validate.
func (n NotifyConfig) RetryPolicy() retry.Policy {
	mode, _ := retry.ParseBackoff(n.RetryBackoff)
	initial, _ := time.ParseDuration(n.RetryInitialDelay)
	maxDelay, _ := time.ParseDuration(n.RetryMaxDelay)
	maxRetries := -1
	if n.MaxRetries != nil {
		maxRetries = *n.MaxRetries
	}
	return retry.NewPolicy(mode, initial, maxDelay, maxRetries)
}

// DebounceDuration parses watch.debounce; callers run after Validate so errors are impossible.
func (w WatchConfig) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(w.Debounce)
	if err != nil {
		return DefaultWatchDebounce
	}
	return d
}
