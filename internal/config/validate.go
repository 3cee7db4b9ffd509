package config

import (
	"net/url"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	foundationerrors "git.home.luguber.info/inful/seogen/internal/foundation/errors"
	"git.home.luguber.info/inful/seogen/internal/retry"
)

// Validate reports the first configuration defect found in cfg.
func Validate(cfg *Config) error {
	checks := []func(*Config) error{
		validateSite,
		validateOutput,
		validateGeneration,
		validateNotify,
		validateWatch,
	}
	for _, check := range checks {
		if err := check(cfg); err != nil {
			return err
		}
	}
	return nil
}

func validateSite(cfg *Config) error {
	u, err := url.Parse(cfg.Site.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fieldError("site.base_url", cfg.Site.BaseURL, "must be an absolute http(s) URL", err)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fieldError("site.base_url", cfg.Site.BaseURL, "must not carry a query or fragment", nil)
	}
	if cfg.Site.Product == "" {
		return fieldError("site.product", "", "must not be empty", nil)
	}
	return nil
}

func validateOutput(cfg *Config) error {
	if cfg.Output.Directory == "" {
		return fieldError("output.directory", "", "must not be empty", nil)
	}
	name := cfg.Output.SitemapFile
	if name != filepath.Base(name) || !filepath.IsLocal(name) {
		return fieldError("output.sitemap_file", name, "must be a plain file name", nil)
	}
	return nil
}

func validateGeneration(cfg *Config) error {
	if cfg.Generation.Concurrency < 1 {
		return fieldError("generation.concurrency", cfg.Generation.Concurrency, "must be at least 1", nil)
	}
	if cfg.Generation.RunDate != "" {
		if _, err := time.Parse(RunDateLayout, cfg.Generation.RunDate); err != nil {
			return fieldError("generation.run_date", cfg.Generation.RunDate, "must be YYYY-MM-DD", err)
		}
	}
	return nil
}

func validateNotify(cfg *Config) error {
	n := cfg.Notify
	if _, err := retry.ParseBackoff(n.RetryBackoff); err != nil {
		return fieldError("notify.retry_backoff", n.RetryBackoff, "must be fixed, linear or exponential", err)
	}
	if n.MaxRetries != nil && *n.MaxRetries < 0 {
		return fieldError("notify.max_retries", *n.MaxRetries, "must not be negative", nil)
	}
	for _, f := range []struct{ field, raw string }{
		{"notify.retry_initial_delay", n.RetryInitialDelay},
		{"notify.retry_max_delay", n.RetryMaxDelay},
	} {
		if f.raw == "" {
			continue
		}
		if d, err := time.ParseDuration(f.raw); err != nil || d <= 0 {
			return fieldError(f.field, f.raw, "must be a positive duration", err)
		}
	}
	return nil
}

func validateWatch(cfg *Config) error {
	d, err := time.ParseDuration(cfg.Watch.Debounce)
	if err != nil || d < 0 {
		return fieldError("watch.debounce", cfg.Watch.Debounce, "must be a non-negative duration", err)
	}
	// gocron parses crontab expressions with the same standard parser.
	if _, err := cron.ParseStandard(cfg.Watch.Schedule); err != nil {
		return fieldError("watch.schedule", cfg.Watch.Schedule, "must be a 5-field cron expression", err)
	}
	return nil
}

func fieldError(field string, value any, msg string, cause error) error {
	b := foundationerrors.ConfigError("invalid "+field+": "+msg).
		WithContext("field", field).
		WithContext("value", value)
	if cause != nil {
		b = b.WithCause(cause)
	}
	return b.Build()
}
