package config

import "time"

const (
	DefaultBaseURL       = "https://bggone.demo.densematrix.ai"
	DefaultProduct       = "BgGone"
	DefaultOutputDir     = "public"
	DefaultSitemapFile   = "sitemap-programmatic.xml"
	DefaultConcurrency   = 4
	DefaultNotifySubject = "seogen.generation.completed"
	DefaultWatchSchedule = "0 3 * * *"
	DefaultWatchDebounce = 2 * time.Second
)

// Default returns a fully defaulted configuration.
func Default() *Config {
	cfg := &Config{Version: CurrentVersion}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}
	if cfg.Site.BaseURL == "" {
		cfg.Site.BaseURL = DefaultBaseURL
	}
	if cfg.Site.Product == "" {
		cfg.Site.Product = DefaultProduct
	}
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = DefaultOutputDir
	}
	if cfg.Output.SitemapFile == "" {
		cfg.Output.SitemapFile = DefaultSitemapFile
	}
	if cfg.Generation.Concurrency == 0 {
		cfg.Generation.Concurrency = DefaultConcurrency
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = LogFormatText
	}
	if cfg.Notify.Subject == "" {
		cfg.Notify.Subject = DefaultNotifySubject
	}
	if cfg.Watch.Schedule == "" {
		cfg.Watch.Schedule = DefaultWatchSchedule
	}
	if cfg.Watch.Debounce == "" {
		cfg.Watch.Debounce = DefaultWatchDebounce.String()
	}
}
