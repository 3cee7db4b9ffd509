package config

import (
	"fmt"
	"strings"
)

// normalize trims free-form values and folds enumerations. Unknown enum
// spellings are returned as errors so validate can report them as config defects.
func normalize(cfg *Config) error {
	cfg.Version = strings.TrimSpace(cfg.Version)
	cfg.Site.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Site.BaseURL), "/")
	cfg.Site.Product = strings.TrimSpace(cfg.Site.Product)
	cfg.Output.Directory = strings.TrimSpace(cfg.Output.Directory)
	cfg.Output.SitemapFile = strings.TrimSpace(cfg.Output.SitemapFile)
	cfg.Generation.RunDate = strings.TrimSpace(cfg.Generation.RunDate)
	cfg.Dimensions.File = strings.TrimSpace(cfg.Dimensions.File)
	cfg.Notify.NATSURL = strings.TrimSpace(cfg.Notify.NATSURL)

	level, err := logLevels.Parse(string(cfg.Logging.Level))
	if err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	cfg.Logging.Level = level

	format, err := logFormats.Parse(string(cfg.Logging.Format))
	if err != nil {
		return fmt.Errorf("logging.format: %w", err)
	}
	cfg.Logging.Format = format
	return nil
}
