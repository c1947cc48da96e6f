package cmd

import (
	"fmt"
	"log/slog"

	"github.com/ziadkadry99/docsite/internal/config"
	"github.com/ziadkadry99/docsite/internal/fetch"
	"github.com/ziadkadry99/docsite/internal/logger"
	"github.com/ziadkadry99/docsite/internal/metrics"
	"github.com/ziadkadry99/docsite/internal/reference"
	"github.com/ziadkadry99/docsite/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `docsite init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger installs the default logger. --verbose forces debug level, even
// over LOG_LEVEL.
func newLogger(cfg *config.Config) *slog.Logger {
	return logger.SetDefault("docsite", Version, logger.ResolveLevel(cfg.LogLevel, verbose))
}

func newSite(cfg *config.Config) (*site.Site, error) {
	s, err := site.New(site.Options{
		Name:           cfg.SiteName,
		ContentDir:     cfg.ContentDir,
		NavigationFile: cfg.NavigationFile,
		Include:        cfg.Include,
		Exclude:        cfg.Exclude,
	})
	if err != nil {
		return nil, fmt.Errorf("loading site: %w", err)
	}
	return s, nil
}

// newReferences returns nil when no reference sources are configured. m may
// be nil for commands that do not export metrics.
func newReferences(cfg *config.Config, log *slog.Logger, m *metrics.Metrics) *reference.Service {
	if len(cfg.References) == 0 {
		return nil
	}
	opts := []reference.Option{
		reference.WithLogger(log),
		reference.WithWindow(cfg.RevalidateWindow()),
	}
	if m != nil {
		opts = append(opts, reference.WithObserver(m.ObserveReference))
	}
	return reference.NewService(cfg.References, fetch.NewClient(fetch.WithUserAgent("docsite/"+Version)), opts...)
}
