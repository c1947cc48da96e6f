package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "DOCSITE_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DOCSITE_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: DOCSITE_SITE_NAME -> site_name, etc.
	// List-valued keys accept comma-separated values.
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		switch key {
		case "include", "exclude":
			return key, splitAndTrim(value)
		}
		return key, value
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// Lists that are set replace the defaults instead of being merged into
	// them element by element.
	if k.Exists("include") {
		cfg.Include = nil
	}
	if k.Exists("exclude") {
		cfg.Exclude = nil
	}
	if k.Exists("references") {
		cfg.References = nil
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// A reference source without a name is titled by its slug.
	for i := range cfg.References {
		if strings.TrimSpace(cfg.References[i].Name) == "" {
			cfg.References[i].Name = cfg.References[i].Slug
		}
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// validLogLevels is the set of recognized log_level values.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SiteName) == "" {
		return fmt.Errorf("site_name is required")
	}
	if c.ContentDir == "" {
		return fmt.Errorf("content_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.SearchOutput == "" {
		return fmt.Errorf("search_output is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.RevalidateMinutes <= 0 {
		return fmt.Errorf("revalidate_minutes must be positive")
	}
	if c.LogLevel != "" && !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}

	seen := make(map[string]bool)
	for i, ref := range c.References {
		if !slugPattern.MatchString(ref.Slug) {
			return fmt.Errorf("references[%d]: invalid slug %q", i, ref.Slug)
		}
		if seen[ref.Slug] {
			return fmt.Errorf("references[%d]: duplicate slug %q", i, ref.Slug)
		}
		seen[ref.Slug] = true
		if ref.URL == "" {
			return fmt.Errorf("references[%d]: url is required", i)
		}
	}

	return nil
}

// RevalidateWindow returns the reference cache revalidation window.
func (c *Config) RevalidateWindow() time.Duration {
	return time.Duration(c.RevalidateMinutes) * time.Minute
}

// Reference returns the reference source with the given slug.
func (c *Config) Reference(slug string) (ReferenceSource, bool) {
	for _, ref := range c.References {
		if ref.Slug == slug {
			return ref, true
		}
	}
	return ReferenceSource{}, false
}
