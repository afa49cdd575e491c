// Package config loads the brf configuration from TOML or YAML files and
// BRFUNDS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Source kinds.
const (
	APISource  = "api"
	PageSource = "page"
)

// Config represents the application configuration.
type Config struct {
	Source   SourceConfig  `toml:"source" yaml:"source"`
	Retry    RetryConfig   `toml:"retry" yaml:"retry"`
	Logging  LoggingConfig `toml:"logging" yaml:"logging"`
	Location string        `toml:"location" yaml:"location"` // IANA name, "Local" or empty for the system location
}

// SourceConfig selects and tunes the remote source.
type SourceConfig struct {
	Kind      string   `toml:"kind" yaml:"kind"` // api or page
	APIURL    string   `toml:"api_url" yaml:"api_url"`
	PageURL   string   `toml:"page_url" yaml:"page_url"`
	UserAgent string   `toml:"user_agent" yaml:"user_agent"`
	Timeout   Duration `toml:"timeout" yaml:"timeout"`
}

// RetryConfig tunes the retry of malformed responses.
type RetryConfig struct {
	Attempts int      `toml:"attempts" yaml:"attempts"`
	Interval Duration `toml:"interval" yaml:"interval"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // console or json
}

// NewDefaultConfig returns the configuration used when nothing is set.
func NewDefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Kind:      APISource,
			APIURL:    "https://api.compareativos.com.br/fund",
			PageURL:   "https://www.comparadordefundos.com.br",
			UserAgent: "brf",
			Timeout:   Duration(30 * time.Second),
		},
		Retry: RetryConfig{
			Attempts: 5,
			Interval: Duration(time.Second),
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// DefaultPath returns the path of the user configuration file, whether it
// exists or not.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "brfunds", "config.toml")
}

// Load is Read followed by Validate.
func Load(paths ...string) (*Config, error) {
	config, err := Read(paths...)
	if err != nil {
		return nil, err
	}
	return config, config.Validate()
}

// Read reads configuration with priority: defaults -> file1 -> file2 -> ... -> env,
// without validating it, so that callers can apply their own overrides first.
// Files are decoded as YAML when their extension is .yaml or .yml, TOML otherwise.
// Empty paths are skipped.
func Read(paths ...string) (*Config, error) {
	config := NewDefaultConfig()
	for _, path := range paths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(data, config)
		default:
			err = toml.Unmarshal(data, config)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}
	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnvOverrides applies BRFUNDS_* environment variable overrides to config.
func applyEnvOverrides(config *Config) error {
	var errs []error
	if v := os.Getenv("BRFUNDS_SOURCE"); v != "" {
		config.Source.Kind = v
	}
	if v := os.Getenv("BRFUNDS_API_URL"); v != "" {
		config.Source.APIURL = v
	}
	if v := os.Getenv("BRFUNDS_PAGE_URL"); v != "" {
		config.Source.PageURL = v
	}
	if v := os.Getenv("BRFUNDS_USER_AGENT"); v != "" {
		config.Source.UserAgent = v
	}
	if v := os.Getenv("BRFUNDS_TIMEOUT"); v != "" {
		errs = append(errs, config.Source.Timeout.UnmarshalText([]byte(v)))
	}
	if v := os.Getenv("BRFUNDS_RETRY_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("BRFUNDS_RETRY_ATTEMPTS: %w", err))
		} else {
			config.Retry.Attempts = n
		}
	}
	if v := os.Getenv("BRFUNDS_RETRY_INTERVAL"); v != "" {
		errs = append(errs, config.Retry.Interval.UnmarshalText([]byte(v)))
	}
	if v := os.Getenv("BRFUNDS_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv("BRFUNDS_LOG_FORMAT"); v != "" {
		config.Logging.Format = v
	}
	if v := os.Getenv("BRFUNDS_LOCATION"); v != "" {
		config.Location = v
	}
	return errors.Join(errs...)
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var errs []error
	switch c.Source.Kind {
	case APISource, PageSource:
	default:
		errs = append(errs, fmt.Errorf("invalid source kind %q: want %q or %q", c.Source.Kind, APISource, PageSource))
	}
	if c.Retry.Attempts < 1 {
		errs = append(errs, fmt.Errorf("invalid retry attempts %d: want at least 1", c.Retry.Attempts))
	}
	if c.Retry.Interval < 0 || c.Source.Timeout < 0 {
		errs = append(errs, errors.New("durations cannot be negative"))
	}
	if _, err := c.LoadLocation(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// LoadLocation returns the location used to convert dates.
func (c *Config) LoadLocation() (*time.Location, error) {
	if c.Location == "" || c.Location == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return nil, fmt.Errorf("invalid location %q: %w", c.Location, err)
	}
	return loc, nil
}
