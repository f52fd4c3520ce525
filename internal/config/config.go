// Package config loads the calckit configuration file, applies environment
// overrides and owns the process-wide logger.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/rshade/calckit/internal/calc"
	"github.com/rshade/calckit/internal/session"
	"github.com/rshade/calckit/internal/units"
	"github.com/rshade/calckit/pkg/version"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatPlain = "plain"
)

const configFileName = "config.yaml"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the calckit configuration file.
type Config struct {
	Version    string           `yaml:"version"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
	Calculator CalculatorConfig `yaml:"calculator"`
	Currency   CurrencyConfig   `yaml:"currency"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Locale        string `yaml:"locale"`
}

// LoggingConfig controls the process logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// CalculatorConfig tunes the dispatcher and sessions.
type CalculatorConfig struct {
	// StrictInputs is nil when unset; Strict then reports true.
	StrictInputs *bool         `yaml:"strict_inputs,omitempty"`
	ResultDelay  time.Duration `yaml:"result_delay"`
	BracketSet   string        `yaml:"bracket_set"`
}

// Strict reports whether malformed inputs are rejected.
func (c CalculatorConfig) Strict() bool {
	return c.StrictInputs == nil || *c.StrictInputs
}

// CurrencyConfig overrides entries of the static rate table.
type CurrencyConfig struct {
	Rates map[string]float64 `yaml:"rates,omitempty"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Version: version.GetVersion(),
		Output: OutputConfig{
			DefaultFormat: FormatTable,
			Locale:        "en",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Calculator: CalculatorConfig{
			ResultDelay: session.DefaultDelay,
			BracketSet:  calc.PaycheckBrackets2025.Name,
		},
	}
}

// DefaultPath returns the config file location inside the config directory.
func DefaultPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load builds a Config from defaults, the file at path when it exists, and
// environment overrides, then validates it. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := New()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if mergeErr := ShallowMergeYAML(cfg, path); mergeErr != nil {
				return nil, mergeErr
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if !slices.Contains([]string{FormatTable, FormatJSON, FormatPlain}, c.Output.DefaultFormat) {
		return fmt.Errorf("%w: output.default_format %q", ErrInvalidConfig, c.Output.DefaultFormat)
	}
	if c.Output.Locale != "" {
		if _, err := language.Parse(c.Output.Locale); err != nil {
			return fmt.Errorf("%w: output.locale %q: %w", ErrInvalidConfig, c.Output.Locale, err)
		}
	}
	if c.Calculator.ResultDelay < 0 {
		return fmt.Errorf("%w: calculator.result_delay must be >= 0", ErrInvalidConfig)
	}
	if _, err := c.Brackets(); err != nil {
		return fmt.Errorf("%w: calculator.bracket_set: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Rates(); err != nil {
		return fmt.Errorf("%w: currency.rates: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Brackets resolves the configured paycheck bracket set.
func (c *Config) Brackets() (calc.BracketSet, error) {
	return calc.BracketSetByName(c.Calculator.BracketSet)
}

// Rates returns the static currency table with the configured overrides.
func (c *Config) Rates() (units.Rates, error) {
	return units.DefaultRates().WithOverrides(c.Currency.Rates)
}

// CheckVersion reports a non-nil error when the file was written by a newer
// major version of calckit. An empty version is accepted.
func (c *Config) CheckVersion() error {
	if c.Version == "" {
		return nil
	}
	ok, err := version.Compatible(c.Version)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("config written by calckit %s, newer than %s", c.Version, version.GetVersion())
	}
	return nil
}
