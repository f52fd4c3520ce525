package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Environment variables read by ApplyEnv and GetConfigDir.
const (
	EnvHome         = "CALCKIT_HOME"
	EnvLogLevel     = "CALCKIT_LOG_LEVEL"
	EnvLogFormat    = "CALCKIT_LOG_FORMAT"
	EnvLocale       = "CALCKIT_LOCALE"
	EnvOutput       = "CALCKIT_OUTPUT"
	EnvStrictInputs = "CALCKIT_STRICT_INPUTS"
)

// ApplyEnv overlays environment variables on c. lookup is os.LookupEnv in
// production.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Logging.Format = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLocale); ok && v != "" {
		c.Output.Locale = v
	}
	if v, ok := lookup(EnvOutput); ok && v != "" {
		c.Output.DefaultFormat = strings.ToLower(v)
	}
	if v, ok := lookup(EnvStrictInputs); ok && v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, EnvStrictInputs, v)
		}
		c.Calculator.StrictInputs = &strict
	}
	return nil
}
