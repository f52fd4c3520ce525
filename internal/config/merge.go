package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keyVersion    = "version"
	keyOutput     = "output"
	keyLogging    = "logging"
	keyCalculator = "calculator"
	keyCurrency   = "currency"
)

// knownTopLevelKeys lists the YAML keys that correspond to Config fields.
// Keys not in this list are silently ignored during merge.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var knownTopLevelKeys = map[string]bool{
	keyVersion:    true,
	keyOutput:     true,
	keyLogging:    true,
	keyCalculator: true,
	keyCurrency:   true,
}

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// the target Config. Keys present in the overlay replace entire sections
// in the target. Keys absent in the overlay are left unchanged.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	for key, node := range overlay {
		if !knownTopLevelKeys[key] {
			continue
		}
		if err = unmarshalSection(target, key, &node); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}
	return nil
}

// unmarshalSection decodes one section over that section's defaults and
// replaces the matching field of target. Fields the overlay omits take the
// default value, not the target's current one.
func unmarshalSection(target *Config, key string, node *yaml.Node) error {
	defaults := New()
	switch key {
	case keyVersion:
		v := defaults.Version
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Version = v
	case keyOutput:
		v := defaults.Output
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Output = v
	case keyLogging:
		v := defaults.Logging
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
	case keyCalculator:
		v := defaults.Calculator
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Calculator = v
	case keyCurrency:
		v := defaults.Currency
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Currency = v
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
