package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/calckit/internal/config"
)

// newDefaultTarget returns a Config with non-default values so tests can
// tell overlay sections from untouched ones.
func newDefaultTarget() *config.Config {
	cfg := config.New()
	cfg.Output.DefaultFormat = config.FormatPlain
	cfg.Logging.Level = "warn"
	cfg.Currency.Rates = map[string]float64{"GBP": 0.8}
	return cfg
}

// writeOverlay writes YAML content to a temp file and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	require.NoError(t, config.ShallowMergeYAML(target, writeOverlay(t, `
logging:
  level: error
`)))

	assert.Equal(t, "error", target.Logging.Level)
	assert.Equal(t, "console", target.Logging.Format, "omitted field takes the default")
	assert.Equal(t, config.FormatPlain, target.Output.DefaultFormat, "absent section untouched")
}

func TestShallowMergeYAML_ReplacesMaps(t *testing.T) {
	target := newDefaultTarget()
	require.NoError(t, config.ShallowMergeYAML(target, writeOverlay(t, `
currency:
  rates:
    EUR: 0.9
`)))
	assert.Equal(t, map[string]float64{"EUR": 0.9}, target.Currency.Rates)
}

func TestShallowMergeYAML_Duration(t *testing.T) {
	target := newDefaultTarget()
	require.NoError(t, config.ShallowMergeYAML(target, writeOverlay(t, `
calculator:
  result_delay: 1.5s
`)))
	assert.Equal(t, 1500*time.Millisecond, target.Calculator.ResultDelay)
	assert.True(t, target.Calculator.Strict())
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := newDefaultTarget()
	require.NoError(t, config.ShallowMergeYAML(target, writeOverlay(t, `
plugins:
  aws: {}
`)))
	assert.Equal(t, newDefaultTarget(), target)
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	target := newDefaultTarget()
	require.NoError(t, config.ShallowMergeYAML(target, writeOverlay(t, "# nothing\n")))
	assert.Equal(t, newDefaultTarget(), target)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	require.Error(t, config.ShallowMergeYAML(nil, "x"))
	require.Error(t, config.ShallowMergeYAML(newDefaultTarget(), filepath.Join(t.TempDir(), "missing.yaml")))
	require.Error(t, config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "output: [1, 2")))
	require.Error(t, config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "output: [1, 2]")))
}
