package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/calckit/internal/cli"
	"github.com/rshade/calckit/internal/config"
)

func TestConfigInit(t *testing.T) {
	home := setupCLITest(t)
	path := filepath.Join(home, "config.yaml")

	out, _, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized at "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.FormatTable, cfg.Output.DefaultFormat)

	_, _, err = execute(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "use --force to overwrite")

	_, _, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigInit_ExplicitPath(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "nested", "calckit.yaml")

	_, _, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestConfigShow(t *testing.T) {
	home := setupCLITest(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("output:\n  locale: fr\n"), 0o600))
	t.Setenv(config.EnvOutput, "plain")

	out, _, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "locale: fr")
	assert.Contains(t, out, "default_format: plain")
	assert.Contains(t, out, "bracket_set:")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		args    []string
		wantErr bool
		want    string
	}{
		{name: "missing file uses defaults", args: []string{"config", "validate"}, want: "Configuration is valid"},
		{
			name:    "verbose",
			content: "calculator:\n  result_delay: 250ms\n",
			args:    []string{"config", "validate", "--verbose"},
			want:    "Result delay: 250ms",
		},
		{
			name:    "bad format",
			content: "output:\n  default_format: xml\n",
			args:    []string{"config", "validate"},
			wantErr: true,
			want:    "output.default_format",
		},
		{
			name:    "bad rate",
			content: "currency:\n  rates:\n    EUR: -1\n",
			args:    []string{"config", "validate"},
			wantErr: true,
			want:    "currency.rates",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := setupCLITest(t)
			if tt.content != "" {
				require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(tt.content), 0o600))
			}
			out, _, err := execute(t, tt.args...)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, cli.ExitCheckFailed, cli.ExitCode(err))
				assert.Contains(t, err.Error(), tt.want)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestConfigPath(t *testing.T) {
	home := setupCLITest(t)
	out, _, err := execute(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "config.yaml"), strings.TrimSpace(out))

	out, _, err = execute(t, "config", "path", "--config", "/tmp/other.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.yaml", strings.TrimSpace(out))
}

func TestConfigPath_UnloadableConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		missing bool
	}{
		{name: "explicit file does not exist", missing: true},
		{name: "malformed file", content: "output: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)
			path := filepath.Join(t.TempDir(), "nested", "calckit.yaml")
			if !tt.missing {
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))
			}

			out, _, err := execute(t, "config", "path", "--config", path)
			require.NoError(t, err)
			assert.Equal(t, path, strings.TrimSpace(out))

			_, _, err = execute(t, "config", "show", "--config", path)
			require.Error(t, err, "show reports the load failure instead of printing defaults")
		})
	}
}
