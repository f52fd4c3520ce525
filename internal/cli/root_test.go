package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/calckit/internal/cli"
	"github.com/rshade/calckit/internal/config"
)

// setupCLITest isolates the config directory and resets global state.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvOutput, "")
	t.Setenv(config.EnvLocale, "")
	t.Setenv(config.EnvStrictInputs, "")
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNewRootCmd(t *testing.T) {
	cmd := cli.NewRootCmd("1.2.3")
	assert.Equal(t, "calckit", cmd.Use)
	assert.Equal(t, "1.2.3", cmd.Version)

	for _, name := range []string{"list", "describe", "compute", "convert", "batch", "verify", "tui", "config"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
	for _, flag := range []string{"debug", "config", "output", "locale", "lenient"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "plain error", err: errors.New("boom"), want: cli.ExitFailure},
		{name: "invalid input", err: &cli.ExitError{Code: cli.ExitInvalidInput}, want: cli.ExitInvalidInput},
		{
			name: "wrapped check failure",
			err:  fmt.Errorf("batch: %w", &cli.ExitError{Code: cli.ExitCheckFailed, Reason: "1 failed"}),
			want: cli.ExitCheckFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cli.ExitCode(tt.err))
		})
	}
}

func TestExitError(t *testing.T) {
	cause := errors.New("amount: not a number")
	e := &cli.ExitError{Code: cli.ExitInvalidInput, Err: cause}
	assert.Equal(t, "amount: not a number", e.Error())
	require.ErrorIs(t, e, cause)

	e = &cli.ExitError{Code: cli.ExitCheckFailed, Reason: "2 of 3 scenarios failed", Err: cause}
	assert.Equal(t, "2 of 3 scenarios failed", e.Error())
}

func TestRoot_InvalidOutputFormat(t *testing.T) {
	setupCLITest(t)
	_, _, err := execute(t, "list", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format: xml")
}

func TestRoot_MissingExplicitConfig(t *testing.T) {
	setupCLITest(t)
	_, _, err := execute(t, "list", "--config", "/nonexistent/calckit.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/nonexistent/calckit.yaml")
}
