package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/calckit/internal/cli"
)

func TestCompute(t *testing.T) {
	setupCLITest(t)

	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "defaults",
			args:     []string{"compute", "bmi-calculator"},
			contains: []string{"BMI Calculator: Your Health Results", "Label", "*", "22.9", "Normal Weight"},
		},
		{
			name:     "field flags",
			args:     []string{"compute", "tip-calculator", "--amount", "100", "--input1", "15", "--input2", "2", "-o", "plain"},
			contains: []string{"Tip Amount: $15.00", "Per Person: $57.50"},
		},
		{
			name:     "set pairs",
			args:     []string{"compute", "length-converter", "--set", "amount=1", "--set", "from_unit=Miles", "--set", "to_unit=Meters"},
			contains: []string{"1,609.344 Meters"},
		},
		{
			name:     "decorated numbers",
			args:     []string{"compute", "tip-calculator", "--amount", "$1,000", "--input1", "10%", "--input2", "1"},
			contains: []string{"$100.00"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestCompute_JSON(t *testing.T) {
	setupCLITest(t)
	out, _, err := execute(t, "compute", "gcf-lcm-calculator", "--amount", "12", "--input1", "18", "-o", "json")
	require.NoError(t, err)

	var got struct {
		Tool    string `json:"tool"`
		Title   string `json:"title"`
		Results []struct {
			Label string `json:"label"`
			Value string `json:"value"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "gcf-lcm-calculator", got.Tool)
	require.NotEmpty(t, got.Results)

	values := make(map[string]string, len(got.Results))
	for _, r := range got.Results {
		values[r.Label] = r.Value
	}
	assert.Equal(t, "6", values["GCF"])
	assert.Equal(t, "36", values["LCM"])
}

func TestCompute_InvalidInput(t *testing.T) {
	setupCLITest(t)

	t.Run("strict rejects", func(t *testing.T) {
		_, _, err := execute(t, "compute", "tip-calculator", "--amount", "abc")
		require.Error(t, err)
		assert.Equal(t, cli.ExitInvalidInput, cli.ExitCode(err))
		assert.Contains(t, err.Error(), "not a number")
	})

	t.Run("lenient propagates NaN", func(t *testing.T) {
		out, _, err := execute(t, "compute", "tip-calculator", "--amount", "abc", "--lenient", "-o", "plain")
		require.NoError(t, err)
		assert.Contains(t, out, "NaN")
	})

	t.Run("malformed set", func(t *testing.T) {
		_, _, err := execute(t, "compute", "bmi-calculator", "--set", "amount")
		require.Error(t, err)
		assert.Equal(t, cli.ExitInvalidInput, cli.ExitCode(err))
		assert.Contains(t, err.Error(), "expected key=value")
	})

	t.Run("unknown set key", func(t *testing.T) {
		_, _, err := execute(t, "compute", "bmi-calculator", "--set", "colour=red")
		require.Error(t, err)
		assert.Equal(t, cli.ExitInvalidInput, cli.ExitCode(err))
	})
}

func TestCompute_UnknownTool(t *testing.T) {
	setupCLITest(t)
	out, errOut, err := execute(t, "compute", "warp-drive-calculator", "-o", "plain")
	require.NoError(t, err)
	assert.Contains(t, errOut, `unknown calculator "warp-drive-calculator"`)
	assert.Contains(t, out, "Result: Choose a calculator to see results")
}

func TestConvert(t *testing.T) {
	setupCLITest(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "length", args: []string{"convert", "length", "1", "Miles", "Meters"}, want: "1,609.344 Meters"},
		{name: "case insensitive kind", args: []string{"convert", "LENGTH", "1", "Miles", "Meters"}, want: "1,609.344 Meters"},
		{name: "temperature", args: []string{"convert", "temperature", "100", "Celsius", "Fahrenheit"}, want: "212 °F"},
		{name: "currency", args: []string{"convert", "currency", "100", "usd", "eur"}, want: "92.00 EUR"},
		{name: "list units", args: []string{"convert", "length", "--list"}, want: "Miles"},
		{name: "list currencies", args: []string{"convert", "currency", "--list"}, want: "EUR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	setupCLITest(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "bad amount", args: []string{"convert", "length", "far", "Miles", "Meters"}},
		{name: "unknown unit", args: []string{"convert", "length", "1", "Furlongs", "Meters"}},
		{name: "unknown kind", args: []string{"convert", "luminosity", "1", "Lux", "Nits"}},
		{name: "unknown currency", args: []string{"convert", "currency", "1", "USD", "XXX"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, cli.ExitInvalidInput, cli.ExitCode(err))
		})
	}
}

func TestConvert_ConfiguredRates(t *testing.T) {
	home := setupCLITest(t)
	cfg := "currency:\n  rates:\n    EUR: 0.5\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(cfg), 0o600))

	out, _, err := execute(t, "convert", "currency", "100", "USD", "EUR", "-o", "plain")
	require.NoError(t, err)
	assert.Contains(t, out, "50.00 EUR")
}
