package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/calckit/internal/cli"
)

const passingScenarios = `
scenarios:
  - name: dinner
    tool: tip-calculator
    inputs: {amount: "100", input1: "15", input2: "2"}
    expect:
      Per Person: "$57.50"
  - name: divisors
    tool: gcf-lcm-calculator
    inputs: {amount: "12", input1: "18"}
    expect:
      GCF: "6"
      LCM: "36"
`

const failingScenarios = `
scenarios:
  - name: dinner
    tool: tip-calculator
    inputs: {amount: "100", input1: "15", input2: "2"}
    expect:
      Per Person: "$50.00"
  - name: typo
    tool: bmi-calculator
    inputs: {amount: "tall", input1: "70"}
`

func writeScenarios(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestBatch_Pass(t *testing.T) {
	setupCLITest(t)
	out, _, err := execute(t, "batch", writeScenarios(t, passingScenarios))
	require.NoError(t, err)
	assert.Contains(t, out, "Status")
	assert.Contains(t, out, "PASS")
	assert.NotContains(t, out, "FAIL")
	assert.Contains(t, out, "2 passed, 0 failed")
}

func TestBatch_Fail(t *testing.T) {
	setupCLITest(t)
	out, _, err := execute(t, "batch", writeScenarios(t, failingScenarios), "-o", "plain")
	require.Error(t, err)
	assert.Equal(t, cli.ExitCheckFailed, cli.ExitCode(err))
	assert.Contains(t, err.Error(), "2 of 2 scenarios failed")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `Per Person: want "$50.00", got "$57.50"`)
	assert.Contains(t, lines[1], "not a number")
}

func TestBatch_JSON(t *testing.T) {
	setupCLITest(t)
	out, _, err := execute(t, "batch", writeScenarios(t, failingScenarios), "-o", "json", "--lenient")
	require.Error(t, err)

	var got struct {
		Passed  int `json:"passed"`
		Failed  int `json:"failed"`
		Results []struct {
			Mismatches []struct {
				Label string `json:"label"`
			} `json:"mismatches"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1, got.Passed, "lenient mode computes the typo scenario")
	assert.Equal(t, 1, got.Failed)
	require.Len(t, got.Results, 2)
	require.Len(t, got.Results[0].Mismatches, 1)
	assert.Equal(t, "Per Person", got.Results[0].Mismatches[0].Label)
}

func TestBatch_Stdin(t *testing.T) {
	setupCLITest(t)

	var stdout bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(passingScenarios))
	cmd.SetArgs([]string{"batch", "-", "-o", "plain"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "PASS\tdinner")
}

func TestBatch_FillDefaults(t *testing.T) {
	setupCLITest(t)
	doc := `
scenarios:
  - name: partial
    tool: bmi-calculator
    inputs: {input1: "70"}
    expect:
      BMI: "22.9"
`
	path := writeScenarios(t, doc)

	_, _, err := execute(t, "batch", path)
	require.Error(t, err, "a blank height is required")

	_, _, err = execute(t, "batch", path, "--fill-defaults")
	require.NoError(t, err)
}

func TestBatch_Errors(t *testing.T) {
	setupCLITest(t)

	_, _, err := execute(t, "batch", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening scenarios")

	_, _, err = execute(t, "batch", writeScenarios(t, "scenarios: []"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no scenarios")
}

func TestVerify(t *testing.T) {
	setupCLITest(t)

	t.Run("table", func(t *testing.T) {
		out, _, err := execute(t, "verify")
		require.NoError(t, err)
		assert.Contains(t, out, "82 of 82 calculators passed")
		assert.Contains(t, out, "OK (random)")
	})

	t.Run("failed only", func(t *testing.T) {
		out, _, err := execute(t, "verify", "--failed", "-o", "plain")
		require.NoError(t, err)
		assert.Empty(t, strings.TrimSpace(out))
	})

	t.Run("json", func(t *testing.T) {
		out, _, err := execute(t, "verify", "-o", "json", "--concurrency", "1")
		require.NoError(t, err)
		var results []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &results))
		assert.Len(t, results, 82)
	})
}
