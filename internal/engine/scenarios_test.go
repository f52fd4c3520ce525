package engine

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/calckit/internal/engine/batch"
)

const scenarioYAML = `
scenarios:
  - name: dinner
    tool: tip-calculator
    inputs: {amount: "100", input1: "15", input2: "2"}
    expect:
      Per Person: "$57.50"
  - tool: gcf-lcm-calculator
    inputs: {amount: "12", input1: "18"}
    expect:
      GCF: "6"
      LCM: "99"
  - name: typo
    tool: bmi-calculator
    inputs: {amount: "tall", input1: "70"}
`

func TestLoadScenarios(t *testing.T) {
	scenarios, err := LoadScenarios(strings.NewReader(scenarioYAML))
	require.NoError(t, err)
	require.Len(t, scenarios, 3)
	assert.Equal(t, "dinner", scenarios[0].Name)
	assert.Equal(t, "gcf-lcm-calculator #2", scenarios[1].Name)
	assert.Equal(t, "100", scenarios[0].Inputs.Amount)

	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty document", doc: ""},
		{name: "empty list", doc: "scenarios: []"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenarios(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, ErrNoScenarios)
		})
	}

	_, err = LoadScenarios(strings.NewReader("scenarios:\n  - name: x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tool is required")

	_, err = LoadScenarios(strings.NewReader("scenarios:\n  - tool: x\n    colour: red\n"))
	require.Error(t, err)
}

func TestRunScenarios(t *testing.T) {
	scenarios, err := LoadScenarios(strings.NewReader(scenarioYAML))
	require.NoError(t, err)

	var (
		mu    sync.Mutex
		snaps []batch.Snapshot
	)
	results, err := newTestDispatcher().RunScenarios(context.Background(), scenarios, 2, func(s batch.Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		snaps = append(snaps, s)
	})
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.NotEmpty(t, snaps)

	assert.True(t, results[0].Passed())
	assert.Equal(t, "dinner", results[0].Scenario.Name)

	assert.False(t, results[1].Passed())
	require.Len(t, results[1].Mismatches, 1)
	assert.Equal(t, Mismatch{Label: "LCM", Expected: "99", Actual: "36"}, results[1].Mismatches[0])

	assert.False(t, results[2].Passed())
	require.ErrorIs(t, results[2].Err, ErrInvalidInput)
	assert.NotEmpty(t, results[2].Error)
}

func TestRunScenarios_Errors(t *testing.T) {
	d := newTestDispatcher()
	_, err := d.RunScenarios(context.Background(), nil, 1, nil)
	require.ErrorIs(t, err, ErrNoScenarios)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = d.RunScenarios(ctx, []Scenario{{Tool: "bmi-calculator"}}, 1, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCompare_MissingLabel(t *testing.T) {
	rows, err := newTestDispatcher().Compute(context.Background(), "circle-calculator", RawInputs{Amount: "1"})
	require.NoError(t, err)
	got := compare(rows, map[string]string{"Volume": "1"})
	require.Len(t, got, 1)
	assert.Equal(t, "<missing>", got[0].Actual)
}
