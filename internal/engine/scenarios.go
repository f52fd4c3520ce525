package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/rshade/calckit/internal/calc"
	"github.com/rshade/calckit/internal/engine/batch"
)

// Scenario is one named tool invocation, optionally with expected row
// values keyed by label.
type Scenario struct {
	Name   string            `yaml:"name"             json:"name"`
	Tool   string            `yaml:"tool"             json:"tool"`
	Inputs RawInputs         `yaml:"inputs"           json:"inputs"`
	Expect map[string]string `yaml:"expect,omitempty" json:"expect,omitempty"`
}

// ScenarioResult is the outcome of one Scenario.
type ScenarioResult struct {
	Scenario   Scenario         `json:"scenario"`
	Rows       []calc.ResultRow `json:"rows,omitempty"`
	Err        error            `json:"-"`
	Error      string           `json:"error,omitempty"`
	Mismatches []Mismatch       `json:"mismatches,omitempty"`
}

// Mismatch is an expected row value that differed from the computed one.
type Mismatch struct {
	Label    string `json:"label"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

// Passed reports whether the scenario computed without error and matched
// every expectation.
func (r ScenarioResult) Passed() bool {
	return r.Err == nil && len(r.Mismatches) == 0
}

// scenarioFile is the on-disk layout of a scenario file.
type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// ErrNoScenarios is returned for a scenario file without entries.
const ErrNoScenarios = constError("no scenarios")

// LoadScenarios decodes a YAML scenario file. Scenarios without a name are
// named after their position.
func LoadScenarios(r io.Reader) ([]Scenario, error) {
	var f scenarioFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoScenarios
		}
		return nil, fmt.Errorf("decoding scenarios: %w", err)
	}
	if len(f.Scenarios) == 0 {
		return nil, ErrNoScenarios
	}
	for i := range f.Scenarios {
		if f.Scenarios[i].Tool == "" {
			return nil, fmt.Errorf("scenario %d: tool is required", i+1)
		}
		if f.Scenarios[i].Name == "" {
			f.Scenarios[i].Name = fmt.Sprintf("%s #%d", f.Scenarios[i].Tool, i+1)
		}
	}
	return f.Scenarios, nil
}

// RunScenarios computes every scenario with up to concurrency batches in
// flight. Input errors are recorded per scenario; only cancellation aborts
// the run. Results keep the order of scenarios.
func (d *Dispatcher) RunScenarios(
	ctx context.Context,
	scenarios []Scenario,
	concurrency int,
	onProgress batch.ProgressCallback,
) ([]ScenarioResult, error) {
	if len(scenarios) == 0 {
		return nil, ErrNoScenarios
	}
	p := batch.NewProcessorWithDefaults[Scenario]().WithProgressCallback(onProgress)

	return batch.Map(ctx, p, scenarios, concurrency, func(ctx context.Context, s Scenario) (ScenarioResult, error) {
		rows, err := d.Compute(ctx, s.Tool, s.Inputs)
		if err != nil && ctx.Err() != nil {
			return ScenarioResult{}, err
		}
		res := ScenarioResult{Scenario: s, Rows: rows, Err: err}
		if err != nil {
			res.Error = err.Error()
			return res, nil
		}
		res.Mismatches = compare(rows, s.Expect)
		return res, nil
	})
}

func compare(rows []calc.ResultRow, expect map[string]string) []Mismatch {
	labels := make([]string, 0, len(expect))
	for label := range expect {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	var out []Mismatch
	for _, label := range labels {
		want := expect[label]
		got, ok := calc.Find(rows, label)
		if !ok {
			out = append(out, Mismatch{Label: label, Expected: want, Actual: "<missing>"})
			continue
		}
		if got.Value != want {
			out = append(out, Mismatch{Label: label, Expected: want, Actual: got.Value})
		}
	}
	return out
}
