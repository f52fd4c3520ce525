package engine

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/calckit/internal/calc"
)

// nonDeterministic lists tools whose output depends on entropy.
//
//nolint:gochecknoglobals // Static lookup.
var nonDeterministic = map[string]bool{"password-generator": true}

// Deterministic reports whether repeated calls with the same inputs must
// yield the same rows.
func Deterministic(toolID string) bool {
	return !nonDeterministic[toolID]
}

// VerifyResult is the idempotence check of one tool over its defaults.
type VerifyResult struct {
	Tool    string `json:"tool"`
	Rows    int    `json:"rows"`
	Skipped bool   `json:"skipped,omitempty"`
	Problem string `json:"problem,omitempty"`
}

// OK reports whether the tool passed.
func (r VerifyResult) OK() bool { return r.Problem == "" }

// Verify computes every handled tool twice from its defaults and checks
// that both runs agree, that no error row appears and that exactly one row
// is marked as the total. Results are ordered by tool id.
func (d *Dispatcher) Verify(ctx context.Context, concurrency int) ([]VerifyResult, error) {
	ids := d.Tools()
	results := make([]VerifyResult, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, concurrency))
	for i, id := range ids {
		g.Go(func() error {
			r, err := d.verifyOne(gctx, id)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (d *Dispatcher) verifyOne(ctx context.Context, id string) (VerifyResult, error) {
	in := d.Defaults(id)
	first, err := d.Compute(ctx, id, in)
	if err != nil {
		if ctx.Err() != nil {
			return VerifyResult{}, err
		}
		return VerifyResult{Tool: id, Problem: err.Error()}, nil
	}
	res := VerifyResult{Tool: id, Rows: len(first)}

	if calc.HasError(first) {
		res.Problem = "defaults produce an error row"
		return res, nil
	}
	if n := countTotals(first); n != 1 {
		res.Problem = fmt.Sprintf("%d total rows", n)
		return res, nil
	}
	if !Deterministic(id) {
		res.Skipped = true
		return res, nil
	}

	second, err := d.Compute(ctx, id, in)
	if err != nil {
		return VerifyResult{}, err
	}
	if !slices.Equal(first, second) {
		res.Problem = "repeated computation differs"
	}
	return res, nil
}

func countTotals(rows []calc.ResultRow) int {
	n := 0
	for _, r := range rows {
		if r.IsTotal {
			n++
		}
	}
	return n
}
