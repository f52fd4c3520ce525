package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	results, err := newTestDispatcher().Verify(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, results, 82)

	for _, r := range results {
		assert.True(t, r.OK(), "%s: %s", r.Tool, r.Problem)
		assert.Positive(t, r.Rows, r.Tool)
		assert.Equal(t, !Deterministic(r.Tool), r.Skipped, r.Tool)
	}
	assert.Equal(t, "age-calculator", results[0].Tool)
}

func TestVerify_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestDispatcher().Verify(ctx, 2)
	require.ErrorIs(t, err, context.Canceled)
}
