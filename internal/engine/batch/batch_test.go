package batch

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbers(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestProcessor_Process(t *testing.T) {
	items := numbers(25)

	t.Run("Sequential", func(t *testing.T) {
		p, err := NewProcessor[int](10)
		require.NoError(t, err)

		var order []int
		err = p.Process(context.Background(), items, func(_ context.Context, batch []int, batchIndex int) error {
			order = append(order, batchIndex)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2}, order)
	})

	t.Run("StopsAtFirstError", func(t *testing.T) {
		p, _ := NewProcessor[int](10)
		calls := 0
		err := p.Process(context.Background(), items, func(_ context.Context, _ []int, batchIndex int) error {
			calls++
			if batchIndex == 1 {
				return errors.New("fail")
			}
			return nil
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "batch 1 failed")
		assert.Equal(t, 2, calls)
	})

	t.Run("Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		p, _ := NewProcessor[int](10)
		err := p.Process(ctx, items, func(context.Context, []int, int) error { return nil })
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("EmptyItems", func(t *testing.T) {
		p := NewProcessorWithDefaults[int]()
		require.ErrorIs(t, p.Process(context.Background(), nil, nil), ErrEmptyItems)
	})

	t.Run("NilCallback", func(t *testing.T) {
		p := NewProcessorWithDefaults[int]()
		require.ErrorIs(t, p.Process(context.Background(), items, nil), ErrNilCallback)
	})

	t.Run("InvalidBatchSize", func(t *testing.T) {
		_, err := NewProcessor[int](0)
		require.ErrorIs(t, err, ErrInvalidBatchSize)
		_, err = NewProcessor[int](2000)
		require.ErrorIs(t, err, ErrInvalidBatchSize)
	})
}

func TestProcessor_ProcessConcurrent(t *testing.T) {
	items := numbers(25)

	t.Run("AllItems", func(t *testing.T) {
		p, _ := NewProcessor[int](5)
		var processed int32
		err := p.ProcessConcurrent(context.Background(), items, func(_ context.Context, batch []int, _ int) error {
			atomic.AddInt32(&processed, int32(len(batch)))
			return nil
		}, 2)
		require.NoError(t, err)
		assert.Equal(t, int32(25), processed)
	})

	t.Run("JoinsErrors", func(t *testing.T) {
		p, _ := NewProcessor[int](5)
		sentinel := errors.New("odd batch")
		err := p.ProcessConcurrent(context.Background(), items, func(_ context.Context, _ []int, i int) error {
			if i%2 == 1 {
				return sentinel
			}
			return nil
		}, 3)
		require.ErrorIs(t, err, sentinel)
		assert.Contains(t, err.Error(), "batch 1 failed")
		assert.Contains(t, err.Error(), "batch 3 failed")
	})
}

func TestMap(t *testing.T) {
	p, _ := NewProcessor[int](4)

	var mu sync.Mutex
	var snaps []Snapshot
	p.WithProgressCallback(func(s Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		snaps = append(snaps, s)
	})

	out, err := Map(context.Background(), p, numbers(10), 3, func(_ context.Context, n int) (string, error) {
		return strconv.Itoa(n * n), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "4", "9", "16", "25", "36", "49", "64", "81"}, out)

	require.Len(t, snaps, 3)
	last := snaps[0]
	for _, s := range snaps {
		if s.ProcessedBatches > last.ProcessedBatches {
			last = s
		}
	}
	assert.True(t, last.IsComplete())
	assert.InDelta(t, 100.0, last.PercentComplete(), 1e-9)

	_, err = Map(context.Background(), p, numbers(10), 2, func(_ context.Context, n int) (int, error) {
		if n == 7 {
			return 0, errors.New("seven")
		}
		return n, nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 7")

	_, err = Map[int, int](context.Background(), p, nil, 1, nil)
	require.ErrorIs(t, err, ErrEmptyItems)
}

func TestProcessor_Bounds(t *testing.T) {
	p, _ := NewProcessor[int](10)
	bounds := p.Bounds(25)
	require.Len(t, bounds, 3)
	assert.Equal(t, [2]int{0, 10}, bounds[0])
	assert.Equal(t, [2]int{20, 25}, bounds[2])
	assert.Equal(t, 10, p.BatchSize())
	assert.Empty(t, p.Bounds(0))
}

func TestProgress(t *testing.T) {
	p := NewProgress(100, 10)
	assert.Equal(t, 0.0, p.Snapshot().PercentComplete())
	assert.False(t, p.Snapshot().IsComplete())

	snap := p.AddProcessed(10)
	assert.Equal(t, 10.0, snap.PercentComplete())
	assert.Equal(t, 1, snap.ProcessedBatches)

	snap = p.AddProcessed(90)
	assert.True(t, snap.IsComplete())
	assert.GreaterOrEqual(t, snap.ItemsPerSecond(), 0.0)

	assert.Equal(t, 0.0, Snapshot{}.PercentComplete())
}
