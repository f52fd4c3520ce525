package batch

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Batch sizing limits.
const (
	// DefaultBatchSize is the number of scenarios per batch.
	DefaultBatchSize = 50

	MinBatchSize = 1
	MaxBatchSize = 1000
)

// Processor errors.
var (
	ErrInvalidBatchSize = constError("batch size must be between 1 and 1000")
	ErrNilCallback      = constError("batch callback cannot be nil")
	ErrEmptyItems       = constError("items slice cannot be empty")
)

type constError string

func (e constError) Error() string { return string(e) }

// Callback handles one batch. batchIndex is zero-based.
type Callback[T any] func(ctx context.Context, batch []T, batchIndex int) error

// ProgressCallback is invoked after each completed batch.
type ProgressCallback func(snapshot Snapshot)

// Processor splits items into fixed-size batches.
type Processor[T any] struct {
	batchSize  int
	onProgress ProgressCallback
}

// NewProcessor creates a processor with the given batch size.
func NewProcessor[T any](batchSize int) (*Processor[T], error) {
	if batchSize < MinBatchSize || batchSize > MaxBatchSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBatchSize, batchSize)
	}
	return &Processor[T]{batchSize: batchSize}, nil
}

// NewProcessorWithDefaults creates a processor with DefaultBatchSize.
func NewProcessorWithDefaults[T any]() *Processor[T] {
	return &Processor[T]{batchSize: DefaultBatchSize}
}

// WithProgressCallback sets the progress callback.
func (p *Processor[T]) WithProgressCallback(callback ProgressCallback) *Processor[T] {
	p.onProgress = callback
	return p
}

// BatchSize returns the configured batch size.
func (p *Processor[T]) BatchSize() int {
	return p.batchSize
}

// Bounds returns the [start, end) index pair of every batch.
func (p *Processor[T]) Bounds(totalItems int) [][2]int {
	n := (totalItems + p.batchSize - 1) / p.batchSize
	bounds := make([][2]int, n)
	for i := range n {
		start := i * p.batchSize
		bounds[i] = [2]int{start, min(start+p.batchSize, totalItems)}
	}
	return bounds
}

// Process runs batches in order and stops at the first error.
func (p *Processor[T]) Process(ctx context.Context, items []T, callback Callback[T]) error {
	if len(items) == 0 {
		return ErrEmptyItems
	}
	if callback == nil {
		return ErrNilCallback
	}

	bounds := p.Bounds(len(items))
	progress := NewProgress(len(items), len(bounds))
	for i, b := range bounds {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := callback(ctx, items[b[0]:b[1]], i); err != nil {
			return fmt.Errorf("batch %d failed: %w", i, err)
		}
		p.report(progress, b[1]-b[0])
	}
	return nil
}

// ProcessConcurrent runs up to maxConcurrency batches at once. Every batch
// runs even if another fails; the failures are joined.
func (p *Processor[T]) ProcessConcurrent(
	ctx context.Context,
	items []T,
	callback Callback[T],
	maxConcurrency int,
) error {
	if len(items) == 0 {
		return ErrEmptyItems
	}
	if callback == nil {
		return ErrNilCallback
	}

	bounds := p.Bounds(len(items))
	progress := NewProgress(len(items), len(bounds))
	errs := make([]error, len(bounds))

	var g errgroup.Group
	g.SetLimit(max(1, maxConcurrency))
	for i, b := range bounds {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := callback(ctx, items[b[0]:b[1]], i); err != nil {
				errs[i] = fmt.Errorf("batch %d failed: %w", i, err)
				return nil
			}
			p.report(progress, b[1]-b[0])
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}
	return errors.Join(errs...)
}

// Map applies fn to every item with bounded concurrency and returns the
// results in input order. fn errors abort the remaining batches.
func Map[T, R any](
	ctx context.Context,
	p *Processor[T],
	items []T,
	maxConcurrency int,
	fn func(ctx context.Context, item T) (R, error),
) ([]R, error) {
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}
	if fn == nil {
		return nil, ErrNilCallback
	}

	out := make([]R, len(items))
	bounds := p.Bounds(len(items))
	progress := NewProgress(len(items), len(bounds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, maxConcurrency))
	for i, b := range bounds {
		g.Go(func() error {
			for j := b[0]; j < b[1]; j++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				r, err := fn(gctx, items[j])
				if err != nil {
					return fmt.Errorf("batch %d item %d: %w", i, j, err)
				}
				out[j] = r
			}
			p.report(progress, b[1]-b[0])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Processor[T]) report(progress *Progress, n int) {
	snap := progress.AddProcessed(n)
	if p.onProgress != nil {
		p.onProgress(snap)
	}
}
