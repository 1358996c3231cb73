package filter

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EvaluatorOption configures an evaluator
type EvaluatorOption func(*Evaluator)

// WithWorkers sets the number of concurrent chunk evaluations
func WithWorkers(workers int) EvaluatorOption {
	return func(e *Evaluator) {
		if workers > 0 {
			e.workerCount = workers
		}
	}
}

// WithBatchSize sets the minimum chunk size. Smaller inputs are evaluated sequentially.
func WithBatchSize(size int) EvaluatorOption {
	return func(e *Evaluator) {
		if size > 0 {
			e.batchSize = size
		}
	}
}

// Evaluator applies programs to lists of resources
type Evaluator struct {
	workerCount int
	batchSize   int
}

// NewEvaluator creates a new evaluator
func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		workerCount: runtime.GOMAXPROCS(0),
		batchSize:   100,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Select returns the items p matches, in their original order. A nil program
// matches everything. The first evaluation error aborts the selection.
func Select[T Subject](ctx context.Context, e *Evaluator, p *Program, items []T) ([]T, error) {
	if p == nil {
		return items, nil
	}
	if len(items) == 0 {
		return []T{}, nil
	}
	if e == nil {
		e = NewEvaluator()
	}

	// For small lists, don't bother with concurrency
	if len(items) < e.batchSize {
		return selectSequential(ctx, p, items)
	}
	return selectConcurrent(ctx, e, p, items)
}

func selectSequential[T Subject](ctx context.Context, p *Program, items []T) ([]T, error) {
	matches := make([]T, 0, len(items))
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ok, err := Match(p, item)
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

func selectConcurrent[T Subject](ctx context.Context, e *Evaluator, p *Program, items []T) ([]T, error) {
	chunkSize := max(len(items)/e.workerCount, e.batchSize)
	chunks := (len(items) + chunkSize - 1) / chunkSize

	// Each chunk writes only its own slot
	results := make([][]T, chunks)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workerCount)

	for i := range chunks {
		start := i * chunkSize
		end := min(start+chunkSize, len(items))

		g.Go(func() error {
			matches, err := selectSequential(ctx, p, items[start:end])
			if err != nil {
				return err
			}
			results[i] = matches
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	all := make([]T, 0, total)
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}
