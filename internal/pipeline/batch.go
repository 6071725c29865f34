package processor

import (
	"context"
	"log/slog"
	"sync"

	"github.com/wegtools/minutes-tracker/internal/entity"
)

// Batch fans a set of documents out over a bounded worker pool. Documents
// are independent, so completion order is free; aggregation re-imposes
// input order so a run is deterministic regardless of scheduling.
type Batch struct {
	proc     *Processor
	logger   *slog.Logger
	workers  int
	failFast bool
}

type BatchOption func(*Batch)

func WithWorkers(n int) BatchOption {
	return func(b *Batch) {
		if n > 0 {
			b.workers = n
		}
	}
}

func WithFailFast(on bool) BatchOption {
	return func(b *Batch) {
		b.failFast = on
	}
}

func NewBatch(proc *Processor, logger *slog.Logger, opts ...BatchOption) *Batch {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Batch{proc: proc, logger: logger, workers: 4}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Run processes all paths. Per-document failures become DocumentError
// records and the rest of the run continues, unless fail-fast is set, in
// which case the first failure cancels the remaining work and is returned.
func (b *Batch) Run(ctx context.Context, paths []string) ([]DocumentResult, []entity.DocumentError, error) {
	type slot struct {
		result DocumentResult
		err    error
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	slots := make([]slot, len(paths))
	jobs := make(chan int)

	var wg sync.WaitGroup
	var firstErrOnce sync.Once
	var firstErr error
	for w := 0; w < b.workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					slots[i].err = ctx.Err()
					continue
				}
				res, err := b.proc.ProcessDocument(ctx, paths[i])
				slots[i] = slot{result: res, err: err}
				if err != nil {
					b.logger.Error("document failed",
						"worker_id", workerID, "file", res.File, "error", err)
					if b.failFast {
						firstErrOnce.Do(func() { firstErr = err })
						cancel()
					}
				}
			}
		}(w + 1)
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if b.failFast && firstErr != nil {
		return nil, nil, firstErr
	}

	var results []DocumentResult
	var errs []entity.DocumentError
	for _, s := range slots {
		if s.err != nil {
			errs = append(errs, entity.DocumentError{
				File:  s.result.File,
				Error: s.err.Error(),
			})
			continue
		}
		results = append(results, s.result)
	}
	return results, errs, nil
}
