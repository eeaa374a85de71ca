package downloader

import (
	"context"
	"fmt"
	"sync"

	"github.com/airbusgeo/goes-archiver/common"
	"golang.org/x/sync/semaphore"
)

// FetchUnit executes one task to completion and reports its outcome.
type FetchUnit func(ctx context.Context, task common.FetchTask) common.FetchOutcome

// Pool runs fetch units with a bounded number in flight. The admission gate
// is a weighted semaphore owned by the pool, not process-wide state.
type Pool struct {
	sem *semaphore.Weighted
}

// NewPool creates a pool admitting at most maxWorkers concurrent fetches.
func NewPool(maxWorkers int) *Pool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &Pool{sem: semaphore.NewWeighted(int64(maxWorkers))}
}

// Run executes one fetch unit per task and returns the outcomes in dispatch
// order. Units are dispatched in task order but may complete in any order;
// each outcome slot is written by exactly one goroutine. A failed unit never
// cancels or delays its siblings, and its admission slot is released on every
// path. Run returns only once every dispatched unit has finished.
func (p *Pool) Run(ctx context.Context, tasks []common.FetchTask, unit FetchUnit) []common.FetchOutcome {
	outcomes := make([]common.FetchOutcome, len(tasks))
	wg := sync.WaitGroup{}
	for i, task := range tasks {
		if err := p.sem.Acquire(ctx, 1); err != nil {
			outcomes[i] = common.FetchOutcome{Timestamp: task.Timestamp, Err: fmt.Errorf("not dispatched: %w", err)}
			continue
		}
		wg.Add(1)
		go func(i int, task common.FetchTask) {
			defer wg.Done()
			defer p.sem.Release(1)
			outcomes[i] = unit(ctx, task)
		}(i, task)
	}
	wg.Wait()
	return outcomes
}
