package service

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// lockTable hands out one weight-1 semaphore per timesheet so that the
// mutate-then-recompute sequence on a week never interleaves.
type lockTable struct {
	mu   sync.Mutex
	sems map[uint]*semaphore.Weighted
}

func newLockTable() *lockTable {
	return &lockTable{sems: make(map[uint]*semaphore.Weighted)}
}

func (l *lockTable) acquire(ctx context.Context, timesheetID uint) (func(), error) {
	l.mu.Lock()
	sem, ok := l.sems[timesheetID]
	if !ok {
		sem = semaphore.NewWeighted(1)
		l.sems[timesheetID] = sem
	}
	l.mu.Unlock()

	if err := sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	return func() { sem.Release(1) }, nil
}
