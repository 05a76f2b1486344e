package scheduler

import (
	"container/heap"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// idleWait - timer period while the queue is empty; any After call wakes the worker earlier.
const idleWait = time.Hour

// Queue is the production Scheduler: a single worker goroutine started with Run executes tasks when they are due.
type Queue struct {
	logger *slog.Logger

	mu    sync.Mutex
	tasks taskHeap
	seq   uint64
	wake  chan struct{}
}

func NewQueue(logger *slog.Logger) *Queue {
	return &Queue{
		logger: logger.With("component", "scheduler"),
		wake:   make(chan struct{}, 1),
	}
}

// After - enqueues task to run once delay has elapsed. Safe to call from any goroutine, including from a task.
func (that *Queue) After(delay time.Duration, task func()) {
	that.mu.Lock()
	that.seq++
	heap.Push(&that.tasks, item{due: time.Now().Add(delay), seq: that.seq, task: task})
	that.mu.Unlock()

	select {
	case that.wake <- struct{}{}:
	default:
	}
}

// Pending - number of tasks waiting to run.
func (that *Queue) Pending() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.tasks.Len()
}

// Run - executes due tasks until ctx is canceled. Tasks still queued at that point are dropped.
func (that *Queue) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")
	log.Info("scheduler started")

	timer := time.NewTimer(idleWait)
	defer timer.Stop()

	for {
		if task, ok := that.next(); ok {
			that.execute(task)
			continue
		}

		timer.Reset(that.wait())

		select {
		case <-ctx.Done():
			log.Info("scheduler stopped", "pending", that.Pending())
			return nil
		case <-that.wake:
		case <-timer.C:
		}
	}
}

func (that *Queue) next() (item, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.tasks.popDue(time.Now())
}

// wait - time until the earliest task is due.
func (that *Queue) wait() time.Duration {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.tasks.Len() == 0 {
		return idleWait
	}

	return max(time.Until(that.tasks[0].due), 0)
}

func (that *Queue) execute(task item) {
	defer func() {
		if err := recover(); err != nil {
			that.logger.Error("task panicked", "error", fmt.Sprint(err), "seq", task.seq)
		}
	}()

	task.task()
}
