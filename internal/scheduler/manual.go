package scheduler

import (
	"container/heap"
	"sync"
	"time"
)

// Manual is a Scheduler driven by a virtual clock. Nothing runs until Advance is called.
type Manual struct {
	mu    sync.Mutex
	now   time.Time
	tasks taskHeap
	seq   uint64
}

func NewManual() *Manual {
	return &Manual{
		now: time.Unix(0, 0),
	}
}

func (that *Manual) After(delay time.Duration, task func()) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.seq++
	heap.Push(&that.tasks, item{due: that.now.Add(delay), seq: that.seq, task: task})
}

// Advance - moves the clock forward by d, running every task that becomes due on the way, in order.
// Tasks added by a running task are picked up if they fall inside the window.
func (that *Manual) Advance(d time.Duration) {
	that.mu.Lock()
	target := that.now.Add(d)
	that.mu.Unlock()

	for {
		that.mu.Lock()
		task, ok := that.tasks.popDue(target)
		if !ok {
			that.now = target
			that.mu.Unlock()
			return
		}
		that.now = task.due
		that.mu.Unlock()

		task.task()
	}
}

// RunAll - advances the clock until no task is left.
func (that *Manual) RunAll() {
	for {
		that.mu.Lock()
		if that.tasks.Len() == 0 {
			that.mu.Unlock()
			return
		}
		wait := that.tasks[0].due.Sub(that.now)
		that.mu.Unlock()

		that.Advance(wait)
	}
}

// Pending - number of tasks waiting to run.
func (that *Manual) Pending() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.tasks.Len()
}

// Elapsed - virtual time passed since creation.
func (that *Manual) Elapsed() time.Duration {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.now.Sub(time.Unix(0, 0))
}
