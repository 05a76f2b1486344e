package scheduler

import (
	"container/heap"
	"time"
)

// Scheduler runs deferred tasks one at a time, ordered by due time and then by the order they were added.
type Scheduler interface {
	After(delay time.Duration, task func())
}

type item struct {
	due  time.Time
	seq  uint64
	task func()
}

// taskHeap - min-heap on (due, seq).
type taskHeap []item

func (that taskHeap) Len() int { return len(that) }

func (that taskHeap) Less(i, j int) bool {
	if that[i].due.Equal(that[j].due) {
		return that[i].seq < that[j].seq
	}
	return that[i].due.Before(that[j].due)
}

func (that taskHeap) Swap(i, j int) { that[i], that[j] = that[j], that[i] }

func (that *taskHeap) Push(x any) {
	*that = append(*that, x.(item))
}

func (that *taskHeap) Pop() any {
	old := *that
	last := old[len(old)-1]
	old[len(old)-1] = item{}
	*that = old[:len(old)-1]
	return last
}

// popDue - removes and returns the earliest task if it is due at now.
func (that *taskHeap) popDue(now time.Time) (item, bool) {
	if that.Len() == 0 || (*that)[0].due.After(now) {
		return item{}, false
	}
	return heap.Pop(that).(item), true
}
