package parallel

import (
	"sync"
	"sync/atomic"
)

// Tracker counts completed work units and reports them to an optional
// callback. Safe for concurrent Step calls from multiple workers.
//
// The completed count is an atomic, but the report path additionally holds a
// small mutex and drops reports that would move backwards: two workers can
// otherwise increment in one order and invoke the callback in the other.
// Observers therefore only ever see the count increase.
type Tracker struct {
	total int
	fn    func(done, total int)

	done atomic.Int64

	mu       sync.Mutex
	reported int64
}

// NewTracker creates a tracker for total units reporting to fn. A nil fn
// disables reporting; counting still works.
func NewTracker(total int, fn func(done, total int)) *Tracker {
	return &Tracker{total: total, fn: fn}
}

// Step records k more completed units and reports the new count unless a
// higher count has already been reported.
func (t *Tracker) Step(k int) {
	n := t.done.Add(int64(k))
	if t.fn == nil {
		return
	}
	t.mu.Lock()
	if n > t.reported {
		t.reported = n
		t.fn(int(n), t.total)
	}
	t.mu.Unlock()
}

// Done returns the number of completed units so far.
func (t *Tracker) Done() int {
	return int(t.done.Load())
}
