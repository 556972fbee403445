package search

import (
	"sync"
	"time"
)

// DefaultQuiescence is how long input must be stable before the query is
// re-evaluated.
const DefaultQuiescence = 250 * time.Millisecond

// Debouncer coalesces rapid-fire query updates: Update restarts the
// quiescence timer, and fn fires once with the final value after input
// has been quiet for the interval.
type Debouncer struct {
	d  time.Duration
	fn func(query string)

	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(d time.Duration, fn func(query string)) *Debouncer {
	if d <= 0 {
		d = DefaultQuiescence
	}
	return &Debouncer{d: d, fn: fn}
}

func (db *Debouncer) Update(query string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.timer != nil {
		db.timer.Stop()
	}
	db.timer = time.AfterFunc(db.d, func() {
		db.fn(query)
	})
}

// Stop cancels any pending evaluation.
func (db *Debouncer) Stop() {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.timer != nil {
		db.timer.Stop()
		db.timer = nil
	}
}
