package service

import (
	"sync"
	"time"
)

// DefaultSearchDebounce is the quiet period before a search runs.
const DefaultSearchDebounce = 300 * time.Millisecond

// Debouncer delays calls per key so that only the last one scheduled within the delay runs.
type Debouncer struct {
	delay    time.Duration
	dispatch func(fn func())

	mu     sync.Mutex
	timers map[int64]*time.Timer
	gens   map[int64]uint64
}

// NewDebouncer creates a debouncer. dispatch decides where fired callbacks run;
// nil runs them on the timer goroutine.
func NewDebouncer(delay time.Duration, dispatch func(fn func())) *Debouncer {
	if delay <= 0 {
		delay = DefaultSearchDebounce
	}
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Debouncer{
		delay:    delay,
		dispatch: dispatch,
		timers:   make(map[int64]*time.Timer),
		gens:     make(map[int64]uint64),
	}
}

// Schedule cancels the pending call for key and schedules fn after the delay.
func (d *Debouncer) Schedule(key int64, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.timers[key]; ok {
		t.Stop()
	}

	d.gens[key]++
	gen := d.gens[key]

	d.timers[key] = time.AfterFunc(d.delay, func() {
		if !d.fire(key, gen) {
			return
		}
		d.dispatch(func() {
			// A newer call may have been scheduled while this one was queued.
			if d.current(key, gen) {
				fn()
			}
		})
	})
}

// Cancel drops the pending call for key, if any.
func (d *Debouncer) Cancel(key int64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.timers[key]; ok {
		t.Stop()
		delete(d.timers, key)
	}
	d.gens[key]++
}

// Stop cancels every pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for key, t := range d.timers {
		t.Stop()
		delete(d.timers, key)
		d.gens[key]++
	}
}

// fire releases the timer of key and reports whether gen is still the latest call.
func (d *Debouncer) fire(key int64, gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.gens[key] != gen {
		return false
	}
	delete(d.timers, key)
	return true
}

func (d *Debouncer) current(key int64, gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gens[key] == gen
}
