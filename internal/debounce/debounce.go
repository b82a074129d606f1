// Package debounce delays an action until its trigger has been quiet for a fixed period.
package debounce

import (
	"sync"
	"time"
)

// Handle is a scheduled action that has not run yet
type Handle interface {
	// Cancel stops the action. It returns false if the action already ran or was canceled.
	Cancel() bool
}

// Scheduler runs an action once after a delay
type Scheduler interface {
	Schedule(delay time.Duration, action func()) Handle
}

// TimerScheduler schedules with time.AfterFunc
type TimerScheduler struct{}

func (TimerScheduler) Schedule(delay time.Duration, action func()) Handle {
	return timerHandle{time.AfterFunc(delay, action)}
}

type timerHandle struct {
	t *time.Timer
}

func (h timerHandle) Cancel() bool {
	return h.t.Stop()
}

// Debouncer holds at most one pending call of its action. Every Trigger cancels the
// pending call and schedules a new one with the latest argument.
type Debouncer[T any] struct {
	delay     time.Duration
	action    func(T)
	scheduler Scheduler

	mu      sync.Mutex
	pending Handle
	arg     T
	seq     uint64
}

// Option configures a Debouncer
type Option func(*options)

type options struct {
	scheduler Scheduler
}

// WithScheduler replaces the timer-backed scheduler
func WithScheduler(s Scheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}

// New creates a Debouncer that runs action after delay of inactivity
func New[T any](delay time.Duration, action func(T), opts ...Option) *Debouncer[T] {
	o := options{scheduler: TimerScheduler{}}
	for _, opt := range opts {
		opt(&o)
	}
	return &Debouncer[T]{
		delay:     delay,
		action:    action,
		scheduler: o.scheduler,
	}
}

// Trigger (re)starts the quiet period; arg replaces any earlier pending argument
func (d *Debouncer[T]) Trigger(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		d.pending.Cancel()
	}
	d.seq++
	seq := d.seq
	d.arg = arg
	d.pending = d.scheduler.Schedule(d.delay, func() {
		d.fire(seq)
	})
}

// fire runs the action if seq is still the latest trigger. A timer that lost the
// race with Cancel must not run a superseded call.
func (d *Debouncer[T]) fire(seq uint64) {
	d.mu.Lock()
	if seq != d.seq || d.pending == nil {
		d.mu.Unlock()
		return
	}
	arg := d.arg
	d.pending = nil
	d.mu.Unlock()

	d.action(arg)
}

// Pending reports whether a call is scheduled
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Flush runs the pending call now, if there is one
func (d *Debouncer[T]) Flush() {
	d.mu.Lock()
	if d.pending == nil {
		d.mu.Unlock()
		return
	}
	d.pending.Cancel()
	d.pending = nil
	d.seq++
	arg := d.arg
	d.mu.Unlock()

	d.action(arg)
}

// Stop drops the pending call without running it
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		d.pending.Cancel()
		d.pending = nil
	}
	d.seq++
}

// Func wraps action in a Debouncer and returns its Trigger
func Func[T any](delay time.Duration, action func(T)) func(T) {
	return New(delay, action).Trigger
}
