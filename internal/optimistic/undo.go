package optimistic

import (
	"context"
	"sync"

	"github.com/jonboulle/clockwork"
)

// Undo is a single-shot, time-limited reversal of an insert or delete.
// It expires after the coordinator's undo window or when a later
// insert/delete replaces it.
type Undo struct {
	action  func()
	timer   clockwork.Timer
	label   string
	mu      sync.Mutex
	used    bool
	expired bool
}

// Label returns the description shown next to the undo affordance
func (u *Undo) Label() string {
	return u.label
}

// Active reports whether Invoke would still do something
func (u *Undo) Active() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return !u.used && !u.expired
}

// Invoke runs the undo action once. Later calls, and calls after expiry,
// return false and do nothing.
func (u *Undo) Invoke() bool {
	u.mu.Lock()
	if u.used || u.expired {
		u.mu.Unlock()
		return false
	}
	u.used = true
	if u.timer != nil {
		u.timer.Stop()
	}
	action := u.action
	u.mu.Unlock()

	action()
	return true
}

func (u *Undo) expire() {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.expired = true
	if u.timer != nil {
		u.timer.Stop()
	}
}

func (u *Undo) setTimer(t clockwork.Timer) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.timer = t
}

// Pending is the caller's handle on one mutation
type Pending struct {
	done    chan struct{}
	undo    *Undo
	err     error
	outcome Outcome
	once    sync.Once
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

func (p *Pending) finish(outcome Outcome, err error) {
	p.once.Do(func() {
		p.outcome = outcome
		p.err = err
		close(p.done)
	})
}

// Done is closed once the mutation is settled, reverted, skipped or rejected
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the mutation finishes or ctx is done.
// The returned error is the mutation's error (nil when settled or skipped).
func (p *Pending) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Outcome returns OutcomePending until the mutation finishes
func (p *Pending) Outcome() Outcome {
	select {
	case <-p.done:
		return p.outcome
	default:
		return OutcomePending
	}
}

// Err returns the mutation's error, nil while pending
func (p *Pending) Err() error {
	select {
	case <-p.done:
		return p.err
	default:
		return nil
	}
}

// Undo returns the undo affordance registered by an insert or delete, or nil
func (p *Pending) Undo() *Undo {
	return p.undo
}
