package optimistic

import (
	"context"
	"sync"
)

// inflight counts running remote calls. Unlike sync.WaitGroup, add may be
// called while wait is blocked: undo compensations start from timers and
// user actions at any moment.
type inflight struct {
	idle  chan struct{} // закрывается, когда count падает до нуля
	mu    sync.Mutex
	count int
}

func (f *inflight) add() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.count == 0 {
		f.idle = make(chan struct{})
	}
	f.count++
}

func (f *inflight) done() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.count == 0 {
		panic("optimistic: inflight done without add")
	}
	f.count--
	if f.count == 0 {
		close(f.idle)
	}
}

func (f *inflight) running() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.count
}

// wait blocks until no call is running. A call started while waiting
// is waited for too.
func (f *inflight) wait(ctx context.Context) error {
	for {
		f.mu.Lock()
		if f.count == 0 {
			f.mu.Unlock()
			return nil
		}
		idle := f.idle
		f.mu.Unlock()

		select {
		case <-idle:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
