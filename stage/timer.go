package stage

import (
	"sync"
	"time"
)

// Timer offers JavaScript-style delayed and periodic callback execution.
// Every SetTimeout/SetInterval call launches a detached goroutine and returns
// immediately. Stop raises a cooperative cancellation intent shared by all
// tasks started since the last Stop; it is observed at two checkpoints per
// cycle (before and after the wait), so a callback whose wait has already
// elapsed may still run once after Stop returns. Stop never blocks until the
// background goroutine has exited.
//
// The zero value is ready to use. Timer knows nothing about what it invokes.
type Timer struct {
	mu   sync.Mutex
	stop chan struct{}
}

// SetTimeout invokes fn once after delay, unless Stop is called first.
func (t *Timer) SetTimeout(fn func(), delay time.Duration) {
	stop := t.arm()
	go func() {
		select {
		case <-stop:
			return
		case <-time.After(delay):
		}
		select {
		case <-stop:
			return
		default:
		}
		fn()
	}()
}

// SetInterval invokes fn repeatedly with the given interval between
// invocations, until Stop is called.
func (t *Timer) SetInterval(fn func(), interval time.Duration) {
	stop := t.arm()
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
			}
			select {
			case <-stop:
				return
			default:
			}
			fn()
		}
	}()
}

// Stop signals every task started since the last Stop to exit at its next
// checkpoint. Calling Stop on an idle timer is a no-op; the timer can be
// reused afterwards.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

// arm returns the stop channel shared by the current activation, creating it
// after a Stop. Channel close gives the memory-visibility guarantee the
// cancellation flag needs.
func (t *Timer) arm() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop == nil {
		t.stop = make(chan struct{})
	}
	return t.stop
}
