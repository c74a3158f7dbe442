// internal/session/timer.go
package session

import (
	"sync"
	"time"
)

// Timer is a cancellable periodic task. Ticks are delivered on C until Stop is
// called, after which C is closed. A slow reader never causes ticks to queue up.
type Timer struct {
	C <-chan time.Time

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// NewTimer starts a timer firing every period
func NewTimer(period time.Duration) *Timer {
	out := make(chan time.Time)
	t := &Timer{
		C:    out,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go func() {
		defer close(t.done)
		defer close(out)

		ticker := time.NewTicker(period)
		defer ticker.Stop()

		for {
			select {
			case <-t.stop:
				return
			case now := <-ticker.C:
				select {
				case out <- now:
				case <-t.stop:
					return
				}
			}
		}
	}()

	return t
}

// Stop cancels the timer. Calling it more than once is a no-op.
func (t *Timer) Stop() {
	if t == nil {
		return
	}
	t.once.Do(func() { close(t.stop) })
	<-t.done
}

// Stopped reports whether the timer goroutine has exited
func (t *Timer) Stopped() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}
