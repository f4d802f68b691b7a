//go:build !tinygo

package core

import (
	"context"
	"errors"
	"sync"
	"time"
)

// HostTicker is a TickSource backed by a goroutine and time.Ticker.
// Used by the simulator and tests on regular Go.
type HostTicker struct {
	ctx     context.Context
	mu      sync.Mutex
	started bool
	boot    time.Time
	done    chan struct{}
}

// NewHostTicker creates a ticker that stops when ctx is cancelled
func NewHostTicker(ctx context.Context) *HostTicker {
	return &HostTicker{ctx: ctx, done: make(chan struct{})}
}

// Start begins ticking. Calling it twice is an error.
func (t *HostTicker) Start(periodUS uint32, handler TickHandler) error {
	if periodUS == 0 {
		return errors.New("tick period must be non-zero")
	}
	if handler == nil {
		return errors.New("tick handler is nil")
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return errors.New("tick source already started")
	}
	t.started = true
	t.boot = time.Now()

	go t.run(time.Duration(periodUS)*time.Microsecond, handler)
	return nil
}

// Done is closed once the ticker goroutine exits
func (t *HostTicker) Done() <-chan struct{} {
	return t.done
}

func (t *HostTicker) run(period time.Duration, handler TickHandler) {
	defer close(t.done)

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-t.ctx.Done():
			return
		case <-ticker.C:
			now := uint32(time.Since(t.boot).Milliseconds())
			SetTime(now)
			handler(now)
		}
	}
}
