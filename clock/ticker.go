// Package clock provides game.Clock implementations.
package clock

import (
	"sync"
	"time"
)

// Ticker calls its tick callback every interval from its own goroutine
type Ticker struct {
	interval time.Duration

	mu   sync.Mutex
	done chan struct{}
}

func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{interval: interval}
}

func (clock *Ticker) Start(tick func()) {
	clock.mu.Lock()
	defer clock.mu.Unlock()

	clock.stopLocked()

	done := make(chan struct{})
	clock.done = done

	go func() {
		ticker := time.NewTicker(clock.interval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				tick()
			}
		}
	}()
}

// Stop signals the ticking goroutine without waiting for it to exit
func (clock *Ticker) Stop() {
	clock.mu.Lock()
	defer clock.mu.Unlock()

	clock.stopLocked()
}

func (clock *Ticker) stopLocked() {
	if clock.done != nil {
		close(clock.done)
		clock.done = nil
	}
}
