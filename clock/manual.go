package clock

import "sync"

// Manual only ticks when Advance is called
type Manual struct {
	mu      sync.Mutex
	tick    func()
	running bool

	starts, stops int
}

func (clock *Manual) Start(tick func()) {
	clock.mu.Lock()
	defer clock.mu.Unlock()

	clock.tick = tick
	clock.running = true
	clock.starts++
}

func (clock *Manual) Stop() {
	clock.mu.Lock()
	defer clock.mu.Unlock()

	clock.running = false
	clock.stops++
}

// Advance delivers n ticks if the clock is running
func (clock *Manual) Advance(n int) {
	clock.mu.Lock()
	tick, running := clock.tick, clock.running
	clock.mu.Unlock()

	if !running {
		return
	}
	for i := 0; i < n; i++ {
		tick()
	}
}

func (clock *Manual) Running() bool {
	clock.mu.Lock()
	defer clock.mu.Unlock()

	return clock.running
}

// Starts returns how many times the clock was started
func (clock *Manual) Starts() int {
	clock.mu.Lock()
	defer clock.mu.Unlock()

	return clock.starts
}

// Stops returns how many times the clock was stopped
func (clock *Manual) Stops() int {
	clock.mu.Lock()
	defer clock.mu.Unlock()

	return clock.stops
}
