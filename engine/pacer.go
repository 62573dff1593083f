package engine

import "time"

// Pacer paces the run loop
type Pacer interface {
	// WaitTick blocks until one tick interval has elapsed since the previous WaitTick
	WaitTick()

	// Delay blocks for d unconditionally
	Delay(d time.Duration)
}

// TickPacer sleeps away whatever remains of the tick interval, like a game clock limiting frame rate
// Time spent in Delay counts toward the next tick
type TickPacer struct {
	interval time.Duration
	clock    TimeProvider
	sleep    func(time.Duration)
	last     time.Time
}

// NewTickPacer creates a pacer on the system clock
func NewTickPacer(interval time.Duration) *TickPacer {
	return NewTickPacerWithClock(interval, NewMonotonicTimeProvider(), time.Sleep)
}

// NewTickPacerWithClock creates a pacer on an injected clock and sleep function
func NewTickPacerWithClock(interval time.Duration, clock TimeProvider, sleep func(time.Duration)) *TickPacer {
	return &TickPacer{
		interval: interval,
		clock:    clock,
		sleep:    sleep,
	}
}

// WaitTick implements Pacer
// The first call only starts the clock
func (p *TickPacer) WaitTick() {
	now := p.clock.Now()
	if !p.last.IsZero() {
		if remaining := p.interval - now.Sub(p.last); remaining > 0 {
			p.sleep(remaining)
			now = p.clock.Now()
		}
	}
	p.last = now
}

// Delay implements Pacer
func (p *TickPacer) Delay(d time.Duration) {
	if d > 0 {
		p.sleep(d)
	}
}

// NoopPacer never blocks; off-screen rendering runs as fast as the engine allows
type NoopPacer struct{}

// WaitTick implements Pacer
func (NoopPacer) WaitTick() {}

// Delay implements Pacer
func (NoopPacer) Delay(time.Duration) {}
