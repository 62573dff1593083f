package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a manually advanced clock for pacing tests
// Sleep advances the clock instead of blocking, so a TickPacer built on it runs instantly
type MockTimeProvider struct {
	mu      sync.Mutex
	current time.Time
	slept   []time.Duration
}

// NewMockTimeProvider creates a mock clock starting at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{current: start}
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Advance moves the clock forward, simulating work between ticks
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}

// Sleep records the requested duration and advances the clock by it
func (m *MockTimeProvider) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slept = append(m.slept, d)
	m.current = m.current.Add(d)
}

// Slept returns every duration passed to Sleep, in order
func (m *MockTimeProvider) Slept() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.slept...)
}
