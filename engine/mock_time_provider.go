package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a manually driven clock for tests
// Time is stored as an offset from the start so reads need no lock
type MockTimeProvider struct {
	start  time.Time
	offset atomic.Int64 // nanoseconds since start
}

// NewMockTimeProvider creates a clock frozen at start until advanced
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start}
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	return m.start.Add(time.Duration(m.offset.Load()))
}

// SetTime jumps the clock to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.offset.Store(int64(t.Sub(m.start)))
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.offset.Add(int64(d))
}
