package constants

import (
	"testing"
	"time"
)

// TestTickIntervalForScore verifies the speed-up schedule matches expected values
func TestTickIntervalForScore(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		expected time.Duration
	}{
		{name: "Zero score", score: 0, expected: 150 * time.Millisecond},
		{name: "Below first step", score: 4, expected: 150 * time.Millisecond},
		{name: "First step", score: 5, expected: 135 * time.Millisecond},
		{name: "Second step", score: 14, expected: 120 * time.Millisecond},
		{name: "Near floor", score: 40, expected: 30 * time.Millisecond},
		{name: "Clamped", score: 500, expected: MinTickInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := TickIntervalForScore(tt.score)
			if actual != tt.expected {
				t.Errorf("Expected interval %v, got %v", tt.expected, actual)
			}
		})
	}
}

// TestEventBufferMask verifies mask matches queue size
func TestEventBufferMask(t *testing.T) {
	if EventQueueSize&(EventQueueSize-1) != 0 {
		t.Fatalf("EventQueueSize %d must be a power of two", EventQueueSize)
	}
	if EventBufferMask != EventQueueSize-1 {
		t.Errorf("Expected mask %d, got %d", EventQueueSize-1, EventBufferMask)
	}
}

// TestBoardBounds verifies the default board fits the start snake
func TestBoardBounds(t *testing.T) {
	if DefaultBoardSize < MinBoardSize || DefaultBoardSize > MaxBoardSize {
		t.Errorf("DefaultBoardSize %d outside [%d, %d]", DefaultBoardSize, MinBoardSize, MaxBoardSize)
	}
	if StartX+StartLength > DefaultBoardSize {
		t.Errorf("Start snake does not fit default board")
	}
}
