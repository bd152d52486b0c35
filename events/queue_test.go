package events

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
)

// TestEventQueueBasic tests basic push and consume operations
func TestEventQueueBasic(t *testing.T) {
	eq := NewEventQueue()

	event1 := GameEvent{Type: EventGameStarted, Payload: "test1", Timestamp: time.Now()}
	event2 := GameEvent{Type: EventFruitEaten, Payload: "test2", Timestamp: time.Now()}
	event3 := GameEvent{Type: EventGameOver, Payload: "test3", Timestamp: time.Now()}

	eq.Push(event1)
	eq.Push(event2)
	eq.Push(event3)

	// First consume should return all 3 events
	events := eq.Consume()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}

	// Verify events are in FIFO order
	if events[0].Type != EventGameStarted || events[0].Payload != "test1" {
		t.Errorf("Event 1 mismatch: got type=%v, payload=%v", events[0].Type, events[0].Payload)
	}
	if events[1].Type != EventFruitEaten || events[1].Payload != "test2" {
		t.Errorf("Event 2 mismatch: got type=%v, payload=%v", events[1].Type, events[1].Payload)
	}
	if events[2].Type != EventGameOver || events[2].Payload != "test3" {
		t.Errorf("Event 3 mismatch: got type=%v, payload=%v", events[2].Type, events[2].Payload)
	}

	// Second consume should return empty slice
	if events2 := eq.Consume(); len(events2) != 0 {
		t.Errorf("Expected 0 events on second consume, got %d", len(events2))
	}
}

// TestEventQueueOverflow verifies oldest events are dropped when full
func TestEventQueueOverflow(t *testing.T) {
	eq := NewEventQueue()
	extra := 10

	for i := 0; i < constants.EventQueueSize+extra; i++ {
		eq.Push(GameEvent{Type: EventFruitEaten, Payload: i})
	}

	events := eq.Consume()
	if len(events) != constants.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", constants.EventQueueSize, len(events))
	}

	if first := events[0].Payload.(int); first != extra {
		t.Errorf("Expected oldest surviving payload %d, got %d", extra, first)
	}
	if last := events[len(events)-1].Payload.(int); last != constants.EventQueueSize+extra-1 {
		t.Errorf("Expected newest payload %d, got %d", constants.EventQueueSize+extra-1, last)
	}
}

// TestEventQueueConcurrent tests concurrent push operations from multiple goroutines
func TestEventQueueConcurrent(t *testing.T) {
	eq := NewEventQueue()
	numGoroutines := 6
	eventsPerGoroutine := 10
	totalEvents := numGoroutines * eventsPerGoroutine

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(goroutineID int) {
			defer wg.Done()
			for j := 0; j < eventsPerGoroutine; j++ {
				eq.Push(GameEvent{
					Type:      EventFruitEaten,
					Payload:   goroutineID*100 + j,
					Timestamp: time.Now(),
				})
			}
		}(i)
	}

	wg.Wait()

	events := eq.Consume()
	if len(events) != totalEvents {
		t.Fatalf("Expected %d events, got %d", totalEvents, len(events))
	}

	seen := make(map[int]bool, totalEvents)
	for _, ev := range events {
		v := ev.Payload.(int)
		if seen[v] {
			t.Errorf("Duplicate payload %d", v)
		}
		seen[v] = true
	}
}

func TestEventTypeString(t *testing.T) {
	if EventGameOver.String() != "GameOver" {
		t.Errorf("Expected GameOver, got %s", EventGameOver.String())
	}
	if EventType(999).String() != "Unknown" {
		t.Errorf("Expected Unknown for unregistered type")
	}
	if CauseBoardFull.String() != "board full" {
		t.Errorf("Unexpected cause string %q", CauseBoardFull.String())
	}
}
