package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine/status"
	"github.com/lixenwraith/vi-snake/events"
)

// ClockScheduler advances the game on a self-rescheduling timer
// Each delay is read from Game.Interval after the previous tick, so speed-ups apply immediately
// A change in Game.Generation discards the pending delay and restarts the chain
type ClockScheduler struct {
	game *Game

	// Tick counter for debugging and metrics
	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
	wakeChan chan struct{}

	// Send signal that a tick changed state
	updateDone chan struct{}

	// Event routing, dispatch serialized between loop and callers
	eventRouter *events.Router
	dispatchMu  sync.Mutex

	// Cached metric pointers
	statTicks *atomic.Int64
}

// NewClockScheduler creates a scheduler for game
// Returns the updateDone channel, signalled after every tick that was not idle
func NewClockScheduler(game *Game, statusReg *status.Registry) (*ClockScheduler, <-chan struct{}) {
	if statusReg == nil {
		statusReg = status.NewRegistry()
	}
	updateDone := make(chan struct{}, 1)

	cs := &ClockScheduler{
		game:        game,
		stopChan:    make(chan struct{}),
		wakeChan:    make(chan struct{}, 1),
		updateDone:  updateDone,
		eventRouter: events.NewRouter(game.Queue()),
		statTicks:   statusReg.Ints.Get("engine.ticks"),
	}

	return cs, updateDone
}

// RegisterEventHandler adds an event handler to router, must be called before Start()
func (cs *ClockScheduler) RegisterEventHandler(handler events.Handler) {
	cs.eventRouter.Register(handler)
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// Wake restarts the timer chain with the game's current interval
// Called after Game.Start so the first step lands one full interval later
func (cs *ClockScheduler) Wake() {
	select {
	case cs.wakeChan <- struct{}{}:
	default:
	}
}

// TickCount returns the number of ticks that changed state
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// DispatchEventsImmediately routes all queued events to handlers
// Safe to call from the input goroutine for events raised outside a tick
func (cs *ClockScheduler) DispatchEventsImmediately() int {
	cs.dispatchMu.Lock()
	defer cs.dispatchMu.Unlock()
	return cs.eventRouter.DispatchAll()
}

// schedulerLoop runs one timer per tick, rearmed with the latest interval
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	generation := cs.game.Generation()
	timer := time.NewTimer(cs.game.Interval())
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return

		case <-cs.wakeChan:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			generation = cs.game.Generation()
			timer.Reset(cs.game.Interval())

		case <-timer.C:
			// Generation is compared again under the game lock, a Start racing this fire is caught there
			if cs.processTick(generation) == OutcomeStale {
				// Armed for a previous game, give the new one a full interval
				generation = cs.game.Generation()
			}
			timer.Reset(cs.game.Interval())
		}
	}
}

// processTick steps the game for generation and dispatches whatever it emitted
func (cs *ClockScheduler) processTick(generation uint64) TickOutcome {
	outcome := cs.game.TickGeneration(generation)
	cs.DispatchEventsImmediately()

	if outcome == OutcomeIdle || outcome == OutcomeStale {
		return outcome
	}

	cs.tickCount.Add(1)
	cs.statTicks.Add(1)

	select {
	case cs.updateDone <- struct{}{}:
	default:
	}
	return outcome
}
