package engine

import (
	"log"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine/status"
	"github.com/lixenwraith/vi-snake/events"
)

// Phase is the lifecycle state of a game
type Phase uint8

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String implements fmt.Stringer
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// TickOutcome reports what a single Tick did
type TickOutcome uint8

const (
	OutcomeIdle     TickOutcome = iota // Not running or paused
	OutcomeMoved                       // Head advanced, tail followed
	OutcomeAte                         // Head reached fruit, snake grew
	OutcomeGameOver                    // Collision or full board
	OutcomeStale                       // Generation changed, a new game started
)

// ScoreKeeper persists the best score across games
type ScoreKeeper interface {
	Retrieve() int
	Submit(score int) (bool, error)
}

// GameConfig holds construction parameters, zero values select defaults
type GameConfig struct {
	BoardSize    int
	Mode         core.Mode // Shown before the first Start
	Rand         *rand.Rand
	Scores       ScoreKeeper
	Queue        *events.EventQueue
	Status       *status.Registry
	TimeProvider TimeProvider

	// TickInterval maps score to step delay, defaults to constants.TickIntervalForScore
	TickInterval func(score int) time.Duration

	// NewID generates game identifiers, defaults to uuid.NewString
	NewID func() string
}

// Game owns the simulation state; all mutation goes through its methods
type Game struct {
	mu  sync.RWMutex
	cfg GameConfig

	board *core.Board
	snake *Snake
	rng   *rand.Rand
	clock *PausableClock
	queue *events.EventQueue

	phase    Phase
	mode     core.Mode
	pending  core.Direction // Direction applied on next tick
	fruit    core.Point
	hasFruit bool

	score    int
	best     int
	newBest  bool
	menu     bool
	interval time.Duration

	id         string
	generation uint64
	ticks      uint64
	cause      events.GameOverCause
	flashUntil time.Time
	playTime   time.Duration

	statFruits   *atomic.Int64
	statGames    *atomic.Int64
	statInterval *status.AtomicFloat
}

// NewGame creates an idle game with a cleared board
func NewGame(cfg GameConfig) *Game {
	switch {
	case cfg.BoardSize <= 0:
		cfg.BoardSize = constants.DefaultBoardSize
	case cfg.BoardSize < constants.MinBoardSize:
		cfg.BoardSize = constants.MinBoardSize
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Queue == nil {
		cfg.Queue = events.NewEventQueue()
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}
	if cfg.TimeProvider == nil {
		cfg.TimeProvider = NewMonotonicTimeProvider()
	}
	if cfg.TickInterval == nil {
		cfg.TickInterval = constants.TickIntervalForScore
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}

	g := &Game{
		cfg:          cfg,
		board:        core.NewBoard(cfg.BoardSize),
		rng:          cfg.Rand,
		clock:        NewPausableClock(cfg.TimeProvider),
		queue:        cfg.Queue,
		phase:        PhaseNotStarted,
		mode:         cfg.Mode,
		pending:      core.DirLeft,
		interval:     cfg.TickInterval(0),
		statFruits:   cfg.Status.Ints.Get("game.fruits"),
		statGames:    cfg.Status.Ints.Get("game.games"),
		statInterval: cfg.Status.Floats.Get("game.interval_ms"),
	}
	g.statInterval.Set(float64(g.interval.Milliseconds()))

	if cfg.Scores != nil {
		g.best = cfg.Scores.Retrieve()
	}

	return g
}

// Queue returns the event queue the game publishes to
func (g *Game) Queue() *events.EventQueue {
	return g.queue
}

// Start begins a new game in mode, superseding any game in progress
func (g *Game) Start(mode core.Mode) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.generation++
	g.ticks = 0
	g.id = g.cfg.NewID()
	g.mode = mode
	g.menu = false
	g.newBest = false
	g.score = 0
	g.pending = core.DirLeft
	g.interval = g.cfg.TickInterval(0)
	g.flashUntil = time.Time{}
	g.playTime = 0
	g.statInterval.Set(float64(g.interval.Milliseconds()))

	g.board.Reset()
	g.snake = NewSnake(startHead(g.board.Size()), constants.StartLength)
	for _, p := range g.snake.Parts {
		g.board.Set(p)
	}
	g.placeFruitLocked()

	g.clock.Reset()
	g.phase = PhaseRunning
	g.statGames.Add(1)

	g.emit(events.EventGameStarted, &events.GameStartedPayload{ID: g.id, Mode: mode})
	log.Printf("game %s started: mode=%s board=%d best=%d", g.id, mode, g.board.Size(), g.best)
}

// SetDirection queues d for the next tick
// Rejected when it reverses the committed direction or no game is running
func (g *Game) SetDirection(d core.Direction) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseRunning || g.clock.IsPaused() {
		return false
	}
	if d == g.snake.Direction.Opposite() {
		return false
	}
	g.pending = d
	return true
}

// Tick advances the simulation by one step
func (g *Game) Tick() TickOutcome {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tickLocked()
}

// TickGeneration steps only if no Start happened since generation was read
// Returns OutcomeStale without touching state otherwise
func (g *Game) TickGeneration(generation uint64) TickOutcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	if generation != g.generation {
		return OutcomeStale
	}
	return g.tickLocked()
}

func (g *Game) tickLocked() TickOutcome {
	if g.phase != PhaseRunning || g.clock.IsPaused() {
		return OutcomeIdle
	}
	g.ticks++

	head := g.snake.Head().Add(g.pending.Delta())

	if g.mode == core.ModeNoWalls {
		head = g.board.Wrap(head)
	} else if !g.board.InBounds(head) {
		g.gameOverLocked(events.CauseWall)
		return OutcomeGameOver
	}

	// Tail has not moved yet, so its cell still counts
	if g.board.Occupied(head) {
		g.gameOverLocked(events.CauseSelf)
		return OutcomeGameOver
	}

	ate := g.hasFruit && head == g.fruit
	if !ate {
		g.board.Clear(g.snake.PopTail())
	}

	g.snake.PushHead(head)
	g.board.Set(head)
	g.snake.Direction = g.pending

	if !ate {
		return OutcomeMoved
	}

	g.score++
	g.statFruits.Add(1)
	g.emit(events.EventFruitEaten, &events.FruitEatenPayload{Score: g.score, At: head})

	if next := g.cfg.TickInterval(g.score); next < g.interval {
		g.interval = next
		g.statInterval.Set(float64(next.Milliseconds()))
		g.emit(events.EventSpeedUp, &events.SpeedUpPayload{Interval: next})
	}

	if !g.placeFruitLocked() {
		g.gameOverLocked(events.CauseBoardFull)
		return OutcomeGameOver
	}
	return OutcomeAte
}

// placeFruitLocked puts the fruit on a free cell, false when the board is full
func (g *Game) placeFruitLocked() bool {
	size := g.board.Size()
	for i := 0; i < constants.FruitSpawnAttempts; i++ {
		p := core.Point{X: g.rng.Intn(size), Y: g.rng.Intn(size)}
		if !g.board.Occupied(p) {
			g.fruit = p
			g.hasFruit = true
			return true
		}
	}

	// Dense board: pick uniformly among what is left
	free := g.board.FreeCells()
	if len(free) == 0 {
		g.hasFruit = false
		return false
	}
	g.fruit = free[g.rng.Intn(len(free))]
	g.hasFruit = true
	return true
}

// gameOverLocked ends the running game and records the best score
func (g *Game) gameOverLocked(cause events.GameOverCause) {
	g.phase = PhaseGameOver
	g.cause = cause
	g.playTime = g.clock.Elapsed()
	g.flashUntil = g.clock.RealTime().Add(constants.GameOverFlashDuration)

	if g.score > g.best {
		previous := g.best
		g.best = g.score
		g.newBest = true
		if g.cfg.Scores != nil {
			if _, err := g.cfg.Scores.Submit(g.score); err != nil {
				log.Printf("game %s: best score not saved: %v", g.id, err)
			}
		}
		g.emit(events.EventNewBestScore, &events.NewBestScorePayload{Score: g.score, Previous: previous})
	}

	g.emit(events.EventGameOver, &events.GameOverPayload{
		ID:    g.id,
		Score: g.score,
		Cause: cause,
		Ticks: g.ticks,
	})

	g.board.Reset()
	log.Printf("game %s over: cause=%s score=%d ticks=%d best=%d", g.id, cause, g.score, g.ticks, g.best)
}

// ToggleMenu flips mode menu visibility
func (g *Game) ToggleMenu() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.menu = !g.menu
	return g.menu
}

// TogglePause pauses or resumes a running game, returns the new pause state
func (g *Game) TogglePause() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseRunning {
		return false
	}
	if g.clock.IsPaused() {
		g.clock.Resume()
	} else {
		g.clock.Pause()
	}
	paused := g.clock.IsPaused()
	g.emit(events.EventPauseToggled, &events.PausePayload{Paused: paused})
	return paused
}

// Interval returns the current tick delay
func (g *Game) Interval() time.Duration {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.interval
}

// Generation increments on every Start, lets the scheduler drop stale timers
func (g *Game) Generation() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.generation
}

// Phase returns the lifecycle state
func (g *Game) Phase() Phase {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.phase
}

// MenuVisible returns whether the mode menu is shown
func (g *Game) MenuVisible() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.menu
}

// Score returns the current score
func (g *Game) Score() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.score
}

// Best returns the best score known to this game
func (g *Game) Best() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.best
}

// emit publishes an event; caller holds g.mu
func (g *Game) emit(t events.EventType, payload any) {
	g.queue.Push(events.GameEvent{
		Type:      t,
		Payload:   payload,
		Timestamp: g.clock.RealTime(),
	})
}
