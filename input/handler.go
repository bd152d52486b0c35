package input

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

// Handler turns terminal events into game commands
type Handler struct {
	game        *engine.Game
	table       *KeyTable
	defaultMode core.Mode

	onStart      func()      // Runs after every new game, e.g. scheduler wake
	onToggleMute func() bool // Returns new mute state
	onControl    func()      // Runs after intents that emit events outside a tick
}

// NewHandler creates a handler for game, nil table selects the defaults
func NewHandler(game *engine.Game, table *KeyTable) *Handler {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Handler{
		game:  game,
		table: table,
	}
}

// SetDefaultMode selects the mode started by IntentStart
func (h *Handler) SetDefaultMode(mode core.Mode) { h.defaultMode = mode }

// SetStartHook registers fn to run after a new game starts
func (h *Handler) SetStartHook(fn func()) { h.onStart = fn }

// SetMuteToggle registers the sound mute toggle
func (h *Handler) SetMuteToggle(fn func() bool) { h.onToggleMute = fn }

// SetControlHook registers fn to run after start and pause intents
func (h *Handler) SetControlHook(fn func()) { h.onControl = fn }

// HandleEvent processes one terminal event, returns false when the app should quit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	intent, ok := h.table.Lookup(key)
	if !ok {
		return true
	}
	return h.Apply(intent)
}

// Apply executes a resolved intent, returns false on quit
func (h *Handler) Apply(intent Intent) bool {
	switch intent.Type {
	case IntentMove:
		// Ignored by the game unless running and not paused
		h.game.SetDirection(intent.Direction)

	case IntentStart:
		h.start(h.defaultMode)

	case IntentStartClassic:
		h.start(core.ModeClassic)

	case IntentStartNoWalls:
		h.start(core.ModeNoWalls)

	case IntentToggleMenu:
		h.game.ToggleMenu()

	case IntentTogglePause:
		h.game.TogglePause()
		h.control()

	case IntentToggleMute:
		if h.onToggleMute != nil {
			muted := h.onToggleMute()
			log.Printf("sound muted: %v", muted)
		}

	case IntentQuit:
		return false
	}
	return true
}

func (h *Handler) start(mode core.Mode) {
	h.game.Start(mode)
	if h.onStart != nil {
		h.onStart()
	}
	h.control()
}

func (h *Handler) control() {
	if h.onControl != nil {
		h.onControl()
	}
}
