package input

import "github.com/lixenwraith/vi-snake/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Gameplay
	IntentMove // Arrows, hjkl, wasd

	// Game control
	IntentStart        // Enter, starts the configured default mode
	IntentStartClassic // 1
	IntentStartNoWalls // 2
	IntentToggleMenu   // m
	IntentTogglePause  // p, Space

	// System-level intents
	IntentToggleMute // Ctrl+S
	IntentQuit       // q, Esc, Ctrl+C
)

var intentNames = map[IntentType]string{
	IntentNone:         "None",
	IntentMove:         "Move",
	IntentStart:        "Start",
	IntentStartClassic: "StartClassic",
	IntentStartNoWalls: "StartNoWalls",
	IntentToggleMenu:   "ToggleMenu",
	IntentTogglePause:  "TogglePause",
	IntentToggleMute:   "ToggleMute",
	IntentQuit:         "Quit",
}

// String implements fmt.Stringer
func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Intent is a resolved key press
type Intent struct {
	Type      IntentType
	Direction core.Direction // Valid for IntentMove
}
