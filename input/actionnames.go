package input

import (
	"sort"

	"github.com/lixenwraith/vi-snake/core"
)

// actionRegistry maps canonical action names to intents
// Used by the keymap loader to resolve TOML action strings
var actionRegistry = map[string]Intent{
	// Unbind sentinel
	"none": {},

	"move_left":  move(core.DirLeft),
	"move_right": move(core.DirRight),
	"move_up":    move(core.DirUp),
	"move_down":  move(core.DirDown),

	"start":          {Type: IntentStart},
	"start_classic":  {Type: IntentStartClassic},
	"start_no_walls": {Type: IntentStartNoWalls},
	"toggle_menu":    {Type: IntentToggleMenu},
	"toggle_pause":   {Type: IntentTogglePause},
	"toggle_mute":    {Type: IntentToggleMute},
	"quit":           {Type: IntentQuit},
}

// ActionEntry returns the intent for a canonical action name
func ActionEntry(name string) (Intent, bool) {
	intent, ok := actionRegistry[name]
	return intent, ok
}

// ActionNames returns all bindable action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
