package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	Keys map[tcell.Key]Intent

	// Printable rune bindings, letters match either case
	Runes map[rune]Intent
}

func move(d core.Direction) Intent { return Intent{Type: IntentMove, Direction: d} }

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Intent{
			tcell.KeyUp:     move(core.DirUp),
			tcell.KeyDown:   move(core.DirDown),
			tcell.KeyLeft:   move(core.DirLeft),
			tcell.KeyRight:  move(core.DirRight),
			tcell.KeyEnter:  {Type: IntentStart},
			tcell.KeyCtrlS:  {Type: IntentToggleMute},
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
		},

		Runes: map[rune]Intent{
			// vi motions
			'h': move(core.DirLeft),
			'j': move(core.DirDown),
			'k': move(core.DirUp),
			'l': move(core.DirRight),

			// wasd
			'w': move(core.DirUp),
			'a': move(core.DirLeft),
			's': move(core.DirDown),
			'd': move(core.DirRight),

			'1': {Type: IntentStartClassic},
			'2': {Type: IntentStartNoWalls},
			'm': {Type: IntentToggleMenu},
			'p': {Type: IntentTogglePause},
			' ': {Type: IntentTogglePause},
			'q': {Type: IntentQuit},
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Keys:  make(map[tcell.Key]Intent, len(kt.Keys)),
		Runes: make(map[rune]Intent, len(kt.Runes)),
	}
	for k, v := range kt.Keys {
		c.Keys[k] = v
	}
	for r, v := range kt.Runes {
		c.Runes[r] = v
	}
	return c
}

// Lookup resolves a key event, false when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Intent, bool) {
	if ev.Key() != tcell.KeyRune {
		intent, ok := kt.Keys[ev.Key()]
		return intent, ok
	}

	r := ev.Rune()
	// Some terminals report Ctrl+letter as a modified rune
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		if lower := unicode.ToLower(r); lower >= 'a' && lower <= 'z' {
			intent, ok := kt.Keys[tcell.KeyCtrlA+tcell.Key(lower-'a')]
			return intent, ok
		}
	}
	if intent, ok := kt.Runes[r]; ok {
		return intent, true
	}
	if lower := unicode.ToLower(r); lower != r {
		intent, ok := kt.Runes[lower]
		return intent, ok
	}
	return Intent{}, false
}
