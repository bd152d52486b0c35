package core

import "fmt"

// Mode selects board edge behavior
type Mode uint8

const (
	// ModeClassic ends the game when the head leaves the board
	ModeClassic Mode = iota
	// ModeNoWalls wraps the head to the opposite edge
	ModeNoWalls
)

// Modes lists all modes in menu order
var Modes = []Mode{ModeClassic, ModeNoWalls}

// String returns the mode's config name
func (m Mode) String() string {
	switch m {
	case ModeClassic:
		return "classic"
	case ModeNoWalls:
		return "no_walls"
	default:
		return "unknown"
	}
}

// Label returns the human-readable mode name
func (m Mode) Label() string {
	switch m {
	case ModeClassic:
		return "Classic"
	case ModeNoWalls:
		return "No walls"
	default:
		return "Unknown"
	}
}

// ParseMode resolves a config name, empty string defaults to classic
func ParseMode(name string) (Mode, error) {
	switch name {
	case "", "classic":
		return ModeClassic, nil
	case "no_walls", "nowalls", "no-walls":
		return ModeNoWalls, nil
	default:
		return ModeClassic, fmt.Errorf("unknown mode %q", name)
	}
}
