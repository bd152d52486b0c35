package engine

import (
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// Snake is the ordered body from head (index 0) to tail
type Snake struct {
	Parts     []core.Point
	Direction core.Direction // Committed heading, updated after each move
}

// NewSnake lays out length parts from head towards +X, heading left
func NewSnake(head core.Point, length int) *Snake {
	parts := make([]core.Point, 0, length)
	for i := 0; i < length; i++ {
		parts = append(parts, core.Point{X: head.X + i, Y: head.Y})
	}
	return &Snake{
		Parts:     parts,
		Direction: core.DirLeft,
	}
}

// Head returns the first part
func (s *Snake) Head() core.Point {
	return s.Parts[0]
}

// Tail returns the last part
func (s *Snake) Tail() core.Point {
	return s.Parts[len(s.Parts)-1]
}

// Len returns the number of parts
func (s *Snake) Len() int {
	return len(s.Parts)
}

// PushHead prepends a new head
func (s *Snake) PushHead(p core.Point) {
	s.Parts = append(s.Parts, core.Point{})
	copy(s.Parts[1:], s.Parts)
	s.Parts[0] = p
}

// PopTail removes and returns the last part
func (s *Snake) PopTail() core.Point {
	tail := s.Parts[len(s.Parts)-1]
	s.Parts = s.Parts[:len(s.Parts)-1]
	return tail
}

// startHead picks the spawn cell, the classic (8,8) when it fits or centered otherwise
func startHead(size int) core.Point {
	if constants.StartX+constants.StartLength <= size && constants.StartY < size {
		return core.Point{X: constants.StartX, Y: constants.StartY}
	}
	return core.Point{X: (size - constants.StartLength) / 2, Y: size / 2}
}
