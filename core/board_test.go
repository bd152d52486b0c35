package core

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	size := 18
	board := NewBoard(size)

	if board.Size() != size {
		t.Errorf("Expected size %d, got %d", size, board.Size())
	}

	// Verify all cells start free
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if board.Occupied(Point{X: x, Y: y}) {
				t.Errorf("Expected cell at (%d, %d) to be free", x, y)
			}
		}
	}

	if board.Count() != 0 {
		t.Errorf("Expected count 0, got %d", board.Count())
	}
}

func TestBoardSetClear(t *testing.T) {
	board := NewBoard(10)
	p := Point{X: 3, Y: 7}

	board.Set(p)
	if !board.Occupied(p) {
		t.Error("Expected cell to be occupied after Set")
	}
	if board.Count() != 1 {
		t.Errorf("Expected count 1, got %d", board.Count())
	}

	// Double set must not double count
	board.Set(p)
	if board.Count() != 1 {
		t.Errorf("Expected count 1 after repeated Set, got %d", board.Count())
	}

	// Transposed coordinate stays free
	if board.Occupied(Point{X: 7, Y: 3}) {
		t.Error("Expected transposed cell to be free")
	}

	board.Clear(p)
	if board.Occupied(p) {
		t.Error("Expected cell to be free after Clear")
	}
	if board.Count() != 0 {
		t.Errorf("Expected count 0, got %d", board.Count())
	}

	board.Clear(p)
	if board.Count() != 0 {
		t.Errorf("Expected count 0 after repeated Clear, got %d", board.Count())
	}
}

func TestBoardOutOfBounds(t *testing.T) {
	board := NewBoard(5)

	tests := []Point{
		{X: -1, Y: 0},
		{X: 0, Y: -1},
		{X: 5, Y: 0},
		{X: 0, Y: 5},
		{X: 100, Y: 100},
	}

	for _, p := range tests {
		if board.InBounds(p) {
			t.Errorf("Expected %v to be out of bounds", p)
		}
		// Should not panic
		board.Set(p)
		board.Clear(p)
		if board.Occupied(p) {
			t.Errorf("Expected out-of-bounds %v to read as free", p)
		}
	}

	if board.Count() != 0 {
		t.Errorf("Out-of-bounds writes changed count to %d", board.Count())
	}
}

func TestBoardReset(t *testing.T) {
	board := NewBoard(4)
	for i := 0; i < 4; i++ {
		board.Set(Point{X: i, Y: i})
	}

	board.Reset()

	if board.Count() != 0 {
		t.Errorf("Expected count 0 after Reset, got %d", board.Count())
	}
	for i := 0; i < 4; i++ {
		if board.Occupied(Point{X: i, Y: i}) {
			t.Errorf("Expected (%d, %d) free after Reset", i, i)
		}
	}
}

func TestBoardFreeCells(t *testing.T) {
	board := NewBoard(3)
	board.Set(Point{X: 0, Y: 0})
	board.Set(Point{X: 1, Y: 1})

	free := board.FreeCells()
	if len(free) != 7 {
		t.Fatalf("Expected 7 free cells, got %d", len(free))
	}

	// Row-major ordering
	if free[0] != (Point{X: 1, Y: 0}) {
		t.Errorf("Expected first free cell (1,0), got %v", free[0])
	}
	for _, p := range free {
		if board.Occupied(p) {
			t.Errorf("FreeCells returned occupied cell %v", p)
		}
	}

	for _, p := range free {
		board.Set(p)
	}
	if !board.Full() {
		t.Error("Expected board to be full")
	}
	if len(board.FreeCells()) != 0 {
		t.Error("Expected no free cells on full board")
	}
}

func TestBoardClone(t *testing.T) {
	board := NewBoard(4)
	board.Set(Point{X: 2, Y: 1})

	clone := board.Clone()
	board.Clear(Point{X: 2, Y: 1})
	board.Set(Point{X: 0, Y: 0})

	if !clone.Occupied(Point{X: 2, Y: 1}) {
		t.Error("Clone lost occupied cell after source mutation")
	}
	if clone.Occupied(Point{X: 0, Y: 0}) {
		t.Error("Clone picked up source mutation")
	}
	if clone.Count() != 1 {
		t.Errorf("Expected clone count 1, got %d", clone.Count())
	}
}

func TestBoardWrap(t *testing.T) {
	board := NewBoard(18)

	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"inside unchanged", Point{X: 5, Y: 5}, Point{X: 5, Y: 5}},
		{"right edge", Point{X: 18, Y: 3}, Point{X: 0, Y: 3}},
		{"left edge", Point{X: -1, Y: 3}, Point{X: 17, Y: 3}},
		{"bottom edge", Point{X: 4, Y: 18}, Point{X: 4, Y: 0}},
		{"top edge", Point{X: 4, Y: -1}, Point{X: 4, Y: 17}},
		{"corner", Point{X: -1, Y: 18}, Point{X: 17, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := board.Wrap(tt.in)
			if got != tt.want {
				t.Errorf("Wrap(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
