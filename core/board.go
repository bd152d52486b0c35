package core

// Board is a square occupancy grid indexed [y][x]
// Tracks cells covered by the snake body for O(1) self-collision checks
type Board struct {
	size  int
	cells [][]bool
	count int
}

// NewBoard creates an empty board with the given side length
func NewBoard(size int) *Board {
	if size < 0 {
		size = 0
	}
	cells := make([][]bool, size)
	for y := 0; y < size; y++ {
		cells[y] = make([]bool, size)
	}
	return &Board{
		size:  size,
		cells: cells,
	}
}

// Size returns the side length
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether p lies on the board
func (b *Board) InBounds(p Point) bool {
	return p.X >= 0 && p.X < b.size && p.Y >= 0 && p.Y < b.size
}

// Occupied returns true if p is covered, false for out-of-bounds positions
func (b *Board) Occupied(p Point) bool {
	if !b.InBounds(p) {
		return false
	}
	return b.cells[p.Y][p.X]
}

// Set marks p as covered, ignored when out of bounds
func (b *Board) Set(p Point) {
	if !b.InBounds(p) || b.cells[p.Y][p.X] {
		return
	}
	b.cells[p.Y][p.X] = true
	b.count++
}

// Clear marks p as free, ignored when out of bounds
func (b *Board) Clear(p Point) {
	if !b.InBounds(p) || !b.cells[p.Y][p.X] {
		return
	}
	b.cells[p.Y][p.X] = false
	b.count--
}

// Reset frees every cell
func (b *Board) Reset() {
	for y := 0; y < b.size; y++ {
		row := b.cells[y]
		for x := range row {
			row[x] = false
		}
	}
	b.count = 0
}

// Count returns the number of covered cells
func (b *Board) Count() int {
	return b.count
}

// Full returns true when no free cell remains
func (b *Board) Full() bool {
	return b.count >= b.size*b.size
}

// FreeCells returns all uncovered positions in row-major order
func (b *Board) FreeCells() []Point {
	free := make([]Point, 0, b.size*b.size-b.count)
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if !b.cells[y][x] {
				free = append(free, Point{X: x, Y: y})
			}
		}
	}
	return free
}

// Clone returns an independent copy
func (b *Board) Clone() *Board {
	c := NewBoard(b.size)
	for y := 0; y < b.size; y++ {
		copy(c.cells[y], b.cells[y])
	}
	c.count = b.count
	return c
}

// Wrap folds an out-of-bounds position back onto the board by one step per axis
func (b *Board) Wrap(p Point) Point {
	switch p.X {
	case b.size:
		p.X = 0
	case -1:
		p.X = b.size - 1
	}
	switch p.Y {
	case b.size:
		p.Y = 0
	case -1:
		p.Y = b.size - 1
	}
	return p
}
