package core

// Point represents a 2D grid coordinate
type Point struct {
	X, Y int
}

// Add returns p translated by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction is a heading on the grid
type Direction uint8

const (
	DirLeft Direction = iota
	DirUp
	DirRight
	DirDown
)

var directionDeltas = [...]Point{
	DirLeft:  {X: -1, Y: 0},
	DirUp:    {X: 0, Y: -1},
	DirRight: {X: 1, Y: 0},
	DirDown:  {X: 0, Y: 1},
}

var directionNames = [...]string{
	DirLeft:  "left",
	DirUp:    "up",
	DirRight: "right",
	DirDown:  "down",
}

// Delta returns the unit step for the direction, zero for invalid values
func (d Direction) Delta() Point {
	if int(d) >= len(directionDeltas) {
		return Point{}
	}
	return directionDeltas[d]
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// String implements fmt.Stringer
func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return "invalid"
	}
	return directionNames[d]
}
