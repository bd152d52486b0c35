package constants

// Board geometry
const (
	// DefaultBoardSize is the side length of the square board in cells
	DefaultBoardSize = 18

	// MinBoardSize and MaxBoardSize bound the configurable board size
	MinBoardSize = 8
	MaxBoardSize = 64

	// StartX, StartY is the head cell of a new snake on a default board
	StartX = 8
	StartY = 8

	// StartLength is the number of parts of a new snake
	StartLength = 3
)

// Fruit placement
const (
	// FruitSpawnAttempts bounds rejection sampling before falling back to a free-cell scan
	FruitSpawnAttempts = 64
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 64

	// EventBufferMask is the bitmask for fast modulo operations (64 - 1)
	EventBufferMask = 63
)
