package constants

import "time"

// Game Loop Timing Constants
const (
	// InitialGameSpeed is the tick interval at the start of every life
	InitialGameSpeed = 100 * time.Millisecond

	// SpeedStep is how much the tick interval shrinks per food eaten
	SpeedStep = 2 * time.Millisecond

	// MinGameSpeed is the floor of the tick interval
	MinGameSpeed = 50 * time.Millisecond
)

// Grid Constants
const (
	// GridSize is the pixel size of one cell, particle speeds and radii are given in pixels
	GridSize = 20

	// TileCount is the number of cells along each axis of the square board
	TileCount = 20

	// StartX, StartY is the single starting segment of the snake
	StartX = 10
	StartY = 10

	// FoodStartX, FoodStartY is the fixed food position at the start of every life
	FoodStartX = 15
	FoodStartY = 15

	// MinTileCount keeps both start positions on the board
	MinTileCount = 16
	MaxTileCount = 40
)
