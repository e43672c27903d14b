package components

// FoodComponent is the roaming food item
// MoveCounter counts ticks since the last gated move; a move is attempted when it reaches MoveDelay
type FoodComponent struct {
	Position    Point
	Heading     Heading
	MoveCounter int
	MoveDelay   int
}
