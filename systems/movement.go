package systems

import (
	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// MoveSnake advances body one cell along h
// The tail is kept when the new head lands on food, so eating grows the snake by one
// A stationary heading leaves the body unchanged
func MoveSnake(body []components.Point, h components.Heading, food components.Point) ([]components.Point, bool) {
	if h.IsZero() {
		return body, false
	}

	head := body[0].Add(h)
	ate := HasEatenFood(head, food)

	keep := len(body)
	if !ate {
		keep--
	}

	moved := make([]components.Point, 0, keep+1)
	moved = append(moved, head)
	moved = append(moved, body[:keep]...)
	return moved, ate
}

// MovementSystem commits the pending heading and moves the snake
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Priority() int {
	return constants.PriorityMovement
}

func (s *MovementSystem) Update(gs *engine.GameState, res *engine.TickResult) {
	gs.Heading = gs.PendingHeading
	gs.Snake, res.Ate = MoveSnake(gs.Snake, gs.Heading, gs.Food.Position)
}
