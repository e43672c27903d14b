package systems

import (
	"time"

	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// HasEatenFood reports whether the head sits on the food cell
func HasEatenFood(head, food components.Point) bool {
	return head == food
}

// NextSpeed shortens the tick interval by one step, not below floor
func NextSpeed(speed, step, floor time.Duration) time.Duration {
	return max(speed-step, floor)
}

// NextColorIndex advances a palette index cyclically
func NextColorIndex(index, size int) int {
	return (index + 1) % size
}

// EatSystem applies the rewards of an eat event
// Growth already happened in MovementSystem by keeping the tail
type EatSystem struct {
	world *engine.World
}

func NewEatSystem(world *engine.World) *EatSystem {
	return &EatSystem{world: world}
}

func (s *EatSystem) Priority() int {
	return constants.PriorityEat
}

func (s *EatSystem) Update(gs *engine.GameState, res *engine.TickResult) {
	if !res.Ate {
		return
	}

	rules := s.world.Rules()
	rng := s.world.Rand()

	gs.Score += constants.FoodScore
	gs.Particles = Burst(gs.Particles, gs.Food.Position, rng)
	gs.ColorIndex = NextColorIndex(gs.ColorIndex, len(constants.BackgroundPalette))

	food, ok := GenerateFood(gs.Snake, gs.TileCount, rng)
	gs.Food = food
	gs.Speed = NextSpeed(gs.Speed, rules.SpeedStep, rules.MinSpeed)

	if !ok && gs.TransitionPhase(engine.PhaseGameOver, s.world.Clock().Now()) {
		gs.Cause = engine.CauseBoardFull
	}
}
