package systems

import (
	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// CheckCollision reports whether the head left the board or overlaps the body
func CheckCollision(body []components.Point, tileCount int) (engine.DeathCause, bool) {
	head := body[0]
	if !head.InBounds(tileCount) {
		return engine.CauseWall, true
	}
	if components.Contains(body[1:], head) {
		return engine.CauseSelf, true
	}
	return engine.CauseNone, false
}

// CollisionSystem ends the life on wall or self collision
type CollisionSystem struct {
	world *engine.World
}

func NewCollisionSystem(world *engine.World) *CollisionSystem {
	return &CollisionSystem{world: world}
}

func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

func (s *CollisionSystem) Update(gs *engine.GameState, res *engine.TickResult) {
	cause, hit := CheckCollision(gs.Snake, gs.TileCount)
	if !hit {
		return
	}
	if gs.TransitionPhase(engine.PhaseGameOver, s.world.Clock().Now()) {
		gs.Cause = cause
	}
}
