package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/components"
)

// Snapshot is a deep copy of GameState handed to the renderer
type Snapshot struct {
	Snake      []components.Point
	Heading    components.Heading
	Food       components.FoodComponent
	Score      int
	Speed      time.Duration
	Particles  []components.ParticleComponent
	ColorIndex int
	Phase      GamePhase
	Cause      DeathCause
	Ticks      uint64
	Elapsed    time.Duration
	TileCount  int
}

func newSnapshot(gs *GameState, now time.Time) Snapshot {
	snake := make([]components.Point, len(gs.Snake))
	copy(snake, gs.Snake)
	particles := make([]components.ParticleComponent, len(gs.Particles))
	copy(particles, gs.Particles)

	return Snapshot{
		Snake:      snake,
		Heading:    gs.Heading,
		Food:       gs.Food,
		Score:      gs.Score,
		Speed:      gs.Speed,
		Particles:  particles,
		ColorIndex: gs.ColorIndex,
		Phase:      gs.Phase,
		Cause:      gs.Cause,
		Ticks:      gs.Ticks,
		Elapsed:    gs.Elapsed(now),
		TileCount:  gs.TileCount,
	}
}

// Head returns the snake head
func (s Snapshot) Head() components.Point {
	return s.Snake[0]
}
