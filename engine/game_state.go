package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/constants"
)

// GameState is the single mutable state of one life
// Owned by World; mutate only inside World.RunSafe or from a System during a tick
type GameState struct {
	// Snake cells, head at index 0
	Snake []components.Point

	// Heading is the direction committed by the last movement step
	// PendingHeading is the latest accepted input, committed at the next tick
	Heading        components.Heading
	PendingHeading components.Heading

	Food components.FoodComponent

	Score int

	// Speed is the delay before the next tick
	Speed time.Duration

	Particles []components.ParticleComponent

	// ColorIndex points into constants.BackgroundPalette
	ColorIndex int

	Phase GamePhase
	Cause DeathCause

	// Ticks processed in this life
	Ticks uint64

	StartTime time.Time
	EndTime   time.Time

	TileCount int
}

// NewGameState creates the startup state for rules
func NewGameState(rules Rules, now time.Time) *GameState {
	gs := &GameState{}
	gs.Reset(rules, now)
	return gs
}

// Reset reinitializes every field to startup values
func (gs *GameState) Reset(rules Rules, now time.Time) {
	*gs = GameState{
		Snake: []components.Point{{X: constants.StartX, Y: constants.StartY}},
		Food: components.FoodComponent{
			Position:  components.Point{X: constants.FoodStartX, Y: constants.FoodStartY},
			MoveDelay: constants.FoodMoveDelay,
		},
		Speed:     rules.InitialSpeed,
		Particles: make([]components.ParticleComponent, 0, constants.ParticleBurstCount),
		Phase:     PhaseRunning,
		StartTime: now,
		TileCount: rules.TileCount,
	}
}

// Head returns the snake head
func (gs *GameState) Head() components.Point {
	return gs.Snake[0]
}

// TransitionPhase moves to phase to if legal, reports success
func (gs *GameState) TransitionPhase(to GamePhase, now time.Time) bool {
	if !CanTransition(gs.Phase, to) {
		return false
	}
	gs.Phase = to
	if to == PhaseGameOver {
		gs.EndTime = now
	}
	return true
}

// Elapsed returns the life duration, frozen at game over
func (gs *GameState) Elapsed(now time.Time) time.Duration {
	if gs.Phase == PhaseGameOver {
		return gs.EndTime.Sub(gs.StartTime)
	}
	return now.Sub(gs.StartTime)
}
