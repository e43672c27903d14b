package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-snake/status"
)

// System is one step of the tick pipeline
type System interface {
	Update(gs *GameState, res *TickResult)
	Priority() int // Lower values run first
}

// TickResult reports what happened during one tick or restart
type TickResult struct {
	Tick      uint64
	Ate       bool
	GameOver  bool
	Cause     DeathCause
	Score     int
	Restarted bool
}

// World owns the game state, the random source and the tick pipeline
type World struct {
	mu          sync.RWMutex // guards systems
	updateMutex sync.Mutex   // serializes ticks, restarts and input

	state   *GameState
	rules   Rules
	systems []System
	rng     Rand
	clock   TimeProvider

	statusReg   *status.Registry
	statTicks   *atomic.Int64
	statFood    *atomic.Int64
	statGames   *atomic.Int64
	statRestart *atomic.Int64
	statLast    *atomic.Int64
	statDeaths  map[DeathCause]*atomic.Int64
}

// NewWorld creates a world in startup state
func NewWorld(rules Rules, rng Rand, clock TimeProvider, reg *status.Registry) *World {
	return &World{
		state:       NewGameState(rules, clock.Now()),
		rules:       rules,
		rng:         rng,
		clock:       clock,
		statusReg:   reg,
		statTicks:   reg.Ints.Get(status.KeyTicks),
		statFood:    reg.Ints.Get(status.KeyFoodEaten),
		statGames:   reg.Ints.Get(status.KeyGamesPlayed),
		statRestart: reg.Ints.Get(status.KeyRestarts),
		statLast:    reg.Ints.Get(status.KeyLastScore),
		statDeaths: map[DeathCause]*atomic.Int64{
			CauseWall:      reg.Ints.Get(status.KeyDeathsWall),
			CauseSelf:      reg.Ints.Get(status.KeyDeathsSelf),
			CauseBoardFull: reg.Ints.Get(status.KeyDeathsFull),
		},
	}
}

// AddSystem registers a system, keeping the pipeline sorted by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Insertion sort, stable for equal priorities
	for i := len(w.systems) - 1; i > 0 && w.systems[i-1].Priority() > w.systems[i].Priority(); i-- {
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns a copy of the registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Rules returns the game parameters
func (w *World) Rules() Rules {
	return w.rules
}

// Rand returns the random source; only use it while holding the update lock
func (w *World) Rand() Rand {
	return w.rng
}

// Clock returns the time provider
func (w *World) Clock() TimeProvider {
	return w.clock
}

// Status returns the metrics registry
func (w *World) Status() *status.Registry {
	return w.statusReg
}

// RunSafe runs fn with exclusive access to the game state
func (w *World) RunSafe(fn func(gs *GameState)) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn(w.state)
}

// Tick runs the pipeline once
// A finished life is terminal: the state is left untouched until Restart
func (w *World) Tick() TickResult {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()

	gs := w.state
	if gs.Phase == PhaseGameOver {
		return TickResult{Tick: gs.Ticks, GameOver: true, Cause: gs.Cause, Score: gs.Score}
	}

	gs.Ticks++
	res := TickResult{Tick: gs.Ticks}

	for _, system := range w.Systems() {
		system.Update(gs, &res)
		if gs.Phase == PhaseGameOver {
			break
		}
	}

	res.Score = gs.Score
	res.GameOver = gs.Phase == PhaseGameOver
	res.Cause = gs.Cause

	w.statTicks.Add(1)
	if res.Ate {
		w.statFood.Add(1)
	}
	if res.GameOver {
		w.statGames.Add(1)
		w.statLast.Store(int64(gs.Score))
		w.statusReg.StoreMax(status.KeyBestScore, int64(gs.Score))
		if ptr, ok := w.statDeaths[gs.Cause]; ok {
			ptr.Add(1)
		}
	}

	return res
}

// Restart reinitializes the state to startup values
func (w *World) Restart() TickResult {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()

	w.state.Reset(w.rules, w.clock.Now())
	w.statRestart.Add(1)
	return TickResult{Restarted: true}
}

// Speed returns the delay before the next tick
func (w *World) Speed() time.Duration {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	return w.state.Speed
}

// Phase returns the current phase
func (w *World) Phase() GamePhase {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	return w.state.Phase
}

// Snapshot returns a deep copy of the state for rendering
func (w *World) Snapshot() Snapshot {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	return newSnapshot(w.state, w.clock.Now())
}
