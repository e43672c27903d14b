package engine

import (
	"sync"
	"sync/atomic"
)

// ClockScheduler drives World ticks from a TickSource
// Each tick re-arms the source with the current game speed; a finished life is not re-armed
type ClockScheduler struct {
	world  *World
	source TickSource

	// Tick counter across lives
	tickCount atomic.Uint64

	// Control channels
	stopChan  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	running   atomic.Bool
	resetChan chan struct{}

	// Results of processed ticks and restarts, for rendering and sound
	updates chan TickResult

	// Crash handler for the scheduler goroutine, nil re-panics
	crashHandler func(any)
}

// NewClockScheduler creates a stopped scheduler
func NewClockScheduler(world *World, source TickSource, bufferSize int) *ClockScheduler {
	return &ClockScheduler{
		world:     world,
		source:    source,
		stopChan:  make(chan struct{}),
		resetChan: make(chan struct{}, 1),
		updates:   make(chan TickResult, bufferSize),
	}
}

// SetCrashHandler installs the panic handler for the scheduler goroutine, must be called before Start()
func (cs *ClockScheduler) SetCrashHandler(handler func(any)) {
	cs.crashHandler = handler
}

// Updates delivers a TickResult per processed tick or restart
// Results are dropped when the consumer falls behind
func (cs *ClockScheduler) Updates() <-chan TickResult {
	return cs.updates
}

// TickCount returns the number of ticks processed since Start
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		go func() {
			if cs.crashHandler != nil {
				defer func() {
					if r := recover(); r != nil {
						cs.crashHandler(r)
					}
				}()
			}
			cs.schedulerLoop()
		}()
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// Restart requests a reset of the game, the pending tick is cancelled first
// Repeated requests before the loop services them collapse into one
func (cs *ClockScheduler) Restart() {
	select {
	case cs.resetChan <- struct{}{}:
	default:
	}
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()
	defer cs.source.Cancel()

	if cs.world.Phase() == PhaseRunning {
		cs.source.Schedule(cs.world.Speed())
	}

	for {
		select {
		case <-cs.stopChan:
			return

		case <-cs.resetChan:
			cs.source.Cancel()
			cs.publish(cs.world.Restart())
			cs.source.Schedule(cs.world.Speed())

		case <-cs.source.C():
			res := cs.world.Tick()
			cs.tickCount.Add(1)
			cs.publish(res)

			if !res.GameOver {
				cs.source.Schedule(cs.world.Speed())
			}
		}
	}
}

func (cs *ClockScheduler) publish(res TickResult) {
	select {
	case cs.updates <- res:
	default:
	}
}
