package engine

import (
	"sync"
	"time"
)

// TickSource is a one-shot, re-armable tick timer
// The scheduler arms it once per tick, so the period follows the current game speed
type TickSource interface {
	// Schedule arms the source to fire once after d, replacing any pending tick
	Schedule(d time.Duration)
	// C delivers fired ticks
	C() <-chan time.Time
	// Cancel disarms the source and discards an undelivered tick
	Cancel()
}

// TimerTickSource is a TickSource backed by time.Timer
// Not safe for concurrent use; owned by the scheduler goroutine
type TimerTickSource struct {
	timer *time.Timer
}

// NewTimerTickSource creates a disarmed timer source
func NewTimerTickSource() *TimerTickSource {
	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	return &TimerTickSource{timer: timer}
}

func (s *TimerTickSource) Schedule(d time.Duration) {
	s.Cancel()
	s.timer.Reset(d)
}

func (s *TimerTickSource) C() <-chan time.Time {
	return s.timer.C
}

func (s *TimerTickSource) Cancel() {
	if !s.timer.Stop() {
		select {
		case <-s.timer.C:
		default:
		}
	}
}

// ManualTickSource is a TickSource fired explicitly by tests
type ManualTickSource struct {
	mu        sync.Mutex
	c         chan time.Time
	armed     bool
	lastDelay time.Duration
	scheduled int
}

// NewManualTickSource creates a disarmed manual source
func NewManualTickSource() *ManualTickSource {
	return &ManualTickSource{c: make(chan time.Time, 1)}
}

func (m *ManualTickSource) Schedule(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drain()
	m.armed = true
	m.lastDelay = d
	m.scheduled++
}

func (m *ManualTickSource) C() <-chan time.Time {
	return m.c
}

func (m *ManualTickSource) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.armed = false
	m.drain()
}

// Fire delivers one tick if armed, reports whether it fired
func (m *ManualTickSource) Fire() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.armed {
		return false
	}
	m.armed = false
	m.c <- time.Time{}
	return true
}

// Armed reports whether a tick is pending
func (m *ManualTickSource) Armed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.armed
}

// LastDelay returns the delay of the most recent Schedule call
func (m *ManualTickSource) LastDelay() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastDelay
}

// Scheduled returns how many times the source was armed
func (m *ManualTickSource) Scheduled() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scheduled
}

func (m *ManualTickSource) drain() {
	select {
	case <-m.c:
	default:
	}
}
