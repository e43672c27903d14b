// Package status holds process-wide game counters shared by the tick loop, the renderer and the exit summary
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys
const (
	KeyTicks       = "game.ticks"
	KeyFoodEaten   = "game.food_eaten"
	KeyGamesPlayed = "game.games_played"
	KeyBestScore   = "game.best_score"
	KeyLastScore   = "game.last_score"
	KeyDeathsWall  = "game.deaths.wall"
	KeyDeathsSelf  = "game.deaths.self"
	KeyDeathsFull  = "game.deaths.board_full"
	KeyRestarts    = "game.restarts"
	KeyAudio       = "audio.enabled"
	KeyMuted       = "audio.muted"
)

// Registry is the metrics facade
// Owners cache pointers at construction; hot paths write atomics directly
type Registry struct {
	Bools *MetricMap[atomic.Bool]
	Ints  *MetricMap[atomic.Int64]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools: NewMetricMap[atomic.Bool](),
		Ints:  NewMetricMap[atomic.Int64](),
	}
}

// TotalCount returns the number of metrics of all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count()
}

// StoreMax raises the int metric at key to v if v is larger
func (r *Registry) StoreMax(key string, v int64) {
	ptr := r.Ints.Get(key)
	for {
		cur := ptr.Load()
		if v <= cur || ptr.CompareAndSwap(cur, v) {
			return
		}
	}
}

// Int returns the current value of the int metric at key
func (r *Registry) Int(key string) int64 {
	return r.Ints.Get(key).Load()
}

// Bool returns the current value of the bool metric at key
func (r *Registry) Bool(key string) bool {
	return r.Bools.Get(key).Load()
}

// String renders all metrics as sorted key=value pairs for the debug line and log
func (r *Registry) String() string {
	var parts []string
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", key, ptr.Load()))
	})
	r.Bools.Range(func(key string, ptr *atomic.Bool) {
		parts = append(parts, fmt.Sprintf("%s=%t", key, ptr.Load()))
	})
	return strings.Join(parts, " ")
}
