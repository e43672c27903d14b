package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/status"
)

// scriptedRand replays fixed values; exhausted ints yield 0 and exhausted floats yield 0.5
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

var testStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestWorld builds a world with the full pipeline, a mock clock and rng
func newTestWorld(t *testing.T, rng engine.Rand) (*engine.World, *engine.MockTimeProvider, *status.Registry) {
	t.Helper()
	clock := engine.NewMockTimeProvider(testStart)
	reg := status.NewRegistry()
	world := engine.NewWorld(engine.DefaultRules(), rng, clock, reg)
	RegisterAll(world)
	return world, clock, reg
}

func pts(coords ...int) []components.Point {
	out := make([]components.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, components.Point{X: coords[i], Y: coords[i+1]})
	}
	return out
}

func equalBodies(a, b []components.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
