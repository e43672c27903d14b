package engine

import (
	"math/rand/v2"
	"time"
)

// Rand is the random source used for food placement, food turns and particles
type Rand interface {
	// Intn returns a value in [0, n)
	Intn(n int) int
	// Float64 returns a value in [0.0, 1.0)
	Float64() float64
}

// pcgRand adapts math/rand/v2 to Rand
type pcgRand struct {
	r *rand.Rand
}

// NewRand returns a seeded source, seed 0 derives a seed from the clock
func NewRand(seed uint64) Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &pcgRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *pcgRand) Intn(n int) int {
	return p.r.IntN(n)
}

func (p *pcgRand) Float64() float64 {
	return p.r.Float64()
}
