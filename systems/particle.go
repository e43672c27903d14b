package systems

import (
	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// NewParticle creates one burst particle at cell-space position x, y
// Velocity and radius are drawn in canvas pixels and scaled into cells
func NewParticle(x, y float64, rng engine.Rand) components.ParticleComponent {
	return components.ParticleComponent{
		X:      x,
		Y:      y,
		VX:     (rng.Float64() - 0.5) * constants.ParticleMaxSpeedPx / constants.GridSize,
		VY:     (rng.Float64() - 0.5) * constants.ParticleMaxSpeedPx / constants.GridSize,
		Alpha:  1,
		Radius: (rng.Float64()*constants.ParticleRadiusRangePx + constants.ParticleMinRadiusPx) / constants.GridSize,
		Hue:    rng.Float64()*constants.ParticleHueRange + constants.ParticleHueBase,
	}
}

// Burst appends a full burst centered on cell to particles
func Burst(particles []components.ParticleComponent, cell components.Point, rng engine.Rand) []components.ParticleComponent {
	cx := float64(cell.X) + 0.5
	cy := float64(cell.Y) + 0.5
	for i := 0; i < constants.ParticleBurstCount; i++ {
		particles = append(particles, NewParticle(cx, cy, rng))
	}
	return particles
}

// UpdateParticle advances p by one tick
func UpdateParticle(p components.ParticleComponent) components.ParticleComponent {
	p.X += p.VX
	p.Y += p.VY
	p.Alpha *= constants.ParticleAlphaDecay
	p.Radius *= constants.ParticleRadiusDecay
	return p
}

// Expired reports whether p has faded out
func Expired(p components.ParticleComponent) bool {
	return p.Alpha < constants.ParticleMinAlpha
}

// UpdateParticles advances every particle and drops the faded ones in place
func UpdateParticles(particles []components.ParticleComponent) []components.ParticleComponent {
	kept := particles[:0]
	for _, p := range particles {
		p = UpdateParticle(p)
		if !Expired(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

// ParticleSystem animates burst particles; it never touches gameplay state
type ParticleSystem struct{}

func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

func (s *ParticleSystem) Priority() int {
	return constants.PriorityParticle
}

func (s *ParticleSystem) Update(gs *engine.GameState, res *engine.TickResult) {
	gs.Particles = UpdateParticles(gs.Particles)
}
