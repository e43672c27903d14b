package systems

import (
	"math"
	"testing"

	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// TestBurst_SpawnsCenteredParticles verifies burst size, origin and initial ranges
func TestBurst_SpawnsCenteredParticles(t *testing.T) {
	rng := engine.NewRand(7)
	particles := Burst(nil, components.Point{X: 6, Y: 5}, rng)

	if len(particles) != constants.ParticleBurstCount {
		t.Fatalf("Expected %d particles, got %d", constants.ParticleBurstCount, len(particles))
	}

	maxV := constants.ParticleMaxSpeedPx / 2 / constants.GridSize
	minR := constants.ParticleMinRadiusPx / constants.GridSize
	maxR := (constants.ParticleMinRadiusPx + constants.ParticleRadiusRangePx) / constants.GridSize

	for i, p := range particles {
		if p.X != 6.5 || p.Y != 5.5 {
			t.Errorf("Particle %d at (%f,%f), want cell center (6.5,5.5)", i, p.X, p.Y)
		}
		if math.Abs(p.VX) > maxV || math.Abs(p.VY) > maxV {
			t.Errorf("Particle %d velocity (%f,%f) exceeds %f", i, p.VX, p.VY, maxV)
		}
		if p.Alpha != 1 {
			t.Errorf("Particle %d alpha %f, want 1", i, p.Alpha)
		}
		if p.Radius < minR || p.Radius >= maxR {
			t.Errorf("Particle %d radius %f outside [%f,%f)", i, p.Radius, minR, maxR)
		}
		if p.Hue < constants.ParticleHueBase || p.Hue >= constants.ParticleHueBase+constants.ParticleHueRange {
			t.Errorf("Particle %d hue %f outside band", i, p.Hue)
		}
	}
}

// TestUpdateParticle_Decay verifies motion and per tick decay factors
func TestUpdateParticle_Decay(t *testing.T) {
	p := components.ParticleComponent{X: 1, Y: 2, VX: 0.1, VY: -0.2, Alpha: 1, Radius: 0.2}

	got := UpdateParticle(p)

	if math.Abs(got.X-1.1) > 1e-9 || math.Abs(got.Y-1.8) > 1e-9 {
		t.Errorf("Position = (%f,%f), want (1.1,1.8)", got.X, got.Y)
	}
	if math.Abs(got.Alpha-0.92) > 1e-9 {
		t.Errorf("Alpha = %f, want 0.92", got.Alpha)
	}
	if math.Abs(got.Radius-0.19) > 1e-9 {
		t.Errorf("Radius = %f, want 0.19", got.Radius)
	}
}

// TestUpdateParticles_Expiry verifies a particle survives 55 ticks and is pruned on the 56th
func TestUpdateParticles_Expiry(t *testing.T) {
	particles := []components.ParticleComponent{{Alpha: 1, Radius: 0.2}}

	for i := 1; i <= 55; i++ {
		particles = UpdateParticles(particles)
		if len(particles) != 1 {
			t.Fatalf("Particle pruned early at tick %d", i)
		}
	}

	particles = UpdateParticles(particles)
	if len(particles) != 0 {
		t.Errorf("Expected particle pruned at tick 56, alpha %f", particles[0].Alpha)
	}
}

// TestUpdateParticles_KeepsOrder verifies survivors keep their relative order
func TestUpdateParticles_KeepsOrder(t *testing.T) {
	particles := []components.ParticleComponent{
		{X: 1, Alpha: 1},
		{X: 2, Alpha: 0.0105},
		{X: 3, Alpha: 1},
	}

	got := UpdateParticles(particles)

	if len(got) != 2 {
		t.Fatalf("Expected 2 survivors, got %d", len(got))
	}
	if got[0].X != 1 || got[1].X != 3 {
		t.Errorf("Survivors out of order: %v", got)
	}
}

func TestExpired(t *testing.T) {
	if Expired(components.ParticleComponent{Alpha: constants.ParticleMinAlpha}) {
		t.Error("Alpha at threshold should not be expired")
	}
	if !Expired(components.ParticleComponent{Alpha: constants.ParticleMinAlpha / 2}) {
		t.Error("Alpha below threshold should be expired")
	}
}
