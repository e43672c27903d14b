// @focus: #constants { gameplay }
package constants

// Scoring
const (
	// FoodScore is the score awarded per food eaten
	FoodScore = 10
)

// Food Movement
const (
	// FoodMoveDelay is the number of ticks between gated food moves
	FoodMoveDelay = 5

	// FoodTurnChance is the probability of picking a new random heading on a gated move
	FoodTurnChance = 0.1
)

// Particle Burst
const (
	// ParticleBurstCount is the number of particles spawned per eat event
	ParticleBurstCount = 20

	// ParticleMaxSpeedPx is the full width of the random initial velocity range in pixels per tick
	ParticleMaxSpeedPx = 8.0

	// ParticleMinRadiusPx and ParticleRadiusRangePx define the initial radius range in pixels
	ParticleMinRadiusPx   = 2.0
	ParticleRadiusRangePx = 4.0

	// ParticleHueBase and ParticleHueRange define the red/pink hue band in degrees
	ParticleHueBase  = 340.0
	ParticleHueRange = 60.0

	// ParticleAlphaDecay is the per tick opacity multiplier
	ParticleAlphaDecay = 0.92

	// ParticleRadiusDecay is the per tick radius multiplier
	ParticleRadiusDecay = 0.95

	// ParticleMinAlpha is the opacity below which a particle is removed
	ParticleMinAlpha = 0.01
)
