package components

// ParticleComponent is a cosmetic burst particle in cell space
// X, Y are fractional cell coordinates; VX, VY are cells per tick
type ParticleComponent struct {
	X, Y   float64
	VX, VY float64
	Alpha  float64 // Opacity 1.0 → 0.0
	Radius float64 // Cells
	Hue    float64 // Degrees, may exceed 360
}
