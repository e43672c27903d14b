package constants

// System Priorities (lower runs first), matching the per-tick order
const (
	PriorityMovement  = 10
	PriorityFood      = 20
	PriorityParticle  = 30
	PriorityCollision = 40
	PriorityEat       = 50
)
