package systems

import "github.com/lixenwraith/vi-snake/engine"

// RegisterAll adds the full tick pipeline to world
func RegisterAll(world *engine.World) {
	world.AddSystem(NewMovementSystem())
	world.AddSystem(NewFoodSystem(world))
	world.AddSystem(NewParticleSystem())
	world.AddSystem(NewCollisionSystem(world))
	world.AddSystem(NewEatSystem(world))
}
