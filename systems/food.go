package systems

import (
	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// MoveFood runs one tick of food motion
// Every MoveDelay ticks the food may turn, bounces off walls per axis, and stays put rather than enter a snake cell
func MoveFood(food components.FoodComponent, body []components.Point, tileCount int, rng engine.Rand) components.FoodComponent {
	food.MoveCounter++
	if food.MoveCounter < food.MoveDelay {
		return food
	}
	food.MoveCounter = 0

	if rng.Float64() < constants.FoodTurnChance {
		food.Heading = randomHeading(rng)
	}

	next := food.Position.Add(food.Heading)

	if next.X < 0 || next.X >= tileCount {
		food.Heading.DX = -food.Heading.DX
		next.X = food.Position.X
	}
	if next.Y < 0 || next.Y >= tileCount {
		food.Heading.DY = -food.Heading.DY
		next.Y = food.Position.Y
	}

	if !components.Contains(body, next) {
		food.Position = next
	}
	return food
}

// GenerateFood places fresh food on a random free cell with a random heading
// Returns false when the snake covers the whole board
func GenerateFood(body []components.Point, tileCount int, rng engine.Rand) (components.FoodComponent, bool) {
	// MoveCounter starts at zero so new food waits a full delay before moving
	food := components.FoodComponent{
		Position:  components.Point{X: rng.Intn(tileCount), Y: rng.Intn(tileCount)},
		Heading:   randomHeading(rng),
		MoveDelay: constants.FoodMoveDelay,
	}

	if len(body) >= tileCount*tileCount {
		return food, false
	}

	// Rejection sampling, bounded so a crowded board falls back to a scan
	for attempts := 0; components.Contains(body, food.Position); attempts++ {
		if attempts >= tileCount*tileCount {
			cell, ok := randomFreeCell(body, tileCount, rng)
			if !ok {
				return food, false
			}
			food.Position = cell
			break
		}
		food.Position = components.Point{X: rng.Intn(tileCount), Y: rng.Intn(tileCount)}
	}
	return food, true
}

// randomFreeCell picks uniformly among the cells not covered by body
func randomFreeCell(body []components.Point, tileCount int, rng engine.Rand) (components.Point, bool) {
	occupied := make(map[components.Point]struct{}, len(body))
	for _, seg := range body {
		occupied[seg] = struct{}{}
	}

	free := make([]components.Point, 0, tileCount*tileCount-len(occupied))
	for y := 0; y < tileCount; y++ {
		for x := 0; x < tileCount; x++ {
			p := components.Point{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return components.Point{}, false
	}
	return free[rng.Intn(len(free))], true
}

func randomHeading(rng engine.Rand) components.Heading {
	return components.CardinalHeadings[rng.Intn(len(components.CardinalHeadings))]
}

// FoodSystem moves the food; food eaten this tick waits for relocation instead
type FoodSystem struct {
	world *engine.World
}

func NewFoodSystem(world *engine.World) *FoodSystem {
	return &FoodSystem{world: world}
}

func (s *FoodSystem) Priority() int {
	return constants.PriorityFood
}

func (s *FoodSystem) Update(gs *engine.GameState, res *engine.TickResult) {
	if res.Ate {
		return
	}
	gs.Food = MoveFood(gs.Food, gs.Snake, gs.TileCount, s.world.Rand())
}
