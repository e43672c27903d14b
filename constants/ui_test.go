package constants

import (
	"testing"
)

// TestSpeedFloorReachable verifies the speed floor is reached after a whole number of steps
func TestSpeedFloorReachable(t *testing.T) {
	if (InitialGameSpeed-MinGameSpeed)%SpeedStep != 0 {
		t.Errorf("Expected (%v - %v) to be a multiple of %v", InitialGameSpeed, MinGameSpeed, SpeedStep)
	}

	steps := int((InitialGameSpeed - MinGameSpeed) / SpeedStep)
	if steps != 25 {
		t.Errorf("Expected 25 steps from initial speed to floor, got %d", steps)
	}

	if MinGameSpeed <= 0 || MinGameSpeed > InitialGameSpeed {
		t.Errorf("Invalid speed bounds: floor %v, initial %v", MinGameSpeed, InitialGameSpeed)
	}
}

// TestStartPositionsOnBoard verifies starting snake and food cells are inside the grid and distinct
func TestStartPositionsOnBoard(t *testing.T) {
	cells := []struct {
		name string
		x, y int
	}{
		{"snake", StartX, StartY},
		{"food", FoodStartX, FoodStartY},
	}

	for _, c := range cells {
		t.Run(c.name, func(t *testing.T) {
			if c.x < 0 || c.x >= TileCount || c.y < 0 || c.y >= TileCount {
				t.Errorf("%s start (%d,%d) outside %dx%d grid", c.name, c.x, c.y, TileCount, TileCount)
			}
		})
	}

	if StartX == FoodStartX && StartY == FoodStartY {
		t.Error("Snake and food must not start on the same cell")
	}
}

// TestBackgroundPalette verifies palette size and first entry
func TestBackgroundPalette(t *testing.T) {
	if len(BackgroundPalette) != 11 {
		t.Errorf("Expected 11 palette entries, got %d", len(BackgroundPalette))
	}
	if BackgroundPalette[0] != "#f0f0f0" {
		t.Errorf("Expected first palette entry #f0f0f0, got %s", BackgroundPalette[0])
	}
}

// TestMinTileCountHoldsStarts verifies the smallest configurable board still contains both start cells
func TestMinTileCountHoldsStarts(t *testing.T) {
	for _, v := range []int{StartX, StartY, FoodStartX, FoodStartY} {
		if v >= MinTileCount {
			t.Errorf("Start coordinate %d outside a %d board", v, MinTileCount)
		}
	}
	if TileCount < MinTileCount || TileCount > MaxTileCount {
		t.Errorf("Default tile count %d outside [%d,%d]", TileCount, MinTileCount, MaxTileCount)
	}
}
