package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/constants"
)

// Rules holds the tunable parameters of a game
type Rules struct {
	TileCount    int
	InitialSpeed time.Duration
	SpeedStep    time.Duration
	MinSpeed     time.Duration
}

// DefaultRules returns the stock game parameters
func DefaultRules() Rules {
	return Rules{
		TileCount:    constants.TileCount,
		InitialSpeed: constants.InitialGameSpeed,
		SpeedStep:    constants.SpeedStep,
		MinSpeed:     constants.MinGameSpeed,
	}
}
