package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// DefaultPath is read when present and no -config flag is given
const DefaultPath = "vi-snake.toml"

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Color modes accepted by -color and display.color
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// Config is the complete runtime configuration
type Config struct {
	Game    GameConfig    `toml:"game"`
	Audio   AudioConfig   `toml:"audio"`
	Display DisplayConfig `toml:"display"`

	// Keys binds single characters to direction names (left, right, up, down)
	Keys map[string]string `toml:"keys"`

	// Path of the loaded file, empty if none
	Path string `toml:"-"`
}

// GameConfig holds the gameplay parameters
type GameConfig struct {
	Seed           uint64 `toml:"seed"`
	TileCount      int    `toml:"tile_count"`
	InitialSpeedMs int    `toml:"initial_speed_ms"`
	SpeedStepMs    int    `toml:"speed_step_ms"`
	MinSpeedMs     int    `toml:"min_speed_ms"`
}

// AudioConfig holds sound settings
type AudioConfig struct {
	Enabled bool `toml:"enabled"`
	Muted   bool `toml:"muted"`
	// Volume is a base-2 exponent applied to the master mix
	Volume float64 `toml:"volume"`
}

// DisplayConfig holds terminal settings
type DisplayConfig struct {
	Color string `toml:"color"`
	Debug bool   `toml:"debug"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Game: GameConfig{
			TileCount:      constants.TileCount,
			InitialSpeedMs: int(constants.InitialGameSpeed / time.Millisecond),
			SpeedStepMs:    int(constants.SpeedStep / time.Millisecond),
			MinSpeedMs:     int(constants.MinGameSpeed / time.Millisecond),
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Display: DisplayConfig{
			Color: ColorAuto,
		},
		Keys: map[string]string{},
	}
}

// Load decodes the TOML file at path over the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.decodeFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config %s: unknown key %q: %w", path, undecoded[0].String(), ErrInvalid)
	}
	c.Path = path
	return nil
}

// Parse builds the configuration from command-line args
// Order: defaults, then the config file, then explicitly set flags
func Parse(name string, args []string, output io.Writer) (*Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	path := fs.String("config", "", "Path to TOML config file (default "+DefaultPath+" if present)")
	seed := fs.Uint64("seed", 0, "Random seed, 0 derives one from the clock")
	speed := fs.Int("speed", 0, "Initial tick interval in milliseconds")
	mute := fs.Bool("mute", false, "Start with sound muted")
	debug := fs.Bool("debug", false, "Write debug log to "+constants.LogDir+"/"+constants.LogFileName)
	color := fs.String("color", ColorAuto, "Color mode: auto, truecolor, 256")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := Default()
	switch {
	case *path != "":
		if err := cfg.decodeFile(*path); err != nil {
			return nil, err
		}
	default:
		if _, err := os.Stat(DefaultPath); err == nil {
			if err := cfg.decodeFile(DefaultPath); err != nil {
				return nil, err
			}
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Game.Seed = *seed
		case "speed":
			cfg.Game.InitialSpeedMs = *speed
		case "mute":
			cfg.Audio.Muted = *mute
		case "debug":
			cfg.Display.Debug = *debug
		case "color":
			cfg.Display.Color = *color
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field range
func (c *Config) Validate() error {
	g := c.Game
	switch {
	case g.TileCount < constants.MinTileCount || g.TileCount > constants.MaxTileCount:
		return fmt.Errorf("game.tile_count %d outside [%d,%d]: %w",
			g.TileCount, constants.MinTileCount, constants.MaxTileCount, ErrInvalid)
	case g.InitialSpeedMs <= 0:
		return fmt.Errorf("game.initial_speed_ms must be positive, got %d: %w", g.InitialSpeedMs, ErrInvalid)
	case g.MinSpeedMs <= 0:
		return fmt.Errorf("game.min_speed_ms must be positive, got %d: %w", g.MinSpeedMs, ErrInvalid)
	case g.SpeedStepMs < 0:
		return fmt.Errorf("game.speed_step_ms must not be negative, got %d: %w", g.SpeedStepMs, ErrInvalid)
	case g.MinSpeedMs > g.InitialSpeedMs:
		return fmt.Errorf("game.min_speed_ms %d exceeds initial_speed_ms %d: %w", g.MinSpeedMs, g.InitialSpeedMs, ErrInvalid)
	}

	if c.Audio.Volume < constants.MinVolume || c.Audio.Volume > constants.MaxVolume {
		return fmt.Errorf("audio.volume %.2f outside [%g,%g]: %w",
			c.Audio.Volume, constants.MinVolume, constants.MaxVolume, ErrInvalid)
	}

	switch c.Display.Color {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("display.color %q not one of auto, truecolor, 256: %w", c.Display.Color, ErrInvalid)
	}

	return nil
}

// Rules converts the game section to engine rules
func (c *Config) Rules() engine.Rules {
	return engine.Rules{
		TileCount:    c.Game.TileCount,
		InitialSpeed: time.Duration(c.Game.InitialSpeedMs) * time.Millisecond,
		SpeedStep:    time.Duration(c.Game.SpeedStepMs) * time.Millisecond,
		MinSpeed:     time.Duration(c.Game.MinSpeedMs) * time.Millisecond,
	}
}
