package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/status"
	"github.com/lixenwraith/vi-snake/systems"
)

var errNotTerminal = errors.New("stdout is not a terminal")

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Parse("vi-snake", args, os.Stderr)
	if err != nil {
		return err
	}

	bindings, err := input.LoadBindings(cfg.Keys)
	if err != nil {
		return fmt.Errorf("config %s: %w", cfg.Path, err)
	}
	keys := input.MergeKeyTable(input.DefaultKeyTable(), bindings)

	if logFile := setupLogging(cfg.Display.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("vi-snake starting: config=%q seed=%d speed=%dms", cfg.Path, cfg.Game.Seed, cfg.Game.InitialSpeedMs)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	applyColorMode(cfg.Display.Color)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	core.SetCrashTerminal(screen)

	reg := status.NewRegistry()

	sound := audio.NewSoundManager(cfg.Audio.Volume, cfg.Audio.Muted)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Printf("audio unavailable, continuing without sound: %v", err)
		}
	}
	defer sound.Cleanup()

	world := engine.NewWorld(cfg.Rules(), engine.NewRand(cfg.Game.Seed), engine.NewMonotonicTimeProvider(), reg)
	systems.RegisterAll(world)

	scheduler := engine.NewClockScheduler(world, engine.NewTimerTickSource(), constants.UpdateChannelSize)
	scheduler.SetCrashHandler(core.HandleCrash)

	s := newSession(screen, world, scheduler, input.NewHandler(world, keys), sound, reg, cfg.Display.Debug)
	s.loop()

	core.SetCrashTerminal(nil)
	screen.Fini()

	fmt.Println(renderSummary(reg))
	return nil
}

// applyColorMode steers tcell's color detection before the screen is created
func applyColorMode(mode string) {
	switch mode {
	case config.Color256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case config.ColorTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	}
}
