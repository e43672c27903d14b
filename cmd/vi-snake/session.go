package main

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/status"
)

// session routes terminal events and tick results between the game, the screen and the speaker
type session struct {
	screen    tcell.Screen
	world     *engine.World
	scheduler *engine.ClockScheduler
	handler   *input.Handler
	renderer  *render.TerminalRenderer
	sound     *audio.SoundManager
	reg       *status.Registry
}

func newSession(screen tcell.Screen, world *engine.World, scheduler *engine.ClockScheduler,
	handler *input.Handler, sound *audio.SoundManager, reg *status.Registry, debug bool) *session {
	s := &session{
		screen:    screen,
		world:     world,
		scheduler: scheduler,
		handler:   handler,
		renderer:  render.NewTerminalRenderer(screen, reg, debug),
		sound:     sound,
		reg:       reg,
	}
	s.syncAudioStatus()
	return s
}

// loop runs until a quit intent or the screen closes
func (s *session) loop() {
	events := make(chan tcell.Event, constants.EventChannelSize)
	done := make(chan struct{})
	defer close(done)

	// Input polling
	core.Go(func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	s.scheduler.Start()
	defer s.scheduler.Stop()

	s.draw()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !s.handleEvent(ev) {
				return
			}
		case res := <-s.scheduler.Updates():
			s.handleUpdate(res)
		}
	}
}

// handleEvent applies one terminal event, returns false to quit
func (s *session) handleEvent(ev tcell.Event) bool {
	switch s.handler.HandleEvent(ev) {
	case input.IntentQuit:
		log.Printf("quit requested")
		return false
	case input.IntentRestart:
		s.scheduler.Restart()
	case input.IntentToggleMute:
		enabled := s.sound.ToggleMute()
		s.syncAudioStatus()
		log.Printf("sound enabled=%v", enabled)
		s.draw()
	case input.IntentResize:
		s.screen.Sync()
		s.draw()
	}
	return true
}

// handleUpdate plays sounds for a tick result and redraws
func (s *session) handleUpdate(res engine.TickResult) {
	switch {
	case res.Restarted:
		log.Printf("restart")
	case res.GameOver:
		s.sound.PlayGameOver()
		log.Printf("game over: cause=%s score=%d tick=%d", res.Cause, res.Score, res.Tick)
	case res.Ate:
		s.sound.PlayEat()
		log.Printf("food eaten: score=%d tick=%d", res.Score, res.Tick)
	}
	s.draw()
}

func (s *session) draw() {
	s.renderer.RenderFrame(s.world.Snapshot(), render.HUD{Sound: s.soundState()})
}

func (s *session) soundState() render.SoundState {
	switch {
	case !s.sound.Initialized():
		return render.SoundUnavailable
	case s.sound.IsMuted():
		return render.SoundMuted
	default:
		return render.SoundOn
	}
}

func (s *session) syncAudioStatus() {
	s.reg.Bools.Get(status.KeyAudio).Store(s.sound.Initialized())
	s.reg.Bools.Get(status.KeyMuted).Store(s.sound.IsMuted())
}
