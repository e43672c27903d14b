package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/engine"
)

// Handler turns terminal events into intents and applies direction changes
type Handler struct {
	world *engine.World
	keys  *KeyTable
}

// NewHandler creates a handler over world using keys, nil selects the defaults
func NewHandler(world *engine.World, keys *KeyTable) *Handler {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Handler{world: world, keys: keys}
}

// HandleEvent classifies ev; direction keys are applied to the game immediately
// System intents are returned for the caller to route
func (h *Handler) HandleEvent(ev tcell.Event) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return IntentResize
	case *tcell.EventKey:
		entry := h.keys.Lookup(ev)
		if entry.Intent == IntentDirection {
			h.world.RunSafe(func(gs *engine.GameState) {
				Steer(gs, entry.Heading)
			})
		}
		return entry.Intent
	}
	return IntentNone
}

// Steer records heading as the pending direction unless it reverses the committed one
// Only the latest accepted press before a tick takes effect
func Steer(gs *engine.GameState, heading components.Heading) bool {
	if gs.Phase != engine.PhaseRunning {
		return false
	}
	if heading.IsZero() || heading.IsReverseOf(gs.Heading) {
		return false
	}
	gs.PendingHeading = heading
	return true
}
