package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/components"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	Intent  IntentType
	Heading components.Heading // Set for IntentDirection only
}

// KeyTable maps keys to entries
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable character bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyLeft:   {IntentDirection, components.HeadingLeft},
			tcell.KeyRight:  {IntentDirection, components.HeadingRight},
			tcell.KeyUp:     {IntentDirection, components.HeadingUp},
			tcell.KeyDown:   {IntentDirection, components.HeadingDown},
			tcell.KeyEnter:  {IntentRestart, components.HeadingNone},
			tcell.KeyEscape: {IntentQuit, components.HeadingNone},
			tcell.KeyCtrlC:  {IntentQuit, components.HeadingNone},
		},
		Runes: map[rune]KeyEntry{
			'r': {IntentRestart, components.HeadingNone},
			'q': {IntentQuit, components.HeadingNone},
			'm': {IntentToggleMute, components.HeadingNone},
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		SpecialKeys: make(map[tcell.Key]KeyEntry, len(kt.SpecialKeys)),
		Runes:       make(map[rune]KeyEntry, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		c.SpecialKeys[k] = v
	}
	for r, v := range kt.Runes {
		c.Runes[r] = v
	}
	return c
}

// Lookup resolves a key event to its entry
func (kt *KeyTable) Lookup(ev *tcell.EventKey) KeyEntry {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
