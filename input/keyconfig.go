package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-snake/components"
)

// ErrBinding is wrapped by every key binding failure
var ErrBinding = errors.New("invalid key binding")

// actionEntries maps config action names to entries, "none" unbinds
var actionEntries = map[string]KeyEntry{
	"none":    {IntentNone, components.HeadingNone},
	"left":    {IntentDirection, components.HeadingLeft},
	"right":   {IntentDirection, components.HeadingRight},
	"up":      {IntentDirection, components.HeadingUp},
	"down":    {IntentDirection, components.HeadingDown},
	"restart": {IntentRestart, components.HeadingNone},
	"quit":    {IntentQuit, components.HeadingNone},
	"mute":    {IntentToggleMute, components.HeadingNone},
}

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space": ' ',
}

// LoadBindings parses character → action name pairs into rune bindings
func LoadBindings(keys map[string]string) (map[rune]KeyEntry, error) {
	result := make(map[rune]KeyEntry, len(keys))

	for keyStr, actionName := range keys {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}

		entry, ok := actionEntries[strings.ToLower(strings.TrimSpace(actionName))]
		if !ok {
			return nil, fmt.Errorf("[keys] key %q: unknown action %q: %w", keyStr, actionName, ErrBinding)
		}

		result[r] = entry
	}

	return result, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("expected single character or alias: %w", ErrBinding)
}

// MergeKeyTable returns a new KeyTable with base rune bindings overridden
// Override entries with IntentNone delete the key from the result
func MergeKeyTable(base *KeyTable, override map[rune]KeyEntry) *KeyTable {
	result := base.Clone()
	for r, v := range override {
		if v.Intent == IntentNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = v
		}
	}
	return result
}
