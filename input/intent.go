package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents, routed by the binary
	IntentQuit       // q, Esc, Ctrl+C
	IntentRestart    // r, Enter
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Gameplay
	IntentDirection // Arrows
)

// String returns the intent name used in logs
func (t IntentType) String() string {
	switch t {
	case IntentNone:
		return "none"
	case IntentQuit:
		return "quit"
	case IntentRestart:
		return "restart"
	case IntentToggleMute:
		return "mute"
	case IntentResize:
		return "resize"
	case IntentDirection:
		return "direction"
	default:
		return "unknown"
	}
}
