package engine

// GamePhase is the top-level state of a life
type GamePhase int

const (
	PhaseRunning GamePhase = iota
	PhaseGameOver
)

// String returns the phase name
func (p GamePhase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// CanTransition reports whether from → to is a legal phase change
// GameOver is left only through Reset, never through a transition
func CanTransition(from, to GamePhase) bool {
	return from == PhaseRunning && to == PhaseGameOver
}

// DeathCause records why a life ended
type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseWall
	CauseSelf
	CauseBoardFull
)

// String returns the cause name
func (c DeathCause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}
