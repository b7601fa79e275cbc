package engine

// Phase is the outcome of a simulation step
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState holds the per-game values that live outside the component stores
type GameState struct {
	Score int
	Phase Phase
	Ticks uint64 // Completed simulation steps
}

// NewGameState creates a fresh playing state
func NewGameState() *GameState {
	return &GameState{Phase: PhasePlaying}
}

// AddScore increments the score
func (s *GameState) AddScore(n int) {
	s.Score += n
}

// IsOver reports whether the game has ended
func (s *GameState) IsOver() bool {
	return s.Phase == PhaseGameOver
}
