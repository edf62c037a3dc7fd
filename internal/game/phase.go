package game

// Phase is the derived state-machine position of a game.
type Phase int

const (
	PhaseDocked   Phase = iota // Ball on the paddle, launch allowed
	PhaseActive                // Ball in flight
	PhasePaused                // Ball in flight, simulation frozen
	PhaseGameOver              // No lives left
	PhaseWon                   // No blocks left
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseDocked:
		return "docked"
	case PhaseActive:
		return "active"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Phase derives the state-machine position from the flags.
// A docked ball whose launch is blocked is always GameOver or Won.
func (s *State) Phase() Phase {
	switch {
	case s.Running && s.Paused:
		return PhasePaused
	case s.Running:
		return PhaseActive
	case s.Blocks.Remaining <= 0:
		return PhaseWon
	case s.Lives < 1:
		return PhaseGameOver
	default:
		return PhaseDocked
	}
}
