package models

// Phase represents the current state of the game's phase machine
type Phase string

const (
	// PhaseSetup indicates the game is waiting to be started
	PhaseSetup Phase = "setup"

	// PhaseLoading indicates the item pool is being fetched and boards built
	PhaseLoading Phase = "loading"

	// PhaseTurnStart indicates a new turn is being announced
	PhaseTurnStart Phase = "turn_start"

	// PhasePeek indicates the current player is peeking at their cells
	PhasePeek Phase = "peek"

	// PhaseSelect indicates the current player is choosing a challenge cell
	PhaseSelect Phase = "select"

	// PhaseQuiz indicates all players are answering the quiz
	PhaseQuiz Phase = "quiz"

	// PhaseGameOver indicates a player has won; terminal until reset
	PhaseGameOver Phase = "game_over"
)
