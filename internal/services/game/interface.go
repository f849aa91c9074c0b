package game

import "context"

// Service defines the interface for driving one game session. Entry points
// map 1:1 onto phase-machine transitions; a call that does not apply to the
// current phase or actor is silently ignored (Applied=false), never an
// error. AI opponents go through the same entry points internally.
type Service interface {
	// StartGame validates settings, fetches the item pool (falling back to
	// the static dataset on failure), builds boards and starts the turn loop
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// Peek reveals one of the current player's cells, informational only
	Peek(ctx context.Context, input *PeekInput) (*PeekOutput, error)

	// FinishPeek ends the peek phase early for the current player
	FinishPeek(ctx context.Context, input *FinishPeekInput) (*FinishPeekOutput, error)

	// Select challenges one of the current player's unflipped cells,
	// starting a quiz for all players
	Select(ctx context.Context, input *SelectInput) (*SelectOutput, error)

	// AnswerQuiz records a player's quiz answer; first write per player wins
	AnswerQuiz(ctx context.Context, input *AnswerQuizInput) (*AnswerQuizOutput, error)

	// ResetToSetup returns a finished game to SETUP
	ResetToSetup(ctx context.Context, input *ResetToSetupInput) (*ResetToSetupOutput, error)

	// Tick advances the game by one time unit: due delayed actions fire,
	// then the shared countdown steps and expiry transitions run
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)

	// GetGame returns a deep-copied snapshot of the current game state
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)
}
