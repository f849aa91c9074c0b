package game

import (
	"github.com/rs/zerolog"

	"wordbingo/internal/common/clock"
	"wordbingo/internal/common/uuid"
	"wordbingo/internal/itempool"
	"wordbingo/internal/models"
	"wordbingo/internal/quiz"
	recordRepo "wordbingo/internal/repositories/record"
	"wordbingo/internal/rng"
)

// Phase timing defaults, in time units (one unit per Tick)
const (
	// DefaultTurnTimeout is the shared PEEK+SELECT deadline budget
	DefaultTurnTimeout = 30

	// DefaultQuizTimeout is the answer deadline once a quiz starts
	DefaultQuizTimeout = 10

	// DefaultTurnStartDelay is the pause on TURN_START before PEEK
	DefaultTurnStartDelay = 1

	// DefaultRevealDelay is the pause after all answers before evaluation
	DefaultRevealDelay = 3

	// DefaultAIAccuracy is the chance an AI player answers correctly
	DefaultAIAccuracy = 0.75
)

// Config holds configuration for the game service
type Config struct {
	// TurnTimeout is the shared PEEK+SELECT countdown, in time units
	TurnTimeout int

	// QuizTimeout is the QUIZ countdown, in time units
	QuizTimeout int

	// TurnStartDelay is how long TURN_START lingers before PEEK
	TurnStartDelay int

	// RevealDelay is how long results stay shown before evaluation
	RevealDelay int

	// AIAccuracy is the probability an AI answer is correct
	AIAccuracy float64

	// ItemSource supplies the quizzable item pool (required)
	ItemSource itempool.Source

	// RecordRepo persists finished-game records (optional; nil disables)
	RecordRepo recordRepo.Repository

	// Service dependencies
	Roller        rng.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger is optional
	Logger zerolog.Logger
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	// Settings are the fixed rules for this game
	Settings models.GameSettings

	// HumanName is the display name for the human player
	HumanName string
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	// Applied is false when the game was not in SETUP
	Applied bool

	// GameID is the unique identifier for the started game
	GameID string

	// Phase is the phase after starting (TURN_START)
	Phase models.Phase

	// TurnIndex is the randomly chosen first player
	TurnIndex int

	// UsedFallback indicates the static dataset replaced a failed fetch
	UsedFallback bool

	// Players are snapshots of the created players in seat order
	Players []*models.Player
}

// PeekInput contains parameters for peeking at a cell
type PeekInput struct {
	// PlayerID must be the current-turn player
	PlayerID string

	// CellID identifies the cell on the player's own board
	CellID string
}

// PeekOutput contains the result of a peek
type PeekOutput struct {
	// Applied is false when the peek did not apply to the current phase/actor
	Applied bool

	// Cell is the revealed cell, only set when Applied
	Cell *models.Cell
}

// FinishPeekInput contains parameters for ending the peek phase
type FinishPeekInput struct {
	// PlayerID must be the current-turn player
	PlayerID string
}

// FinishPeekOutput contains the result of ending the peek phase
type FinishPeekOutput struct {
	// Applied is false when the call did not apply
	Applied bool
}

// SelectInput contains parameters for challenging a cell
type SelectInput struct {
	// PlayerID must be the current-turn player
	PlayerID string

	// ItemID identifies the item on one of the player's unflipped cells
	ItemID string
}

// SelectOutput contains the result of a selection
type SelectOutput struct {
	// Applied is false when the selection did not apply
	Applied bool

	// Quiz is the constructed quiz, only set when Applied
	Quiz *QuizView
}

// AnswerQuizInput contains parameters for answering the active quiz
type AnswerQuizInput struct {
	// PlayerID is the answering player; any player may answer, once
	PlayerID string

	// OptionID is the chosen option
	OptionID string
}

// AnswerQuizOutput contains the result of answering
type AnswerQuizOutput struct {
	// Applied is false when the answer was rejected (wrong phase, unknown
	// player or option, or the player already answered)
	Applied bool

	// AllAnswered indicates every player now has a recorded answer
	AllAnswered bool
}

// ResetToSetupInput contains parameters for resetting a finished game
type ResetToSetupInput struct{}

// ResetToSetupOutput contains the result of a reset
type ResetToSetupOutput struct {
	// Applied is false unless the game was in GAME_OVER
	Applied bool
}

// TickInput contains parameters for advancing one time unit
type TickInput struct{}

// TickOutput describes the game after the tick
type TickOutput struct {
	// Phase is the phase after the tick
	Phase models.Phase

	// Remaining is the countdown value after the tick
	Remaining int

	// TurnIndex is the current turn after the tick
	TurnIndex int
}

// GetGameInput contains parameters for snapshotting the game
type GetGameInput struct{}

// GetGameOutput contains a deep-copied snapshot of the game
type GetGameOutput struct {
	Game *GameView
}

// OptionView is one quiz choice as shown to players
type OptionView struct {
	// ID is the option's item ID
	ID string

	// Label is the text shown for this option, mode dependent
	Label string
}

// QuizView is the render-facing form of the active quiz
type QuizView struct {
	// Mode is the question direction
	Mode quiz.Mode

	// Prompt is the question text built from the target item
	Prompt string

	// Options are the four choices in display order
	Options []OptionView

	// CorrectOptionID is the target item's ID; renderers decide when to
	// show it
	CorrectOptionID string

	// AnsweredIDs lists the players with a recorded answer
	AnsweredIDs []string

	// ResultsShown indicates the reveal delay is underway
	ResultsShown bool
}

// GameView is a deep-copied snapshot of the game for renderers
type GameView struct {
	// GameID is the unique identifier for the game
	GameID string

	// Phase is the current phase
	Phase models.Phase

	// Settings are the rules for this game
	Settings models.GameSettings

	// Players are copies of the players in seat order
	Players []*models.Player

	// TurnIndex is whose turn it is
	TurnIndex int

	// CurrentPlayerID is players[TurnIndex].ID, empty before start
	CurrentPlayerID string

	// Remaining is the countdown value
	Remaining int

	// Quiz is the active quiz, nil outside the QUIZ phase
	Quiz *QuizView

	// WinnerID is set once the game is over
	WinnerID string

	// Turns is the number of completed quiz rounds
	Turns int
}
