package models

import (
	"time"
)

// PlayerResult is one player's final standing in a finished game
type PlayerResult struct {
	// PlayerID is the unique identifier for the player
	PlayerID string

	// PlayerName is the display name of the player
	PlayerName string

	// IsAI indicates the player was AI-controlled
	IsAI bool

	// Lines is the player's completed line count at game end
	Lines int

	// FlippedCells is how many of the player's 25 cells were flipped
	FlippedCells int
}

// GameRecord summarizes a finished game for persistence
type GameRecord struct {
	// ID is the unique identifier for the record
	ID string

	// GameID is the ID of the game this record summarizes
	GameID string

	// WinnerID is the ID of the winning player
	WinnerID string

	// WinnerName is the display name of the winning player
	WinnerName string

	// Settings are the settings the game was played with
	Settings GameSettings

	// Results contains each player's final standing in seat order
	Results []PlayerResult

	// Turns is the number of completed quiz rounds
	Turns int

	// StartedAt is when the game left SETUP
	StartedAt time.Time

	// EndedAt is when the game reached GAME_OVER
	EndedAt time.Time
}
