package models

// Game limits enforced when validating settings
const (
	MinPlayers = 2
	MaxPlayers = 4
)

// GameSettings is fixed for a game's duration, set before leaving SETUP
type GameSettings struct {
	// Tier selects the item pool difficulty
	Tier Tier

	// PlayerCount is the total number of players including the human
	PlayerCount int

	// WinLines is the number of completed lines needed to win (1 or 3)
	WinLines int
}

// Validate reports whether the settings satisfy the game preconditions
func (s GameSettings) Validate() error {
	if !s.Tier.IsValid() {
		return ErrInvalidTier
	}
	if s.PlayerCount < MinPlayers || s.PlayerCount > MaxPlayers {
		return ErrInvalidPlayerCount
	}
	if s.WinLines != 1 && s.WinLines != 3 {
		return ErrInvalidWinLines
	}
	return nil
}

// SettingsError is a validation error for game settings
type SettingsError string

// Error implements the error interface
func (e SettingsError) Error() string {
	return string(e)
}

// Settings validation errors
const (
	ErrInvalidTier        SettingsError = "tier must be one of grade1..grade6"
	ErrInvalidPlayerCount SettingsError = "player count must be between 2 and 4"
	ErrInvalidWinLines    SettingsError = "win lines must be 1 or 3"
)
