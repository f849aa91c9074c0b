package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig         GameError = "config cannot be nil"
	ErrNilItemSource     GameError = "item source cannot be nil"
	ErrNilInput          GameError = "input cannot be nil"
	ErrInsufficientItems GameError = "item pool must contain at least 25 distinct items"
)
