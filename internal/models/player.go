package models

// Player represents a participant in a game. Identity fields are fixed at
// game start; Board and Score mutate as rounds are evaluated.
type Player struct {
	// ID is the unique identifier for the player
	ID string

	// DisplayName is the name shown to other players
	DisplayName string

	// IsAI indicates the player is controlled by the opponent policy
	IsAI bool

	// Board is the player's 25-cell permutation of the shared item set
	Board Board

	// Score is the number of completed lines, recomputed by the evaluator
	Score int

	// Color is the player's display color
	Color string

	// BonusGauge is reserved for a future mechanic; never read or written
	BonusGauge int

	// Shield is reserved for a future mechanic; never read or written
	Shield bool
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	cp := *p
	cp.Board = p.Board.Clone()
	return &cp
}

// PlayerColors is the palette assigned to players by seat order
var PlayerColors = []string{"red", "blue", "green", "yellow"}
