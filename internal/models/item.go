package models

import "fmt"

// Tier selects which item pool difficulty is fetched for a game
type Tier string

const (
	// TierGrade1 is the easiest pool (first-grade vocabulary)
	TierGrade1 Tier = "grade1"

	// TierGrade2 is the second-grade vocabulary pool
	TierGrade2 Tier = "grade2"

	// TierGrade3 is the third-grade vocabulary pool
	TierGrade3 Tier = "grade3"

	// TierGrade4 is the fourth-grade vocabulary pool
	TierGrade4 Tier = "grade4"

	// TierGrade5 is the fifth-grade vocabulary pool
	TierGrade5 Tier = "grade5"

	// TierGrade6 is the hardest pool (sixth-grade vocabulary)
	TierGrade6 Tier = "grade6"
)

// IsValid reports whether the tier is one of the known grades
func (t Tier) IsValid() bool {
	switch t {
	case TierGrade1, TierGrade2, TierGrade3, TierGrade4, TierGrade5, TierGrade6:
		return true
	}
	return false
}

// Item is an immutable content unit quizzed during the game.
// Identity is ID; two items with the same ID are the same item.
type Item struct {
	// ID is the unique identifier for the item
	ID string

	// DisplayForm is the written form shown on board cells
	DisplayForm string

	// Meaning is the meaning shown as a quiz option
	Meaning string

	// Pronunciation is the reading of the display form
	Pronunciation string

	// CombinedLabel is the display form with its reading attached
	CombinedLabel string
}

// NewItem builds an item and derives its combined label
func NewItem(id, displayForm, meaning, pronunciation string) Item {
	return Item{
		ID:            id,
		DisplayForm:   displayForm,
		Meaning:       meaning,
		Pronunciation: pronunciation,
		CombinedLabel: fmt.Sprintf("%s（%s）", displayForm, pronunciation),
	}
}
