package itempool

import (
	"fmt"

	"wordbingo/internal/models"
)

// fallbackEntries is the fixed offline dataset: first-grade vocabulary with
// meaning and reading. Order is deterministic so fallback games are
// reproducible for a given seed.
var fallbackEntries = [][3]string{
	{"山", "mountain", "やま"},
	{"川", "river", "かわ"},
	{"火", "fire", "ひ"},
	{"水", "water", "みず"},
	{"木", "tree", "き"},
	{"金", "gold", "きん"},
	{"土", "earth", "つち"},
	{"日", "sun", "ひ"},
	{"月", "moon", "つき"},
	{"空", "sky", "そら"},
	{"雨", "rain", "あめ"},
	{"花", "flower", "はな"},
	{"犬", "dog", "いぬ"},
	{"虫", "insect", "むし"},
	{"貝", "shellfish", "かい"},
	{"石", "stone", "いし"},
	{"田", "rice field", "た"},
	{"林", "grove", "はやし"},
	{"森", "forest", "もり"},
	{"口", "mouth", "くち"},
	{"目", "eye", "め"},
	{"耳", "ear", "みみ"},
	{"手", "hand", "て"},
	{"足", "foot", "あし"},
	{"人", "person", "ひと"},
	{"子", "child", "こ"},
	{"女", "woman", "おんな"},
	{"男", "man", "おとこ"},
	{"車", "car", "くるま"},
	{"学", "study", "がく"},
}

// Fallback returns the static item dataset used when the item source fails
// or no credential is configured. Always at least 25 items, so a board can
// always be built offline.
func Fallback() []models.Item {
	items := make([]models.Item, 0, len(fallbackEntries))
	for i, e := range fallbackEntries {
		id := fmt.Sprintf("fallback-%02d", i)
		items = append(items, models.NewItem(id, e[0], e[1], e[2]))
	}
	return items
}
