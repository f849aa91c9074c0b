package quiz

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordbingo/internal/models"
	"wordbingo/internal/rng"
)

func testPool(n int) []models.Item {
	items := make([]models.Item, n)
	for i := range items {
		items[i] = models.NewItem(fmt.Sprintf("item-%d", i), fmt.Sprintf("w%d", i), fmt.Sprintf("m%d", i), fmt.Sprintf("p%d", i))
	}
	return items
}

func TestBuild_HappyPath(t *testing.T) {
	pool := testPool(25)
	target := pool[7]
	roller := rng.New(&rng.Config{Seed: 42})

	state, err := Build(target, pool, ModeItemToMeaning, roller)
	require.NoError(t, err)

	assert.Equal(t, target, state.Target)
	assert.Equal(t, target.ID, state.CorrectOptionID)
	assert.Len(t, state.Options, OptionCount)

	// Target appears among options, all options are distinct.
	ids := make(map[string]bool)
	for _, opt := range state.Options {
		ids[opt.ID] = true
	}
	assert.Len(t, ids, OptionCount)
	assert.True(t, ids[target.ID])
}

func TestBuild_MinimalPool(t *testing.T) {
	// Exactly target + 3 distractors.
	pool := testPool(4)
	target := pool[0]
	roller := rng.New(&rng.Config{Seed: 1})

	state, err := Build(target, pool, ModeMeaningToItem, roller)
	require.NoError(t, err)
	assert.Len(t, state.Options, 4)
	assert.Equal(t, target.ID, state.CorrectOptionID)
}

func TestBuild_NotEnoughDistractors(t *testing.T) {
	pool := testPool(3)
	roller := rng.New(&rng.Config{Seed: 1})

	_, err := Build(pool[0], pool, ModeItemToMeaning, roller)
	assert.ErrorIs(t, err, ErrNotEnoughDistractors)
}

func TestBuild_DuplicateItemsNotCounted(t *testing.T) {
	pool := testPool(3)
	// Pool padded with duplicates of the same items must still fail.
	pool = append(pool, pool[1], pool[2], pool[0])
	roller := rng.New(&rng.Config{Seed: 1})

	_, err := Build(pool[0], pool, ModeItemToMeaning, roller)
	assert.ErrorIs(t, err, ErrNotEnoughDistractors)
}

func TestRecordAnswer_WriteOnce(t *testing.T) {
	pool := testPool(5)
	roller := rng.New(&rng.Config{Seed: 3})
	state, err := Build(pool[0], pool, ModeItemToMeaning, roller)
	require.NoError(t, err)

	assert.True(t, state.RecordAnswer("p1", state.CorrectOptionID))

	// A second write, even a different value, must not overwrite.
	assert.False(t, state.RecordAnswer("p1", TimeoutMarker))

	answer, ok := state.Answer("p1")
	assert.True(t, ok)
	assert.Equal(t, state.CorrectOptionID, answer)
	assert.True(t, state.IsCorrect("p1"))
}

func TestRecordAnswer_TimeoutRaceDoesNotOverwrite(t *testing.T) {
	pool := testPool(5)
	roller := rng.New(&rng.Config{Seed: 3})
	state, err := Build(pool[0], pool, ModeItemToMeaning, roller)
	require.NoError(t, err)

	assert.True(t, state.RecordAnswer("p1", TimeoutMarker))
	assert.False(t, state.RecordAnswer("p1", state.CorrectOptionID))
	assert.False(t, state.IsCorrect("p1"))
}

func TestAllAnswered(t *testing.T) {
	pool := testPool(5)
	roller := rng.New(&rng.Config{Seed: 9})
	state, err := Build(pool[0], pool, ModeItemToMeaning, roller)
	require.NoError(t, err)

	players := []string{"p1", "p2", "p3"}
	assert.False(t, state.AllAnswered(players))

	state.RecordAnswer("p1", state.CorrectOptionID)
	state.RecordAnswer("p2", TimeoutMarker)
	assert.False(t, state.AllAnswered(players))

	state.RecordAnswer("p3", state.WrongOptionIDs()[0])
	assert.True(t, state.AllAnswered(players))
}

func TestIsCorrect_TimeoutNeverCorrect(t *testing.T) {
	pool := testPool(5)
	roller := rng.New(&rng.Config{Seed: 11})
	state, err := Build(pool[0], pool, ModeItemToMeaning, roller)
	require.NoError(t, err)

	state.RecordAnswer("p1", TimeoutMarker)
	assert.False(t, state.IsCorrect("p1"))

	// Unanswered player is not correct either.
	assert.False(t, state.IsCorrect("p2"))
}

func TestWrongOptionIDs(t *testing.T) {
	pool := testPool(6)
	roller := rng.New(&rng.Config{Seed: 5})
	state, err := Build(pool[2], pool, ModeMeaningToItem, roller)
	require.NoError(t, err)

	wrong := state.WrongOptionIDs()
	assert.Len(t, wrong, 3)
	assert.NotContains(t, wrong, state.CorrectOptionID)
}
