// Package quiz builds multiple-choice quizzes from a selected item and
// collects per-player answers under a write-once law.
package quiz

import (
	"wordbingo/internal/models"
	"wordbingo/internal/rng"
)

// OptionCount is the number of options in every quiz
const OptionCount = 4

// TimeoutMarker is the sentinel answer recorded for a player who failed to
// answer before the quiz deadline. It never matches a real option ID, so it
// always scores as incorrect.
const TimeoutMarker = "__timeout__"

// Mode determines which direction the quiz asks about the target item
type Mode string

const (
	// ModeItemToMeaning shows the item and asks for its meaning
	ModeItemToMeaning Mode = "item_to_meaning"

	// ModeMeaningToItem shows the meaning and asks for the item
	ModeMeaningToItem Mode = "meaning_to_item"
)

// QuizError is a custom error type for quiz construction errors
type QuizError string

// Error implements the error interface
func (e QuizError) Error() string {
	return string(e)
}

// Construction errors
const (
	ErrNotEnoughDistractors QuizError = "need at least 3 distinct distractor items"
	ErrNilRoller            QuizError = "roller cannot be nil"
)

// State is a quiz in progress. It exists only during the QUIZ phase.
type State struct {
	// Target is the item the quiz was built from
	Target models.Item

	// Mode is the question direction
	Mode Mode

	// Options are the 4 distinct candidate items, target included
	Options []models.Item

	// CorrectOptionID always equals Target.ID
	CorrectOptionID string

	// ResultsShown is set once all answers are in and the reveal has begun
	ResultsShown bool

	// answers maps player ID to chosen option ID (or TimeoutMarker).
	// First write per player wins; later writes are no-ops.
	answers map[string]string
}

// RandomMode picks one of the two quiz modes uniformly
func RandomMode(roller rng.Roller) Mode {
	if roller.Intn(2) == 0 {
		return ModeItemToMeaning
	}
	return ModeMeaningToItem
}

// Build constructs a quiz for the target item, drawing 3 distractors
// uniformly at random from pool minus the target and shuffling the options.
// The pool must contain at least 3 distinct non-target items.
func Build(target models.Item, pool []models.Item, mode Mode, roller rng.Roller) (*State, error) {
	if roller == nil {
		return nil, ErrNilRoller
	}

	distractors := make([]models.Item, 0, len(pool))
	seen := map[string]bool{target.ID: true}
	for _, item := range pool {
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		distractors = append(distractors, item)
	}

	if len(distractors) < OptionCount-1 {
		return nil, ErrNotEnoughDistractors
	}

	roller.Shuffle(len(distractors), func(i, j int) {
		distractors[i], distractors[j] = distractors[j], distractors[i]
	})

	options := make([]models.Item, 0, OptionCount)
	options = append(options, target)
	options = append(options, distractors[:OptionCount-1]...)

	roller.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &State{
		Target:          target,
		Mode:            mode,
		Options:         options,
		CorrectOptionID: target.ID,
		answers:         make(map[string]string, OptionCount),
	}, nil
}

// RecordAnswer sets the player's answer. The first recorded answer for a
// player is final; later attempts return false and change nothing. Safe to
// call from racing actors as long as callers serialize through the engine.
func (s *State) RecordAnswer(playerID, optionID string) bool {
	if _, exists := s.answers[playerID]; exists {
		return false
	}
	s.answers[playerID] = optionID
	return true
}

// Answer returns the player's recorded answer, if any
func (s *State) Answer(playerID string) (string, bool) {
	answer, ok := s.answers[playerID]
	return answer, ok
}

// HasAnswered reports whether the player has a recorded answer
func (s *State) HasAnswered(playerID string) bool {
	_, ok := s.answers[playerID]
	return ok
}

// AllAnswered reports whether every given player has a recorded answer
func (s *State) AllAnswered(playerIDs []string) bool {
	for _, id := range playerIDs {
		if _, ok := s.answers[id]; !ok {
			return false
		}
	}
	return true
}

// IsCorrect reports whether the player's recorded answer matches the
// correct option. TimeoutMarker never matches.
func (s *State) IsCorrect(playerID string) bool {
	return s.answers[playerID] == s.CorrectOptionID
}

// HasOption reports whether the given ID names one of the quiz options
func (s *State) HasOption(optionID string) bool {
	for _, opt := range s.Options {
		if opt.ID == optionID {
			return true
		}
	}
	return false
}

// WrongOptionIDs returns the IDs of all non-correct options
func (s *State) WrongOptionIDs() []string {
	out := make([]string, 0, OptionCount-1)
	for _, opt := range s.Options {
		if opt.ID != s.CorrectOptionID {
			out = append(out, opt.ID)
		}
	}
	return out
}
