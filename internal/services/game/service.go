package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"wordbingo/internal/bingo"
	"wordbingo/internal/common/clock"
	"wordbingo/internal/common/uuid"
	"wordbingo/internal/itempool"
	"wordbingo/internal/models"
	"wordbingo/internal/quiz"
	recordRepo "wordbingo/internal/repositories/record"
	"wordbingo/internal/rng"
	"wordbingo/internal/timer"
)

// service implements the Service interface. All state mutation funnels
// through the mutex; scheduled callbacks run inside Tick while it is held.
type service struct {
	config     *Config
	itemSource itempool.Source
	recordRepo recordRepo.Repository
	roller     rng.Roller
	clock      clock.Clock
	ids        uuid.UUID
	log        zerolog.Logger

	mu sync.Mutex

	gameID      string
	phase       models.Phase
	epoch       uint64
	settings    models.GameSettings
	items       []models.Item
	players     []*models.Player
	turnIndex   int
	turnsPlayed int
	peeksMade   int
	quiz        *quiz.State
	countdown   *timer.Countdown
	sched       *timer.Scheduler
	winnerIndex int
	startedAt   time.Time
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ItemSource == nil {
		return nil, ErrNilItemSource
	}

	// Set default values if not provided
	if cfg.TurnTimeout <= 0 {
		cfg.TurnTimeout = DefaultTurnTimeout
	}
	if cfg.QuizTimeout <= 0 {
		cfg.QuizTimeout = DefaultQuizTimeout
	}
	if cfg.TurnStartDelay <= 0 {
		cfg.TurnStartDelay = DefaultTurnStartDelay
	}
	if cfg.RevealDelay <= 0 {
		cfg.RevealDelay = DefaultRevealDelay
	}
	if cfg.AIAccuracy <= 0 || cfg.AIAccuracy > 1 {
		cfg.AIAccuracy = DefaultAIAccuracy
	}

	roller := cfg.Roller
	if roller == nil {
		roller = rng.New(&rng.Config{})
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	ids := cfg.UUIDGenerator
	if ids == nil {
		ids = uuid.New()
	}

	return &service{
		config:      cfg,
		itemSource:  cfg.ItemSource,
		recordRepo:  cfg.RecordRepo,
		roller:      roller,
		clock:       clk,
		ids:         ids,
		log:         cfg.Logger,
		phase:       models.PhaseSetup,
		countdown:   timer.NewCountdown(),
		sched:       timer.NewScheduler(),
		winnerIndex: -1,
	}, nil
}

// StartGame validates settings, loads the item pool and starts the turn loop
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseSetup {
		s.log.Debug().Str("phase", string(s.phase)).Msg("start ignored outside setup")
		return &StartGameOutput{Applied: false}, nil
	}

	if err := input.Settings.Validate(); err != nil {
		return nil, err
	}

	s.setPhase(models.PhaseLoading)
	s.settings = input.Settings

	items, usedFallback, err := s.loadItems(ctx, input.Settings.Tier)
	if err != nil {
		s.setPhase(models.PhaseSetup)
		return nil, err
	}
	s.items = items

	s.gameID = s.ids.NewUUID()
	s.players = s.buildPlayers(input.HumanName, input.Settings.PlayerCount)
	s.turnIndex = s.roller.Intn(input.Settings.PlayerCount)
	s.turnsPlayed = 0
	s.winnerIndex = -1
	s.startedAt = s.clock.Now()

	s.log.Info().
		Str("game_id", s.gameID).
		Str("tier", string(input.Settings.Tier)).
		Int("players", input.Settings.PlayerCount).
		Int("win_lines", input.Settings.WinLines).
		Bool("fallback", usedFallback).
		Int("first_turn", s.turnIndex).
		Msg("game started")

	s.enterTurnStart()

	return &StartGameOutput{
		Applied:      true,
		GameID:       s.gameID,
		Phase:        s.phase,
		TurnIndex:    s.turnIndex,
		UsedFallback: usedFallback,
		Players:      s.copyPlayers(),
	}, nil
}

// loadItems makes a single fetch attempt and substitutes the fallback
// dataset when the source fails or returns too few distinct items
func (s *service) loadItems(ctx context.Context, tier models.Tier) ([]models.Item, bool, error) {
	fetched, err := s.itemSource.FetchItemPool(ctx, tier, models.BoardSize)
	if err != nil {
		s.log.Warn().Err(err).Str("tier", string(tier)).Msg("item fetch failed, using fallback dataset")
		fetched = nil
	}

	items := dedupeItems(fetched)
	usedFallback := false
	if len(items) < models.BoardSize {
		if err == nil && fetched != nil {
			s.log.Warn().Int("count", len(items)).Msg("item fetch returned too few distinct items, using fallback dataset")
		}
		items = dedupeItems(itempool.Fallback())
		usedFallback = true
	}

	if len(items) < models.BoardSize {
		return nil, false, ErrInsufficientItems
	}

	return items[:models.BoardSize], usedFallback, nil
}

// buildPlayers creates the human (seat 0) and AI players, each with an
// independent random permutation of the shared item set
func (s *service) buildPlayers(humanName string, count int) []*models.Player {
	if humanName == "" {
		humanName = "You"
	}

	players := make([]*models.Player, 0, count)
	for i := 0; i < count; i++ {
		name := humanName
		isAI := i > 0
		if isAI {
			name = opponentNames[(i-1)%len(opponentNames)]
		}

		playerID := s.ids.NewUUID()
		players = append(players, &models.Player{
			ID:          playerID,
			DisplayName: name,
			IsAI:        isAI,
			Board:       s.buildBoard(playerID),
			Color:       models.PlayerColors[i%len(models.PlayerColors)],
		})
	}
	return players
}

// buildBoard shuffles the shared item set into a fresh 25-cell board
func (s *service) buildBoard(playerID string) models.Board {
	order := make([]models.Item, len(s.items))
	copy(order, s.items)
	s.roller.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	board := make(models.Board, len(order))
	for i, item := range order {
		board[i] = models.Cell{
			ID:        fmt.Sprintf("%s-cell-%02d", playerID, i),
			Item:      item,
			GridIndex: i,
		}
	}
	return board
}

// Peek reveals one of the current player's cells
func (s *service) Peek(ctx context.Context, input *PeekInput) (*PeekOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cell, applied := s.applyPeek(input.PlayerID, input.CellID)
	return &PeekOutput{Applied: applied, Cell: cell}, nil
}

func (s *service) applyPeek(playerID, cellID string) (*models.Cell, bool) {
	if s.phase != models.PhasePeek {
		return nil, false
	}

	current := s.players[s.turnIndex]
	if current.ID != playerID {
		return nil, false
	}

	for i := range current.Board {
		if current.Board[i].ID == cellID {
			s.peeksMade++
			cell := current.Board[i]
			return &cell, true
		}
	}
	return nil, false
}

// FinishPeek ends the peek phase early for the current player
func (s *service) FinishPeek(ctx context.Context, input *FinishPeekInput) (*FinishPeekOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return &FinishPeekOutput{Applied: s.applyFinishPeek(input.PlayerID)}, nil
}

func (s *service) applyFinishPeek(playerID string) bool {
	if s.phase != models.PhasePeek {
		return false
	}

	current := s.players[s.turnIndex]
	if current.ID != playerID {
		return false
	}

	// A human must have peeked at least once before moving on
	if !current.IsAI && s.peeksMade == 0 {
		return false
	}

	s.enterSelect()
	return true
}

// Select challenges one of the current player's unflipped cells
func (s *service) Select(ctx context.Context, input *SelectInput) (*SelectOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	applied := s.applySelect(input.PlayerID, input.ItemID)
	return &SelectOutput{Applied: applied, Quiz: s.quizView()}, nil
}

func (s *service) applySelect(playerID, itemID string) bool {
	if s.phase != models.PhaseSelect {
		return false
	}

	current := s.players[s.turnIndex]
	if current.ID != playerID {
		return false
	}

	idx := current.Board.CellByItemID(itemID)
	if idx < 0 || current.Board[idx].IsFlipped {
		return false
	}

	s.startQuiz(current.Board[idx].Item)
	return true
}

// AnswerQuiz records a player's quiz answer
func (s *service) AnswerQuiz(ctx context.Context, input *AnswerQuizInput) (*AnswerQuizOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	applied := s.applyAnswer(input.PlayerID, input.OptionID)
	allAnswered := s.quiz != nil && s.quiz.AllAnswered(s.playerIDs())
	return &AnswerQuizOutput{Applied: applied, AllAnswered: allAnswered}, nil
}

func (s *service) applyAnswer(playerID, optionID string) bool {
	if s.phase != models.PhaseQuiz || s.quiz == nil {
		return false
	}

	if s.playerByID(playerID) == nil {
		return false
	}

	// The timeout sentinel is not an option; only the expiry path writes it
	if !s.quiz.HasOption(optionID) {
		return false
	}

	if !s.quiz.RecordAnswer(playerID, optionID) {
		return false
	}

	s.log.Debug().
		Str("player_id", playerID).
		Bool("correct", s.quiz.IsCorrect(playerID)).
		Msg("answer recorded")

	if s.quiz.AllAnswered(s.playerIDs()) {
		s.beginReveal()
	}
	return true
}

// ResetToSetup returns a finished game to SETUP
func (s *service) ResetToSetup(ctx context.Context, input *ResetToSetupInput) (*ResetToSetupOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseGameOver {
		return &ResetToSetupOutput{Applied: false}, nil
	}

	s.setPhase(models.PhaseSetup)
	s.sched.Clear()
	s.countdown = timer.NewCountdown()
	s.gameID = ""
	s.items = nil
	s.players = nil
	s.quiz = nil
	s.turnIndex = 0
	s.turnsPlayed = 0
	s.peeksMade = 0
	s.winnerIndex = -1

	return &ResetToSetupOutput{Applied: true}, nil
}

// Tick advances the game by one time unit
func (s *service) Tick(ctx context.Context, input *TickInput) (*TickOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sched.Tick()
	if s.countdown.Tick() {
		s.onCountdownExpired(ctx)
	}

	return &TickOutput{
		Phase:     s.phase,
		Remaining: s.countdown.Remaining(),
		TurnIndex: s.turnIndex,
	}, nil
}

// GetGame returns a deep-copied snapshot of the current game state
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := &GameView{
		GameID:    s.gameID,
		Phase:     s.phase,
		Settings:  s.settings,
		Players:   s.copyPlayers(),
		TurnIndex: s.turnIndex,
		Remaining: s.countdown.Remaining(),
		Quiz:      s.quizView(),
		Turns:     s.turnsPlayed,
	}

	if len(s.players) > 0 {
		view.CurrentPlayerID = s.players[s.turnIndex].ID
	}
	if s.winnerIndex >= 0 {
		view.WinnerID = s.players[s.winnerIndex].ID
	}

	return &GetGameOutput{Game: view}, nil
}

/* ---- phase transitions ---- */

// setPhase moves the phase machine and invalidates every delayed action
// scheduled against the previous phase
func (s *service) setPhase(phase models.Phase) {
	s.log.Debug().
		Str("from", string(s.phase)).
		Str("to", string(phase)).
		Msg("phase transition")
	s.phase = phase
	s.epoch++
}

// guard wraps a delayed action with a stale-state check: the action only
// runs if no phase transition happened since it was scheduled
func (s *service) guard(epoch uint64, fn func()) func() {
	return func() {
		if s.epoch != epoch {
			s.log.Debug().Msg("stale delayed action dropped")
			return
		}
		fn()
	}
}

func (s *service) enterTurnStart() {
	s.setPhase(models.PhaseTurnStart)
	s.peeksMade = 0
	s.quiz = nil
	s.countdown.Stop()

	epoch := s.epoch
	s.sched.Schedule(s.config.TurnStartDelay, s.guard(epoch, s.enterPeek))
}

func (s *service) enterPeek() {
	s.setPhase(models.PhasePeek)
	s.countdown.Reset(s.config.TurnTimeout)

	if s.players[s.turnIndex].IsAI {
		s.scheduleOpponentPeek()
	}
}

// enterSelect carries the remaining countdown over from PEEK; the two
// phases share one deadline budget
func (s *service) enterSelect() {
	s.setPhase(models.PhaseSelect)

	if s.countdown.Remaining() <= 0 {
		s.forceSelect()
		return
	}

	if s.players[s.turnIndex].IsAI {
		s.scheduleOpponentSelect()
	}
}

// forceSelect picks uniformly among the current player's unflipped cells,
// falling back to any cell if none remain
func (s *service) forceSelect() {
	current := s.players[s.turnIndex]

	unflipped := current.Board.UnflippedIndexes()
	var idx int
	if len(unflipped) == 0 {
		idx = s.roller.Intn(len(current.Board))
	} else {
		idx = unflipped[s.roller.Intn(len(unflipped))]
	}

	s.log.Info().
		Str("player_id", current.ID).
		Int("grid_index", idx).
		Msg("selection forced by countdown expiry")

	s.startQuiz(current.Board[idx].Item)
}

func (s *service) startQuiz(target models.Item) {
	mode := quiz.RandomMode(s.roller)
	state, err := quiz.Build(target, s.items, mode, s.roller)
	if err != nil {
		// Unreachable once StartGame validated 25 distinct items; advance
		// the turn anyway so the machine cannot stall
		s.log.Error().Err(err).Msg("quiz construction failed")
		s.turnIndex = (s.turnIndex + 1) % len(s.players)
		s.enterTurnStart()
		return
	}

	s.quiz = state
	s.setPhase(models.PhaseQuiz)
	s.countdown.Reset(s.config.QuizTimeout)
	s.scheduleOpponentAnswers()
}

// beginReveal freezes the quiz and schedules evaluation after the reveal
// delay. Runs at most once per quiz.
func (s *service) beginReveal() {
	if s.quiz.ResultsShown {
		return
	}
	s.quiz.ResultsShown = true
	s.countdown.Stop()

	epoch := s.epoch
	s.sched.Schedule(s.config.RevealDelay, s.guard(epoch, s.resolveQuiz))
}

// resolveQuiz flips cells for correct answers, recomputes scores and moves
// to the next turn or GAME_OVER
func (s *service) resolveQuiz() {
	q := s.quiz
	s.turnsPlayed++

	for _, p := range s.players {
		if !q.IsCorrect(p.ID) {
			continue
		}
		// Correct answers flip the target cell on the answerer's own board
		bingo.Flip(p.Board, q.Target.ID)
		p.Score = bingo.CountCompletedLines(p.Board)
	}

	// First player in seat order to reach the target wins ties
	winner := -1
	for i, p := range s.players {
		if p.Score >= s.settings.WinLines {
			winner = i
			break
		}
	}

	if winner >= 0 {
		s.winnerIndex = winner
		s.setPhase(models.PhaseGameOver)
		s.countdown.Stop()
		s.quiz = nil

		s.log.Info().
			Str("game_id", s.gameID).
			Str("winner_id", s.players[winner].ID).
			Str("winner", s.players[winner].DisplayName).
			Int("turns", s.turnsPlayed).
			Msg("game over")

		s.saveRecord()
		return
	}

	s.turnIndex = (s.turnIndex + 1) % len(s.players)
	s.enterTurnStart()
}

// onCountdownExpired handles the shared deadline running out
func (s *service) onCountdownExpired(ctx context.Context) {
	switch s.phase {
	case models.PhasePeek:
		s.log.Info().Msg("peek deadline expired")
		s.enterSelect()
	case models.PhaseSelect:
		s.forceSelect()
	case models.PhaseQuiz:
		s.fillTimeouts()
	}
}

// fillTimeouts records the timeout marker for every player still missing an
// answer, guaranteeing the quiz always exits
func (s *service) fillTimeouts() {
	for _, p := range s.players {
		if s.quiz.HasAnswered(p.ID) {
			continue
		}
		s.quiz.RecordAnswer(p.ID, quiz.TimeoutMarker)
		s.log.Info().Str("player_id", p.ID).Msg("answer timed out")
	}
	s.beginReveal()
}

// saveRecord persists the finished game, best effort
func (s *service) saveRecord() {
	if s.recordRepo == nil {
		return
	}

	results := make([]models.PlayerResult, 0, len(s.players))
	for _, p := range s.players {
		flipped := 0
		for i := range p.Board {
			if p.Board[i].IsFlipped {
				flipped++
			}
		}
		results = append(results, models.PlayerResult{
			PlayerID:     p.ID,
			PlayerName:   p.DisplayName,
			IsAI:         p.IsAI,
			Lines:        p.Score,
			FlippedCells: flipped,
		})
	}

	rec := &models.GameRecord{
		ID:         s.ids.NewUUID(),
		GameID:     s.gameID,
		WinnerID:   s.players[s.winnerIndex].ID,
		WinnerName: s.players[s.winnerIndex].DisplayName,
		Settings:   s.settings,
		Results:    results,
		Turns:      s.turnsPlayed,
		StartedAt:  s.startedAt,
		EndedAt:    s.clock.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.recordRepo.SaveRecord(ctx, &recordRepo.SaveRecordInput{Record: rec}); err != nil {
		s.log.Warn().Err(err).Str("game_id", s.gameID).Msg("failed to save game record")
	}
}

/* ---- helpers ---- */

func (s *service) playerIDs() []string {
	ids := make([]string, len(s.players))
	for i, p := range s.players {
		ids[i] = p.ID
	}
	return ids
}

func (s *service) playerByID(playerID string) *models.Player {
	for _, p := range s.players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

func (s *service) copyPlayers() []*models.Player {
	out := make([]*models.Player, len(s.players))
	for i, p := range s.players {
		out[i] = p.Clone()
	}
	return out
}

// quizView builds the render-facing form of the active quiz
func (s *service) quizView() *QuizView {
	if s.quiz == nil {
		return nil
	}

	view := &QuizView{
		Mode:            s.quiz.Mode,
		CorrectOptionID: s.quiz.CorrectOptionID,
		ResultsShown:    s.quiz.ResultsShown,
	}

	switch s.quiz.Mode {
	case quiz.ModeMeaningToItem:
		view.Prompt = s.quiz.Target.Meaning
	default:
		view.Prompt = s.quiz.Target.CombinedLabel
	}

	view.Options = make([]OptionView, 0, len(s.quiz.Options))
	for _, opt := range s.quiz.Options {
		label := opt.Meaning
		if s.quiz.Mode == quiz.ModeMeaningToItem {
			label = opt.CombinedLabel
		}
		view.Options = append(view.Options, OptionView{ID: opt.ID, Label: label})
	}

	for _, id := range s.playerIDs() {
		if s.quiz.HasAnswered(id) {
			view.AnsweredIDs = append(view.AnsweredIDs, id)
		}
	}

	return view
}

// dedupeItems drops items with repeated IDs, preserving order
func dedupeItems(items []models.Item) []models.Item {
	seen := make(map[string]bool, len(items))
	out := make([]models.Item, 0, len(items))
	for _, item := range items {
		if item.ID == "" || seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		out = append(out, item)
	}
	return out
}
