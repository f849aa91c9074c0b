package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"wordbingo/internal/itempool"
	"wordbingo/internal/models"
	recordRepo "wordbingo/internal/repositories/record"
	gameService "wordbingo/internal/services/game"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	level, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger = logger.Level(level)

	// Initialize the item source; fall back to the built-in dataset when no
	// API is configured
	var itemSource itempool.Source
	baseURL := getEnv("ITEM_API_BASE_URL", "")
	if baseURL != "" {
		httpSource, err := itempool.NewHTTP(&itempool.Config{
			BaseURL: baseURL,
			APIKey:  getEnv("ITEM_API_KEY", ""),
			Logger:  logger,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create item source")
		}
		itemSource = httpSource
	} else {
		logger.Info().Msg("no item API configured, using built-in dataset")
		itemSource = itempool.NewStatic()
	}

	// Initialize the record repository when Redis is configured
	var records recordRepo.Repository
	if addr := getEnv("REDIS_ADDR", ""); addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		})

		repo, err := recordRepo.NewRedis(&recordRepo.Config{
			RedisClient: redisClient,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create record repository")
		}
		records = repo
	}

	// Initialize the game service
	svc, err := gameService.New(&gameService.Config{
		ItemSource: itemSource,
		RecordRepo: records,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create game service")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Drive the game clock at one unit per second
	go runTicker(ctx, svc, logger)

	fmt.Println("wordbingo - type 'help' for commands")
	runConsole(ctx, svc)

	logger.Info().Msg("shutting down")
}

// runTicker advances the game once per second and announces phase changes
func runTicker(ctx context.Context, svc gameService.Service, logger zerolog.Logger) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	lastPhase := models.PhaseSetup
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			out, err := svc.Tick(ctx, &gameService.TickInput{})
			if err != nil {
				logger.Error().Err(err).Msg("tick failed")
				continue
			}
			if out.Phase != lastPhase {
				announcePhase(ctx, svc, out)
				lastPhase = out.Phase
			}
		}
	}
}

func announcePhase(ctx context.Context, svc gameService.Service, out *gameService.TickOutput) {
	view := snapshot(ctx, svc)
	if view == nil {
		return
	}

	switch out.Phase {
	case models.PhasePeek:
		fmt.Printf("\n== %s's turn: peek phase (%d left) ==\n", currentName(view), out.Remaining)
	case models.PhaseSelect:
		fmt.Printf("\n== select phase (%d left) ==\n", out.Remaining)
	case models.PhaseQuiz:
		printQuiz(view)
	case models.PhaseGameOver:
		fmt.Printf("\n== game over, winner: %s ==\n", winnerName(view))
	}
}

// runConsole reads commands from stdin until EOF or cancellation
func runConsole(ctx context.Context, svc gameService.Service) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "help":
			printHelp()
		case "start":
			handleStart(ctx, svc, fields[1:])
		case "peek":
			handlePeek(ctx, svc, fields[1:])
		case "done":
			handleDone(ctx, svc)
		case "pick":
			handlePick(ctx, svc, fields[1:])
		case "ans":
			handleAnswer(ctx, svc, fields[1:])
		case "state":
			printState(snapshot(ctx, svc))
		case "reset":
			handleReset(ctx, svc)
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q, type 'help'\n", fields[0])
		}
	}
}

func printHelp() {
	fmt.Println(`commands:
  start [tier] [players] [lines]  start a game (defaults: grade1 2 1)
  peek <cell>                     peek at board cell 0-24
  done                            finish peeking
  pick <cell>                     challenge board cell 0-24
  ans <option>                    answer the quiz with option 1-4
  state                           show the current game
  reset                           return a finished game to setup
  quit                            exit`)
}

func handleStart(ctx context.Context, svc gameService.Service, args []string) {
	settings := models.GameSettings{
		Tier:        models.TierGrade1,
		PlayerCount: 2,
		WinLines:    1,
	}
	if len(args) > 0 {
		settings.Tier = models.Tier(args[0])
	}
	if len(args) > 1 {
		settings.PlayerCount, _ = strconv.Atoi(args[1])
	}
	if len(args) > 2 {
		settings.WinLines, _ = strconv.Atoi(args[2])
	}

	out, err := svc.StartGame(ctx, &gameService.StartGameInput{
		Settings:  settings,
		HumanName: getEnv("PLAYER_NAME", "You"),
	})
	if err != nil {
		fmt.Printf("start failed: %v\n", err)
		return
	}
	if !out.Applied {
		fmt.Println("a game is already running")
		return
	}

	fmt.Printf("game %s started with %d players", out.GameID, len(out.Players))
	if out.UsedFallback {
		fmt.Print(" (built-in dataset)")
	}
	fmt.Printf("; %s goes first\n", out.Players[out.TurnIndex].DisplayName)
}

func handlePeek(ctx context.Context, svc gameService.Service, args []string) {
	cell, ok := humanCell(ctx, svc, args)
	if !ok {
		return
	}

	out, err := svc.Peek(ctx, &gameService.PeekInput{
		PlayerID: humanID(ctx, svc),
		CellID:   cell.ID,
	})
	if err != nil || !out.Applied {
		fmt.Println("cannot peek right now")
		return
	}
	fmt.Printf("cell %d: %s = %s\n", cell.GridIndex, out.Cell.Item.CombinedLabel, out.Cell.Item.Meaning)
}

func handleDone(ctx context.Context, svc gameService.Service) {
	out, err := svc.FinishPeek(ctx, &gameService.FinishPeekInput{PlayerID: humanID(ctx, svc)})
	if err != nil || !out.Applied {
		fmt.Println("cannot finish peeking right now (peek at least one cell first)")
		return
	}
	fmt.Println("peeking finished, pick a cell to challenge")
}

func handlePick(ctx context.Context, svc gameService.Service, args []string) {
	cell, ok := humanCell(ctx, svc, args)
	if !ok {
		return
	}

	out, err := svc.Select(ctx, &gameService.SelectInput{
		PlayerID: humanID(ctx, svc),
		ItemID:   cell.Item.ID,
	})
	if err != nil || !out.Applied {
		fmt.Println("cannot challenge that cell")
		return
	}
}

func handleAnswer(ctx context.Context, svc gameService.Service, args []string) {
	view := snapshot(ctx, svc)
	if view == nil || view.Quiz == nil {
		fmt.Println("no quiz is active")
		return
	}

	n, err := strconv.Atoi(firstArg(args))
	if err != nil || n < 1 || n > len(view.Quiz.Options) {
		fmt.Printf("answer with a number 1-%d\n", len(view.Quiz.Options))
		return
	}

	out, err := svc.AnswerQuiz(ctx, &gameService.AnswerQuizInput{
		PlayerID: humanID(ctx, svc),
		OptionID: view.Quiz.Options[n-1].ID,
	})
	if err != nil || !out.Applied {
		fmt.Println("answer not accepted (already answered?)")
		return
	}
	fmt.Println("answer locked in")
}

func handleReset(ctx context.Context, svc gameService.Service) {
	out, err := svc.ResetToSetup(ctx, &gameService.ResetToSetupInput{})
	if err != nil || !out.Applied {
		fmt.Println("reset only works after a game ends")
		return
	}
	fmt.Println("back to setup")
}

func printQuiz(view *gameService.GameView) {
	q := view.Quiz
	if q == nil {
		return
	}
	fmt.Printf("\n== quiz: %s ==\n", q.Prompt)
	for i, opt := range q.Options {
		fmt.Printf("  %d) %s\n", i+1, opt.Label)
	}
	fmt.Println("answer with: ans <number>")
}

func printState(view *gameService.GameView) {
	if view == nil || view.GameID == "" {
		fmt.Println("no game running; use 'start'")
		return
	}

	fmt.Printf("game %s  phase=%s  remaining=%d  turn=%s\n",
		view.GameID, view.Phase, view.Remaining, currentName(view))
	for _, p := range view.Players {
		flipped := 0
		for i := range p.Board {
			if p.Board[i].IsFlipped {
				flipped++
			}
		}
		fmt.Printf("  %-10s lines=%d flipped=%d\n", p.DisplayName, p.Score, flipped)
	}
	if view.Quiz != nil {
		printQuiz(view)
	}
}

func snapshot(ctx context.Context, svc gameService.Service) *gameService.GameView {
	out, err := svc.GetGame(ctx, &gameService.GetGameInput{})
	if err != nil {
		return nil
	}
	return out.Game
}

// humanID returns the first player's ID; the human always sits in seat 0
func humanID(ctx context.Context, svc gameService.Service) string {
	view := snapshot(ctx, svc)
	if view == nil || len(view.Players) == 0 {
		return ""
	}
	return view.Players[0].ID
}

func humanCell(ctx context.Context, svc gameService.Service, args []string) (*models.Cell, bool) {
	view := snapshot(ctx, svc)
	if view == nil || len(view.Players) == 0 {
		fmt.Println("no game running; use 'start'")
		return nil, false
	}

	idx, err := strconv.Atoi(firstArg(args))
	if err != nil || idx < 0 || idx >= models.BoardSize {
		fmt.Printf("give a cell number 0-%d\n", models.BoardSize-1)
		return nil, false
	}

	cell := view.Players[0].Board[idx]
	return &cell, true
}

func currentName(view *gameService.GameView) string {
	if len(view.Players) == 0 {
		return "?"
	}
	return view.Players[view.TurnIndex].DisplayName
}

func winnerName(view *gameService.GameView) string {
	for _, p := range view.Players {
		if p.ID == view.WinnerID {
			return p.DisplayName
		}
	}
	return "?"
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
