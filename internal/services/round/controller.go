package round

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/wordrush/wordrush/internal/dependencies/clock"
	"github.com/wordrush/wordrush/internal/dependencies/random"
	"github.com/wordrush/wordrush/internal/language"
	"github.com/wordrush/wordrush/internal/model"
	"github.com/wordrush/wordrush/internal/services/board"
	"github.com/wordrush/wordrush/internal/services/path"
	"github.com/wordrush/wordrush/internal/services/scoring"
	"github.com/wordrush/wordrush/internal/services/wordlist"
	"github.com/wordrush/wordrush/internal/storage"
)

// embedPoolSize is how many candidate words the generator gets to choose
// from; it trims the pool itself based on board size
const embedPoolSize = 24

const roundIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Controller runs the round lifecycle: grid generation at round start,
// then one verify-score-combo cycle per submitted word. Different
// players may submit to the same round concurrently; each round's
// read-modify-write cycle is serialized by a per-round lock. Serializing
// a single player's own submissions remains the transport layer's job.
type Controller struct {
	storage         storage.Storage
	boardService    *board.Service
	pathService     *path.Service
	scoringService  *scoring.Service
	wordlistService *wordlist.Service
	clock           clock.Clock
	random          random.Random
	logger          *slog.Logger

	mu         sync.Mutex
	roundLocks map[model.RoundID]*sync.Mutex
}

// NewController creates a new round controller
func NewController(
	store storage.Storage,
	boardService *board.Service,
	pathService *path.Service,
	scoringService *scoring.Service,
	wordlistService *wordlist.Service,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:         store,
		boardService:    boardService,
		pathService:     pathService,
		scoringService:  scoringService,
		wordlistService: wordlistService,
		clock:           clk,
		random:          rnd,
		logger:          logger,
		roundLocks:      make(map[model.RoundID]*sync.Mutex),
	}
}

// lockRound returns the mutex serializing one round's updates. Entries
// live as long as the controller; rounds are transient and few.
func (c *Controller) lockRound(id model.RoundID) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	lock, ok := c.roundLocks[id]
	if !ok {
		lock = &sync.Mutex{}
		c.roundLocks[id] = lock
	}
	return lock
}

// CreateRound generates a fresh grid seeded with embeddable words from
// the language's word list (or curated compounds) and opens a round for
// the given players
func (c *Controller) CreateRound(ctx context.Context, lang language.Language, rows, cols int, players []model.PlayerID) (*model.Round, error) {
	if len(players) == 0 {
		return nil, model.ErrNoPlayers
	}

	candidates, err := c.wordlistService.EmbedCandidates(lang, embedPoolSize)
	if err != nil {
		return nil, err
	}

	grid, placements, err := c.boardService.Generate(rows, cols, lang, candidates)
	if err != nil {
		return nil, err
	}

	embedded := make([]string, 0, len(placements))
	for _, p := range placements {
		embedded = append(embedded, p.Word)
	}

	now := c.clock.Now()
	round := &model.Round{
		ID:            model.RoundID(c.random.String(12, roundIDAlphabet)),
		Language:      lang,
		Grid:          grid,
		EmbeddedWords: embedded,
		Players:       players,
		State:         model.RoundStateActive,
		Accepted:      make(map[model.PlayerID][]string),
		Combos:        make(map[model.PlayerID]model.ComboState),
		Scores:        make(map[model.PlayerID]int),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, playerID := range players {
		round.Combos[playerID] = scoring.ResetCombo()
		round.Scores[playerID] = 0
	}

	if err := c.storage.SaveRound(ctx, round); err != nil {
		c.logger.Error("failed to save round",
			slog.String("round_id", string(round.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("round created",
		slog.String("round_id", string(round.ID)),
		slog.String("language", string(lang)),
		slog.Int("rows", rows),
		slog.Int("cols", cols),
		slog.Int("player_count", len(players)),
		slog.Int("embedded_words", len(embedded)),
	)

	return round, nil
}

// GetRound retrieves a round by ID
func (c *Controller) GetRound(ctx context.Context, roundID model.RoundID) (*model.Round, error) {
	return c.storage.GetRound(ctx, roundID)
}

// SubmitWord evaluates one word submission for a player. Rejections
// (empty, duplicate, dictionary miss, no path on the grid) are normal
// results, not errors, and each resets the player's combo; only storage
// failures and misuse (unknown round, foreign player, finished round)
// surface as errors. A lapsed combo window is decayed before evaluation.
func (c *Controller) SubmitWord(ctx context.Context, roundID model.RoundID, playerID model.PlayerID, word string, autoValidated bool) (*model.SubmissionResult, error) {
	lock := c.lockRound(roundID)
	lock.Lock()
	defer lock.Unlock()

	round, err := c.storage.GetRound(ctx, roundID)
	if err != nil {
		return nil, err
	}
	if round.State != model.RoundStateActive {
		return nil, model.ErrRoundFinished
	}
	if !round.HasPlayer(playerID) {
		return nil, model.ErrNotInRound
	}

	graphemes, err := language.NormalizeWord(word, round.Language)
	if err != nil {
		return nil, err
	}
	canonical := string(graphemes)
	now := c.clock.Now()

	combo := round.Combos[playerID]
	if scoring.ComboExpired(combo, now) {
		combo = scoring.ResetCombo()
		round.Combos[playerID] = combo
	}

	if len(graphemes) == 0 {
		return c.reject(ctx, round, playerID, canonical, model.RejectEmptyWord, now)
	}
	if round.HasAccepted(playerID, canonical) {
		return c.reject(ctx, round, playerID, canonical, model.RejectDuplicate, now)
	}

	if c.wordlistService.Loaded(round.Language) {
		inList, err := c.wordlistService.Contains(canonical, round.Language)
		if err != nil {
			return nil, err
		}
		if !inList {
			return c.reject(ctx, round, playerID, canonical, model.RejectNotInWordList, now)
		}
	}

	winningPath, err := c.pathService.FindPath(canonical, round.Grid, round.Language)
	if err != nil {
		return nil, err
	}
	if winningPath == nil {
		return c.reject(ctx, round, playerID, canonical, model.RejectNotOnBoard, now)
	}

	score, newCombo, err := c.scoringService.ScoreSubmission(canonical, combo, autoValidated, round.Language)
	if err != nil {
		return nil, err
	}

	round.RecordAcceptance(playerID, canonical, score.Total, newCombo)
	round.UpdatedAt = now
	if err := c.storage.SaveRound(ctx, round); err != nil {
		return nil, err
	}

	c.logger.Info("word accepted",
		slog.String("round_id", string(round.ID)),
		slog.String("player_id", string(playerID)),
		slog.String("word", canonical),
		slog.Int("points", score.Total),
		slog.Int("combo_level", newCombo.Level),
	)

	return &model.SubmissionResult{
		Accepted: true,
		Word:     canonical,
		Language: round.Language,
		Path:     winningPath,
		Score:    score,
		Combo:    newCombo,
		Total:    round.Scores[playerID],
	}, nil
}

// reject records the combo reset a failed submission causes and returns
// the negative result
func (c *Controller) reject(ctx context.Context, round *model.Round, playerID model.PlayerID, word string, reason model.RejectReason, now time.Time) (*model.SubmissionResult, error) {
	round.Combos[playerID] = scoring.ResetCombo()
	round.UpdatedAt = now
	if err := c.storage.SaveRound(ctx, round); err != nil {
		return nil, err
	}

	return &model.SubmissionResult{
		Accepted: false,
		Reason:   reason,
		Word:     word,
		Language: round.Language,
		Combo:    round.Combos[playerID],
		Total:    round.Scores[playerID],
	}, nil
}

// FinishRound closes the round to further submissions
func (c *Controller) FinishRound(ctx context.Context, roundID model.RoundID) (*model.Round, error) {
	lock := c.lockRound(roundID)
	lock.Lock()
	defer lock.Unlock()

	round, err := c.storage.GetRound(ctx, roundID)
	if err != nil {
		return nil, err
	}
	if round.State == model.RoundStateFinished {
		return round, nil
	}

	round.State = model.RoundStateFinished
	round.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveRound(ctx, round); err != nil {
		return nil, err
	}

	c.logger.Info("round finished", slog.String("round_id", string(round.ID)))
	return round, nil
}
