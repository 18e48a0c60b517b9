package model

import (
	"time"

	"github.com/wordrush/wordrush/internal/language"
)

// RoundID uniquely identifies a round
type RoundID string

// RoundState represents the current phase of a round
type RoundState string

const (
	RoundStateActive   RoundState = "active"   // accepting word submissions
	RoundStateFinished RoundState = "finished" // time is up, no further submissions
)

// Round is one timed game of word search on a shared grid. The grid is
// immutable once generated; everything else is per-player bookkeeping.
// Rounds are transient and discarded once finished.
type Round struct {
	ID            RoundID
	Language      language.Language
	Grid          *Grid
	EmbeddedWords []string // words the generator managed to place
	Players       []PlayerID
	State         RoundState

	// Per-player progress
	Accepted map[PlayerID][]string   // accepted words, in submission order
	Combos   map[PlayerID]ComboState // streak state, single-writer per player
	Scores   map[PlayerID]int        // accumulated points

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy of the round. Storage backends hand out
// clones, so no two callers ever share the per-player maps.
func (r *Round) Clone() *Round {
	if r == nil {
		return nil
	}
	out := *r
	out.Grid = r.Grid.Clone()
	out.EmbeddedWords = append([]string(nil), r.EmbeddedWords...)
	out.Players = append([]PlayerID(nil), r.Players...)
	if r.Accepted != nil {
		out.Accepted = make(map[PlayerID][]string, len(r.Accepted))
		for id, words := range r.Accepted {
			out.Accepted[id] = append([]string(nil), words...)
		}
	}
	if r.Combos != nil {
		out.Combos = make(map[PlayerID]ComboState, len(r.Combos))
		for id, combo := range r.Combos {
			out.Combos[id] = combo
		}
	}
	if r.Scores != nil {
		out.Scores = make(map[PlayerID]int, len(r.Scores))
		for id, score := range r.Scores {
			out.Scores[id] = score
		}
	}
	return &out
}

// HasPlayer returns true if the player participates in this round
func (r *Round) HasPlayer(playerID PlayerID) bool {
	for _, id := range r.Players {
		if id == playerID {
			return true
		}
	}
	return false
}

// HasAccepted returns true if the player already had this (normalized)
// word accepted in this round
func (r *Round) HasAccepted(playerID PlayerID, word string) bool {
	for _, w := range r.Accepted[playerID] {
		if w == word {
			return true
		}
	}
	return false
}

// RecordAcceptance stores an accepted word together with its points and
// the player's updated combo state
func (r *Round) RecordAcceptance(playerID PlayerID, word string, points int, combo ComboState) {
	if r.Accepted == nil {
		r.Accepted = make(map[PlayerID][]string)
	}
	if r.Combos == nil {
		r.Combos = make(map[PlayerID]ComboState)
	}
	if r.Scores == nil {
		r.Scores = make(map[PlayerID]int)
	}
	r.Accepted[playerID] = append(r.Accepted[playerID], word)
	r.Combos[playerID] = combo
	r.Scores[playerID] += points
}

// RejectReason explains why a submission was not accepted.
// Rejections are expected, frequent outcomes, not errors.
type RejectReason string

const (
	RejectEmptyWord     RejectReason = "empty_word"
	RejectDuplicate     RejectReason = "duplicate"
	RejectNotInWordList RejectReason = "not_in_word_list"
	RejectNotOnBoard    RejectReason = "not_on_board"
)

// SubmissionResult is the outcome of one word submission
type SubmissionResult struct {
	Accepted bool
	Reason   RejectReason      // set only when not accepted
	Word     string            // normalized form that was evaluated
	Language language.Language // round language, for display rendering
	Path     []Position   // winning path, for highlighting
	Score    WordScore    // zero value when not accepted
	Combo    ComboState   // player's combo state after this submission
	Total    int          // player's accumulated round score
}
