package response

import (
	"time"

	"github.com/wordrush/wordrush/internal/model"
	"github.com/wordrush/wordrush/internal/services/auth"
)

// Player represents a player in API responses
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		IsGuest:     p.IsGuest,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(&s.Player),
		SessionToken: s.Token,
	}
}

// Position is a grid coordinate in API responses
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PositionsFromModel converts a path of model positions
func PositionsFromModel(path []model.Position) []Position {
	if path == nil {
		return nil
	}
	out := make([]Position, len(path))
	for i, p := range path {
		out[i] = Position{Row: p.Row, Col: p.Col}
	}
	return out
}

// Round represents a round in API responses. The grid is rendered one
// string per row; embedded words are deliberately omitted so clients
// cannot cheat.
type Round struct {
	ID        string         `json:"id"`
	Language  string         `json:"language"`
	Rows      int            `json:"rows"`
	Cols      int            `json:"cols"`
	Grid      []string       `json:"grid"`
	State     string         `json:"state"`
	Players   []string       `json:"players"`
	Scores    map[string]int `json:"scores"`
	CreatedAt time.Time      `json:"created_at"`

	// FoundWords lists the requesting player's own accepted words.
	// Empty for spectators; players never see each other's finds.
	FoundWords []string `json:"found_words,omitempty"`
}

// RoundFromModel converts a model.Round to a response Round
func RoundFromModel(r *model.Round) Round {
	grid := make([]string, r.Grid.Rows)
	for row := 0; row < r.Grid.Rows; row++ {
		grid[row] = string(r.Grid.Cells[row])
	}

	players := make([]string, len(r.Players))
	for i, id := range r.Players {
		players[i] = string(id)
	}

	scores := make(map[string]int, len(r.Scores))
	for id, score := range r.Scores {
		scores[string(id)] = score
	}

	return Round{
		ID:        string(r.ID),
		Language:  string(r.Language),
		Rows:      r.Grid.Rows,
		Cols:      r.Grid.Cols,
		Grid:      grid,
		State:     string(r.State),
		Players:   players,
		Scores:    scores,
		CreatedAt: r.CreatedAt,
	}
}

// WordScore is the point breakdown for an accepted word
type WordScore struct {
	Base       int `json:"base"`
	ComboBonus int `json:"combo_bonus"`
	Total      int `json:"total"`
}

// Submission is the outcome of a word submission
type Submission struct {
	Accepted   bool       `json:"accepted"`
	Reason     string     `json:"reason,omitempty"`
	Word       string     `json:"word"`
	Language   string     `json:"language"`
	Path       []Position `json:"path,omitempty"`
	Score      *WordScore `json:"score,omitempty"`
	ComboLevel int        `json:"combo_level"`
	TotalScore int        `json:"total_score"`
}

// SubmissionFromModel converts a model.SubmissionResult
func SubmissionFromModel(r *model.SubmissionResult) Submission {
	sub := Submission{
		Accepted:   r.Accepted,
		Reason:     string(r.Reason),
		Word:       r.Word,
		Language:   string(r.Language),
		Path:       PositionsFromModel(r.Path),
		ComboLevel: r.Combo.Level,
		TotalScore: r.Total,
	}
	if r.Accepted {
		sub.Score = &WordScore{
			Base:       r.Score.Base,
			ComboBonus: r.Score.ComboBonus,
			Total:      r.Score.Total,
		}
	}
	return sub
}
