package model

import "time"

// ComboState tracks a player's streak of rapid, successive accepted words.
// It is a plain value: the scoring engine takes a state in and returns a
// new one, and exactly one player session owns any given state. Level 0
// with a zero LastAcceptedAt is the reset state.
type ComboState struct {
	Level          int       `json:"level"`
	LastAcceptedAt time.Time `json:"last_accepted_at"`
}

// Started returns true if at least one combo-eligible word has been accepted
func (c ComboState) Started() bool {
	return !c.LastAcceptedAt.IsZero()
}

// WordScore is the point breakdown for a single accepted word
type WordScore struct {
	Base       int `json:"base"`
	ComboBonus int `json:"combo_bonus"`
	Total      int `json:"total"`
}
