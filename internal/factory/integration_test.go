package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/wordrush/wordrush/internal/language"
	"github.com/wordrush/wordrush/internal/model"
)

// IntegrationSuite exercises a whole round through the wired services:
// grid generation, word verification, scoring and combo bookkeeping,
// and the round lifecycle.
type IntegrationSuite struct {
	suite.Suite

	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.Require().NoError(s.app.LoadTestWordList())
}

// createRound builds a 4x4 English round. With the mock random source
// exhausted every Intn call yields 0, so generation is deterministic:
// every placement attempt starts at (0,0) and the direction shuffle
// always comes out the same. CART lands straight across row 0. DART,
// ANT and ART need a different first grapheme at (0,0) and are skipped.
// CAR overlays row 0, CAB winds southeast through (1,1) and (2,2), and
// CAT winds through (1,1) down to (2,1), leaving
//
//	C A R T
//	A A A A
//	A T B A
//	A A A A
func (s *IntegrationSuite) createRound(players ...model.PlayerID) *model.Round {
	s.app.MockRandom.QueueString("ROUND1")
	round, err := s.app.RoundController.CreateRound(s.ctx, language.English, 4, 4, players)
	s.Require().NoError(err)
	return round
}

func (s *IntegrationSuite) TestRoundCreation() {
	round := s.createRound("alice", "bob")

	s.Equal(model.RoundID("ROUND1"), round.ID)
	s.Equal(model.RoundStateActive, round.State)
	s.Equal([]string{"CART", "CAB", "CAR", "CAT"}, round.EmbeddedWords)

	s.Require().True(round.Grid.FullyPopulated())
	s.Equal("CART", string(round.Grid.Cells[0]))
	s.Equal("AAAA", string(round.Grid.Cells[1]))
	s.Equal("ATBA", string(round.Grid.Cells[2]))
	s.Equal("AAAA", string(round.Grid.Cells[3]))

	// Every embedded word must be findable on the finished grid
	for _, word := range round.EmbeddedWords {
		path, err := s.app.PathService.FindPath(word, round.Grid, round.Language)
		s.Require().NoError(err)
		s.NotNil(path, "embedded word %q must be reachable", word)
	}

	s.Equal(0, round.Scores["alice"])
	s.Equal(0, round.Combos["alice"].Level)

	// The stored round matches what was returned
	stored, err := s.app.RoundController.GetRound(s.ctx, round.ID)
	s.Require().NoError(err)
	s.Equal(round.ID, stored.ID)
	s.Equal(round.Grid, stored.Grid)
}

func (s *IntegrationSuite) TestCreateRoundRequiresPlayers() {
	_, err := s.app.RoundController.CreateRound(s.ctx, language.English, 4, 4, nil)
	s.ErrorIs(err, model.ErrNoPlayers)
}

func (s *IntegrationSuite) TestSubmissionFlow() {
	round := s.createRound("alice")

	// First acceptance arms the streak at level 0, no bonus
	result, err := s.app.RoundController.SubmitWord(s.ctx, round.ID, "alice", "cart", true)
	s.Require().NoError(err)
	s.True(result.Accepted)
	s.Equal("CART", result.Word)
	s.Len(result.Path, 4)
	s.Equal(3, result.Score.Base)
	s.Equal(0, result.Score.ComboBonus)
	s.Equal(0, result.Combo.Level)
	s.Equal(3, result.Total)

	// Follow-ups inside the window climb the combo one level per word
	result, err = s.app.RoundController.SubmitWord(s.ctx, round.ID, "alice", "rat", true)
	s.Require().NoError(err)
	s.True(result.Accepted)
	s.Equal(1, result.Combo.Level)
	s.Equal(5, result.Total)

	result, err = s.app.RoundController.SubmitWord(s.ctx, round.ID, "alice", "art", true)
	s.Require().NoError(err)
	s.True(result.Accepted)
	s.Equal(2, result.Combo.Level)
	s.Equal(7, result.Total)

	// Scores survive a round-trip through storage
	stored, err := s.app.RoundController.GetRound(s.ctx, round.ID)
	s.Require().NoError(err)
	s.Equal(7, stored.Scores["alice"])
	s.Equal([]string{"CART", "RAT", "ART"}, stored.Accepted["alice"])
}

func (s *IntegrationSuite) TestRejectionsResetCombo() {
	round := s.createRound("alice")

	for _, word := range []string{"cart", "rat"} {
		result, err := s.app.RoundController.SubmitWord(s.ctx, round.ID, "alice", word, true)
		s.Require().NoError(err)
		s.Require().True(result.Accepted)
	}

	// Duplicate of an already-accepted word
	result, err := s.app.RoundController.SubmitWord(s.ctx, round.ID, "alice", "CART", true)
	s.Require().NoError(err)
	s.False(result.Accepted)
	s.Equal(model.RejectDuplicate, result.Reason)
	s.Equal(0, result.Combo.Level)
	s.Equal(5, result.Total, "rejections never change the score")

	// Not in the word list
	result, err = s.app.RoundController.SubmitWord(s.ctx, round.ID, "alice", "zzz", true)
	s.Require().NoError(err)
	s.False(result.Accepted)
	s.Equal(model.RejectNotInWordList, result.Reason)

	// In the word list but not reachable on this grid (no D or O
	// anywhere)
	result, err = s.app.RoundController.SubmitWord(s.ctx, round.ID, "alice", "dot", true)
	s.Require().NoError(err)
	s.False(result.Accepted)
	s.Equal(model.RejectNotOnBoard, result.Reason)

	// Empty submission
	result, err = s.app.RoundController.SubmitWord(s.ctx, round.ID, "alice", "", true)
	s.Require().NoError(err)
	s.False(result.Accepted)
	s.Equal(model.RejectEmptyWord, result.Reason)
}

func (s *IntegrationSuite) TestComboDecaysBetweenSubmissions() {
	round := s.createRound("alice")

	result, err := s.app.RoundController.SubmitWord(s.ctx, round.ID, "alice", "cart", true)
	s.Require().NoError(err)
	s.Require().True(result.Accepted)

	result, err = s.app.RoundController.SubmitWord(s.ctx, round.ID, "alice", "rat", true)
	s.Require().NoError(err)
	s.Equal(1, result.Combo.Level)

	// Let the window lapse; the next acceptance starts a fresh streak
	s.app.MockClock.Advance(10 * time.Second)

	result, err = s.app.RoundController.SubmitWord(s.ctx, round.ID, "alice", "art", true)
	s.Require().NoError(err)
	s.True(result.Accepted)
	s.Equal(0, result.Combo.Level)
}

func (s *IntegrationSuite) TestManualSubmissionsDoNotBuildCombo() {
	round := s.createRound("alice")

	result, err := s.app.RoundController.SubmitWord(s.ctx, round.ID, "alice", "cart", false)
	s.Require().NoError(err)
	s.Require().True(result.Accepted)

	result, err = s.app.RoundController.SubmitWord(s.ctx, round.ID, "alice", "rat", false)
	s.Require().NoError(err)
	s.True(result.Accepted)
	s.Equal(0, result.Combo.Level)
}

func (s *IntegrationSuite) TestPlayersScoreIndependently() {
	round := s.createRound("alice", "bob")

	_, err := s.app.RoundController.SubmitWord(s.ctx, round.ID, "alice", "cart", true)
	s.Require().NoError(err)

	result, err := s.app.RoundController.SubmitWord(s.ctx, round.ID, "bob", "rat", true)
	s.Require().NoError(err)
	s.True(result.Accepted)
	s.Equal(0, result.Combo.Level, "bob's streak is his own")
	s.Equal(2, result.Total)

	// The same word is fine across players, only duplicates per player
	// are rejected
	result, err = s.app.RoundController.SubmitWord(s.ctx, round.ID, "bob", "cart", true)
	s.Require().NoError(err)
	s.True(result.Accepted)

	stored, err := s.app.RoundController.GetRound(s.ctx, round.ID)
	s.Require().NoError(err)
	s.Equal(3, stored.Scores["alice"])
	s.Equal(5, stored.Scores["bob"])
}

func (s *IntegrationSuite) TestConcurrentSubmissionsFromTwoPlayers() {
	round := s.createRound("alice", "bob")

	submit := func(player model.PlayerID, words []string, errCh chan<- error) {
		for _, word := range words {
			if _, err := s.app.RoundController.SubmitWord(s.ctx, round.ID, player, word, true); err != nil {
				errCh <- err
				return
			}
		}
		errCh <- nil
	}

	errCh := make(chan error, 2)
	go submit("alice", []string{"cart", "rat", "art"}, errCh)
	go submit("bob", []string{"car", "tar", "cab"}, errCh)
	for i := 0; i < 2; i++ {
		s.Require().NoError(<-errCh)
	}

	// Nobody's acceptance may be lost to the other player's write
	stored, err := s.app.RoundController.GetRound(s.ctx, round.ID)
	s.Require().NoError(err)
	s.Len(stored.Accepted["alice"], 3)
	s.Len(stored.Accepted["bob"], 3)
	s.Equal(7, stored.Scores["alice"])
	s.Equal(6, stored.Scores["bob"])
}

func (s *IntegrationSuite) TestSubmissionErrors() {
	round := s.createRound("alice")

	_, err := s.app.RoundController.SubmitWord(s.ctx, "NOPE", "alice", "cart", true)
	s.ErrorIs(err, model.ErrRoundNotFound)

	_, err = s.app.RoundController.SubmitWord(s.ctx, round.ID, "mallory", "cart", true)
	s.ErrorIs(err, model.ErrNotInRound)
}

func (s *IntegrationSuite) TestFinishRound() {
	round := s.createRound("alice")

	finished, err := s.app.RoundController.FinishRound(s.ctx, round.ID)
	s.Require().NoError(err)
	s.Equal(model.RoundStateFinished, finished.State)

	// Finishing again is a no-op
	again, err := s.app.RoundController.FinishRound(s.ctx, round.ID)
	s.Require().NoError(err)
	s.Equal(model.RoundStateFinished, again.State)

	_, err = s.app.RoundController.SubmitWord(s.ctx, round.ID, "alice", "cart", true)
	s.ErrorIs(err, model.ErrRoundFinished)
}

func (s *IntegrationSuite) TestGuestAndRegisteredAuth() {
	s.app.MockRandom.QueueString("guestid", "guesttoken", "regid", "regtoken")

	guest, err := s.app.AuthService.CreateGuestPlayer(s.ctx, "Guesty")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("p_guestid"), guest.PlayerID)
	s.True(guest.Player.IsGuest)

	reg, err := s.app.AuthService.RegisterPlayer(s.ctx, "alice", "hunter22", "Alice")
	s.Require().NoError(err)
	s.False(reg.Player.IsGuest)

	session, err := s.app.AuthService.ValidateSession(reg.Token)
	s.Require().NoError(err)
	s.Equal(reg.PlayerID, session.PlayerID)

	// Sessions expire on the clock
	s.app.MockClock.Advance(25 * time.Hour)
	_, err = s.app.AuthService.ValidateSession(reg.Token)
	s.Error(err)
}
