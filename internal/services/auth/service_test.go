package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/wordrush/wordrush/internal/dependencies/mocks"
	"github.com/wordrush/wordrush/internal/model"
	"github.com/wordrush/wordrush/internal/storage/memory"
	"github.com/wordrush/wordrush/internal/testutil"
)

type AuthSuite struct {
	suite.Suite
	store   *memory.Storage
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) SetupTest() {
	s.store = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.service = New(s.store, s.clock, s.random, DefaultConfig(), testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *AuthSuite) TestCreateGuestPlayer() {
	s.random.QueueString("guest1", "token1")

	session, err := s.service.CreateGuestPlayer(s.ctx, "Guesty")
	s.Require().NoError(err)

	s.Equal(model.PlayerID("p_guest1"), session.PlayerID)
	s.Equal("sess_token1", session.Token)
	s.True(session.Player.IsGuest)
	s.Equal("Guesty", session.Player.DisplayName)

	// The player is persisted
	player, err := s.store.GetPlayer(s.ctx, session.PlayerID)
	s.Require().NoError(err)
	s.True(player.IsGuest)
}

func (s *AuthSuite) TestRegisterAndLogin() {
	s.random.QueueString("alice1", "token1", "token2")

	session, err := s.service.RegisterPlayer(s.ctx, "alice", "hunter22", "Alice")
	s.Require().NoError(err)
	s.False(session.Player.IsGuest)

	// The stored credential is a hash, never the password
	rp, err := s.store.GetRegisteredPlayerByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.NotEqual("hunter22", rp.PasswordHash)
	s.NotEmpty(rp.PasswordHash)

	login, err := s.service.Login(s.ctx, "alice", "hunter22")
	s.Require().NoError(err)
	s.Equal(session.PlayerID, login.PlayerID)
	s.NotEqual(session.Token, login.Token, "each login mints a fresh token")
}

func (s *AuthSuite) TestRegisterDuplicateUsername() {
	s.random.QueueString("alice1", "token1")

	_, err := s.service.RegisterPlayer(s.ctx, "alice", "hunter22", "Alice")
	s.Require().NoError(err)

	_, err = s.service.RegisterPlayer(s.ctx, "alice", "other", "Imposter")
	s.ErrorIs(err, ErrUsernameExists)
}

func (s *AuthSuite) TestLoginWrongPassword() {
	s.random.QueueString("alice1", "token1")
	_, err := s.service.RegisterPlayer(s.ctx, "alice", "hunter22", "Alice")
	s.Require().NoError(err)

	_, err = s.service.Login(s.ctx, "alice", "wrong")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthSuite) TestLoginUnknownUser() {
	_, err := s.service.Login(s.ctx, "nobody", "whatever")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthSuite) TestValidateSession() {
	s.random.QueueString("guest1", "token1")
	session, err := s.service.CreateGuestPlayer(s.ctx, "Guesty")
	s.Require().NoError(err)

	got, err := s.service.ValidateSession(session.Token)
	s.Require().NoError(err)
	s.Equal(session.PlayerID, got.PlayerID)

	_, err = s.service.ValidateSession("sess_bogus")
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *AuthSuite) TestSessionExpiry() {
	s.random.QueueString("guest1", "token1")
	session, err := s.service.CreateGuestPlayer(s.ctx, "Guesty")
	s.Require().NoError(err)

	s.clock.Advance(23 * time.Hour)
	_, err = s.service.ValidateSession(session.Token)
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Hour)
	_, err = s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *AuthSuite) TestInvalidateSession() {
	s.random.QueueString("guest1", "token1")
	session, err := s.service.CreateGuestPlayer(s.ctx, "Guesty")
	s.Require().NoError(err)

	s.service.InvalidateSession(session.Token)

	_, err = s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *AuthSuite) TestCleanExpiredSessions() {
	s.random.QueueString("guest1", "token1", "guest2", "token2")

	old, err := s.service.CreateGuestPlayer(s.ctx, "Old")
	s.Require().NoError(err)

	s.clock.Advance(20 * time.Hour)
	fresh, err := s.service.CreateGuestPlayer(s.ctx, "Fresh")
	s.Require().NoError(err)

	s.clock.Advance(5 * time.Hour)
	s.service.CleanExpiredSessions()

	_, err = s.service.ValidateSession(old.Token)
	s.ErrorIs(err, ErrInvalidSession)
	_, err = s.service.ValidateSession(fresh.Token)
	s.NoError(err)
}

func (s *AuthSuite) TestCustomSessionDuration() {
	svc := New(s.store, s.clock, s.random, Config{SessionDuration: time.Minute}, testutil.NopLogger())
	s.random.QueueString("guest1", "token1")

	session, err := svc.CreateGuestPlayer(s.ctx, "Guesty")
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Minute)
	_, err = svc.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}
