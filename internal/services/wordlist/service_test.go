package wordlist

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/wordrush/wordrush/internal/dependencies/mocks"
	"github.com/wordrush/wordrush/internal/language"
	"github.com/wordrush/wordrush/internal/model"
	"github.com/wordrush/wordrush/internal/storage/memory"
)

type WordListSuite struct {
	suite.Suite
	store   *memory.Storage
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestWordListSuite(t *testing.T) {
	suite.Run(t, new(WordListSuite))
}

func (s *WordListSuite) SetupTest() {
	s.store = memory.New()
	s.random = mocks.NewMockRandom()
	s.service = New(s.store, s.random)
	s.ctx = context.Background()
}

func (s *WordListSuite) TestContainsNormalizes() {
	s.Require().NoError(s.service.LoadWords(language.English, []string{"Cat", "DOG"}))

	for _, form := range []string{"cat", "CAT", "Cat"} {
		found, err := s.service.Contains(form, language.English)
		s.Require().NoError(err)
		s.True(found, "form %q", form)
	}

	found, err := s.service.Contains("bird", language.English)
	s.Require().NoError(err)
	s.False(found)
}

func (s *WordListSuite) TestContainsRequiresLoadedList() {
	_, err := s.service.Contains("cat", language.English)
	s.ErrorIs(err, model.ErrWordListNotLoaded)

	s.False(s.service.Loaded(language.English))
}

func (s *WordListSuite) TestHebrewFinalFormsShareEntry() {
	s.Require().NoError(s.service.LoadWords(language.Hebrew, []string{"דרך"}))

	// Canonical and final-form spellings hit the same entry
	for _, form := range []string{"דרך", "דרכ"} {
		found, err := s.service.Contains(form, language.Hebrew)
		s.Require().NoError(err)
		s.True(found, "form %q", form)
	}
	s.Equal(1, s.service.WordCount(language.Hebrew))
}

func (s *WordListSuite) TestLoadDeduplicates() {
	s.Require().NoError(s.service.LoadWords(language.English, []string{"cat", "CAT", "Cat", "dog"}))
	s.Equal(2, s.service.WordCount(language.English))
}

func (s *WordListSuite) TestListsArePerLanguage() {
	s.Require().NoError(s.service.LoadWords(language.English, []string{"cat"}))

	s.True(s.service.Loaded(language.English))
	s.False(s.service.Loaded(language.Swedish))

	_, err := s.service.Contains("cat", language.Swedish)
	s.ErrorIs(err, model.ErrWordListNotLoaded)
}

func (s *WordListSuite) TestLoadFromStorage() {
	s.Require().NoError(s.store.SaveWordList(s.ctx, language.English, []string{"cat", "dog"}))

	s.Require().NoError(s.service.LoadFromStorage(s.ctx, language.English))
	s.Equal(2, s.service.WordCount(language.English))
}

func (s *WordListSuite) TestLoadFromFile() {
	dir := s.T().TempDir()
	file := filepath.Join(dir, "english.txt")
	s.Require().NoError(os.WriteFile(file, []byte("cat\ndog\n\n  bird  \n"), 0o644))

	s.Require().NoError(s.service.LoadFromFile(s.ctx, language.English, file))
	s.Equal(3, s.service.WordCount(language.English))

	// The list also lands in storage for the next process
	stored, err := s.store.GetWordList(s.ctx, language.English)
	s.Require().NoError(err)
	s.Len(stored, 3)
}

func (s *WordListSuite) TestLoadFromMissingFile() {
	err := s.service.LoadFromFile(s.ctx, language.English, "/does/not/exist.txt")
	s.Error(err)
}

func (s *WordListSuite) TestEmbedCandidatesFilterByLength() {
	s.Require().NoError(s.service.LoadWords(language.English, []string{
		"at",          // too short to embed
		"cat", "cart", // in range
		"avalanches", // too long
	}))

	candidates, err := s.service.EmbedCandidates(language.English, 10)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"CAT", "CART"}, candidates)
}

func (s *WordListSuite) TestEmbedCandidatesRespectsMax() {
	s.Require().NoError(s.service.LoadWords(language.English, []string{
		"cat", "cart", "mast", "star", "trap", "rate",
	}))

	candidates, err := s.service.EmbedCandidates(language.English, 3)
	s.Require().NoError(err)
	s.Len(candidates, 3)

	candidates, err = s.service.EmbedCandidates(language.English, 0)
	s.Require().NoError(err)
	s.Empty(candidates)
}

func (s *WordListSuite) TestEmbedCandidatesFallBackToCompounds() {
	// No Japanese list loaded: the curated compounds keep boards playable
	candidates, err := s.service.EmbedCandidates(language.Japanese, 5)
	s.Require().NoError(err)
	s.Require().Len(candidates, 5)

	provider, err := language.For(language.Japanese)
	s.Require().NoError(err)
	s.Subset(provider.Compounds(), candidates)
}

func (s *WordListSuite) TestEmbedCandidatesUnknownLanguage() {
	_, err := s.service.EmbedCandidates(language.Language("klingon"), 5)
	s.ErrorIs(err, language.ErrUnsupportedLanguage)
}
