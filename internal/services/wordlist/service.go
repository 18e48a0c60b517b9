package wordlist

import (
	"bufio"
	"context"
	"os"
	"strings"
	"sync"

	"github.com/wordrush/wordrush/internal/dependencies/random"
	"github.com/wordrush/wordrush/internal/language"
	"github.com/wordrush/wordrush/internal/model"
	"github.com/wordrush/wordrush/internal/storage"
)

// Embed candidate bounds: words shorter than this are trivial to find by
// accident, longer ones rarely fit a board
const (
	minEmbedGraphemes = 3
	maxEmbedGraphemes = 8
)

// Service holds the per-language word sets used for dictionary checks
// and for picking board embed candidates. Words are stored in canonical
// normalized form; lookups normalize before comparing.
type Service struct {
	storage storage.Storage
	random  random.Random

	mu    sync.RWMutex
	words map[language.Language]map[string]struct{}
	lists map[language.Language][]string // insertion order, for candidate sampling
}

// New creates a new word list service
func New(store storage.Storage, rnd random.Random) *Service {
	return &Service{
		storage: store,
		random:  rnd,
		words:   make(map[language.Language]map[string]struct{}),
		lists:   make(map[language.Language][]string),
	}
}

// LoadFromStorage loads a language's word list from storage
func (s *Service) LoadFromStorage(ctx context.Context, lang language.Language) error {
	words, err := s.storage.GetWordList(ctx, lang)
	if err != nil {
		return err
	}
	return s.load(lang, words)
}

// LoadFromFile loads a language's word list from a file (one word per
// line) and saves it to storage for future use
func (s *Service) LoadFromFile(ctx context.Context, lang language.Language, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if err := s.storage.SaveWordList(ctx, lang, words); err != nil {
		return err
	}

	return s.load(lang, words)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(lang language.Language, words []string) error {
	return s.load(lang, words)
}

func (s *Service) load(lang language.Language, words []string) error {
	set := make(map[string]struct{}, len(words))
	list := make([]string, 0, len(words))
	for _, word := range words {
		graphemes, err := language.NormalizeWord(word, lang)
		if err != nil {
			return err
		}
		canonical := string(graphemes)
		if _, seen := set[canonical]; seen {
			continue
		}
		set[canonical] = struct{}{}
		list = append(list, canonical)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.words[lang] = set
	s.lists[lang] = list
	return nil
}

// Loaded returns whether a word list is available for the language
func (s *Service) Loaded(lang language.Language) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words[lang]) > 0
}

// Contains checks whether the word (in any display form) is in the
// language's word list. Returns model.ErrWordListNotLoaded if no list
// has been loaded for the language.
func (s *Service) Contains(word string, lang language.Language) (bool, error) {
	graphemes, err := language.NormalizeWord(word, lang)
	if err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.words[lang]
	if !ok || len(set) == 0 {
		return false, model.ErrWordListNotLoaded
	}
	_, found := set[string(graphemes)]
	return found, nil
}

// WordCount returns the number of words loaded for the language
func (s *Service) WordCount(lang language.Language) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words[lang])
}

// EmbedCandidates picks up to max embeddable words for the language. For
// logographic languages with no loaded list the provider's curated
// compounds serve as the pool, so boards always carry findable words.
func (s *Service) EmbedCandidates(lang language.Language, max int) ([]string, error) {
	provider, err := language.For(lang)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	pool := make([]string, 0, max)
	for _, word := range s.lists[lang] {
		n := len([]rune(word))
		if n >= minEmbedGraphemes && n <= maxEmbedGraphemes {
			pool = append(pool, word)
		}
	}
	s.mu.RUnlock()

	if len(pool) == 0 {
		pool = append(pool, provider.Compounds()...)
	}
	if max <= 0 || len(pool) == 0 {
		return nil, nil
	}

	// Partial Fisher-Yates: the first max slots end up a uniform sample
	picked := make([]string, len(pool))
	copy(picked, pool)
	limit := max
	if limit > len(picked) {
		limit = len(picked)
	}
	for i := 0; i < limit; i++ {
		j := i + s.random.Intn(len(picked)-i)
		picked[i], picked[j] = picked[j], picked[i]
	}
	return picked[:limit], nil
}

// Interface for dependency injection
type ServiceInterface interface {
	LoadFromStorage(ctx context.Context, lang language.Language) error
	LoadFromFile(ctx context.Context, lang language.Language, path string) error
	LoadWords(lang language.Language, words []string) error
	Loaded(lang language.Language) bool
	Contains(word string, lang language.Language) (bool, error)
	WordCount(lang language.Language) int
	EmbedCandidates(lang language.Language, max int) ([]string, error)
}

var _ ServiceInterface = (*Service)(nil)
