package factory

import (
	"time"

	"github.com/wordrush/wordrush/internal/dependencies/mocks"
	"github.com/wordrush/wordrush/internal/language"
	"github.com/wordrush/wordrush/internal/services/auth"
	"github.com/wordrush/wordrush/internal/storage/memory"
	"github.com/wordrush/wordrush/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, auth.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestWordList loads a small English word list for testing. Every
// word is short enough to embed on small boards, and the set is
// letter-dense (lots of shared A/R/T) so hand-built grids can carry
// several of them at once.
func (t *TestApp) LoadTestWordList() error {
	words := []string{
		// 3-letter words
		"ant", "art", "cab", "car", "cat", "dam", "dot", "ear",
		"eat", "mad", "man", "map", "mat", "oar", "oat", "rat",
		"ram", "ran", "tan", "tap", "tar", "tea",
		// 4-letter words
		"cart", "dart", "mart", "mast", "meat", "moat", "part",
		"rant", "rate", "star", "tame", "tram", "trap",
		// 5-letter words
		"smart", "start", "tamer", "treat",
	}
	return t.WordListService.LoadWords(language.English, words)
}
